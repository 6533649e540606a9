package period

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// PeriodType is parsed from the remote period code prefix:
// End_2024_H_2 is a year-end report, SubEnd_ an interim one.
type PeriodType string

const (
	TypeYearEnd PeriodType = "year_end"
	TypeInterim PeriodType = "interim"
	TypeOpening PeriodType = "opening"
	TypeSummary PeriodType = "summary"
	TypeUnknown PeriodType = "unknown"
)

// ParsePeriodType derives the type from a writing config code.
func ParsePeriodType(code string) PeriodType {
	switch {
	case strings.HasPrefix(code, "SubEnd_"):
		return TypeInterim
	case strings.HasPrefix(code, "End_"):
		return TypeYearEnd
	case strings.HasPrefix(code, "Open_"):
		return TypeOpening
	case strings.HasPrefix(code, "Summary_"):
		return TypeSummary
	default:
		return TypeUnknown
	}
}

// ReportPeriod is a remote report period kept as a durable record so report
// requests can be created against it offline.
type ReportPeriod struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	ExternalID   int64        `gorm:"not null;uniqueIndex" json:"external_id"`
	Code         string       `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name         string       `gorm:"type:text;not null" json:"name"`
	Type         PeriodType   `gorm:"type:text;not null" json:"type"`
	BeginDate    time.Time    `json:"begin_date"`
	EndDate      time.Time    `json:"end_date"`
	LastSyncedAt time.Time    `gorm:"not null" json:"last_synced_at"`
}

// TableName sets the database table name.
func (ReportPeriod) TableName() string { return "report_periods" }
