package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type ReportType string

const (
	TypeBalanceSheet    ReportType = "balance_sheet"
	TypeIncomeStatement ReportType = "income_statement"
	TypeCombined        ReportType = "combined"
)

func (t ReportType) Valid() bool {
	switch t {
	case TypeBalanceSheet, TypeIncomeStatement, TypeCombined:
		return true
	}
	return false
}

type ReportStatus string

const (
	StatusDraft      ReportStatus = "draft"
	StatusGenerating ReportStatus = "generating"
	StatusReady      ReportStatus = "ready"
	StatusInProgress ReportStatus = "in_progress"
	StatusSubmitted  ReportStatus = "submitted"
	StatusConfirmed  ReportStatus = "confirmed"
	StatusRejected   ReportStatus = "rejected"
	StatusFailed     ReportStatus = "failed"
)

// Terminal reports accept no further transitions.
func (s ReportStatus) Terminal() bool {
	switch s {
	case StatusConfirmed, StatusRejected, StatusFailed:
		return true
	}
	return false
}

var (
	ErrReportNotFound      = errors.New("report_not_found")
	ErrInvalidReportType   = errors.New("invalid_report_type")
	ErrInvalidTransition   = errors.New("invalid_transition")
	ErrOperationInProgress = errors.New("operation_in_progress")
	ErrPayloadMissing      = errors.New("generated_payload_missing")
)

// ReportRequest is one submission attempt for a company and period. It is
// mutated only by the state machine, never concurrently for the same id.
type ReportRequest struct {
	ID               snowflake.ID   `gorm:"primaryKey" json:"id"`
	Company          string         `gorm:"type:text;not null;index" json:"company"`
	PeriodStart      time.Time      `gorm:"not null" json:"period_start"`
	PeriodEnd        time.Time      `gorm:"not null" json:"period_end"`
	ReportType       ReportType     `gorm:"type:text;not null" json:"report_type"`
	Status           ReportStatus   `gorm:"type:text;not null;index" json:"status"`
	PeriodCode       string         `gorm:"type:text" json:"period_code,omitempty"`
	GeneratedPayload datatypes.JSON `gorm:"type:jsonb" json:"generated_payload,omitempty"`
	RemoteSessionID  string         `gorm:"type:text" json:"remote_session_id,omitempty"`
	RemoteReportID   string         `gorm:"type:text" json:"remote_report_id,omitempty"`
	ValidationErrors datatypes.JSON `gorm:"type:jsonb" json:"validation_errors,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// TableName sets the database table name.
func (ReportRequest) TableName() string { return "report_requests" }
