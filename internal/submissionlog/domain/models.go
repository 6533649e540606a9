package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Entry records one remote call made on behalf of a report request.
// Append-only: entries are never updated or deleted. Summaries are redacted
// before they reach this type; tokens and credentials must not appear here.
type Entry struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	ReportRequestID snowflake.ID `gorm:"not null;index" json:"report_request_id"`
	Timestamp       time.Time    `gorm:"not null;index" json:"timestamp"`
	Endpoint        string       `gorm:"type:text;not null" json:"endpoint"`
	RequestSummary  string       `gorm:"type:text" json:"request_summary"`
	ResponseSummary string       `gorm:"type:text" json:"response_summary"`
	HTTPStatus      int          `json:"http_status"`
	Outcome         Outcome      `gorm:"type:text;not null" json:"outcome"`
}

// TableName sets the database table name.
func (Entry) TableName() string { return "submission_log_entries" }

// Repository is the audit sink. Append must succeed or the caller's remote
// call is considered unlogged, which the state machine treats as a fault.
type Repository interface {
	Append(ctx context.Context, entry Entry) error
	ListByReport(ctx context.Context, reportRequestID snowflake.ID) ([]Entry, error)
}
