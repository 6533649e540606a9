package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Service drives a report request through its lifecycle. Transitions for a
// single request are serialized; a second caller hitting a locked request
// gets ErrOperationInProgress.
type Service interface {
	Create(ctx context.Context, company string, periodStart, periodEnd time.Time, reportType ReportType) (*ReportRequest, error)
	Get(ctx context.Context, id snowflake.ID) (*ReportRequest, error)

	// Generate runs the transformer: Draft/Ready -> Generating -> Ready.
	Generate(ctx context.Context, id snowflake.ID) (*ReportRequest, error)
	// SaveDraft opens the remote report session and saves the draft:
	// Ready -> InProgress.
	SaveDraft(ctx context.Context, id snowflake.ID) (*ReportRequest, error)
	// Submit sends the final report: InProgress -> Submitted. Irreversible.
	Submit(ctx context.Context, id snowflake.ID) (*ReportRequest, error)
	// PollStatus queries the regulator decision: Submitted -> Confirmed or
	// Rejected; "still processing" leaves the request at Submitted.
	PollStatus(ctx context.Context, id snowflake.ID) (*ReportRequest, error)

	// ListSubmitted returns requests awaiting a regulator decision, oldest
	// first, for the polling job.
	ListSubmitted(ctx context.Context, limit int) ([]ReportRequest, error)
}
