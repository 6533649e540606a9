package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/mn-frappe/ebalance/internal/clock"
	"github.com/mn-frappe/ebalance/internal/mof"
	"github.com/mn-frappe/ebalance/internal/period"
	reportdomain "github.com/mn-frappe/ebalance/internal/report/domain"
	"github.com/mn-frappe/ebalance/internal/report/transformer"
	sldomain "github.com/mn-frappe/ebalance/internal/submissionlog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Remote decision statuses reported by getConfirmedReportData.
const (
	remoteStatusConfirmed = "CONFIRMED"
	remoteStatusRejected  = "REJECTED"
)

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	clock       clock.Clock
	transformer *transformer.Transformer
	api         mof.API
	audit       sldomain.Repository
	periods     period.Repository
	locks       *lockRegistry
}

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Clock       clock.Clock
	Transformer *transformer.Transformer
	API         mof.API
	Audit       sldomain.Repository
	Periods     period.Repository
}

func NewService(p Params) reportdomain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("report.service"),
		genID:       p.GenID,
		clock:       p.Clock,
		transformer: p.Transformer,
		api:         p.API,
		audit:       p.Audit,
		periods:     p.Periods,
		locks:       newLockRegistry(),
	}
}

func (s *Service) Create(ctx context.Context, company string, periodStart, periodEnd time.Time, reportType reportdomain.ReportType) (*reportdomain.ReportRequest, error) {
	if !reportType.Valid() {
		return nil, reportdomain.ErrInvalidReportType
	}
	if strings.TrimSpace(company) == "" || !periodEnd.After(periodStart) {
		return nil, fmt.Errorf("invalid report window for company %q", company)
	}

	now := s.clock.Now()
	request := &reportdomain.ReportRequest{
		ID:          s.genID.Generate(),
		Company:     company,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		ReportType:  reportType,
		Status:      reportdomain.StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.db.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}
	s.log.Info("report request created",
		zap.Int64("report_request_id", int64(request.ID)),
		zap.String("company", company),
		zap.String("report_type", string(reportType)),
	)
	return request, nil
}

func (s *Service) Get(ctx context.Context, id snowflake.ID) (*reportdomain.ReportRequest, error) {
	var request reportdomain.ReportRequest
	err := s.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, reportdomain.ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *Service) ListSubmitted(ctx context.Context, limit int) ([]reportdomain.ReportRequest, error) {
	var requests []reportdomain.ReportRequest
	query := s.db.WithContext(ctx).
		Where("status = ?", reportdomain.StatusSubmitted).
		Order("updated_at ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Generate runs the transformer. Validation errors still land the request in
// Ready; only a hard fault (ledger unreachable) lands it in Failed.
func (s *Service) Generate(ctx context.Context, id snowflake.ID) (*reportdomain.ReportRequest, error) {
	return s.withLock(ctx, id, func(request *reportdomain.ReportRequest) error {
		switch request.Status {
		case reportdomain.StatusDraft, reportdomain.StatusReady:
		default:
			return fmt.Errorf("%w: cannot generate from %s", reportdomain.ErrInvalidTransition, request.Status)
		}

		request.Status = reportdomain.StatusGenerating
		if err := s.save(ctx, request); err != nil {
			return err
		}

		payload, validationErrors, err := s.transformer.Generate(ctx, request.Company, request.PeriodStart, request.PeriodEnd, request.ReportType)
		if err != nil {
			request.Status = reportdomain.StatusFailed
			if saveErr := s.save(ctx, request); saveErr != nil {
				return saveErr
			}
			return err
		}

		payloadJSON, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		if validationErrors == nil {
			validationErrors = []reportdomain.ValidationError{}
		}
		validationJSON, err := json.Marshal(validationErrors)
		if err != nil {
			return fmt.Errorf("encode validation errors: %w", err)
		}

		request.GeneratedPayload = datatypes.JSON(payloadJSON)
		request.ValidationErrors = datatypes.JSON(validationJSON)
		request.Status = reportdomain.StatusReady
		return s.save(ctx, request)
	})
}

// SaveDraft opens the remote session and saves the draft. Any remote failure
// leaves the request at its pre-transition status; re-invoking retries.
func (s *Service) SaveDraft(ctx context.Context, id snowflake.ID) (*reportdomain.ReportRequest, error) {
	return s.withLock(ctx, id, func(request *reportdomain.ReportRequest) error {
		switch request.Status {
		case reportdomain.StatusReady, reportdomain.StatusInProgress:
		default:
			return fmt.Errorf("%w: cannot save draft from %s", reportdomain.ErrInvalidTransition, request.Status)
		}
		if len(request.GeneratedPayload) == 0 {
			return reportdomain.ErrPayloadMissing
		}
		var payload reportdomain.Payload
		if err := json.Unmarshal(request.GeneratedPayload, &payload); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}

		remotePeriod, err := s.periods.FindCovering(ctx, request.PeriodStart, request.PeriodEnd)
		if err != nil {
			return err
		}

		hdrs, record, err := s.api.GetReportRequests(ctx, remotePeriod.ExternalID)
		if logErr := s.record(ctx, request.ID, record); logErr != nil {
			return logErr
		}
		if err != nil {
			return err
		}
		if len(hdrs) == 0 {
			return &mof.RemoteError{
				Endpoint:   "getReportUserOrgHdrList",
				StatusCode: 404,
				Message:    fmt.Sprintf("no remote report request open for period %s", remotePeriod.Code),
			}
		}
		hdrID := hdrs[0].ID

		_, record, err = s.api.DecideReportUserOrgHdr(ctx, remotePeriod.ExternalID, hdrID)
		if logErr := s.record(ctx, request.ID, record); logErr != nil {
			return logErr
		}
		if err != nil {
			return err
		}

		data, record, err := s.api.GetReportData(ctx, remotePeriod.ExternalID, hdrID)
		if logErr := s.record(ctx, request.ID, record); logErr != nil {
			return logErr
		}
		if err != nil {
			return err
		}

		cells := bindCells(&payload, data.AllCells())

		_, record, err = s.api.SaveReportData(ctx, hdrID, cells)
		if logErr := s.record(ctx, request.ID, record); logErr != nil {
			return logErr
		}
		if err != nil {
			return err
		}

		request.PeriodCode = remotePeriod.Code
		request.RemoteSessionID = strconv.FormatInt(remotePeriod.ExternalID, 10)
		request.RemoteReportID = strconv.FormatInt(hdrID, 10)
		request.Status = reportdomain.StatusInProgress
		return s.save(ctx, request)
	})
}

// Submit sends the final report. Irreversible once the regulator accepts it.
func (s *Service) Submit(ctx context.Context, id snowflake.ID) (*reportdomain.ReportRequest, error) {
	return s.withLock(ctx, id, func(request *reportdomain.ReportRequest) error {
		if request.Status != reportdomain.StatusInProgress {
			return fmt.Errorf("%w: cannot submit from %s", reportdomain.ErrInvalidTransition, request.Status)
		}
		hdrID, err := strconv.ParseInt(request.RemoteReportID, 10, 64)
		if err != nil {
			return fmt.Errorf("report request carries no remote report id: %w", err)
		}

		result, record, err := s.api.SendReportData(ctx, hdrID)
		if logErr := s.record(ctx, request.ID, record); logErr != nil {
			return logErr
		}
		if err != nil {
			return err
		}
		if len(result.ValidExpKeys) > 0 || len(result.ValidCellKeys) > 0 {
			return &mof.RemoteError{
				Endpoint:   "sendReportData",
				StatusCode: 422,
				Message: fmt.Sprintf("remote validation failed: expressions %v cells %v",
					result.ValidExpKeys, result.ValidCellKeys),
			}
		}

		request.Status = reportdomain.StatusSubmitted
		return s.save(ctx, request)
	})
}

// PollStatus queries the regulator decision. A pending decision is a no-op
// for the status, but the call is still logged.
func (s *Service) PollStatus(ctx context.Context, id snowflake.ID) (*reportdomain.ReportRequest, error) {
	return s.withLock(ctx, id, func(request *reportdomain.ReportRequest) error {
		if request.Status != reportdomain.StatusSubmitted {
			return fmt.Errorf("%w: cannot poll from %s", reportdomain.ErrInvalidTransition, request.Status)
		}

		confirmed, record, err := s.api.GetConfirmedReportData(ctx, request.PeriodCode)
		if logErr := s.record(ctx, request.ID, record); logErr != nil {
			return logErr
		}
		if err != nil {
			return err
		}

		switch {
		case confirmed.Status == remoteStatusConfirmed || len(confirmed.Values) > 0:
			request.Status = reportdomain.StatusConfirmed
		case confirmed.Status == remoteStatusRejected:
			request.Status = reportdomain.StatusRejected
		default:
			// Still processing on the remote side.
			return nil
		}
		return s.save(ctx, request)
	})
}

// withLock serializes transitions per request id. The updated request is
// reloaded after the transition so callers see persisted state.
func (s *Service) withLock(ctx context.Context, id snowflake.ID, transition func(*reportdomain.ReportRequest) error) (*reportdomain.ReportRequest, error) {
	if !s.locks.acquire(id) {
		return nil, reportdomain.ErrOperationInProgress
	}
	defer s.locks.release(id)

	request, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := transition(request); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) save(ctx context.Context, request *reportdomain.ReportRequest) error {
	request.UpdatedAt = s.clock.Now()
	return s.db.WithContext(ctx).Save(request).Error
}

// record converts a client call record into an audit entry. An unloggable
// call is treated as a fault: the transition aborts rather than leaving a
// gap in the trail.
func (s *Service) record(ctx context.Context, reportID snowflake.ID, call mof.CallRecord) error {
	if call.Endpoint == "" {
		return nil
	}
	outcome := sldomain.OutcomeFailure
	if call.Success {
		outcome = sldomain.OutcomeSuccess
	}
	entry := sldomain.Entry{
		ID:              s.genID.Generate(),
		ReportRequestID: reportID,
		Timestamp:       s.clock.Now(),
		Endpoint:        call.Endpoint,
		RequestSummary:  call.RequestSummary,
		ResponseSummary: call.ResponseSummary,
		HTTPStatus:      call.HTTPStatus,
		Outcome:         outcome,
	}
	if err := s.audit.Append(ctx, entry); err != nil {
		return fmt.Errorf("append submission log: %w", err)
	}
	return nil
}

// bindCells matches payload rows to remote form cells by row code, building
// the cellModelList for saveReportData. Cells without a matching row keep
// their remote value.
func bindCells(payload *reportdomain.Payload, cells []mof.FormCell) []mof.CellValue {
	amounts := make(map[string]string)
	if payload.BalanceSheet != nil {
		for _, row := range payload.BalanceSheet.Rows {
			amounts[row.RowCode] = row.Amount.StringFixedBank(2)
		}
	}
	if payload.IncomeStatement != nil {
		for _, row := range payload.IncomeStatement.Rows {
			amounts[row.RowCode] = row.Amount.StringFixedBank(2)
		}
	}

	var bound []mof.CellValue
	for _, cell := range cells {
		value, ok := amounts[cell.RowCode]
		if !ok {
			continue
		}
		bound = append(bound, mof.CellValue{ID: cell.ID, CellValue: value})
	}
	return bound
}
