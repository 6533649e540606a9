package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/mn-frappe/ebalance/internal/clock"
	"github.com/mn-frappe/ebalance/internal/config"
	ledgerdomain "github.com/mn-frappe/ebalance/internal/ledger/domain"
	mappingdomain "github.com/mn-frappe/ebalance/internal/mapping/domain"
	"github.com/mn-frappe/ebalance/internal/mof"
	"github.com/mn-frappe/ebalance/internal/period"
	reportdomain "github.com/mn-frappe/ebalance/internal/report/domain"
	"github.com/mn-frappe/ebalance/internal/report/transformer"
	sldomain "github.com/mn-frappe/ebalance/internal/submissionlog/domain"
	slrepository "github.com/mn-frappe/ebalance/internal/submissionlog/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubLedger struct {
	balances []ledgerdomain.Balance
	err      error
}

func (s *stubLedger) ListAccounts(ctx context.Context, company string) ([]ledgerdomain.Account, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []ledgerdomain.Account{
		{ID: 1, Company: company, Number: "1111", Name: "Cash"},
		{ID: 2, Company: company, Number: "3110", Name: "Share capital"},
	}, nil
}

func (s *stubLedger) ListBalances(ctx context.Context, company string, periodStart, periodEnd time.Time) ([]ledgerdomain.Balance, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.balances, nil
}

type stubMappings struct{}

func (stubMappings) ProposeMappings(ctx context.Context, company string, dryRun bool) (*mappingdomain.Result, error) {
	return nil, nil
}

func (stubMappings) SetManualMapping(ctx context.Context, ledgerAccountID snowflake.ID, taxonomyCode string) error {
	return nil
}

func (stubMappings) SuggestCode(ctx context.Context, name, number string) ([]mappingdomain.Suggestion, error) {
	return nil, nil
}

func (stubMappings) ResolveAll(ctx context.Context) (map[snowflake.ID]mappingdomain.AccountMapping, error) {
	return map[snowflake.ID]mappingdomain.AccountMapping{
		1: {LedgerAccountID: 1, TaxonomyCode: "1111", Confidence: mappingdomain.ConfidenceExact},
		2: {LedgerAccountID: 2, TaxonomyCode: "3110", Confidence: mappingdomain.ConfidenceExact},
	}, nil
}

type stubPeriods struct{}

func (stubPeriods) Upsert(ctx context.Context, periods []period.ReportPeriod) error { return nil }

func (stubPeriods) List(ctx context.Context) ([]period.ReportPeriod, error) { return nil, nil }

func (stubPeriods) FindCovering(ctx context.Context, begin, end time.Time) (*period.ReportPeriod, error) {
	return &period.ReportPeriod{ExternalID: 77, Code: "End_2024_H_2", Type: period.TypeYearEnd}, nil
}

func okRecord(endpoint string) mof.CallRecord {
	return mof.CallRecord{Endpoint: endpoint, HTTPStatus: 200, Success: true, ResponseSummary: "statusCode=200"}
}

func failRecord(endpoint string) mof.CallRecord {
	return mof.CallRecord{Endpoint: endpoint, HTTPStatus: 502, ResponseSummary: "gave up"}
}

// stubAPI answers every endpoint successfully unless a hook overrides it.
type stubAPI struct {
	saveHook func() (*mof.SaveResult, mof.CallRecord, error)
	sendHook func() (*mof.SendResult, mof.CallRecord, error)
	pollHook func() (*mof.ConfirmedReport, mof.CallRecord, error)
}

func (a *stubAPI) GetWritingConfigs(ctx context.Context) ([]mof.WritingConfig, mof.CallRecord, error) {
	return nil, okRecord("getWritingConfigs"), nil
}

func (a *stubAPI) GetUserRoles(ctx context.Context) ([]mof.UserRole, mof.CallRecord, error) {
	return nil, okRecord("getUserRoles"), nil
}

func (a *stubAPI) GetReportOrgList(ctx context.Context, writingConfigCode string) ([]mof.ReportOrgConfig, mof.CallRecord, error) {
	return nil, okRecord("getAllConfigWithReportOrgList"), nil
}

func (a *stubAPI) GetReportRequests(ctx context.Context, reportWritingConfigID int64) ([]mof.ReportUserOrgHdr, mof.CallRecord, error) {
	return []mof.ReportUserOrgHdr{{ID: 555, ReportWritingConfigID: reportWritingConfigID}},
		okRecord("getReportUserOrgHdrList"), nil
}

func (a *stubAPI) DecideReportUserOrgHdr(ctx context.Context, reportWritingConfigID, reportUserOrgHdrID int64) ([]mof.ReportForm, mof.CallRecord, error) {
	return nil, okRecord("decideReportUserOrgHdr"), nil
}

func (a *stubAPI) GetReportData(ctx context.Context, reportWritingConfigID, reportUserOrgHdrID int64) (*mof.ReportData, mof.CallRecord, error) {
	data := &mof.ReportData{Forms: []mof.ReportDataForm{{
		ID:   1,
		Code: "СБТ",
		Cells: []mof.FormCell{
			{ID: 9001, RowCode: "СБТ-1111"},
			{ID: 9002, RowCode: "СБТ-3110"},
		},
	}}}
	return data, okRecord("getReportData"), nil
}

func (a *stubAPI) GetReportPackageMap(ctx context.Context, reportUserOrgHdrID int64) ([]mof.ReportForm, mof.CallRecord, error) {
	return nil, okRecord("getReportPackageMap"), nil
}

func (a *stubAPI) SaveReportData(ctx context.Context, reportUserOrgHdrID int64, cells []mof.CellValue) (*mof.SaveResult, mof.CallRecord, error) {
	if a.saveHook != nil {
		return a.saveHook()
	}
	return &mof.SaveResult{}, okRecord("saveReportData"), nil
}

func (a *stubAPI) SendReportData(ctx context.Context, reportUserOrgHdrID int64) (*mof.SendResult, mof.CallRecord, error) {
	if a.sendHook != nil {
		return a.sendHook()
	}
	return &mof.SendResult{}, okRecord("sendReportData"), nil
}

func (a *stubAPI) GetConfirmedReportData(ctx context.Context, writingConfigCode string) (*mof.ConfirmedReport, mof.CallRecord, error) {
	if a.pollHook != nil {
		return a.pollHook()
	}
	return &mof.ConfirmedReport{}, okRecord("getConfirmedReportData"), nil
}

func (a *stubAPI) TestConnection(ctx context.Context) (*mof.ConnectionInfo, error) {
	return &mof.ConnectionInfo{}, nil
}

type fixture struct {
	svc reportdomain.Service
	db  *gorm.DB
	api *stubAPI
}

func newFixture(t *testing.T, ledger *stubLedger) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&reportdomain.ReportRequest{}, &sldomain.Entry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	tr := transformer.New(transformer.Params{
		Log:        zap.NewNop(),
		LedgerRepo: ledger,
		Mappings:   stubMappings{},
		Config:     config.Config{BalanceEpsilon: "0.01"},
	})
	api := &stubAPI{}
	svc := NewService(Params{
		DB:          db,
		Log:         zap.NewNop(),
		GenID:       node,
		Clock:       &clock.Fixed{Instant: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		Transformer: tr,
		API:         api,
		Audit:       slrepository.Provide(db, node),
		Periods:     stubPeriods{},
	})
	return &fixture{svc: svc, db: db, api: api}
}

func balancedLedger() *stubLedger {
	return &stubLedger{balances: []ledgerdomain.Balance{
		{LedgerAccountID: 1, ClosingDebit: decimal.RequireFromString("1000")},
		{LedgerAccountID: 2, ClosingCredit: decimal.RequireFromString("1000")},
	}}
}

func (f *fixture) create(t *testing.T) *reportdomain.ReportRequest {
	t.Helper()
	request, err := f.svc.Create(context.Background(), "demo",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		reportdomain.TypeBalanceSheet,
	)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return request
}

func (f *fixture) logCount(t *testing.T, id snowflake.ID) int64 {
	t.Helper()
	var count int64
	if err := f.db.Model(&sldomain.Entry{}).Where("report_request_id = ?", id).Count(&count).Error; err != nil {
		t.Fatalf("count log entries: %v", err)
	}
	return count
}

func TestGenerateFromDraftLandsReady(t *testing.T) {
	f := newFixture(t, balancedLedger())
	request := f.create(t)

	updated, err := f.svc.Generate(context.Background(), request.ID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if updated.Status != reportdomain.StatusReady {
		t.Errorf("status = %s, want ready", updated.Status)
	}
	if len(updated.GeneratedPayload) == 0 {
		t.Error("generated payload not persisted")
	}
	if string(updated.ValidationErrors) != "[]" {
		t.Errorf("validation errors = %s, want empty list", updated.ValidationErrors)
	}
}

func TestGenerateHardFaultLandsFailed(t *testing.T) {
	f := newFixture(t, &stubLedger{err: ledgerdomain.ErrLedgerUnavailable})
	request := f.create(t)

	_, err := f.svc.Generate(context.Background(), request.ID)
	if !errors.Is(err, ledgerdomain.ErrLedgerUnavailable) {
		t.Fatalf("err = %v, want ledger fault", err)
	}
	reloaded, err := f.svc.Get(context.Background(), request.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if reloaded.Status != reportdomain.StatusFailed {
		t.Errorf("status = %s, want failed", reloaded.Status)
	}
}

func TestDraftOnlyAllowsGenerate(t *testing.T) {
	f := newFixture(t, balancedLedger())
	request := f.create(t)
	ctx := context.Background()

	if _, err := f.svc.SaveDraft(ctx, request.ID); !errors.Is(err, reportdomain.ErrInvalidTransition) {
		t.Errorf("SaveDraft from draft: err = %v, want ErrInvalidTransition", err)
	}
	if _, err := f.svc.Submit(ctx, request.ID); !errors.Is(err, reportdomain.ErrInvalidTransition) {
		t.Errorf("Submit from draft: err = %v, want ErrInvalidTransition", err)
	}
	if _, err := f.svc.PollStatus(ctx, request.ID); !errors.Is(err, reportdomain.ErrInvalidTransition) {
		t.Errorf("PollStatus from draft: err = %v, want ErrInvalidTransition", err)
	}
}

func TestSaveDraftTransitionsInProgress(t *testing.T) {
	f := newFixture(t, balancedLedger())
	request := f.create(t)
	ctx := context.Background()

	if _, err := f.svc.Generate(ctx, request.ID); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	updated, err := f.svc.SaveDraft(ctx, request.ID)
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if updated.Status != reportdomain.StatusInProgress {
		t.Errorf("status = %s, want in_progress", updated.Status)
	}
	if updated.RemoteSessionID != "77" || updated.RemoteReportID != "555" {
		t.Errorf("remote ids = %q/%q, want 77/555", updated.RemoteSessionID, updated.RemoteReportID)
	}
	if updated.PeriodCode != "End_2024_H_2" {
		t.Errorf("period code = %q, want End_2024_H_2", updated.PeriodCode)
	}
	// getReportUserOrgHdrList, decide, getReportData, save: one entry each.
	if got := f.logCount(t, request.ID); got != 4 {
		t.Errorf("log entries = %d, want 4", got)
	}
}

func TestSaveDraftRemoteFailureKeepsReady(t *testing.T) {
	f := newFixture(t, balancedLedger())
	request := f.create(t)
	ctx := context.Background()

	if _, err := f.svc.Generate(ctx, request.ID); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	f.api.saveHook = func() (*mof.SaveResult, mof.CallRecord, error) {
		return nil, failRecord("saveReportData"),
			&mof.NetworkError{Endpoint: "saveReportData", Attempts: 3, Err: errors.New("reset")}
	}

	_, err := f.svc.SaveDraft(ctx, request.ID)
	var netErr *mof.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("err = %v, want *NetworkError", err)
	}

	reloaded, err := f.svc.Get(ctx, request.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if reloaded.Status != reportdomain.StatusReady {
		t.Errorf("status = %s, want ready after remote failure", reloaded.Status)
	}
	// The failed call is still logged.
	if got := f.logCount(t, request.ID); got != 4 {
		t.Errorf("log entries = %d, want 4 including the failure", got)
	}
}

func TestConcurrentSaveDraftFailsFast(t *testing.T) {
	f := newFixture(t, balancedLedger())
	request := f.create(t)
	ctx := context.Background()

	if _, err := f.svc.Generate(ctx, request.ID); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	entered := make(chan struct{})
	release := make(chan struct{})
	f.api.saveHook = func() (*mof.SaveResult, mof.CallRecord, error) {
		close(entered)
		<-release
		return &mof.SaveResult{}, okRecord("saveReportData"), nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := f.svc.SaveDraft(ctx, request.ID)
		done <- err
	}()

	<-entered
	if _, err := f.svc.SaveDraft(ctx, request.ID); !errors.Is(err, reportdomain.ErrOperationInProgress) {
		t.Errorf("second SaveDraft: err = %v, want ErrOperationInProgress", err)
	}
	close(release)

	if err := <-done; err != nil {
		t.Fatalf("first SaveDraft: %v", err)
	}
	reloaded, err := f.svc.Get(ctx, request.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if reloaded.Status != reportdomain.StatusInProgress {
		t.Errorf("status = %s, want in_progress from the first call", reloaded.Status)
	}
}

func TestSubmitThenPollLifecycle(t *testing.T) {
	f := newFixture(t, balancedLedger())
	request := f.create(t)
	ctx := context.Background()

	if _, err := f.svc.Generate(ctx, request.ID); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := f.svc.SaveDraft(ctx, request.ID); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	updated, err := f.svc.Submit(ctx, request.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if updated.Status != reportdomain.StatusSubmitted {
		t.Fatalf("status = %s, want submitted", updated.Status)
	}

	// Pending decision: repeated polling is a no-op for the status, but
	// each call still appends a log entry.
	before := f.logCount(t, request.ID)
	for i := 0; i < 2; i++ {
		polled, err := f.svc.PollStatus(ctx, request.ID)
		if err != nil {
			t.Fatalf("PollStatus %d: %v", i, err)
		}
		if polled.Status != reportdomain.StatusSubmitted {
			t.Errorf("poll %d: status = %s, want submitted", i, polled.Status)
		}
	}
	if got := f.logCount(t, request.ID); got != before+2 {
		t.Errorf("log entries = %d, want %d (each poll logged)", got, before+2)
	}

	f.api.pollHook = func() (*mof.ConfirmedReport, mof.CallRecord, error) {
		return &mof.ConfirmedReport{Status: "CONFIRMED"}, okRecord("getConfirmedReportData"), nil
	}
	confirmed, err := f.svc.PollStatus(ctx, request.ID)
	if err != nil {
		t.Fatalf("PollStatus confirmed: %v", err)
	}
	if confirmed.Status != reportdomain.StatusConfirmed {
		t.Errorf("status = %s, want confirmed", confirmed.Status)
	}

	// Terminal: no further transitions.
	if _, err := f.svc.PollStatus(ctx, request.ID); !errors.Is(err, reportdomain.ErrInvalidTransition) {
		t.Errorf("poll after confirm: err = %v, want ErrInvalidTransition", err)
	}
}

func TestPollRejectionLandsRejected(t *testing.T) {
	f := newFixture(t, balancedLedger())
	request := f.create(t)
	ctx := context.Background()

	if _, err := f.svc.Generate(ctx, request.ID); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := f.svc.SaveDraft(ctx, request.ID); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if _, err := f.svc.Submit(ctx, request.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	f.api.pollHook = func() (*mof.ConfirmedReport, mof.CallRecord, error) {
		return &mof.ConfirmedReport{Status: "REJECTED"}, okRecord("getConfirmedReportData"), nil
	}
	rejected, err := f.svc.PollStatus(ctx, request.ID)
	if err != nil {
		t.Fatalf("PollStatus: %v", err)
	}
	if rejected.Status != reportdomain.StatusRejected {
		t.Errorf("status = %s, want rejected", rejected.Status)
	}
}

func TestListSubmitted(t *testing.T) {
	f := newFixture(t, balancedLedger())
	ctx := context.Background()

	first := f.create(t)
	if _, err := f.svc.Generate(ctx, first.ID); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := f.svc.SaveDraft(ctx, first.ID); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if _, err := f.svc.Submit(ctx, first.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	f.create(t) // stays draft

	submitted, err := f.svc.ListSubmitted(ctx, 10)
	if err != nil {
		t.Fatalf("ListSubmitted: %v", err)
	}
	if len(submitted) != 1 || submitted[0].ID != first.ID {
		t.Errorf("submitted = %+v, want only the submitted request", submitted)
	}
}
