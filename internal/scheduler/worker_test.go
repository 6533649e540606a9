package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/mn-frappe/ebalance/internal/clock"
	"github.com/mn-frappe/ebalance/internal/mof"
	"github.com/mn-frappe/ebalance/internal/period"
	reportdomain "github.com/mn-frappe/ebalance/internal/report/domain"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubAPI struct {
	configs []mof.WritingConfig
}

func (a *stubAPI) GetWritingConfigs(ctx context.Context) ([]mof.WritingConfig, mof.CallRecord, error) {
	return a.configs, mof.CallRecord{Endpoint: "getWritingConfigs", Success: true}, nil
}

func (a *stubAPI) GetUserRoles(ctx context.Context) ([]mof.UserRole, mof.CallRecord, error) {
	return nil, mof.CallRecord{}, nil
}

func (a *stubAPI) GetReportOrgList(ctx context.Context, writingConfigCode string) ([]mof.ReportOrgConfig, mof.CallRecord, error) {
	return nil, mof.CallRecord{}, nil
}

func (a *stubAPI) GetReportRequests(ctx context.Context, reportWritingConfigID int64) ([]mof.ReportUserOrgHdr, mof.CallRecord, error) {
	return nil, mof.CallRecord{}, nil
}

func (a *stubAPI) DecideReportUserOrgHdr(ctx context.Context, reportWritingConfigID, reportUserOrgHdrID int64) ([]mof.ReportForm, mof.CallRecord, error) {
	return nil, mof.CallRecord{}, nil
}

func (a *stubAPI) GetReportData(ctx context.Context, reportWritingConfigID, reportUserOrgHdrID int64) (*mof.ReportData, mof.CallRecord, error) {
	return nil, mof.CallRecord{}, nil
}

func (a *stubAPI) GetReportPackageMap(ctx context.Context, reportUserOrgHdrID int64) ([]mof.ReportForm, mof.CallRecord, error) {
	return nil, mof.CallRecord{}, nil
}

func (a *stubAPI) SaveReportData(ctx context.Context, reportUserOrgHdrID int64, cells []mof.CellValue) (*mof.SaveResult, mof.CallRecord, error) {
	return nil, mof.CallRecord{}, nil
}

func (a *stubAPI) SendReportData(ctx context.Context, reportUserOrgHdrID int64) (*mof.SendResult, mof.CallRecord, error) {
	return nil, mof.CallRecord{}, nil
}

func (a *stubAPI) GetConfirmedReportData(ctx context.Context, writingConfigCode string) (*mof.ConfirmedReport, mof.CallRecord, error) {
	return nil, mof.CallRecord{}, nil
}

func (a *stubAPI) TestConnection(ctx context.Context) (*mof.ConnectionInfo, error) {
	return nil, nil
}

type stubReports struct {
	submitted []reportdomain.ReportRequest
	polled    []snowflake.ID
	failFor   snowflake.ID
}

func (s *stubReports) Create(ctx context.Context, company string, periodStart, periodEnd time.Time, reportType reportdomain.ReportType) (*reportdomain.ReportRequest, error) {
	return nil, nil
}

func (s *stubReports) Get(ctx context.Context, id snowflake.ID) (*reportdomain.ReportRequest, error) {
	return nil, nil
}

func (s *stubReports) Generate(ctx context.Context, id snowflake.ID) (*reportdomain.ReportRequest, error) {
	return nil, nil
}

func (s *stubReports) SaveDraft(ctx context.Context, id snowflake.ID) (*reportdomain.ReportRequest, error) {
	return nil, nil
}

func (s *stubReports) Submit(ctx context.Context, id snowflake.ID) (*reportdomain.ReportRequest, error) {
	return nil, nil
}

func (s *stubReports) PollStatus(ctx context.Context, id snowflake.ID) (*reportdomain.ReportRequest, error) {
	s.polled = append(s.polled, id)
	if id == s.failFor {
		return nil, errors.New("remote down")
	}
	return nil, nil
}

func (s *stubReports) ListSubmitted(ctx context.Context, limit int) ([]reportdomain.ReportRequest, error) {
	return s.submitted, nil
}

func newPeriodRepo(t *testing.T) period.Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&period.ReportPeriod{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	return period.Provide(db, node)
}

func TestSyncPeriodsUpsertsRemoteConfigs(t *testing.T) {
	repo := newPeriodRepo(t)
	worker := NewWorker(Params{
		Log:   zap.NewNop(),
		Clock: &clock.Fixed{Instant: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		API: &stubAPI{configs: []mof.WritingConfig{
			{ID: 1, Code: "End_2024_H_2", Name: "2024 year end", BeginDate: "2024-01-01", EndDate: "2024-12-31"},
			{ID: 2, Code: "SubEnd_2025_M_1", Name: "2025 interim", BeginDate: "2025-01-01", EndDate: "2025-06-30"},
		}},
		Periods: repo,
		Reports: &stubReports{},
	})

	for i := 0; i < 2; i++ {
		if err := worker.SyncPeriods(context.Background()); err != nil {
			t.Fatalf("SyncPeriods run %d: %v", i, err)
		}
	}

	periods, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(periods) != 2 {
		t.Fatalf("periods = %d, want 2 after repeated sync", len(periods))
	}
	byCode := map[string]period.ReportPeriod{}
	for _, p := range periods {
		byCode[p.Code] = p
	}
	if got := byCode["End_2024_H_2"].Type; got != period.TypeYearEnd {
		t.Errorf("type = %q, want year_end", got)
	}
	if got := byCode["SubEnd_2025_M_1"].Type; got != period.TypeInterim {
		t.Errorf("type = %q, want interim", got)
	}
}

func TestPollPendingContinuesPastFailures(t *testing.T) {
	reports := &stubReports{
		submitted: []reportdomain.ReportRequest{
			{ID: 10, Status: reportdomain.StatusSubmitted},
			{ID: 20, Status: reportdomain.StatusSubmitted},
			{ID: 30, Status: reportdomain.StatusSubmitted},
		},
		failFor: 20,
	}
	worker := NewWorker(Params{
		Log:     zap.NewNop(),
		Clock:   clock.SystemClock{},
		API:     &stubAPI{},
		Periods: newPeriodRepo(t),
		Reports: reports,
	})

	if err := worker.PollPending(context.Background()); err != nil {
		t.Fatalf("PollPending: %v", err)
	}
	if len(reports.polled) != 3 {
		t.Errorf("polled = %v, want all three despite the failure", reports.polled)
	}
}
