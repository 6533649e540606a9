package scheduler

import (
	"context"
	"time"

	"github.com/mn-frappe/ebalance/internal/clock"
	"github.com/mn-frappe/ebalance/internal/mof"
	"github.com/mn-frappe/ebalance/internal/period"
	reportdomain "github.com/mn-frappe/ebalance/internal/report/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Clock   clock.Clock
	API     mof.API
	Periods period.Repository
	Reports reportdomain.Service
	Config  Config `optional:"true"`
}

// Worker runs the two scheduled jobs: period sync and submission polling.
type Worker struct {
	log     *zap.Logger
	clock   clock.Clock
	api     mof.API
	periods period.Repository
	reports reportdomain.Service
	cfg     Config
}

func NewWorker(p Params) *Worker {
	return &Worker{
		log:     p.Log.Named("scheduler"),
		clock:   p.Clock,
		api:     p.API,
		periods: p.Periods,
		reports: p.Reports,
		cfg:     p.Config.withDefaults(),
	}
}

func (w *Worker) RunForever(ctx context.Context) {
	syncTicker := time.NewTicker(w.cfg.SyncInterval)
	defer syncTicker.Stop()
	pollTicker := time.NewTicker(w.cfg.PollInterval)
	defer pollTicker.Stop()

	if err := w.SyncPeriods(ctx); err != nil {
		w.log.Warn("period sync failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-syncTicker.C:
			if err := w.SyncPeriods(ctx); err != nil {
				w.log.Warn("period sync failed", zap.Error(err))
			}
		case <-pollTicker.C:
			if err := w.PollPending(ctx); err != nil {
				w.log.Warn("submission poll failed", zap.Error(err))
			}
		}
	}
}

// SyncPeriods pulls the remote period list and upserts durable records.
func (w *Worker) SyncPeriods(ctx context.Context) error {
	configs, _, err := w.api.GetWritingConfigs(ctx)
	if err != nil {
		return err
	}

	now := w.clock.Now()
	periods := make([]period.ReportPeriod, 0, len(configs))
	for _, cfg := range configs {
		periods = append(periods, period.ReportPeriod{
			ExternalID:   cfg.ID,
			Code:         cfg.Code,
			Name:         cfg.Name,
			Type:         period.ParsePeriodType(cfg.Code),
			BeginDate:    parseRemoteDate(cfg.BeginDate),
			EndDate:      parseRemoteDate(cfg.EndDate),
			LastSyncedAt: now,
		})
	}
	if err := w.periods.Upsert(ctx, periods); err != nil {
		return err
	}
	w.log.Info("report periods synced", zap.Int("count", len(periods)))
	return nil
}

// PollPending walks submitted requests sequentially and polls each one
// independently: a failure on one request does not stop the rest.
func (w *Worker) PollPending(ctx context.Context) error {
	pending, err := w.reports.ListSubmitted(ctx, w.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, request := range pending {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := w.reports.PollStatus(ctx, request.ID); err != nil {
			w.log.Warn("poll failed",
				zap.Int64("report_request_id", int64(request.ID)),
				zap.Error(err),
			)
		}
	}
	return nil
}

func parseRemoteDate(value string) time.Time {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
