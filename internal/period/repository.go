package period

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPeriodNotFound = errors.New("report_period_not_found")

type Repository interface {
	// Upsert inserts or refreshes periods by external id. Idempotent.
	Upsert(ctx context.Context, periods []ReportPeriod) error
	List(ctx context.Context) ([]ReportPeriod, error)
	// FindCovering returns the period whose date range covers the given
	// reporting window.
	FindCovering(ctx context.Context, begin, end time.Time) (*ReportPeriod, error)
}

type gormRepository struct {
	db    *gorm.DB
	genID *snowflake.Node
}

// Provide builds the gorm-backed period store.
func Provide(db *gorm.DB, genID *snowflake.Node) Repository {
	return &gormRepository{db: db, genID: genID}
}

func (r *gormRepository) Upsert(ctx context.Context, periods []ReportPeriod) error {
	if len(periods) == 0 {
		return nil
	}
	for i := range periods {
		if periods[i].ID == 0 {
			periods[i].ID = r.genID.Generate()
		}
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"code", "name", "type", "begin_date", "end_date", "last_synced_at",
		}),
	}).CreateInBatches(periods, 100).Error
}

func (r *gormRepository) List(ctx context.Context) ([]ReportPeriod, error) {
	var periods []ReportPeriod
	err := r.db.WithContext(ctx).Order("begin_date DESC, code ASC").Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *gormRepository) FindCovering(ctx context.Context, begin, end time.Time) (*ReportPeriod, error) {
	var found ReportPeriod
	err := r.db.WithContext(ctx).
		Where("begin_date <= ? AND end_date >= ?", begin, end).
		Order("begin_date DESC").
		First(&found).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &found, nil
}
