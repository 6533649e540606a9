package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/mn-frappe/ebalance/internal/submissionlog/domain"
	"gorm.io/gorm"
)

type gormRepository struct {
	db    *gorm.DB
	genID *snowflake.Node
}

// Provide builds the gorm-backed audit sink.
func Provide(db *gorm.DB, genID *snowflake.Node) domain.Repository {
	return &gormRepository{db: db, genID: genID}
}

func (r *gormRepository) Append(ctx context.Context, entry domain.Entry) error {
	if entry.ID == 0 {
		entry.ID = r.genID.Generate()
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *gormRepository) ListByReport(ctx context.Context, reportRequestID snowflake.ID) ([]domain.Entry, error) {
	var entries []domain.Entry
	err := r.db.WithContext(ctx).
		Where("report_request_id = ?", reportRequestID).
		Order("timestamp ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
