package repository

import (
	"context"
	"time"

	"github.com/mn-frappe/ebalance/internal/ledger/domain"
	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

// Provide builds the gorm-backed ledger reader.
func Provide(db *gorm.DB) domain.Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListAccounts(ctx context.Context, company string) ([]domain.Account, error) {
	var accounts []domain.Account
	err := r.db.WithContext(ctx).
		Where("company = ? AND is_group = ? AND disabled = ?", company, false, false).
		Order("number ASC, id ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *gormRepository) ListBalances(ctx context.Context, company string, periodStart, periodEnd time.Time) ([]domain.Balance, error) {
	var balances []domain.Balance
	err := r.db.WithContext(ctx).
		Joins("JOIN ledger_accounts ON ledger_accounts.id = ledger_balances.ledger_account_id").
		Where("ledger_balances.company = ? AND ledger_balances.period_start = ? AND ledger_balances.period_end = ?",
			company, periodStart, periodEnd).
		Order("ledger_accounts.number ASC, ledger_balances.id ASC").
		Find(&balances).Error
	if err != nil {
		return nil, err
	}
	return balances, nil
}
