package domain

import (
	"context"
	"errors"
	"time"
)

var ErrLedgerUnavailable = errors.New("ledger_unavailable")

// Repository reads chart-of-accounts entries and posted balances from the
// accounting ledger. Implementations must return rows in a stable order
// (ascending account number, then id).
type Repository interface {
	ListAccounts(ctx context.Context, company string) ([]Account, error)
	ListBalances(ctx context.Context, company string, periodStart, periodEnd time.Time) ([]Balance, error)
}
