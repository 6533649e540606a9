package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Account is a chart-of-accounts entry in the source accounting system.
// The ledger is an external collaborator: this service only reads it.
type Account struct {
	ID       snowflake.ID `gorm:"primaryKey"`
	Company  string       `gorm:"type:text;not null;index;uniqueIndex:ux_ledger_accounts_company_number,priority:1"`
	Number   string       `gorm:"type:text;not null;uniqueIndex:ux_ledger_accounts_company_number,priority:2"`
	Name     string       `gorm:"type:text;not null"`
	IsGroup  bool         `gorm:"not null"`
	Disabled bool         `gorm:"not null;default:false"`
}

// TableName sets the database table name.
func (Account) TableName() string { return "ledger_accounts" }

// Balance holds the posted totals for one ledger account over a period.
// All amounts are non-negative decimals as posted by the ledger.
type Balance struct {
	ID              snowflake.ID    `gorm:"primaryKey"`
	LedgerAccountID snowflake.ID    `gorm:"not null;index"`
	Company         string          `gorm:"type:text;not null;index"`
	PeriodStart     time.Time       `gorm:"not null"`
	PeriodEnd       time.Time       `gorm:"not null"`
	OpeningDebit    decimal.Decimal `gorm:"type:numeric;not null"`
	OpeningCredit   decimal.Decimal `gorm:"type:numeric;not null"`
	PeriodDebit     decimal.Decimal `gorm:"type:numeric;not null"`
	PeriodCredit    decimal.Decimal `gorm:"type:numeric;not null"`
	ClosingDebit    decimal.Decimal `gorm:"type:numeric;not null"`
	ClosingCredit   decimal.Decimal `gorm:"type:numeric;not null"`
}

// TableName sets the database table name.
func (Balance) TableName() string { return "ledger_balances" }

// ClosingNet returns the closing balance seen from the given side: debit
// minus credit for debit-normal accounts, credit minus debit otherwise.
func (b Balance) ClosingNet(debitNormal bool) decimal.Decimal {
	if debitNormal {
		return b.ClosingDebit.Sub(b.ClosingCredit)
	}
	return b.ClosingCredit.Sub(b.ClosingDebit)
}
