package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Validation error kinds attached to a report request. Non-fatal: the
// payload is still generated so the user can inspect the discrepancy.
const (
	ValidationUnmappedAccount = "unmapped_account"
	ValidationBalanceIdentity = "balance_identity"
)

type ValidationError struct {
	Kind    string          `json:"kind"`
	Message string          `json:"message"`
	Amount  decimal.Decimal `json:"amount,omitempty"`
}

// Row is one regulator statement line. Group rows roll up their descendant
// leaf taxonomy codes; leaf rows carry the aggregated closing amount for a
// single taxonomy code.
type Row struct {
	RowCode      string          `json:"row_code"`
	TaxonomyCode string          `json:"taxonomy_code"`
	LabelEN      string          `json:"label_en"`
	LabelMN      string          `json:"label_mn"`
	Level        int             `json:"level"`
	Subtotal     bool            `json:"subtotal"`
	Amount       decimal.Decimal `json:"amount"`
}

type BalanceSheet struct {
	Rows             []Row           `json:"rows"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
}

type IncomeStatement struct {
	Rows          []Row           `json:"rows"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

// Payload is the generated regulator report body persisted on the request
// and bound to remote form cells at save time.
type Payload struct {
	ReportType      ReportType       `json:"report_type"`
	Company         string           `json:"company"`
	PeriodStart     string           `json:"period_start"`
	PeriodEnd       string           `json:"period_end"`
	Currency        string           `json:"currency"`
	BalanceSheet    *BalanceSheet    `json:"balance_sheet,omitempty"`
	IncomeStatement *IncomeStatement `json:"income_statement,omitempty"`
	GeneratedAt     time.Time        `json:"generated_at"`
}
