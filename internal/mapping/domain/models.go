package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Confidence records how a mapping was established. Manual mappings are
// user-set and never overwritten by the auto-mapping engine.
type Confidence string

const (
	ConfidenceExact     Confidence = "exact"
	ConfidenceHeuristic Confidence = "heuristic"
	ConfidenceManual    Confidence = "manual"
)

// AccountMapping associates one ledger account with a taxonomy code.
// At most one active mapping exists per ledger account.
type AccountMapping struct {
	ID              snowflake.ID `gorm:"primaryKey"`
	LedgerAccountID snowflake.ID `gorm:"not null;uniqueIndex"`
	TaxonomyCode    string       `gorm:"type:text;not null;index"`
	Confidence      Confidence   `gorm:"type:text;not null"`
	CreatedAt       time.Time    `gorm:"not null"`
	UpdatedAt       time.Time    `gorm:"not null"`
}

// TableName sets the database table name.
func (AccountMapping) TableName() string { return "account_mappings" }

// Suggestion is a ranked taxonomy candidate for an unmatched account.
type Suggestion struct {
	TaxonomyCode string  `json:"taxonomy_code"`
	NameEN       string  `json:"name_en"`
	NameMN       string  `json:"name_mn"`
	Score        float64 `json:"score"`
}

// Match is one successful proposal from the auto-mapping engine.
type Match struct {
	LedgerAccountID snowflake.ID `json:"ledger_account_id"`
	LedgerNumber    string       `json:"ledger_number"`
	LedgerName      string       `json:"ledger_name"`
	TaxonomyCode    string       `json:"taxonomy_code"`
	Confidence      Confidence   `json:"confidence"`
}

// Unmatched is a ledger account the engine could not map automatically.
type Unmatched struct {
	LedgerAccountID snowflake.ID `json:"ledger_account_id"`
	LedgerNumber    string       `json:"ledger_number"`
	LedgerName      string       `json:"ledger_name"`
	Suggestions     []Suggestion `json:"suggestions"`
}

// Result is the full outcome of one auto-mapping run, in stable order
// (ascending ledger account number).
type Result struct {
	Matched   []Match     `json:"matched"`
	Unmatched []Unmatched `json:"unmatched"`
}
