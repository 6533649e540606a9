package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// Service is the account auto-mapping engine.
type Service interface {
	// ProposeMappings matches every leaf ledger account of the company
	// against the standard taxonomy. With dryRun the result is computed but
	// nothing is persisted; otherwise matched proposals are stored,
	// overwriting prior exact/heuristic mappings but never manual ones.
	ProposeMappings(ctx context.Context, company string, dryRun bool) (*Result, error)

	// SetManualMapping stores a user-chosen mapping, replacing whatever the
	// engine proposed earlier for that account.
	SetManualMapping(ctx context.Context, ledgerAccountID snowflake.ID, taxonomyCode string) error

	// SuggestCode ranks taxonomy candidates for a single account name/number.
	SuggestCode(ctx context.Context, name, number string) ([]Suggestion, error)

	// ResolveAll returns the active mapping per ledger account id.
	ResolveAll(ctx context.Context) (map[snowflake.ID]AccountMapping, error)
}

var (
	ErrUnknownTaxonomyCode = errors.New("unknown_taxonomy_code")
	ErrGroupTaxonomyCode   = errors.New("group_taxonomy_code")
	ErrInvalidAccount      = errors.New("invalid_account")
)
