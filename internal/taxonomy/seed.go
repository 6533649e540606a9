package taxonomy

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// All returns the standard chart with categories resolved. The slice is
// rebuilt on each call so callers cannot mutate the reference data.
func All() []Account {
	accounts := make([]Account, 0, len(standardAccounts))
	for _, account := range standardAccounts {
		category, ok := CategoryForCode(account.Code)
		if !ok {
			continue
		}
		account.Category = category
		accounts = append(accounts, account)
	}
	return accounts
}

// Leaves returns only the accounts that may carry ledger mappings.
func Leaves() []Account {
	var leaves []Account
	for _, account := range All() {
		if !account.IsGroup {
			leaves = append(leaves, account)
		}
	}
	return leaves
}

// Keywords returns the bilingual keyword list for a taxonomy code.
func Keywords(code string) []string {
	return accountKeywords[code]
}

// Seed loads the standard chart into the database. Existing rows are left
// untouched, so reseeding on startup is safe.
func Seed(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(&Account{}); err != nil {
			return err
		}
		accounts := All()
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(accounts, 100).Error
	})
}
