package taxonomy

import "strings"

// Category classifies a standard account by the first digit of its code,
// following the national chart of accounts layout.
type Category string

const (
	CategoryAsset            Category = "asset"
	CategoryLiability        Category = "liability"
	CategoryEquity           Category = "equity"
	CategoryRevenue          Category = "revenue"
	CategoryCostOfSales      Category = "cost_of_sales"
	CategoryOperatingExpense Category = "operating_expense"
	CategoryFinanceCost      Category = "finance_cost"
	CategoryOtherExpense     Category = "other_expense"
	CategoryTaxOrOffBalance  Category = "tax_or_off_balance"
)

// BalanceSide is the normal balance of an account.
type BalanceSide string

const (
	BalanceDebit  BalanceSide = "debit"
	BalanceCredit BalanceSide = "credit"
)

// Account is one entry of the fixed MOF standard chart of accounts.
// Reference data: loaded once at startup, never mutated.
type Account struct {
	Code       string   `gorm:"primaryKey;type:text"`
	NameEN     string   `gorm:"type:text;not null"`
	NameMN     string   `gorm:"type:text;not null"`
	ParentCode string   `gorm:"type:text;index"`
	IsGroup    bool     `gorm:"not null"`
	Category   Category `gorm:"type:text;not null;index"`
}

// TableName sets the database table name.
func (Account) TableName() string { return "taxonomy_accounts" }

// NormalBalance reports which side increases the account.
func (a Account) NormalBalance() BalanceSide {
	switch a.Category {
	case CategoryAsset, CategoryCostOfSales, CategoryOperatingExpense,
		CategoryFinanceCost, CategoryOtherExpense, CategoryTaxOrOffBalance:
		return BalanceDebit
	default:
		return BalanceCredit
	}
}

// CategoryForCode derives the category from a numeric account code.
// Codes outside the 1000-9999 layout report ok=false.
func CategoryForCode(code string) (Category, bool) {
	code = strings.TrimSpace(code)
	if len(code) != 4 {
		return "", false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	switch code[0] {
	case '1':
		return CategoryAsset, true
	case '2':
		return CategoryLiability, true
	case '3':
		return CategoryEquity, true
	case '4':
		return CategoryRevenue, true
	case '5':
		return CategoryCostOfSales, true
	case '6':
		return CategoryOperatingExpense, true
	case '7':
		return CategoryFinanceCost, true
	case '8':
		return CategoryOtherExpense, true
	case '9':
		return CategoryTaxOrOffBalance, true
	default:
		return "", false
	}
}
