package transformer

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/mn-frappe/ebalance/internal/config"
	ledgerdomain "github.com/mn-frappe/ebalance/internal/ledger/domain"
	mappingdomain "github.com/mn-frappe/ebalance/internal/mapping/domain"
	reportdomain "github.com/mn-frappe/ebalance/internal/report/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type stubLedger struct {
	accounts []ledgerdomain.Account
	balances []ledgerdomain.Balance
}

func (s *stubLedger) ListAccounts(ctx context.Context, company string) ([]ledgerdomain.Account, error) {
	return s.accounts, nil
}

func (s *stubLedger) ListBalances(ctx context.Context, company string, periodStart, periodEnd time.Time) ([]ledgerdomain.Balance, error) {
	return s.balances, nil
}

type stubMappings struct {
	resolved map[snowflake.ID]mappingdomain.AccountMapping
}

func (s *stubMappings) ProposeMappings(ctx context.Context, company string, dryRun bool) (*mappingdomain.Result, error) {
	return nil, nil
}

func (s *stubMappings) SetManualMapping(ctx context.Context, ledgerAccountID snowflake.ID, taxonomyCode string) error {
	return nil
}

func (s *stubMappings) SuggestCode(ctx context.Context, name, number string) ([]mappingdomain.Suggestion, error) {
	return nil, nil
}

func (s *stubMappings) ResolveAll(ctx context.Context) (map[snowflake.ID]mappingdomain.AccountMapping, error) {
	return s.resolved, nil
}

func newTestTransformer(ledger *stubLedger, mappings *stubMappings) *Transformer {
	return New(Params{
		Log:        zap.NewNop(),
		LedgerRepo: ledger,
		Mappings:   mappings,
		Config:     config.Config{BalanceEpsilon: "0.01"},
	})
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func closingDebit(accountID snowflake.ID, amount string) ledgerdomain.Balance {
	return ledgerdomain.Balance{LedgerAccountID: accountID, ClosingDebit: dec(amount)}
}

func closingCredit(accountID snowflake.ID, amount string) ledgerdomain.Balance {
	return ledgerdomain.Balance{LedgerAccountID: accountID, ClosingCredit: dec(amount)}
}

func mapped(resolved map[snowflake.ID]mappingdomain.AccountMapping, accountID snowflake.ID, code string) {
	resolved[accountID] = mappingdomain.AccountMapping{
		LedgerAccountID: accountID,
		TaxonomyCode:    code,
		Confidence:      mappingdomain.ConfidenceExact,
	}
}

func rowAmount(t *testing.T, rows []reportdomain.Row, taxonomyCode string) decimal.Decimal {
	t.Helper()
	for _, row := range rows {
		if row.TaxonomyCode == taxonomyCode {
			return row.Amount
		}
	}
	t.Fatalf("no row for taxonomy code %s", taxonomyCode)
	return decimal.Zero
}

func generate(t *testing.T, tr *Transformer, reportType reportdomain.ReportType) (*reportdomain.Payload, []reportdomain.ValidationError) {
	t.Helper()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	payload, validationErrors, err := tr.Generate(context.Background(), "demo", start, end, reportType)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return payload, validationErrors
}

func TestGenerateCashIntoCurrentAssets(t *testing.T) {
	resolved := map[snowflake.ID]mappingdomain.AccountMapping{}
	mapped(resolved, 1, "1111")
	mapped(resolved, 2, "3110")
	tr := newTestTransformer(
		&stubLedger{
			accounts: []ledgerdomain.Account{
				{ID: 1, Number: "1111", Name: "Cash MNT"},
				{ID: 2, Number: "3110", Name: "Share capital"},
			},
			balances: []ledgerdomain.Balance{
				closingDebit(1, "1000000"),
				closingCredit(2, "1000000"),
			},
		},
		&stubMappings{resolved: resolved},
	)

	payload, validationErrors := generate(t, tr, reportdomain.TypeBalanceSheet)
	if len(validationErrors) != 0 {
		t.Fatalf("validation errors = %+v, want none", validationErrors)
	}

	sheet := payload.BalanceSheet
	if sheet == nil {
		t.Fatal("balance sheet missing from payload")
	}
	// 1100 is the Current assets subtotal.
	if got := rowAmount(t, sheet.Rows, "1100"); !got.Equal(dec("1000000")) {
		t.Errorf("current assets subtotal = %s, want 1000000", got)
	}
	if !sheet.TotalAssets.Equal(dec("1000000")) {
		t.Errorf("total assets = %s, want 1000000", sheet.TotalAssets)
	}
	if !sheet.TotalEquity.Equal(dec("1000000")) {
		t.Errorf("total equity = %s, want 1000000", sheet.TotalEquity)
	}
}

func TestGenerateReportsBalanceIdentityResidual(t *testing.T) {
	resolved := map[snowflake.ID]mappingdomain.AccountMapping{}
	mapped(resolved, 1, "1111")
	mapped(resolved, 2, "3110")
	tr := newTestTransformer(
		&stubLedger{
			accounts: []ledgerdomain.Account{
				{ID: 1, Number: "1111", Name: "Cash"},
				{ID: 2, Number: "3110", Name: "Share capital"},
			},
			balances: []ledgerdomain.Balance{
				closingDebit(1, "1000000"),
				closingCredit(2, "999900.50"),
			},
		},
		&stubMappings{resolved: resolved},
	)

	payload, validationErrors := generate(t, tr, reportdomain.TypeBalanceSheet)
	if payload.BalanceSheet == nil {
		t.Fatal("payload still produced on identity failure")
	}
	if len(validationErrors) != 1 {
		t.Fatalf("validation errors = %+v, want exactly one", validationErrors)
	}
	got := validationErrors[0]
	if got.Kind != reportdomain.ValidationBalanceIdentity {
		t.Errorf("kind = %q, want %q", got.Kind, reportdomain.ValidationBalanceIdentity)
	}
	if !got.Amount.Equal(dec("99.50")) {
		t.Errorf("residual = %s, want 99.50", got.Amount)
	}
}

func TestGenerateExcludesUnmappedAccounts(t *testing.T) {
	resolved := map[snowflake.ID]mappingdomain.AccountMapping{}
	mapped(resolved, 1, "1111")
	mapped(resolved, 3, "3110")
	tr := newTestTransformer(
		&stubLedger{
			accounts: []ledgerdomain.Account{
				{ID: 1, Number: "1111", Name: "Cash"},
				{ID: 2, Number: "1777", Name: "Mystery account"},
				{ID: 3, Number: "3110", Name: "Share capital"},
			},
			balances: []ledgerdomain.Balance{
				closingDebit(1, "500"),
				closingDebit(2, "42"),
				closingCredit(3, "500"),
			},
		},
		&stubMappings{resolved: resolved},
	)

	payload, validationErrors := generate(t, tr, reportdomain.TypeBalanceSheet)
	if len(validationErrors) != 1 {
		t.Fatalf("validation errors = %+v, want one unmapped-account error", validationErrors)
	}
	if validationErrors[0].Kind != reportdomain.ValidationUnmappedAccount {
		t.Errorf("kind = %q, want %q", validationErrors[0].Kind, reportdomain.ValidationUnmappedAccount)
	}
	// The unmapped amount must not leak into the totals.
	if !payload.BalanceSheet.TotalAssets.Equal(dec("500")) {
		t.Errorf("total assets = %s, want 500", payload.BalanceSheet.TotalAssets)
	}
}

func TestGenerateCombinedFlowsNetProfitIntoEquity(t *testing.T) {
	resolved := map[snowflake.ID]mappingdomain.AccountMapping{}
	mapped(resolved, 1, "1111") // cash
	mapped(resolved, 2, "4120") // service revenue
	mapped(resolved, 3, "6230") // office rent expense
	tr := newTestTransformer(
		&stubLedger{
			accounts: []ledgerdomain.Account{
				{ID: 1, Number: "1111", Name: "Cash"},
				{ID: 2, Number: "4120", Name: "Service revenue"},
				{ID: 3, Number: "6230", Name: "Rent"},
			},
			balances: []ledgerdomain.Balance{
				closingDebit(1, "700"),
				closingCredit(2, "1000"),
				closingDebit(3, "300"),
			},
		},
		&stubMappings{resolved: resolved},
	)

	payload, validationErrors := generate(t, tr, reportdomain.TypeCombined)
	if len(validationErrors) != 0 {
		t.Fatalf("validation errors = %+v, want none", validationErrors)
	}

	statement := payload.IncomeStatement
	if statement == nil {
		t.Fatal("income statement missing from combined payload")
	}
	if !statement.NetProfit.Equal(dec("700")) {
		t.Errorf("net profit = %s, want 700", statement.NetProfit)
	}

	sheet := payload.BalanceSheet
	if sheet == nil {
		t.Fatal("balance sheet missing from combined payload")
	}
	// 3310 is current year profit; the balance identity must hold.
	if got := rowAmount(t, sheet.Rows, "3310"); !got.Equal(dec("700")) {
		t.Errorf("current year profit row = %s, want 700", got)
	}
	if !sheet.TotalEquity.Equal(dec("700")) {
		t.Errorf("total equity = %s, want 700", sheet.TotalEquity)
	}
}

func TestGenerateRoundsPerTaxonomyCode(t *testing.T) {
	resolved := map[snowflake.ID]mappingdomain.AccountMapping{}
	mapped(resolved, 1, "1111")
	mapped(resolved, 2, "1111")
	mapped(resolved, 3, "3110")
	tr := newTestTransformer(
		&stubLedger{
			accounts: []ledgerdomain.Account{
				{ID: 1, Number: "11111", Name: "Cash till A"},
				{ID: 2, Number: "11112", Name: "Cash till B"},
				{ID: 3, Number: "3110", Name: "Share capital"},
			},
			balances: []ledgerdomain.Balance{
				// Each rounds to 0.12 alone; the sum 0.245 banker-rounds to 0.24.
				closingDebit(1, "0.1225"),
				closingDebit(2, "0.1225"),
				closingCredit(3, "0.24"),
			},
		},
		&stubMappings{resolved: resolved},
	)

	payload, validationErrors := generate(t, tr, reportdomain.TypeBalanceSheet)
	if len(validationErrors) != 0 {
		t.Fatalf("validation errors = %+v, want none", validationErrors)
	}
	if got := rowAmount(t, payload.BalanceSheet.Rows, "1111"); !got.Equal(dec("0.24")) {
		t.Errorf("cash row = %s, want 0.24 (rounded once at aggregation)", got)
	}
}

func TestGenerateRejectsUnknownReportType(t *testing.T) {
	tr := newTestTransformer(&stubLedger{}, &stubMappings{})
	_, _, err := tr.Generate(context.Background(), "demo", time.Now(), time.Now(), "quarterly")
	if err != reportdomain.ErrInvalidReportType {
		t.Errorf("err = %v, want ErrInvalidReportType", err)
	}
}
