package transformer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/mn-frappe/ebalance/internal/config"
	ledgerdomain "github.com/mn-frappe/ebalance/internal/ledger/domain"
	mappingdomain "github.com/mn-frappe/ebalance/internal/mapping/domain"
	reportdomain "github.com/mn-frappe/ebalance/internal/report/domain"
	"github.com/mn-frappe/ebalance/internal/taxonomy"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Regulator statement row prefixes: СБТ is the balance sheet form,
// ОҮТ the income statement form.
const (
	rowPrefixBalanceSheet    = "СБТ"
	rowPrefixIncomeStatement = "ОҮТ"

	reportCurrency = "MNT"

	// Taxonomy leaf receiving the income statement's net profit when a
	// combined report is generated.
	currentYearProfitCode = "3310"
)

// Transformer turns ledger balances into the regulator statement payload.
// It is stateless across calls; the taxonomy tree is built once.
type Transformer struct {
	log        *zap.Logger
	ledgerRepo ledgerdomain.Repository
	mappings   mappingdomain.Service
	epsilon    decimal.Decimal

	leafByCode map[string]taxonomy.Account
	childrenOf map[string][]taxonomy.Account
	roots      []taxonomy.Account
}

type Params struct {
	fx.In

	Log        *zap.Logger
	LedgerRepo ledgerdomain.Repository
	Mappings   mappingdomain.Service
	Config     config.Config
}

func New(p Params) *Transformer {
	epsilon, err := decimal.NewFromString(p.Config.BalanceEpsilon)
	if err != nil || epsilon.IsNegative() {
		epsilon = decimal.RequireFromString("0.01")
	}

	t := &Transformer{
		log:        p.Log.Named("report.transformer"),
		ledgerRepo: p.LedgerRepo,
		mappings:   p.Mappings,
		epsilon:    epsilon,
		leafByCode: make(map[string]taxonomy.Account),
		childrenOf: make(map[string][]taxonomy.Account),
	}
	for _, account := range taxonomy.All() {
		if !account.IsGroup {
			t.leafByCode[account.Code] = account
		}
		if account.ParentCode == "" {
			t.roots = append(t.roots, account)
			continue
		}
		t.childrenOf[account.ParentCode] = append(t.childrenOf[account.ParentCode], account)
	}
	sort.Slice(t.roots, func(i, j int) bool { return t.roots[i].Code < t.roots[j].Code })
	for code := range t.childrenOf {
		children := t.childrenOf[code]
		sort.Slice(children, func(i, j int) bool { return children[i].Code < children[j].Code })
	}
	return t
}

// Generate builds the payload for the request's type. Validation errors
// (unmapped accounts, balance-identity residual) are returned alongside the
// payload, never instead of it; only ledger failures abort generation.
func (t *Transformer) Generate(ctx context.Context, company string, periodStart, periodEnd time.Time, reportType reportdomain.ReportType) (*reportdomain.Payload, []reportdomain.ValidationError, error) {
	if !reportType.Valid() {
		return nil, nil, reportdomain.ErrInvalidReportType
	}

	totals, validationErrors, err := t.aggregate(ctx, company, periodStart, periodEnd)
	if err != nil {
		return nil, nil, err
	}

	payload := &reportdomain.Payload{
		ReportType:  reportType,
		Company:     company,
		PeriodStart: periodStart.Format("2006-01-02"),
		PeriodEnd:   periodEnd.Format("2006-01-02"),
		Currency:    reportCurrency,
		GeneratedAt: time.Now().UTC(),
	}

	// Combined is income-statement-first: its net profit flows into
	// equity as current-year retained earnings.
	switch reportType {
	case reportdomain.TypeIncomeStatement:
		payload.IncomeStatement = t.incomeStatement(totals)
	case reportdomain.TypeBalanceSheet:
		sheet, identityErr := t.balanceSheet(totals)
		payload.BalanceSheet = sheet
		if identityErr != nil {
			validationErrors = append(validationErrors, *identityErr)
		}
	case reportdomain.TypeCombined:
		statement := t.incomeStatement(totals)
		payload.IncomeStatement = statement
		totals[currentYearProfitCode] = totals[currentYearProfitCode].Add(statement.NetProfit)
		sheet, identityErr := t.balanceSheet(totals)
		payload.BalanceSheet = sheet
		if identityErr != nil {
			validationErrors = append(validationErrors, *identityErr)
		}
	}

	t.log.Info("report generated",
		zap.String("company", company),
		zap.String("report_type", string(reportType)),
		zap.Int("validation_errors", len(validationErrors)),
	)
	return payload, validationErrors, nil
}

// aggregate sums closing balances per taxonomy code. Rounding happens here,
// once per taxonomy code, not per ledger account.
func (t *Transformer) aggregate(ctx context.Context, company string, periodStart, periodEnd time.Time) (map[string]decimal.Decimal, []reportdomain.ValidationError, error) {
	accounts, err := t.ledgerRepo.ListAccounts(ctx, company)
	if err != nil {
		return nil, nil, err
	}
	balances, err := t.ledgerRepo.ListBalances(ctx, company, periodStart, periodEnd)
	if err != nil {
		return nil, nil, err
	}
	resolved, err := t.mappings.ResolveAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	accountByID := make(map[snowflake.ID]ledgerdomain.Account, len(accounts))
	for _, account := range accounts {
		accountByID[account.ID] = account
	}

	raw := make(map[string]decimal.Decimal)
	var validationErrors []reportdomain.ValidationError
	for _, balance := range balances {
		mapping, ok := resolved[balance.LedgerAccountID]
		if !ok {
			account := accountByID[balance.LedgerAccountID]
			validationErrors = append(validationErrors, reportdomain.ValidationError{
				Kind:    reportdomain.ValidationUnmappedAccount,
				Message: fmt.Sprintf("ledger account %s %q has no taxonomy mapping and was excluded", account.Number, account.Name),
			})
			continue
		}
		leaf, ok := t.leafByCode[mapping.TaxonomyCode]
		if !ok {
			// Mapping points at a code the chart no longer carries.
			validationErrors = append(validationErrors, reportdomain.ValidationError{
				Kind:    reportdomain.ValidationUnmappedAccount,
				Message: fmt.Sprintf("mapping for ledger account %d targets unknown taxonomy code %s", balance.LedgerAccountID, mapping.TaxonomyCode),
			})
			continue
		}
		debitNormal := leaf.NormalBalance() == taxonomy.BalanceDebit
		raw[leaf.Code] = raw[leaf.Code].Add(balance.ClosingNet(debitNormal))
	}

	totals := make(map[string]decimal.Decimal, len(raw))
	for code, amount := range raw {
		totals[code] = amount.RoundBank(2)
	}
	return totals, validationErrors, nil
}

func (t *Transformer) balanceSheet(totals map[string]decimal.Decimal) (*reportdomain.BalanceSheet, *reportdomain.ValidationError) {
	sheet := &reportdomain.BalanceSheet{}
	categoryTotals := map[string]decimal.Decimal{}
	for _, root := range t.roots {
		switch root.Code[0] {
		case '1', '2', '3':
		default:
			continue
		}
		total := t.emit(&sheet.Rows, rowPrefixBalanceSheet, root, 0, totals)
		categoryTotals[root.Code] = total
	}

	sheet.TotalAssets = categoryTotals["1000"]
	sheet.TotalLiabilities = categoryTotals["2000"]
	sheet.TotalEquity = categoryTotals["3000"]

	residual := sheet.TotalAssets.Sub(sheet.TotalLiabilities.Add(sheet.TotalEquity))
	if residual.Abs().GreaterThan(t.epsilon) {
		return sheet, &reportdomain.ValidationError{
			Kind:    reportdomain.ValidationBalanceIdentity,
			Message: fmt.Sprintf("assets minus liabilities and equity leaves a residual of %s", residual.StringFixedBank(2)),
			Amount:  residual,
		}
	}
	return sheet, nil
}

func (t *Transformer) incomeStatement(totals map[string]decimal.Decimal) *reportdomain.IncomeStatement {
	statement := &reportdomain.IncomeStatement{}
	categoryTotals := map[string]decimal.Decimal{}
	for _, root := range t.roots {
		switch root.Code[0] {
		case '4', '5', '6', '7', '8', '9':
		default:
			continue
		}
		// Off-balance accounts stay off the income statement.
		if root.Code == "9900" {
			continue
		}
		total := t.emit(&statement.Rows, rowPrefixIncomeStatement, root, 0, totals)
		categoryTotals[root.Code] = total
	}

	statement.TotalRevenue = categoryTotals["4000"]
	statement.TotalExpenses = categoryTotals["5000"].
		Add(categoryTotals["6000"]).
		Add(categoryTotals["7000"]).
		Add(categoryTotals["8000"]).
		Add(categoryTotals["9000"])
	statement.NetProfit = statement.TotalRevenue.Sub(statement.TotalExpenses)
	return statement
}

// emit appends the row for the given taxonomy node and its subtree in code
// order, returning the node's rolled-up amount.
func (t *Transformer) emit(rows *[]reportdomain.Row, prefix string, node taxonomy.Account, level int, totals map[string]decimal.Decimal) decimal.Decimal {
	index := len(*rows)
	*rows = append(*rows, reportdomain.Row{
		RowCode:      fmt.Sprintf("%s-%s", prefix, node.Code),
		TaxonomyCode: node.Code,
		LabelEN:      node.NameEN,
		LabelMN:      node.NameMN,
		Level:        level,
		Subtotal:     node.IsGroup,
	})

	if !node.IsGroup {
		amount := totals[node.Code]
		(*rows)[index].Amount = amount
		return amount
	}

	total := decimal.Zero
	for _, child := range t.childrenOf[node.Code] {
		total = total.Add(t.emit(rows, prefix, child, level+1, totals))
	}
	(*rows)[index].Amount = total
	return total
}
