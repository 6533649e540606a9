package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	ledgerdomain "github.com/mn-frappe/ebalance/internal/ledger/domain"
	mappingdomain "github.com/mn-frappe/ebalance/internal/mapping/domain"
	"github.com/mn-frappe/ebalance/internal/taxonomy"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// Minimum token-overlap ratio for the name-similarity fallback.
	overlapAcceptRatio = 0.5
	maxSuggestions     = 3
)

// Tokens carrying no matching signal in account names.
var currencyTokens = map[string]bool{
	"mnt": true, "usd": true, "eur": true, "cny": true, "jpy": true,
	"rub": true, "krw": true, "₮": true, "account": true, "данс": true,
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node

	ledgerRepo ledgerdomain.Repository

	leaves     []taxonomy.Account
	leafByCode map[string]taxonomy.Account
	allByCode  map[string]taxonomy.Account
	byCategory map[taxonomy.Category][]taxonomy.Account
}

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	LedgerRepo ledgerdomain.Repository
}

func NewService(p Params) mappingdomain.Service {
	leaves := taxonomy.Leaves()
	sort.Slice(leaves, func(i, j int) bool { return leaves[i].Code < leaves[j].Code })

	leafByCode := make(map[string]taxonomy.Account, len(leaves))
	byCategory := make(map[taxonomy.Category][]taxonomy.Account)
	for _, leaf := range leaves {
		leafByCode[leaf.Code] = leaf
		byCategory[leaf.Category] = append(byCategory[leaf.Category], leaf)
	}

	all := taxonomy.All()
	allByCode := make(map[string]taxonomy.Account, len(all))
	for _, account := range all {
		allByCode[account.Code] = account
	}

	return &Service{
		db:         p.DB,
		log:        p.Log.Named("mapping.service"),
		genID:      p.GenID,
		ledgerRepo: p.LedgerRepo,
		leaves:     leaves,
		leafByCode: leafByCode,
		allByCode:  allByCode,
		byCategory: byCategory,
	}
}

func (s *Service) ProposeMappings(ctx context.Context, company string, dryRun bool) (*mappingdomain.Result, error) {
	accounts, err := s.ledgerRepo.ListAccounts(ctx, company)
	if err != nil {
		return nil, err
	}

	existing, err := s.ResolveAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &mappingdomain.Result{
		Matched:   []mappingdomain.Match{},
		Unmatched: []mappingdomain.Unmatched{},
	}

	var proposals []mappingdomain.Match
	for _, account := range accounts {
		if prior, ok := existing[account.ID]; ok && prior.Confidence == mappingdomain.ConfidenceManual {
			result.Matched = append(result.Matched, mappingdomain.Match{
				LedgerAccountID: account.ID,
				LedgerNumber:    account.Number,
				LedgerName:      account.Name,
				TaxonomyCode:    prior.TaxonomyCode,
				Confidence:      mappingdomain.ConfidenceManual,
			})
			continue
		}

		code, confidence, ok := s.matchAccount(account)
		if !ok {
			result.Unmatched = append(result.Unmatched, mappingdomain.Unmatched{
				LedgerAccountID: account.ID,
				LedgerNumber:    account.Number,
				LedgerName:      account.Name,
				Suggestions:     s.suggest(account.Name, account.Number),
			})
			continue
		}

		match := mappingdomain.Match{
			LedgerAccountID: account.ID,
			LedgerNumber:    account.Number,
			LedgerName:      account.Name,
			TaxonomyCode:    code,
			Confidence:      confidence,
		}
		result.Matched = append(result.Matched, match)
		proposals = append(proposals, match)
	}

	if dryRun {
		return result, nil
	}
	if err := s.persist(ctx, proposals, existing); err != nil {
		return nil, err
	}
	s.log.Info("auto-mapping persisted",
		zap.String("company", company),
		zap.Int("matched", len(result.Matched)),
		zap.Int("unmatched", len(result.Unmatched)),
	)
	return result, nil
}

// matchAccount runs the matching strategies in priority order.
func (s *Service) matchAccount(account ledgerdomain.Account) (string, mappingdomain.Confidence, bool) {
	number := strings.TrimSpace(account.Number)

	// Exact code match.
	if _, ok := s.leafByCode[number]; ok {
		return number, mappingdomain.ConfidenceExact, true
	}

	// Longer account numbers may carry a standard 4-digit prefix (111201 -> 1112).
	if len(number) > 4 {
		if _, ok := s.leafByCode[number[:4]]; ok {
			return number[:4], mappingdomain.ConfidenceHeuristic, true
		}
	}

	// Category range match: a numeric code inside a category range always
	// lands on the best-named candidate within that category.
	if category, ok := taxonomy.CategoryForCode(padCode(number)); ok {
		if best, found := s.bestInCategory(category, account.Name, number); found {
			return best, mappingdomain.ConfidenceHeuristic, true
		}
	}

	// Name-similarity fallback across the whole chart.
	normName := normalize(account.Name)
	tokens := tokenize(normName)
	bestCode := ""
	bestRatio := 0.0
	for _, leaf := range s.leaves {
		ratio := nameOverlap(tokens, leaf)
		if ratio > bestRatio {
			bestRatio = ratio
			bestCode = leaf.Code
		}
	}
	if bestRatio >= overlapAcceptRatio {
		return bestCode, mappingdomain.ConfidenceHeuristic, true
	}
	return "", "", false
}

func (s *Service) bestInCategory(category taxonomy.Category, name, number string) (string, bool) {
	candidates := s.byCategory[category]
	if len(candidates) == 0 {
		return "", false
	}

	normName := normalize(name)
	tokens := tokenize(normName)
	ledgerNum, _ := strconv.Atoi(padCode(number))

	bestIdx := -1
	bestScore := -1.0
	bestDistance := 0
	for i, leaf := range candidates {
		score := keywordScore(normName, leaf.Code) + nameOverlap(tokens, leaf)
		code, _ := strconv.Atoi(leaf.Code)
		distance := code - ledgerNum
		if distance < 0 {
			distance = -distance
		}
		if score > bestScore || (score == bestScore && distance < bestDistance) {
			bestIdx = i
			bestScore = score
			bestDistance = distance
		}
	}
	if bestIdx < 0 {
		return "", false
	}
	return candidates[bestIdx].Code, true
}

func (s *Service) suggest(name, number string) []mappingdomain.Suggestion {
	normName := normalize(name)
	tokens := tokenize(normName)

	candidates := s.leaves
	if category, ok := taxonomy.CategoryForCode(padCode(number)); ok {
		candidates = s.byCategory[category]
	}

	var suggestions []mappingdomain.Suggestion
	for _, leaf := range candidates {
		score := keywordScore(normName, leaf.Code) + nameOverlap(tokens, leaf)
		if score <= 0 {
			continue
		}
		suggestions = append(suggestions, mappingdomain.Suggestion{
			TaxonomyCode: leaf.Code,
			NameEN:       leaf.NameEN,
			NameMN:       leaf.NameMN,
			Score:        score,
		})
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].TaxonomyCode < suggestions[j].TaxonomyCode
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func (s *Service) SuggestCode(ctx context.Context, name, number string) ([]mappingdomain.Suggestion, error) {
	if strings.TrimSpace(name) == "" && strings.TrimSpace(number) == "" {
		return nil, mappingdomain.ErrInvalidAccount
	}
	return s.suggest(name, number), nil
}

func (s *Service) SetManualMapping(ctx context.Context, ledgerAccountID snowflake.ID, taxonomyCode string) error {
	if ledgerAccountID == 0 {
		return mappingdomain.ErrInvalidAccount
	}
	code := strings.TrimSpace(taxonomyCode)
	leaf, ok := s.leafByCode[code]
	if !ok {
		if _, exists := s.allByCode[code]; exists {
			return mappingdomain.ErrGroupTaxonomyCode
		}
		return mappingdomain.ErrUnknownTaxonomyCode
	}

	now := time.Now().UTC()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current mappingdomain.AccountMapping
		err := tx.Where("ledger_account_id = ?", ledgerAccountID).First(&current).Error
		switch {
		case err == nil:
			return tx.Model(&current).Updates(map[string]any{
				"taxonomy_code": leaf.Code,
				"confidence":    mappingdomain.ConfidenceManual,
				"updated_at":    now,
			}).Error
		case err == gorm.ErrRecordNotFound:
			return tx.Create(&mappingdomain.AccountMapping{
				ID:              s.genID.Generate(),
				LedgerAccountID: ledgerAccountID,
				TaxonomyCode:    leaf.Code,
				Confidence:      mappingdomain.ConfidenceManual,
				CreatedAt:       now,
				UpdatedAt:       now,
			}).Error
		default:
			return err
		}
	})
}

func (s *Service) ResolveAll(ctx context.Context) (map[snowflake.ID]mappingdomain.AccountMapping, error) {
	var rows []mappingdomain.AccountMapping
	if err := s.db.WithContext(ctx).Order("ledger_account_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	resolved := make(map[snowflake.ID]mappingdomain.AccountMapping, len(rows))
	for _, row := range rows {
		resolved[row.LedgerAccountID] = row
	}
	return resolved, nil
}

func (s *Service) persist(ctx context.Context, proposals []mappingdomain.Match, existing map[snowflake.ID]mappingdomain.AccountMapping) error {
	now := time.Now().UTC()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, proposal := range proposals {
			prior, ok := existing[proposal.LedgerAccountID]
			if ok {
				if prior.Confidence == mappingdomain.ConfidenceManual {
					continue
				}
				if prior.TaxonomyCode == proposal.TaxonomyCode && prior.Confidence == proposal.Confidence {
					continue
				}
				if err := tx.Model(&mappingdomain.AccountMapping{}).
					Where("id = ?", prior.ID).
					Updates(map[string]any{
						"taxonomy_code": proposal.TaxonomyCode,
						"confidence":    proposal.Confidence,
						"updated_at":    now,
					}).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Create(&mappingdomain.AccountMapping{
				ID:              s.genID.Generate(),
				LedgerAccountID: proposal.LedgerAccountID,
				TaxonomyCode:    proposal.TaxonomyCode,
				Confidence:      proposal.Confidence,
				CreatedAt:       now,
				UpdatedAt:       now,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// padCode widens short numeric codes to four digits so range detection works
// for three-digit charts (e.g. 111 -> 1110).
func padCode(number string) string {
	number = strings.TrimSpace(number)
	if len(number) >= 4 {
		return number[:4]
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return number
		}
	}
	if number == "" {
		return number
	}
	return number + strings.Repeat("0", 4-len(number))
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case '-', '_', ',', '.', '(', ')', '/', ':':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func tokenize(normName string) []string {
	fields := strings.Fields(normName)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if currencyTokens[field] {
			continue
		}
		if _, err := strconv.Atoi(field); err == nil {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// keywordScore sums the word counts of keyword phrases contained in the
// normalized account name; longer phrases score higher.
func keywordScore(normName, code string) float64 {
	score := 0.0
	for _, keyword := range taxonomy.Keywords(code) {
		if strings.Contains(normName, keyword) {
			score += float64(len(strings.Fields(keyword)))
		}
	}
	return score
}

// nameOverlap is the share of the ledger name's tokens found in either the
// English or Mongolian taxonomy name.
func nameOverlap(tokens []string, leaf taxonomy.Account) float64 {
	if len(tokens) == 0 {
		return 0
	}
	en := tokenSet(normalize(leaf.NameEN))
	mn := tokenSet(normalize(leaf.NameMN))
	hits := 0
	for _, token := range tokens {
		if en[token] || mn[token] {
			hits++
		}
	}
	return float64(hits) / float64(len(tokens))
}

func tokenSet(normName string) map[string]bool {
	set := make(map[string]bool)
	for _, field := range strings.Fields(normName) {
		set[field] = true
	}
	return set
}
