package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/financialking/budget-service/internal/config"
	"github.com/financialking/budget-service/internal/models"
	"github.com/financialking/budget-service/internal/repository"
)

// PriceSource supplies current market prices by ticker symbol
type PriceSource interface {
	LookupPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	prices PriceSource
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo *repository.Repository, prices PriceSource, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, prices: prices, log: log, config: cfg}
}

// UploadTransactions validates and appends raw records to a user's
// ledger. The batch is atomic: one malformed record rejects the whole
// upload and leaves the store untouched.
func (s *Service) UploadTransactions(userID string, bank []models.BankTransaction, card []models.CardTransaction) error {
	if userID == "" {
		return fmt.Errorf("user ID is required")
	}

	for _, tx := range card {
		if _, err := NormalizeCard(tx); err != nil {
			return err
		}
	}

	if len(bank) > 0 {
		s.repo.AppendBank(userID, bank)
	}
	if len(card) > 0 {
		s.repo.AppendCard(userID, card)
	}

	s.log.Infof("Uploaded %d bank and %d card records for user %s", len(bank), len(card), userID)
	return nil
}

// BudgetReport computes the current budget report for a user from a
// consistent ledger snapshot
func (s *Service) BudgetReport(userID string) (models.BudgetReport, error) {
	canonical, err := NormalizeLedger(s.repo.Snapshot(userID))
	if err != nil {
		return models.BudgetReport{}, fmt.Errorf("failed to normalize ledger for user %s: %w", userID, err)
	}
	return Aggregate(canonical), nil
}

// Insight returns the top spending category for a user
func (s *Service) Insight(userID string) (models.SpendingInsight, error) {
	report, err := s.BudgetReport(userID)
	if err != nil {
		return models.SpendingInsight{}, err
	}
	return ExtractInsight(report.Breakdown)
}

// Screen returns up to count watchlist quotes priced at or under the
// ceiling, most expensive first. Tickers the feed cannot price are
// logged and skipped.
func (s *Service) Screen(ctx context.Context, count, ceiling int) []models.Quote {
	if count <= 0 {
		count = DefaultResultCount
	}
	limit := decimal.NewFromInt(int64(ceiling))

	matches := make([]models.Quote, 0, len(s.config.Watchlist))
	for _, symbol := range s.config.Watchlist {
		price, err := s.prices.LookupPrice(ctx, symbol)
		if err != nil {
			s.log.Warnf("Price unavailable for %s: %v", symbol, err)
			continue
		}
		if price.LessThanOrEqual(limit) {
			matches = append(matches, models.Quote{Symbol: symbol, Price: price})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Price.GreaterThan(matches[j].Price)
	})
	if len(matches) > count {
		matches = matches[:count]
	}
	return matches
}

// Answer produces a deterministic reply to a free-text request. A
// screening intent is answered from the quote feed; everything else
// gets a summary of the user's financial data. No generative model is
// consulted on either path.
func (s *Service) Answer(ctx context.Context, userID, message string) (string, error) {
	intent := ParseIntent(message)
	if intent.IsScreeningIntent {
		return s.screeningAnswer(ctx, intent), nil
	}

	report, err := s.BudgetReport(userID)
	if err != nil {
		return "", err
	}
	if report.Message != "" {
		return report.Message, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your financial data: your total income is $%s and your total expenses are $%s, leaving net savings of $%s.",
		report.Summary.TotalIncome.StringFixed(2),
		report.Summary.TotalExpenses.StringFixed(2),
		report.Summary.NetSavings.StringFixed(2))
	if insight, err := ExtractInsight(report.Breakdown); err == nil {
		b.WriteString(" ")
		b.WriteString(insight.Text)
	}
	return b.String(), nil
}

func (s *Service) screeningAnswer(ctx context.Context, intent models.ScreeningIntent) string {
	quotes := s.Screen(ctx, intent.ResultCount, intent.PriceCeiling)
	if len(quotes) == 0 {
		return fmt.Sprintf("No stocks under $%d were found in the watchlist.", intent.PriceCeiling)
	}

	parts := make([]string, len(quotes))
	for i, q := range quotes {
		parts[i] = fmt.Sprintf("%s ($%s)", q.Symbol, q.Price.StringFixed(2))
	}
	return fmt.Sprintf("Top %d stocks under $%d: %s.", len(quotes), intent.PriceCeiling, strings.Join(parts, ", "))
}

// RawTransactions returns the stored records for one of a user's
// account types, as uploaded
func (s *Service) RawTransactions(userID string, accountType models.AccountType) (any, error) {
	snap := s.repo.Snapshot(userID)
	switch accountType {
	case models.AccountTypeBank:
		return snap.Bank, nil
	case models.AccountTypeCard:
		return snap.Card, nil
	default:
		return nil, models.ErrUnknownAccountType
	}
}
