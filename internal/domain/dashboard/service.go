package dashboard

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/domain/account"
	"fintrack/internal/domain/transaction"
)

// Aggregation periods
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

const recentTransactionCount = 5

// Summary is the dashboard payload for one user and period.
type Summary struct {
	Summary            Totals                          `json:"summary"`
	SpendingByCategory []*transaction.CategorySpending `json:"spendingByCategory"`
	RecentTransactions []*transaction.Transaction      `json:"recentTransactions"`
	Accounts           []*account.Account              `json:"accounts"`
}

type Totals struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetIncome     float64 `json:"netIncome"`
	Period        string  `json:"period"`
}

// Service assembles dashboard summaries from the transaction and account
// repositories. It holds no state beyond its dependencies.
type Service struct {
	transactionRepo transaction.Repository
	accountRepo     account.Repository
	now             func() time.Time
}

func NewService(transactionRepo transaction.Repository, accountRepo account.Repository) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		now:             time.Now,
	}
}

// NormalizePeriod maps unknown period values to the default month.
func NormalizePeriod(period string) string {
	switch period {
	case PeriodWeek, PeriodYear:
		return period
	default:
		return PeriodMonth
	}
}

// PeriodStart derives the aggregation cutoff for a period:
// week = now minus 7 days, month = first instant of the current calendar
// month, year = January 1 of the current year.
func PeriodStart(period string, now time.Time) time.Time {
	switch NormalizePeriod(period) {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// Summarize computes the period-scoped totals and category breakdown plus
// the recent-transaction and account lists. Everything is recomputed from
// the transaction history on every call; there is no caching.
func (s *Service) Summarize(ctx context.Context, userID, period string) (*Summary, error) {
	period = NormalizePeriod(period)
	since := PeriodStart(period, s.now())

	totals, err := s.transactionRepo.TotalsSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	spending, err := s.transactionRepo.SpendingByCategorySince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category spending: %w", err)
	}

	recent, err := s.transactionRepo.ListRecent(ctx, userID, recentTransactionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	accounts, err := s.accountRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if spending == nil {
		spending = []*transaction.CategorySpending{}
	}
	if recent == nil {
		recent = []*transaction.Transaction{}
	}
	if accounts == nil {
		accounts = []*account.Account{}
	}

	return &Summary{
		Summary: Totals{
			TotalIncome:   totals.TotalIncome,
			TotalExpenses: totals.TotalExpenses,
			NetIncome:     totals.TotalIncome - totals.TotalExpenses,
			Period:        period,
		},
		SpendingByCategory: spending,
		RecentTransactions: recent,
		Accounts:           accounts,
	}, nil
}
