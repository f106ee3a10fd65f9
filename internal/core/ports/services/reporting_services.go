package services

import (
	"context"
	"time"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
)

// ReportingService defines operations for generating reports from stored entries
type ReportingService interface {
	// AccountSummary sums entries per account for dates in [from, to).
	AccountSummary(ctx context.Context, from, to time.Time) (*domain.AccountSummaryReport, error)
}

// AnalyticsSvc fetches the display-only financial summary from the external analytics backend.
type AnalyticsSvc interface {
	FetchSummary(ctx context.Context, period string) (*domain.FinancialSummary, error)
}
