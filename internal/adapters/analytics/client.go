// Package analytics proxies the external period-scoped financial summary.
// The figures are display-only and never feed journal logic.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/SscSPs/roundup_ledger/internal/middleware"
	"golang.org/x/oauth2"
)

const defaultTimeout = 10 * time.Second

// Periods accepted by the summary endpoint.
var Periods = []string{"day", "week", "month", "quarter", "year"}

// Client calls GET {baseURL}/analytics/summary?period=...
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ portssvc.AnalyticsSvc = (*Client)(nil)

// NewClient builds a client that sends apiToken as a bearer token. An empty
// token sends no Authorization header.
func NewClient(baseURL, apiToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := &http.Client{}
	if apiToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiToken, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(context.Background(), src)
	}
	httpClient.Timeout = timeout

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func validPeriod(p string) bool {
	for _, v := range Periods {
		if v == p {
			return true
		}
	}
	return false
}

// FetchSummary returns the summary for period. Transport failures, non-2xx
// responses and undecodable bodies all wrap apperrors.ErrUpstream.
func (c *Client) FetchSummary(ctx context.Context, period string) (*domain.FinancialSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !validPeriod(period) {
		return nil, fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, period)
	}
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: analytics backend is not configured", apperrors.ErrUpstream)
	}

	endpoint := c.baseURL + "/analytics/summary?" + url.Values{"period": {period}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", apperrors.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Analytics request failed", slog.String("period", period), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Warn("Analytics backend returned an error",
			slog.String("period", period),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return nil, fmt.Errorf("%w: analytics backend returned %d", apperrors.ErrUpstream, resp.StatusCode)
	}

	var summary domain.FinancialSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("%w: decode summary: %v", apperrors.ErrUpstream, err)
	}
	if summary.Period == "" {
		summary.Period = period
	}
	return &summary, nil
}
