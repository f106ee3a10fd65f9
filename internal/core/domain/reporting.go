package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountSummaryRow aggregates the entries posted to one account over a period.
type AccountSummaryRow struct {
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	NormalBalance NormalBalance   `json:"normalBalance"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"` // Signed by normal balance
	EntryCount    int             `json:"entryCount"`
}

// AccountSummaryReport is the per-account summary of entries between From and To.
type AccountSummaryReport struct {
	From        time.Time           `json:"from"`
	To          time.Time           `json:"to"`
	Rows        []AccountSummaryRow `json:"rows"`
	TotalDebit  decimal.Decimal     `json:"totalDebit"`
	TotalCredit decimal.Decimal     `json:"totalCredit"`
	EntryCount  int                 `json:"entryCount"`
}

// FinancialSummary is the display-only period summary served by the external analytics backend.
type FinancialSummary struct {
	Period          string          `json:"period"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue" swaggertype:"string" example:"12.50"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses" swaggertype:"string" example:"12.50"`
	NetIncome       decimal.Decimal `json:"netIncome" swaggertype:"string" example:"12.50"`
	RoundUpVolume   decimal.Decimal `json:"roundUpVolume" swaggertype:"string" example:"12.50"`
	ActiveAccounts  int             `json:"activeAccounts"`
	TransactionsCnt int             `json:"transactionCount"`
}
