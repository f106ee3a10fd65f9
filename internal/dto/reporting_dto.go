package dto

import (
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountSummaryParams defines the period of an account summary. Dates are YYYY-MM-DD,
// To is inclusive.
type AccountSummaryParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// AccountSummaryRowResponse represents one account in the summary.
type AccountSummaryRowResponse struct {
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   string          `json:"accountType"`
	NormalBalance string          `json:"normalBalance"`
	Debit         decimal.Decimal `json:"debit" swaggertype:"string" example:"12.50"`
	Credit        decimal.Decimal `json:"credit" swaggertype:"string" example:"12.50"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string" example:"12.50"`
	EntryCount    int             `json:"entryCount"`
}

// AccountSummaryResponse represents the account summary report response
type AccountSummaryResponse struct {
	FromDate string                      `json:"fromDate"`
	ToDate   string                      `json:"toDate"`
	Rows     []AccountSummaryRowResponse `json:"rows"`
	Totals   struct {
		Debit      decimal.Decimal `json:"debit" swaggertype:"string" example:"12.50"`
		Credit     decimal.Decimal `json:"credit" swaggertype:"string" example:"12.50"`
		EntryCount int             `json:"entryCount"`
	} `json:"totals"`
}

// ToAccountSummaryResponse converts a report, echoing the requested dates.
func ToAccountSummaryResponse(r *domain.AccountSummaryReport, from, to string) AccountSummaryResponse {
	resp := AccountSummaryResponse{
		FromDate: from,
		ToDate:   to,
		Rows:     make([]AccountSummaryRowResponse, len(r.Rows)),
	}
	for i, row := range r.Rows {
		resp.Rows[i] = AccountSummaryRowResponse{
			AccountCode:   row.AccountCode,
			AccountName:   row.AccountName,
			AccountType:   string(row.AccountType),
			NormalBalance: string(row.NormalBalance),
			Debit:         row.Debit,
			Credit:        row.Credit,
			Balance:       row.Balance,
			EntryCount:    row.EntryCount,
		}
	}
	resp.Totals.Debit = r.TotalDebit
	resp.Totals.Credit = r.TotalCredit
	resp.Totals.EntryCount = r.EntryCount
	return resp
}

// FinancialSummaryParams selects the analytics period.
type FinancialSummaryParams struct {
	Period string `form:"period,default=month" binding:"oneof=day week month quarter year"`
}
