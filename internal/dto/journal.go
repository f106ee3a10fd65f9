package dto

import (
	"time"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PreviewDebitCreditRequest is the live-preview input of the entry form.
// Amount stays a string so partially typed input can be previewed.
type PreviewDebitCreditRequest struct {
	EntryType   string `json:"entryType" binding:"omitempty,entrytype"`
	AccountCode string `json:"accountCode"`
	Amount      string `json:"amount"`
}

// PreviewDebitCreditResponse is the computed debit/credit split.
type PreviewDebitCreditResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit" swaggertype:"string" example:"12.50"`
	Credit      decimal.Decimal `json:"credit" swaggertype:"string" example:"12.50"`
}

// CreateJournalEntryRequest defines the manual entry form.
// Empty amount or account code makes the request a no-op.
type CreateJournalEntryRequest struct {
	EntryType    string `json:"entryType" binding:"omitempty,entrytype"` // Defaults to deposit
	AccountCode  string `json:"accountCode"`
	Amount       string `json:"amount"`
	LocationID   string `json:"locationID"`
	DepartmentID string `json:"departmentID"`
	Memo         string `json:"memo" binding:"max=1024"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID             string          `json:"entryID"`
	Date                time.Time       `json:"date"`
	EntryType           string          `json:"entryType"`
	AccountCode         string          `json:"accountCode"`
	AccountName         string          `json:"accountName"`
	LocationName        string          `json:"location"`
	DepartmentName      string          `json:"department"`
	Memo                string          `json:"memo"`
	Debit               decimal.Decimal `json:"debit" swaggertype:"string" example:"12.50"`
	Credit              decimal.Decimal `json:"credit" swaggertype:"string" example:"12.50"`
	Amount              decimal.Decimal `json:"amount" swaggertype:"string" example:"12.50"`
	IsAutoMapped        bool            `json:"isAutoMapped"`
	SourceTransactionID string          `json:"sourceTransactionID,omitempty"`
	CreatedBy           string          `json:"createdBy"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:             e.EntryID,
		Date:                e.Date,
		EntryType:           string(e.EntryType),
		AccountCode:         e.AccountCode,
		AccountName:         e.AccountName,
		LocationName:        e.LocationName,
		DepartmentName:      e.DepartmentName,
		Memo:                e.Memo,
		Debit:               e.Debit,
		Credit:              e.Credit,
		Amount:              e.Amount,
		IsAutoMapped:        e.IsAutoMapped,
		SourceTransactionID: e.SourceTransactionID,
		CreatedBy:           e.CreatedBy,
	}
}

// ToJournalEntryResponses converts a slice of domain.JournalEntry to []JournalEntryResponse.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToJournalEntryResponse(&e)
	}
	return responses
}

// ListJournalEntriesParams defines query parameters for listing entries.
type ListJournalEntriesParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
	Source    string `form:"source" binding:"omitempty,oneof=auto manual"`
}

// ListJournalEntriesResponse wraps a page of entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// TransactionInput is one record of the inbound transaction feed.
type TransactionInput struct {
	TransactionID    string          `json:"transaction_id" csv:"transaction_id"`
	Amount           decimal.Decimal `json:"amount" csv:"amount" swaggertype:"string" example:"12.50"`
	Fee              decimal.Decimal `json:"fee" csv:"fee" swaggertype:"string" example:"0.30"`
	AccountType      string          `json:"account_type" csv:"account_type"`
	PaymentProcessor string          `json:"payment_processor" csv:"payment_processor"`
}

// ToSourceTransaction parses the raw enumerations of a feed record.
func (t TransactionInput) ToSourceTransaction() domain.SourceTransaction {
	return domain.SourceTransaction{
		TransactionID:    t.TransactionID,
		Amount:           t.Amount,
		Fee:              t.Fee,
		AccountType:      domain.ParseAccountTier(t.AccountType),
		PaymentProcessor: domain.ParsePaymentProcessor(t.PaymentProcessor),
	}
}

// ToSourceTransactions converts a batch of feed records.
func ToSourceTransactions(inputs []TransactionInput) []domain.SourceTransaction {
	out := make([]domain.SourceTransaction, len(inputs))
	for i, in := range inputs {
		out[i] = in.ToSourceTransaction()
	}
	return out
}

// AutoMapRequest carries the batch of transactions to map.
type AutoMapRequest struct {
	Transactions []TransactionInput `json:"transactions" binding:"required"`
}

// AutoMapResponse reports what an auto-map run produced.
type AutoMapResponse struct {
	Entries              []JournalEntryResponse        `json:"entries"`
	SkippedTransactions  []string                      `json:"skippedTransactions"` // Already processed ids
	RejectedTransactions []RejectedTransactionResponse `json:"rejectedTransactions"`
}

// RejectedTransactionResponse is a transaction that was left unmapped and can be resubmitted.
type RejectedTransactionResponse struct {
	Index         int    `json:"index"`
	TransactionID string `json:"transactionID,omitempty"`
	Reason        string `json:"reason"`
}
