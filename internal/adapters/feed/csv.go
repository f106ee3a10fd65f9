// Package feed reads the inbound transaction feed and writes journal entries as CSV.
package feed

import (
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/SscSPs/roundup_ledger/internal/dto"
	"github.com/SscSPs/roundup_ledger/internal/utils"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// transactionRow keeps amounts as text so blank cells read as zero.
type transactionRow struct {
	TransactionID    string `csv:"transaction_id"`
	Amount           string `csv:"amount"`
	Fee              string `csv:"fee"`
	AccountType      string `csv:"account_type"`
	PaymentProcessor string `csv:"payment_processor"`
}

type entryRow struct {
	EntryID             string `csv:"entry_id"`
	Date                string `csv:"date"`
	EntryType           string `csv:"entry_type"`
	AccountCode         string `csv:"account_code"`
	AccountName         string `csv:"account_name"`
	Location            string `csv:"location"`
	Department          string `csv:"department"`
	Memo                string `csv:"memo"`
	Debit               string `csv:"debit"`
	Credit              string `csv:"credit"`
	IsAutoMapped        bool   `csv:"is_auto_mapped"`
	SourceTransactionID string `csv:"source_transaction_id"`
}

func parseMoney(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

// ReadTransactions parses a feed with the header
// transaction_id,amount,fee,account_type,payment_processor. Columns may appear
// in any order and missing columns read as empty.
func ReadTransactions(r io.Reader) ([]domain.SourceTransaction, error) {
	var rows []transactionRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("%w: parse transaction feed: %v", apperrors.ErrValidation, err)
	}

	txns := make([]domain.SourceTransaction, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // header is line 1
		amount, err := parseMoney(row.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: amount %q: %v", apperrors.ErrValidation, line, row.Amount, err)
		}
		fee, err := parseMoney(row.Fee)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: fee %q: %v", apperrors.ErrValidation, line, row.Fee, err)
		}
		txns = append(txns, dto.TransactionInput{
			TransactionID:    strings.TrimSpace(row.TransactionID),
			Amount:           amount,
			Fee:              fee,
			AccountType:      row.AccountType,
			PaymentProcessor: row.PaymentProcessor,
		}.ToSourceTransaction())
	}
	return txns, nil
}

// WriteEntries writes entries with amounts at display precision.
func WriteEntries(w io.Writer, entries []domain.JournalEntry) error {
	rows := make([]entryRow, len(entries))
	for i, e := range entries {
		rows[i] = entryRow{
			EntryID:             e.EntryID,
			Date:                e.Date.UTC().Format("2006-01-02T15:04:05Z"),
			EntryType:           string(e.EntryType),
			AccountCode:         e.AccountCode,
			AccountName:         e.AccountName,
			Location:            e.LocationName,
			Department:          e.DepartmentName,
			Memo:                e.Memo,
			Debit:               utils.FormatAmount(e.Debit),
			Credit:              utils.FormatAmount(e.Credit),
			IsAutoMapped:        e.IsAutoMapped,
			SourceTransactionID: e.SourceTransactionID,
		}
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write entries CSV: %w", err)
	}
	return nil
}
