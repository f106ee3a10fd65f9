package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of journal_entries. Entries are append-only, so only
// the creation half of the audit columns exists.
type JournalEntry struct {
	EntryID             string          `db:"entry_id"`
	EntryDate           time.Time       `db:"entry_date"`
	EntryType           string          `db:"entry_type"`
	AccountCode         string          `db:"account_code"`
	AccountName         string          `db:"account_name"`
	LocationID          string          `db:"location_id"`
	LocationName        string          `db:"location_name"`
	DepartmentID        string          `db:"department_id"`
	DepartmentName      string          `db:"department_name"`
	Memo                string          `db:"memo"`
	Debit               decimal.Decimal `db:"debit"`
	Credit              decimal.Decimal `db:"credit"`
	Amount              decimal.Decimal `db:"amount"`
	IsAutoMapped        bool            `db:"is_auto_mapped"`
	SourceTransactionID string          `db:"source_transaction_id"`
	CreatedAt           time.Time       `db:"created_at"`
	CreatedBy           string          `db:"created_by"`
}
