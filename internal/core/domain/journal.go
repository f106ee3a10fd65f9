package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType describes what kind of money movement a journal entry records.
// It is descriptive only and does not change the debit/credit math.
type EntryType string

const (
	EntryDeposit  EntryType = "deposit"
	EntryExpense  EntryType = "expense"
	EntryTransfer EntryType = "transfer"
	EntryPayment  EntryType = "payment"
)

// Fallback display names for tags that do not resolve.
const (
	DefaultLocationName   = "Main Office"
	DefaultDepartmentName = "General"
)

// ParseEntryType converts a raw string into an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	t := EntryType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case EntryDeposit, EntryExpense, EntryTransfer, EntryPayment:
		return t, nil
	}
	return "", fmt.Errorf("unknown entry type %q", s)
}

// JournalEntry is a single-leg posting of one amount to one GL account.
// Exactly one of Debit or Credit is positive for a real posting; both are never positive.
type JournalEntry struct {
	EntryID             string          `json:"entryID"` // Primary Key (UUID)
	Date                time.Time       `json:"date"`    // Stamped at creation
	EntryType           EntryType       `json:"entryType"`
	AccountCode         string          `json:"accountCode"`
	AccountName         string          `json:"accountName"` // Resolved at creation time
	LocationID          string          `json:"locationID,omitempty"`
	LocationName        string          `json:"locationName"`
	DepartmentID        string          `json:"departmentID,omitempty"`
	DepartmentName      string          `json:"departmentName"`
	Memo                string          `json:"memo"`
	Debit               decimal.Decimal `json:"debit"`
	Credit              decimal.Decimal `json:"credit"`
	Amount              decimal.Decimal `json:"amount"` // Magnitude before debit/credit assignment
	IsAutoMapped        bool            `json:"isAutoMapped"`
	SourceTransactionID string          `json:"sourceTransactionID,omitempty"` // Set for auto-mapped entries when the feed supplies an id
	AuditFields
}

// Validate enforces the single-leg invariant: amounts are non-negative and
// debit and credit are never both positive.
func (e JournalEntry) Validate() error {
	if e.Debit.IsNegative() || e.Credit.IsNegative() {
		return fmt.Errorf("entry %s has a negative debit or credit", e.EntryID)
	}
	if e.Debit.IsPositive() && e.Credit.IsPositive() {
		return fmt.Errorf("entry %s posts both a debit of %s and a credit of %s", e.EntryID, e.Debit, e.Credit)
	}
	if strings.TrimSpace(e.AccountCode) == "" {
		return fmt.Errorf("entry %s has no account", e.EntryID)
	}
	return nil
}

// PostedAmount returns whichever side of the entry carries the amount.
func (e JournalEntry) PostedAmount() decimal.Decimal {
	if e.Debit.IsPositive() {
		return e.Debit
	}
	return e.Credit
}
