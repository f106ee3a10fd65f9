package domain

import (
	"fmt"
	"strings"
)

// AccountType defines the fundamental accounting type of a GL account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Revenue   AccountType = "revenue"
	Expense   AccountType = "expense"
	COGS      AccountType = "cogs"
)

// AccountTypes lists every supported account type in chart order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, COGS, Expense}

// NormalBalance is the side on which increases to an account are recorded.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "debit"
	CreditNormal NormalBalance = "credit"
)

// UnknownAccountName is shown when an account code does not resolve.
const UnknownAccountName = "Unknown Account"

// Account represents a general-ledger account in the chart of accounts.
type Account struct {
	Code          string        `json:"code"`          // Primary Key, e.g. "4060"; never reused
	Name          string        `json:"name"`          // Display label
	Type          AccountType   `json:"type"`          // asset, liability, ...
	NormalBalance NormalBalance `json:"normalBalance"` // debit or credit
	Description   string        `json:"description"`   // Optional
	IsActive      bool          `json:"isActive"`
	Version       int64         `json:"version"` // Optimistic concurrency token, bumped on every update
	AuditFields
}

// ParseAccountType converts a raw string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Asset, Liability, Equity, Revenue, Expense, COGS:
		return t, nil
	}
	return "", fmt.Errorf("unknown account type %q", s)
}

// ParseNormalBalance converts a raw string into a NormalBalance.
func ParseNormalBalance(s string) (NormalBalance, error) {
	nb := NormalBalance(strings.ToLower(strings.TrimSpace(s)))
	switch nb {
	case DebitNormal, CreditNormal:
		return nb, nil
	}
	return "", fmt.Errorf("unknown normal balance %q", s)
}

// ConventionalNormalBalance returns the side an account type increases on by convention.
// Assets, expenses and cost of goods sold are debit-normal; everything else is credit-normal.
func ConventionalNormalBalance(t AccountType) NormalBalance {
	switch t {
	case Asset, Expense, COGS:
		return DebitNormal
	case Liability, Equity, Revenue:
		return CreditNormal
	}
	return DebitNormal
}

// Validate checks the account carries a code, a name and known enum values.
func (a Account) Validate() error {
	if strings.TrimSpace(a.Code) == "" {
		return fmt.Errorf("account code is required")
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("account name is required for %s", a.Code)
	}
	if _, err := ParseAccountType(string(a.Type)); err != nil {
		return err
	}
	if _, err := ParseNormalBalance(string(a.NormalBalance)); err != nil {
		return err
	}
	return nil
}
