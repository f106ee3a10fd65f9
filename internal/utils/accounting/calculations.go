package accounting

import (
	"strings"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResolver resolves an account code to its account record.
type AccountResolver interface {
	Lookup(code string) (domain.Account, bool)
}

// DebitCredit is the pair of amounts an entry posts. At most one side is non-zero.
type DebitCredit struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// IsZero reports whether neither side carries an amount.
func (dc DebitCredit) IsZero() bool {
	return dc.Debit.IsZero() && dc.Credit.IsZero()
}

// Stored amounts are NUMERIC(19,4).
const (
	MaxAmountScale         = 4
	MaxAmountIntegerDigits = 15
)

var amountUpperBound = decimal.New(1, MaxAmountIntegerDigits)

// AmountFits reports whether amount can be stored without rounding or overflow:
// at most MaxAmountScale decimal places and MaxAmountIntegerDigits integer digits.
func AmountFits(amount decimal.Decimal) bool {
	if !amount.Equal(amount.Truncate(MaxAmountScale)) {
		return false
	}
	return amount.Abs().LessThan(amountUpperBound)
}

// ParseAmount parses a user-entered amount. Empty, unparseable, negative and
// unstorable (see AmountFits) input yields false.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() || !AmountFits(amount) {
		return decimal.Zero, false
	}
	return amount, true
}

// CalculateDebitCredit places amount on the normal-balance side of the account.
// An unresolved account or an empty, unparseable, zero or negative amount yields {0, 0}.
// The entry type is descriptive and does not affect the result.
func CalculateDebitCredit(resolver AccountResolver, entryType domain.EntryType, accountCode string, amount string) DebitCredit {
	zero := DebitCredit{Debit: decimal.Zero, Credit: decimal.Zero}

	accountCode = strings.TrimSpace(accountCode)
	if resolver == nil || accountCode == "" {
		return zero
	}
	account, ok := resolver.Lookup(accountCode)
	if !ok {
		return zero
	}
	value, ok := ParseAmount(amount)
	if !ok || value.IsZero() {
		return zero
	}

	if account.NormalBalance == domain.CreditNormal {
		return DebitCredit{Debit: decimal.Zero, Credit: value}
	}
	return DebitCredit{Debit: value, Credit: decimal.Zero}
}

// SignedBalance nets debits and credits so that a positive result means the account
// increased on its normal side.
// DEBIT-normal: debit - credit
// CREDIT-normal: credit - debit
func SignedBalance(normal domain.NormalBalance, debit, credit decimal.Decimal) decimal.Decimal {
	if normal == domain.CreditNormal {
		return credit.Sub(debit)
	}
	return debit.Sub(credit)
}
