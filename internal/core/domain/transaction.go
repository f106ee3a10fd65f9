package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountTier is the customer tier a round-up transaction belongs to.
type AccountTier string

const (
	TierIndividual AccountTier = "individual"
	TierFamily     AccountTier = "family"
	TierBusiness   AccountTier = "business"
	TierUnknown    AccountTier = "unknown"
)

// PaymentProcessor identifies who moved the money for a transaction.
type PaymentProcessor string

const (
	ProcessorStripe PaymentProcessor = "stripe"
	ProcessorPlaid  PaymentProcessor = "plaid"
	ProcessorDwolla PaymentProcessor = "dwolla"
	ProcessorAlpaca PaymentProcessor = "alpaca"
	ProcessorOther  PaymentProcessor = "other"
)

// ParseAccountTier maps a raw tier string onto the closed set of tiers.
// Missing or unrecognised values become TierUnknown.
func ParseAccountTier(s string) AccountTier {
	switch t := AccountTier(strings.ToLower(strings.TrimSpace(s))); t {
	case TierIndividual, TierFamily, TierBusiness:
		return t
	}
	return TierUnknown
}

// ParsePaymentProcessor maps a raw processor string onto the closed set of processors.
// Missing or unrecognised values become ProcessorOther.
func ParsePaymentProcessor(s string) PaymentProcessor {
	switch p := PaymentProcessor(strings.ToLower(strings.TrimSpace(s))); p {
	case ProcessorStripe, ProcessorPlaid, ProcessorDwolla, ProcessorAlpaca:
		return p
	}
	return ProcessorOther
}

// SourceTransaction is an inbound record from the transaction feed. It is read-only input
// to the auto-mapping rules and is never stored by this service.
type SourceTransaction struct {
	TransactionID    string           `json:"transactionID,omitempty"`
	Amount           decimal.Decimal  `json:"amount"`
	Fee              decimal.Decimal  `json:"fee"`
	AccountType      AccountTier      `json:"accountType"`
	PaymentProcessor PaymentProcessor `json:"paymentProcessor"`
	OccurredAt       time.Time        `json:"occurredAt,omitempty"`
}
