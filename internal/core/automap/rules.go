// Package automap decides which GL accounts a round-up transaction posts to.
package automap

import "github.com/SscSPs/roundup_ledger/internal/core/domain"

// Account codes targeted by the mapping rules.
const (
	CodeIndividualRevenue = "4060"
	CodeFamilyRevenue     = "4070"
	CodeBusinessRevenue   = "4080"
	CodeProcessorFees     = "5010"
	CodeSettlementFees    = "5040"
	CodeAlpacaFees        = "5070"
)

// MappedAccount is the account a rule selected, with the label shown beside it.
type MappedAccount struct {
	Code  string `json:"account"`
	Label string `json:"label"`
}

var (
	individualRevenue = MappedAccount{Code: CodeIndividualRevenue, Label: "Individual user revenue"}
	familyRevenue     = MappedAccount{Code: CodeFamilyRevenue, Label: "Family user revenue"}
	businessRevenue   = MappedAccount{Code: CodeBusinessRevenue, Label: "Business user revenue"}
	processorFees     = MappedAccount{Code: CodeProcessorFees, Label: "Payment processor fees"}
	alpacaFees        = MappedAccount{Code: CodeAlpacaFees, Label: "Alpaca trading fees"}
	settlementFees    = MappedAccount{Code: CodeSettlementFees, Label: "Transaction settlement fees"}
)

// RevenueAccount returns the revenue account for the principal of txn.
// Unknown tiers default to individual revenue.
func RevenueAccount(txn domain.SourceTransaction) MappedAccount {
	switch txn.AccountType {
	case domain.TierIndividual, domain.TierUnknown:
		return individualRevenue
	case domain.TierFamily:
		return familyRevenue
	case domain.TierBusiness:
		return businessRevenue
	}
	// Values that bypassed ParseAccountTier.
	return individualRevenue
}

// FeeAccount returns the expense account for the fee of txn. The second result is
// false when the transaction carries no positive fee.
func FeeAccount(txn domain.SourceTransaction) (MappedAccount, bool) {
	if !txn.Fee.IsPositive() {
		return MappedAccount{}, false
	}
	switch txn.PaymentProcessor {
	case domain.ProcessorStripe, domain.ProcessorPlaid, domain.ProcessorDwolla:
		return processorFees, true
	case domain.ProcessorAlpaca:
		return alpacaFees, true
	case domain.ProcessorOther:
		return settlementFees, true
	}
	return settlementFees, true
}
