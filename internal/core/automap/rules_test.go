package automap_test

import (
	"testing"

	"github.com/SscSPs/roundup_ledger/internal/core/automap"
	"github.com/SscSPs/roundup_ledger/internal/core/chart"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRevenueAccount(t *testing.T) {
	tests := []struct {
		name     string
		tier     string
		wantCode string
	}{
		{"individual", "individual", "4060"},
		{"family", "family", "4070"},
		{"business", "business", "4080"},
		{"missing defaults to individual", "", "4060"},
		{"unknown defaults to individual", "enterprise", "4060"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := domain.SourceTransaction{AccountType: domain.ParseAccountTier(tt.tier)}
			assert.Equal(t, tt.wantCode, automap.RevenueAccount(txn).Code)
		})
	}

	// A raw value that skipped parsing still maps.
	assert.Equal(t, "4060", automap.RevenueAccount(domain.SourceTransaction{AccountType: "corporate"}).Code)
}

func TestFeeAccount(t *testing.T) {
	fee := decimal.NewFromFloat(0.30)
	tests := []struct {
		processor string
		wantCode  string
	}{
		{"stripe", "5010"},
		{"plaid", "5010"},
		{"dwolla", "5010"},
		{"alpaca", "5070"},
		{"square", "5040"},
		{"", "5040"},
	}

	for _, tt := range tests {
		t.Run("processor "+tt.processor, func(t *testing.T) {
			txn := domain.SourceTransaction{Fee: fee, PaymentProcessor: domain.ParsePaymentProcessor(tt.processor)}
			got, ok := automap.FeeAccount(txn)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestFeeAccount_NoFee(t *testing.T) {
	_, ok := automap.FeeAccount(domain.SourceTransaction{PaymentProcessor: domain.ProcessorStripe})
	assert.False(t, ok)

	_, ok = automap.FeeAccount(domain.SourceTransaction{Fee: decimal.NewFromInt(-1), PaymentProcessor: domain.ProcessorStripe})
	assert.False(t, ok)
}

func TestMappedCodesExistInDefaultChart(t *testing.T) {
	c := chart.Default()
	for _, code := range []string{
		automap.CodeIndividualRevenue, automap.CodeFamilyRevenue, automap.CodeBusinessRevenue,
		automap.CodeProcessorFees, automap.CodeSettlementFees, automap.CodeAlpacaFees,
	} {
		_, ok := c.Lookup(code)
		assert.True(t, ok, "code %s missing from default chart", code)
	}
}
