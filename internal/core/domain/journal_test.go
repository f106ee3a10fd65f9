package domain_test

import (
	"testing"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   domain.JournalEntry
		wantErr bool
	}{
		{
			name:  "debit only",
			entry: domain.JournalEntry{EntryID: "e1", AccountCode: "1000", Debit: decimal.NewFromFloat(12.5)},
		},
		{
			name:  "credit only",
			entry: domain.JournalEntry{EntryID: "e2", AccountCode: "4060", Credit: decimal.NewFromInt(100)},
		},
		{
			name:  "both zero is allowed",
			entry: domain.JournalEntry{EntryID: "e3", AccountCode: "1000"},
		},
		{
			name:    "both positive",
			entry:   domain.JournalEntry{EntryID: "e4", AccountCode: "1000", Debit: decimal.NewFromInt(1), Credit: decimal.NewFromInt(1)},
			wantErr: true,
		},
		{
			name:    "negative debit",
			entry:   domain.JournalEntry{EntryID: "e5", AccountCode: "1000", Debit: decimal.NewFromInt(-1)},
			wantErr: true,
		},
		{
			name:    "no account",
			entry:   domain.JournalEntry{EntryID: "e6", Debit: decimal.NewFromInt(1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJournalEntry_PostedAmount(t *testing.T) {
	debit := domain.JournalEntry{Debit: decimal.NewFromInt(5)}
	credit := domain.JournalEntry{Credit: decimal.NewFromInt(7)}

	assert.True(t, decimal.NewFromInt(5).Equal(debit.PostedAmount()))
	assert.True(t, decimal.NewFromInt(7).Equal(credit.PostedAmount()))
}

func TestParseEntryType(t *testing.T) {
	got, err := domain.ParseEntryType("Payment")
	assert.NoError(t, err)
	assert.Equal(t, domain.EntryPayment, got)

	_, err = domain.ParseEntryType("refund")
	assert.Error(t, err)
}
