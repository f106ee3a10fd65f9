package mapping

import (
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/SscSPs/roundup_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:             d.EntryID,
		EntryDate:           d.Date,
		EntryType:           string(d.EntryType),
		AccountCode:         d.AccountCode,
		AccountName:         d.AccountName,
		LocationID:          d.LocationID,
		LocationName:        d.LocationName,
		DepartmentID:        d.DepartmentID,
		DepartmentName:      d.DepartmentName,
		Memo:                d.Memo,
		Debit:               d.Debit,
		Credit:              d.Credit,
		Amount:              d.Amount,
		IsAutoMapped:        d.IsAutoMapped,
		SourceTransactionID: d.SourceTransactionID,
		CreatedAt:           d.CreatedAt,
		CreatedBy:           d.CreatedBy,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry.
// Entries are never updated, so the last-updated audit fields mirror creation.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:             m.EntryID,
		Date:                m.EntryDate,
		EntryType:           domain.EntryType(m.EntryType),
		AccountCode:         m.AccountCode,
		AccountName:         m.AccountName,
		LocationID:          m.LocationID,
		LocationName:        m.LocationName,
		DepartmentID:        m.DepartmentID,
		DepartmentName:      m.DepartmentName,
		Memo:                m.Memo,
		Debit:               m.Debit,
		Credit:              m.Credit,
		Amount:              m.Amount,
		IsAutoMapped:        m.IsAutoMapped,
		SourceTransactionID: m.SourceTransactionID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.CreatedAt,
			LastUpdatedBy: m.CreatedBy,
		},
	}
}

// ToDomainJournalEntrySlice converts a slice of model entries to domain entries
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}
