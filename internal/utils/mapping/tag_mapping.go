package mapping

import (
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/SscSPs/roundup_ledger/internal/models"
)

func ToModelTag(d domain.Tag) models.Tag {
	return models.Tag{
		TagID:       d.TagID,
		Kind:        string(d.Kind),
		Name:        d.Name,
		Version:     d.Version,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainTag(m models.Tag) domain.Tag {
	return domain.Tag{
		TagID:       m.TagID,
		Kind:        domain.TagKind(m.Kind),
		Name:        m.Name,
		Version:     m.Version,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainTagSlice(ms []models.Tag) []domain.Tag {
	ds := make([]domain.Tag, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTag(m)
	}
	return ds
}
