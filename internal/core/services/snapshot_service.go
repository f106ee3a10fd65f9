package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/roundup_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/google/uuid"
)

// Fixed keys of the legacy admin-screen snapshot.
const (
	SnapshotKeyAccounts    = "gl_accounts"
	SnapshotKeyLocations   = "gl_locations"
	SnapshotKeyDepartments = "gl_departments"
)

// snapshotAccount is the account shape the admin screen stored.
type snapshotAccount struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	NormalBalance string `json:"normalBalance,omitempty"`
	Description   string `json:"description,omitempty"`
	IsActive      *bool  `json:"isActive,omitempty"`
}

// snapshotTag is the location/department shape the admin screen stored.
type snapshotTag struct {
	ID   snapshotTagID `json:"id"`
	Name string        `json:"name"`
}

// snapshotTagID accepts the string and numeric ids older snapshots carry.
type snapshotTagID string

func (id *snapshotTagID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = snapshotTagID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("tag id must be a string or a number: %s", data)
	}
	*id = snapshotTagID(n.String())
	return nil
}

// legacyTagNamespace scopes the UUIDs derived for tag ids that are not UUIDs.
var legacyTagNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/SscSPs/roundup_ledger/gl_tags"))

// tagIDFromSnapshot keeps UUID ids and maps any other id to the same UUID on every import.
func tagIDFromSnapshot(kind domain.TagKind, id string) string {
	id = strings.TrimSpace(id)
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return uuid.NewSHA1(legacyTagNamespace, []byte(string(kind)+":"+id)).String()
}

// snapshotService copies the chart and tags between the database and a snapshot store.
type snapshotService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	tagRepo     portsrepo.TagRepositoryFacade
}

// NewSnapshotService creates a new snapshot service.
func NewSnapshotService(accountRepo portsrepo.AccountRepositoryFacade, tagRepo portsrepo.TagRepositoryFacade) portssvc.SnapshotSvc {
	return &snapshotService{
		BaseService: newBaseService(),
		accountRepo: accountRepo,
		tagRepo:     tagRepo,
	}
}

var _ portssvc.SnapshotSvc = (*snapshotService)(nil)

// Export rewrites every snapshot key in full from the current database state.
func (s *snapshotService) Export(ctx context.Context, store portsrepo.SnapshotStore) (portssvc.SnapshotCounts, error) {
	var counts portssvc.SnapshotCounts

	accounts, err := s.accountRepo.ListAccounts(ctx, true)
	if err != nil {
		return counts, fmt.Errorf("failed to list accounts for export: %w", err)
	}
	outAccounts := make([]snapshotAccount, len(accounts))
	for i, a := range accounts {
		active := a.IsActive
		outAccounts[i] = snapshotAccount{
			Code:          a.Code,
			Name:          a.Name,
			Type:          string(a.Type),
			NormalBalance: string(a.NormalBalance),
			Description:   a.Description,
			IsActive:      &active,
		}
	}
	if err := saveJSON(ctx, store, SnapshotKeyAccounts, outAccounts); err != nil {
		return counts, err
	}
	counts.Accounts = len(outAccounts)

	for _, kt := range []struct {
		kind domain.TagKind
		key  string
		n    *int
	}{
		{domain.TagLocation, SnapshotKeyLocations, &counts.Locations},
		{domain.TagDepartment, SnapshotKeyDepartments, &counts.Departments},
	} {
		tags, err := s.tagRepo.ListTags(ctx, kt.kind)
		if err != nil {
			return counts, fmt.Errorf("failed to list %s tags for export: %w", kt.kind, err)
		}
		out := make([]snapshotTag, len(tags))
		for i, t := range tags {
			out[i] = snapshotTag{ID: snapshotTagID(t.TagID), Name: t.Name}
		}
		if err := saveJSON(ctx, store, kt.key, out); err != nil {
			return counts, err
		}
		*kt.n = len(out)
	}

	s.LogInfo(ctx, "Snapshot exported",
		slog.Int("accounts", counts.Accounts),
		slog.Int("locations", counts.Locations),
		slog.Int("departments", counts.Departments))
	return counts, nil
}

// Import upserts every row of the snapshot into the database. Missing keys import as empty lists.
func (s *snapshotService) Import(ctx context.Context, store portsrepo.SnapshotStore, userID string) (portssvc.SnapshotCounts, error) {
	var counts portssvc.SnapshotCounts
	now := s.Now()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}

	var inAccounts []snapshotAccount
	if err := loadJSON(ctx, store, SnapshotKeyAccounts, &inAccounts); err != nil {
		return counts, err
	}
	accounts := make([]domain.Account, 0, len(inAccounts))
	for _, in := range inAccounts {
		account, err := accountFromSnapshot(in)
		if err != nil {
			return counts, fmt.Errorf("%w: %s: %v", apperrors.ErrValidation, SnapshotKeyAccounts, err)
		}
		account.Version = 1
		account.AuditFields = audit
		accounts = append(accounts, account)
	}
	if len(accounts) > 0 {
		if err := s.accountRepo.UpsertAccounts(ctx, accounts); err != nil {
			return counts, fmt.Errorf("failed to import accounts: %w", err)
		}
	}
	counts.Accounts = len(accounts)

	for _, kt := range []struct {
		kind domain.TagKind
		key  string
		n    *int
	}{
		{domain.TagLocation, SnapshotKeyLocations, &counts.Locations},
		{domain.TagDepartment, SnapshotKeyDepartments, &counts.Departments},
	} {
		var in []snapshotTag
		if err := loadJSON(ctx, store, kt.key, &in); err != nil {
			return counts, err
		}
		tags := make([]domain.Tag, 0, len(in))
		for _, t := range in {
			name := strings.TrimSpace(t.Name)
			if name == "" {
				return counts, fmt.Errorf("%w: %s: entry without a name", apperrors.ErrValidation, kt.key)
			}
			id := s.NewID()
			if strings.TrimSpace(string(t.ID)) != "" {
				id = tagIDFromSnapshot(kt.kind, string(t.ID))
			}
			tags = append(tags, domain.Tag{TagID: id, Kind: kt.kind, Name: name, Version: 1, AuditFields: audit})
		}
		if len(tags) > 0 {
			if err := s.tagRepo.UpsertTags(ctx, tags); err != nil {
				return counts, fmt.Errorf("failed to import %s tags: %w", kt.kind, err)
			}
		}
		*kt.n = len(tags)
	}

	s.LogInfo(ctx, "Snapshot imported",
		slog.Int("accounts", counts.Accounts),
		slog.Int("locations", counts.Locations),
		slog.Int("departments", counts.Departments))
	return counts, nil
}

func accountFromSnapshot(in snapshotAccount) (domain.Account, error) {
	t, err := domain.ParseAccountType(in.Type)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s: %w", in.Code, err)
	}
	nb := domain.ConventionalNormalBalance(t)
	if in.NormalBalance != "" {
		if nb, err = domain.ParseNormalBalance(in.NormalBalance); err != nil {
			return domain.Account{}, fmt.Errorf("account %s: %w", in.Code, err)
		}
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	a := domain.Account{
		Code:          strings.TrimSpace(in.Code),
		Name:          strings.TrimSpace(in.Name),
		Type:          t,
		NormalBalance: nb,
		Description:   in.Description,
		IsActive:      active,
	}
	return a, a.Validate()
}

func saveJSON(ctx context.Context, store portsrepo.SnapshotStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot key %s: %w", key, err)
	}
	if err := store.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write snapshot key %s: %w", key, err)
	}
	return nil
}

func loadJSON(ctx context.Context, store portsrepo.SnapshotStore, key string, v any) error {
	raw, ok, err := store.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read snapshot key %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: snapshot key %s is not a JSON array: %v", apperrors.ErrValidation, key, err)
	}
	return nil
}
