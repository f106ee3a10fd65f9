package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/roundup_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CountAccounts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpsertAccounts(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account, expectedVersion int64) error {
	args := m.Called(ctx, account, expectedVersion)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, code string, expectedVersion int64) error {
	args := m.Called(ctx, code, expectedVersion)
	return args.Error(0)
}

// MockTagRepository is a mock type for the TagRepositoryFacade interface
type MockTagRepository struct {
	mock.Mock
}

var _ portsrepo.TagRepositoryFacade = (*MockTagRepository)(nil)

func (m *MockTagRepository) FindTagByID(ctx context.Context, kind domain.TagKind, tagID string) (*domain.Tag, error) {
	args := m.Called(ctx, kind, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) ListTags(ctx context.Context, kind domain.TagKind) ([]domain.Tag, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagRepository) SaveTag(ctx context.Context, tag domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *MockTagRepository) UpsertTags(ctx context.Context, tags []domain.Tag) error {
	return m.Called(ctx, tags).Error(0)
}

func (m *MockTagRepository) UpdateTag(ctx context.Context, tag domain.Tag, expectedVersion int64) error {
	return m.Called(ctx, tag, expectedVersion).Error(0)
}

func (m *MockTagRepository) DeleteTag(ctx context.Context, kind domain.TagKind, tagID string, expectedVersion int64) error {
	return m.Called(ctx, kind, tagID, expectedVersion).Error(0)
}

// MockJournalRepository is a mock type for the JournalRepositoryWithTx interface
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryWithTx = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, source portsrepo.EntrySource, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, source, limit, nextToken)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return entries, next, args.Error(2)
}

func (m *MockJournalRepository) FindProcessedTransactionIDs(ctx context.Context, transactionIDs []string) (map[string]bool, error) {
	args := m.Called(ctx, transactionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockJournalRepository) SaveEntries(ctx context.Context, entries []domain.JournalEntry) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *MockJournalRepository) SaveAutoMappedEntries(ctx context.Context, entries []domain.JournalEntry, processedTransactionIDs []string) error {
	return m.Called(ctx, entries, processedTransactionIDs).Error(0)
}

func (m *MockJournalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockJournalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockJournalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetAccountSummaryData(ctx context.Context, from, to time.Time) ([]domain.AccountSummaryRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountSummaryRow), args.Error(1)
}

// memorySnapshotStore keeps snapshot keys in a map.
type memorySnapshotStore map[string][]byte

func (s memorySnapshotStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s[key]
	return v, ok, nil
}

func (s memorySnapshotStore) Save(_ context.Context, key string, value []byte) error {
	s[key] = append([]byte(nil), value...)
	return nil
}
