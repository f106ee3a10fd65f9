package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/SscSPs/roundup_ledger/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSnapshotService_ExportThenImportRoundTrips(t *testing.T) {
	ctx := context.Background()
	accounts := []domain.Account{
		{Code: "1000", Name: "Cash", Type: domain.Asset, NormalBalance: domain.DebitNormal, IsActive: true, Version: 3},
		{Code: "1900", Name: "Allowance", Type: domain.Asset, NormalBalance: domain.CreditNormal, IsActive: false, Version: 1},
	}
	hq := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	locations := []domain.Tag{{TagID: hq, Kind: domain.TagLocation, Name: "Austin HQ"}}
	departments := []domain.Tag{
		{TagID: "5a8c7e0e-4a47-4d5e-9b0f-3c7a1f1d2e01", Kind: domain.TagDepartment, Name: "Finance"},
		{TagID: "5a8c7e0e-4a47-4d5e-9b0f-3c7a1f1d2e02", Kind: domain.TagDepartment, Name: "Ops"},
	}

	accountRepo := new(MockAccountRepository)
	tagRepo := new(MockTagRepository)
	accountRepo.On("ListAccounts", ctx, true).Return(accounts, nil).Once()
	tagRepo.On("ListTags", ctx, domain.TagLocation).Return(locations, nil).Once()
	tagRepo.On("ListTags", ctx, domain.TagDepartment).Return(departments, nil).Once()

	store := memorySnapshotStore{}
	svc := services.NewSnapshotService(accountRepo, tagRepo)

	counts, err := svc.Export(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Accounts)
	assert.Equal(t, 1, counts.Locations)
	assert.Equal(t, 2, counts.Departments)
	assert.JSONEq(t, `[{"id":"`+hq+`","name":"Austin HQ"}]`, string(store[services.SnapshotKeyLocations]))

	var imported []domain.Account
	var importedTags []domain.Tag
	accountRepo.On("UpsertAccounts", ctx, mock.Anything).Run(func(args mock.Arguments) {
		imported = args.Get(1).([]domain.Account)
	}).Return(nil).Once()
	tagRepo.On("UpsertTags", ctx, mock.Anything).Run(func(args mock.Arguments) {
		importedTags = append(importedTags, args.Get(1).([]domain.Tag)...)
	}).Return(nil).Twice()

	counts, err = svc.Import(ctx, store, "admin")
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Accounts)
	assert.Equal(t, 2, counts.Departments)

	require.Len(t, imported, 2)
	for i, a := range imported {
		assert.Equal(t, accounts[i].Code, a.Code)
		assert.Equal(t, accounts[i].Name, a.Name)
		assert.Equal(t, accounts[i].Type, a.Type)
		assert.Equal(t, accounts[i].NormalBalance, a.NormalBalance)
		assert.Equal(t, accounts[i].IsActive, a.IsActive)
	}
	require.Len(t, importedTags, 3)
	assert.Equal(t, hq, importedTags[0].TagID)
	assert.Equal(t, departments[1].TagID, importedTags[2].TagID)
	assert.Equal(t, domain.TagDepartment, importedTags[2].Kind)
	accountRepo.AssertExpectations(t)
	tagRepo.AssertExpectations(t)
}

func TestSnapshotService_ImportMissingKeysAndIDs(t *testing.T) {
	ctx := context.Background()
	store := memorySnapshotStore{
		services.SnapshotKeyLocations: []byte(`[{"name":"Remote"}]`),
	}
	accountRepo := new(MockAccountRepository)
	tagRepo := new(MockTagRepository)
	tagRepo.On("UpsertTags", ctx, mock.MatchedBy(func(tags []domain.Tag) bool {
		return len(tags) == 1 && tags[0].TagID != "" && tags[0].Name == "Remote"
	})).Return(nil).Once()

	counts, err := services.NewSnapshotService(accountRepo, tagRepo).Import(ctx, store, "admin")

	require.NoError(t, err)
	assert.Zero(t, counts.Accounts)
	assert.Equal(t, 1, counts.Locations)
	assert.Zero(t, counts.Departments)
	accountRepo.AssertNotCalled(t, "UpsertAccounts", mock.Anything, mock.Anything)
	tagRepo.AssertExpectations(t)
}

func TestSnapshotService_ImportLegacyTagIDs(t *testing.T) {
	ctx := context.Background()
	store := memorySnapshotStore{
		services.SnapshotKeyLocations:   []byte(`[{"id":"l1","name":"Austin HQ"},{"id":7,"name":"Denver"},{"id":"1B4E28BA-2FA1-11D2-883F-0016D3CCA427","name":"Remote"}]`),
		services.SnapshotKeyDepartments: []byte(`[{"id":"l1","name":"Finance"},{"id":"7","name":"Ops"}]`),
	}

	importTags := func() map[domain.TagKind][]string {
		tagRepo := new(MockTagRepository)
		ids := map[domain.TagKind][]string{}
		tagRepo.On("UpsertTags", ctx, mock.Anything).Run(func(args mock.Arguments) {
			for _, tag := range args.Get(1).([]domain.Tag) {
				ids[tag.Kind] = append(ids[tag.Kind], tag.TagID)
			}
		}).Return(nil).Twice()

		counts, err := services.NewSnapshotService(new(MockAccountRepository), tagRepo).Import(ctx, store, "admin")
		require.NoError(t, err)
		assert.Equal(t, 3, counts.Locations)
		assert.Equal(t, 2, counts.Departments)
		tagRepo.AssertExpectations(t)
		return ids
	}

	first := importTags()
	second := importTags()

	assert.Equal(t, first, second)
	require.Len(t, first[domain.TagLocation], 3)
	require.Len(t, first[domain.TagDepartment], 2)
	for _, ids := range first {
		for _, id := range ids {
			_, err := uuid.Parse(id)
			assert.NoError(t, err, id)
		}
	}
	assert.Equal(t, "1b4e28ba-2fa1-11d2-883f-0016d3cca427", first[domain.TagLocation][2])
	assert.NotEqual(t, first[domain.TagLocation][0], first[domain.TagLocation][1])
	assert.NotEqual(t, first[domain.TagLocation][0], first[domain.TagDepartment][0])
	assert.NotEqual(t, first[domain.TagLocation][1], first[domain.TagDepartment][1])
}

func TestSnapshotService_ImportRejectsMalformedTagID(t *testing.T) {
	store := memorySnapshotStore{services.SnapshotKeyLocations: []byte(`[{"id":{"nested":true},"name":"Austin HQ"}]`)}

	_, err := services.NewSnapshotService(new(MockAccountRepository), new(MockTagRepository)).Import(context.Background(), store, "admin")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSnapshotService_ImportRejectsBadRows(t *testing.T) {
	ctx := context.Background()
	bad, _ := json.Marshal([]map[string]string{{"code": "1000", "name": "Cash", "type": "money"}})

	_, err := services.NewSnapshotService(new(MockAccountRepository), new(MockTagRepository)).
		Import(ctx, memorySnapshotStore{services.SnapshotKeyAccounts: bad}, "admin")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = services.NewSnapshotService(new(MockAccountRepository), new(MockTagRepository)).
		Import(ctx, memorySnapshotStore{services.SnapshotKeyDepartments: []byte(`{"not":"an array"}`)}, "admin")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
