package dto

import (
	"time"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new GL account.
type CreateAccountRequest struct {
	Code          string `json:"code" binding:"required,max=16"`
	Name          string `json:"name" binding:"required,max=255"`
	Type          string `json:"type" binding:"required,accounttype"`
	NormalBalance string `json:"normalBalance" binding:"omitempty,normalbalance"` // Optional, conventional side when empty
	Description   string `json:"description"`                                     // Optional
	IsActive      *bool  `json:"isActive"`                                        // Optional, defaults to true
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
// Version must be the version the client last read.
type UpdateAccountRequest struct {
	Name          *string `json:"name" binding:"omitempty,max=255"`
	Type          *string `json:"type" binding:"omitempty,accounttype"`
	NormalBalance *string `json:"normalBalance" binding:"omitempty,normalbalance"`
	Description   *string `json:"description"`
	IsActive      *bool   `json:"isActive"`
	Version       int64   `json:"version" binding:"required,min=1"`
}

// DeleteAccountParams carries the version for a delete.
type DeleteAccountParams struct {
	Version int64 `form:"version" binding:"required,min=1"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	NormalBalance string    `json:"normalBalance"`
	Description   string    `json:"description"`
	IsActive      bool      `json:"isActive"`
	Version       int64     `json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Code:          acc.Code,
		Name:          acc.Name,
		Type:          string(acc.Type),
		NormalBalance: string(acc.NormalBalance),
		Description:   acc.Description,
		IsActive:      acc.IsActive,
		Version:       acc.Version,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	IncludeInactive bool `form:"includeInactive,default=false"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
