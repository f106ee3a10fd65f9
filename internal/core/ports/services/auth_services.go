package services

import (
	"context"
	"time"
)

// AuthSvc authenticates the administrator and issues access tokens.
type AuthSvc interface {
	// Login checks the credentials and returns a signed access token and its expiry.
	// Returns apperrors.ErrUnauthorized on bad credentials.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}
