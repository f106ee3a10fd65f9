package services

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/SscSPs/roundup_ledger/internal/platform/config"
	"github.com/SscSPs/roundup_ledger/internal/utils"
)

// authService checks the configured administrator credential and issues JWTs.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvc {
	return &authService{BaseService: newBaseService(), cfg: cfg}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if s.cfg.AdminPasswordHash == "" {
		s.LogWarn(ctx, "Login attempted but no admin password hash is configured")
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	// bcrypt runs even when the username is wrong.
	passOK := utils.CheckPasswordHash(password, s.cfg.AdminPasswordHash)
	if !userOK || !passOK {
		s.LogWarn(ctx, "Invalid login attempt", slog.String("username", username))
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	expiry := s.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, apperrors.NewAppError(500, "failed to generate token", err)
	}

	s.LogInfo(ctx, "Admin logged in", slog.String("username", username))
	return token, expiry, nil
}
