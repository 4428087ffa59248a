package admin

import (
	"context"

	"shotz/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Login checks the passcode by exact string comparison and, on success,
// issues an opaque session token cached for the configured session lifetime.
func (s *DefaultAdminService) Login(passcode string) (string, error) {
	if s.Passcode == "" || passcode != s.Passcode {
		s.Logger.Warn("Admin login rejected")
		return "", ErrInvalidPasscode
	}

	token := uuid.New().String()
	ctx := context.Background()
	if err := s.AuthCache.Set(ctx, utils.AdminSessionPrefix+token, "1", s.SessionTTL).Err(); err != nil {
		return "", err
	}
	s.Logger.Info("Admin session started")
	return token, nil
}

// Logout ends the admin session for the given token.
func (s *DefaultAdminService) Logout(token string) error {
	ctx := context.Background()
	return s.AuthCache.Del(ctx, utils.AdminSessionPrefix+token).Err()
}

// IsAuthenticated reports whether the token belongs to a live admin session.
func (s *DefaultAdminService) IsAuthenticated(token string) bool {
	if token == "" {
		return false
	}
	ctx := context.Background()
	ok, err := s.AuthCache.Exists(ctx, utils.AdminSessionPrefix+token).Result()
	if err != nil {
		s.Logger.Warn("Admin session lookup failed", zap.Error(err))
		return false
	}
	return ok == 1
}
