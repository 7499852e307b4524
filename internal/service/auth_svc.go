package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"bizops/internal/auth"
	"bizops/internal/middleware"
	"bizops/pkg/apperr"
	"bizops/pkg/links"
)

// PasswordResetCooldown is the minimum gap between reset mails to one address.
const PasswordResetCooldown = 60 * time.Second

// AuthService covers the auth flows the API proxies to the provider.
type AuthService struct {
	resetter auth.PasswordResetter
	limiter  *middleware.KeyedLimiter
	links    *links.Resolver
	logger   *zap.Logger
}

func NewAuthService(resetter auth.PasswordResetter, limiter *middleware.KeyedLimiter, resolver *links.Resolver, logger *zap.Logger) *AuthService {
	return &AuthService{resetter: resetter, limiter: limiter, links: resolver, logger: logger}
}

// ForgotPassword asks the provider to mail a reset link that lands on
// /reset-password. One request per address per cooldown; the limit is
// released again when the provider call fails.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	key := "forgot-password:" + strings.ToLower(strings.TrimSpace(email))

	res := s.limiter.Check(key, PasswordResetCooldown)
	if !res.Allowed {
		secs := int(res.RetryAfter.Seconds()) + 1
		return apperr.TooManyRequests(fmt.Sprintf("Please wait %d seconds before requesting another reset email", secs))
	}

	redirect := s.links.Resolve("/reset-password")
	if err := s.resetter.SendPasswordReset(ctx, strings.TrimSpace(email), redirect); err != nil {
		s.limiter.Reset(key)
		s.logger.Error("password reset request failed", zap.Error(err))
		return apperr.From(err)
	}
	return nil
}
