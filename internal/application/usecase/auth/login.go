package auth

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hengtai25/portfolio-api/internal/config"
	"github.com/hengtai25/portfolio-api/pkg/apperror"
	"github.com/hengtai25/portfolio-api/pkg/auth"
	"github.com/hengtai25/portfolio-api/pkg/logger"
)

// LoginUseCase authenticates the single site operator. Credentials come
// from configuration, not a user table; there is exactly one admin.
type LoginUseCase struct {
	adminEmail        string
	adminPasswordHash string
	jwtSvc            *auth.JWTService
	logger            logger.Logger
}

func NewLoginUseCase(cfg config.Config, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		adminEmail:        cfg.Auth.AdminEmail,
		adminPasswordHash: cfg.Auth.AdminPasswordHash,
		jwtSvc:            jwtSvc,
		logger:            log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if uc.adminEmail == "" || uc.adminPasswordHash == "" {
		return nil, apperror.NewInternal("admin credentials are not configured", nil)
	}

	if !strings.EqualFold(input.Email, uc.adminEmail) {
		return nil, apperror.NewUnauthorized("email or password is incorrect", nil)
	}

	if !auth.CheckPasswordHash(input.Password, uc.adminPasswordHash) {
		return nil, apperror.NewUnauthorized("email or password is incorrect", nil)
	}

	token, err := uc.jwtSvc.GenerateToken(uc.adminEmail)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("email", uc.adminEmail))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &LoginOutput{AccessToken: token}, nil
}
