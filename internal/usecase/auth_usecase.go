package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vstore-backend/internal/domain"
	"vstore-backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	staff       domain.StaffRepository
	tokenExpiry time.Duration
}

func NewAuthUsecase(staff domain.StaffRepository, tokenExpiry time.Duration) *AuthUsecase {
	return &AuthUsecase{staff: staff, tokenExpiry: tokenExpiry}
}

type LoginResult struct {
	Token string        `json:"token"`
	Staff *domain.Staff `json:"staff"`
}

// Login verifies credentials and issues a JWT. Failures are deliberately
// indistinguishable: unknown email, bad password and deactivated account all
// return the same denial.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	account, err := uc.staff.GetByEmail(ctx, email)
	if err != nil {
		slog.Warn("login rejected", "email", email, "reason", "unknown account")
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrPermissionDenied)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		slog.Warn("login rejected", "email", email, "reason", "bad password")
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrPermissionDenied)
	}

	if !account.IsActive {
		slog.Warn("login rejected", "email", email, "reason", "account deactivated")
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrPermissionDenied)
	}

	token, err := utils.GenerateJWT(account.ID, account.Email, string(account.Role), uc.tokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	slog.Info("login succeeded", "email", email, "role", account.Role)
	return &LoginResult{Token: token, Staff: account.Sanitized()}, nil
}

// Identify resolves a token's subject to the current staff record. Reading
// from the store on every request means permission edits and deactivation
// take effect immediately instead of waiting for token expiry.
func (uc *AuthUsecase) Identify(ctx context.Context, staffID string) (*domain.Staff, error) {
	account, err := uc.staff.GetByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrPermissionDenied)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account deactivated", domain.ErrPermissionDenied)
	}
	return account, nil
}
