package usecase

import (
	"context"
	"testing"
	"time"

	"vstore-backend/internal/domain"
	"vstore-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedStaffAccount(t *testing.T, repo *fakeStaffRepo, email, password string, active bool) *domain.Staff {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	account := &domain.Staff{
		ID:           "staff-" + email,
		Name:         "Test Staff",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleStaff,
		IsActive:     active,
	}
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}

func TestLogin(t *testing.T) {
	utils.SetSecret("test-secret")
	repo := newFakeStaffRepo()
	seedStaffAccount(t, repo, "clerk@store.test", "correct-horse", true)
	uc := NewAuthUsecase(repo, time.Hour)

	result, err := uc.Login(context.Background(), "clerk@store.test", "correct-horse")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Empty(t, result.Staff.PasswordHash)

	claims, err := utils.ValidateJWT(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "staff-clerk@store.test", claims["sub"])
}

func TestLogin_Rejections(t *testing.T) {
	utils.SetSecret("test-secret")
	repo := newFakeStaffRepo()
	seedStaffAccount(t, repo, "clerk@store.test", "correct-horse", true)
	seedStaffAccount(t, repo, "gone@store.test", "correct-horse", false)
	uc := NewAuthUsecase(repo, time.Hour)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@store.test", "correct-horse"},
		{"wrong password", "clerk@store.test", "wrong"},
		{"deactivated account", "gone@store.test", "correct-horse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, domain.ErrPermissionDenied)
		})
	}
}

func TestIdentify(t *testing.T) {
	repo := newFakeStaffRepo()
	active := seedStaffAccount(t, repo, "clerk@store.test", "pw", true)
	inactive := seedStaffAccount(t, repo, "gone@store.test", "pw", false)
	uc := NewAuthUsecase(repo, time.Hour)

	resolved, err := uc.Identify(context.Background(), active.ID)
	require.NoError(t, err)
	assert.Equal(t, active.Email, resolved.Email)

	_, err = uc.Identify(context.Background(), inactive.ID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = uc.Identify(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
