package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"vstore-backend/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type StaffUsecase struct {
	staff domain.StaffRepository
}

func NewStaffUsecase(staff domain.StaffRepository) *StaffUsecase {
	return &StaffUsecase{staff: staff}
}

type CreateStaffInput struct {
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Password    string              `json:"password"`
	Role        domain.Role         `json:"role"`
	Permissions *domain.Permissions `json:"permissions"`
}

type UpdateStaffInput struct {
	Name        *string             `json:"name"`
	Password    *string             `json:"password"`
	IsActive    *bool               `json:"isActive"`
	Permissions *domain.Permissions `json:"permissions"`
}

func (uc *StaffUsecase) Create(ctx context.Context, actor *domain.Staff, input CreateStaffInput) (*domain.Staff, error) {
	if !domain.CanPerform(actor, domain.ActionAdministerStaff) {
		return nil, fmt.Errorf("%w: administer staff", domain.ErrPermissionDenied)
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if strings.TrimSpace(input.Name) == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleStaff {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	if _, err := uc.staff.GetByEmail(ctx, input.Email); err == nil {
		return nil, fmt.Errorf("%w: email already in use", domain.ErrValidation)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	perms := domain.DefaultStaffPermissions
	if input.Permissions != nil {
		perms = *input.Permissions
	}

	now := time.Now().UTC()
	account := &domain.Staff{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		IsActive:     true,
		Permissions:  perms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.staff.Create(ctx, account); err != nil {
		return nil, err
	}

	slog.Info("staff account created", "email", account.Email, "role", account.Role, "actor", actor.Email)
	return account.Sanitized(), nil
}

func (uc *StaffUsecase) List(ctx context.Context, actor *domain.Staff) ([]domain.Staff, error) {
	if !domain.CanPerform(actor, domain.ActionAdministerStaff) {
		return nil, fmt.Errorf("%w: administer staff", domain.ErrPermissionDenied)
	}

	members, err := uc.staff.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		members[i].PasswordHash = ""
	}
	return members, nil
}

func (uc *StaffUsecase) Update(ctx context.Context, actor *domain.Staff, id string, input UpdateStaffInput) (*domain.Staff, error) {
	if !domain.CanPerform(actor, domain.ActionAdministerStaff) {
		return nil, fmt.Errorf("%w: administer staff", domain.ErrPermissionDenied)
	}

	account, err := uc.staff.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// An admin cannot deactivate their own account; that path locks the
	// store out of staff administration entirely.
	if input.IsActive != nil && !*input.IsActive && account.ID == actor.ID {
		return nil, fmt.Errorf("%w: cannot deactivate own account", domain.ErrValidation)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		account.Name = *input.Name
	}
	if input.Password != nil {
		if len(*input.Password) < 8 {
			return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		account.PasswordHash = string(hash)
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}
	if input.Permissions != nil {
		account.Permissions = *input.Permissions
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.staff.Update(ctx, account); err != nil {
		return nil, err
	}

	slog.Info("staff account updated", "staffId", id, "actor", actor.Email)
	return account.Sanitized(), nil
}

func (uc *StaffUsecase) Delete(ctx context.Context, actor *domain.Staff, id string) error {
	if !domain.CanPerform(actor, domain.ActionAdministerStaff) {
		return fmt.Errorf("%w: administer staff", domain.ErrPermissionDenied)
	}
	if actor.ID == id {
		return fmt.Errorf("%w: cannot delete own account", domain.ErrValidation)
	}

	if err := uc.staff.Delete(ctx, id); err != nil {
		return err
	}

	slog.Warn("staff account deleted", "staffId", id, "actor", actor.Email)
	return nil
}

// EnsureAdmin seeds the configured admin account on boot when no account
// with that email exists yet. Idempotent across restarts.
func (uc *StaffUsecase) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := uc.staff.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.Staff{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.staff.Create(ctx, admin); err != nil {
		return err
	}

	slog.Info("admin account seeded", "email", email)
	return nil
}
