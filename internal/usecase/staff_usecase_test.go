package usecase

import (
	"context"
	"fmt"
	"testing"

	"vstore-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeStaffRepo struct {
	members map[string]*domain.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{members: make(map[string]*domain.Staff)}
}

func (r *fakeStaffRepo) Create(_ context.Context, staff *domain.Staff) error {
	c := *staff
	r.members[staff.ID] = &c
	return nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (*domain.Staff, error) {
	staff, ok := r.members[id]
	if !ok {
		return nil, fmt.Errorf("%w: staff %s", domain.ErrNotFound, id)
	}
	c := *staff
	return &c, nil
}

func (r *fakeStaffRepo) GetByEmail(_ context.Context, email string) (*domain.Staff, error) {
	for _, staff := range r.members {
		if staff.Email == email {
			c := *staff
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: staff account", domain.ErrNotFound)
}

func (r *fakeStaffRepo) GetAll(_ context.Context) ([]domain.Staff, error) {
	out := []domain.Staff{}
	for _, staff := range r.members {
		out = append(out, *staff)
	}
	return out, nil
}

func (r *fakeStaffRepo) Update(_ context.Context, staff *domain.Staff) error {
	if _, ok := r.members[staff.ID]; !ok {
		return fmt.Errorf("%w: staff %s", domain.ErrNotFound, staff.ID)
	}
	c := *staff
	r.members[staff.ID] = &c
	return nil
}

func (r *fakeStaffRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.members[id]; !ok {
		return fmt.Errorf("%w: staff %s", domain.ErrNotFound, id)
	}
	delete(r.members, id)
	return nil
}

func TestCreateStaff(t *testing.T) {
	repo := newFakeStaffRepo()
	uc := NewStaffUsecase(repo)

	account, err := uc.Create(context.Background(), adminActor, CreateStaffInput{
		Name:     "Ravi Kumar",
		Email:    "Ravi@Store.Test",
		Password: "s3cret-pass",
		Role:     domain.RoleStaff,
	})
	require.NoError(t, err)

	assert.Equal(t, "ravi@store.test", account.Email, "email should be normalized")
	assert.True(t, account.IsActive)
	assert.Empty(t, account.PasswordHash, "response must not carry the hash")
	assert.Equal(t, domain.DefaultStaffPermissions, account.Permissions)

	stored, err := repo.GetByEmail(context.Background(), "ravi@store.test")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))
}

func TestCreateStaff_Validation(t *testing.T) {
	uc := NewStaffUsecase(newFakeStaffRepo())

	tests := []struct {
		name  string
		input CreateStaffInput
	}{
		{"missing name", CreateStaffInput{Email: "a@b.test", Password: "longenough", Role: domain.RoleStaff}},
		{"missing email", CreateStaffInput{Name: "A", Password: "longenough", Role: domain.RoleStaff}},
		{"short password", CreateStaffInput{Name: "A", Email: "a@b.test", Password: "short", Role: domain.RoleStaff}},
		{"bad role", CreateStaffInput{Name: "A", Email: "a@b.test", Password: "longenough", Role: "manager"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), adminActor, tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreateStaff_DuplicateEmail(t *testing.T) {
	uc := NewStaffUsecase(newFakeStaffRepo())

	input := CreateStaffInput{Name: "A", Email: "a@b.test", Password: "longenough", Role: domain.RoleStaff}
	_, err := uc.Create(context.Background(), adminActor, input)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), adminActor, input)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStaffAdministration_AdminOnly(t *testing.T) {
	uc := NewStaffUsecase(newFakeStaffRepo())

	_, err := uc.Create(context.Background(), entryClerk, CreateStaffInput{
		Name: "A", Email: "a@b.test", Password: "longenough", Role: domain.RoleStaff,
	})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = uc.List(context.Background(), entryClerk)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	err = uc.Delete(context.Background(), entryClerk, "whatever")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestUpdateStaff_PermissionsAndDeactivation(t *testing.T) {
	repo := newFakeStaffRepo()
	uc := NewStaffUsecase(repo)

	account, err := uc.Create(context.Background(), adminActor, CreateStaffInput{
		Name: "A", Email: "a@b.test", Password: "longenough", Role: domain.RoleStaff,
	})
	require.NoError(t, err)

	perms := domain.Permissions{CanChangeStatus: true}
	inactive := false
	updated, err := uc.Update(context.Background(), adminActor, account.ID, UpdateStaffInput{
		Permissions: &perms,
		IsActive:    &inactive,
	})
	require.NoError(t, err)

	assert.False(t, updated.IsActive)
	assert.True(t, updated.Permissions.CanChangeStatus)
	assert.False(t, updated.Permissions.CanAddOrders)
}

func TestUpdateStaff_CannotDeactivateSelf(t *testing.T) {
	repo := newFakeStaffRepo()
	uc := NewStaffUsecase(repo)
	require.NoError(t, repo.Create(context.Background(), adminActor))

	inactive := false
	_, err := uc.Update(context.Background(), adminActor, adminActor.ID, UpdateStaffInput{IsActive: &inactive})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteStaff_CannotDeleteSelf(t *testing.T) {
	uc := NewStaffUsecase(newFakeStaffRepo())

	err := uc.Delete(context.Background(), adminActor, adminActor.ID)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEnsureAdmin(t *testing.T) {
	repo := newFakeStaffRepo()
	uc := NewStaffUsecase(repo)

	require.NoError(t, uc.EnsureAdmin(context.Background(), "Owner", "owner@store.test", "bootpassword"))

	seeded, err := repo.GetByEmail(context.Background(), "owner@store.test")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, seeded.Role)
	assert.True(t, seeded.IsActive)

	// Second boot must not duplicate or overwrite.
	require.NoError(t, uc.EnsureAdmin(context.Background(), "Owner", "owner@store.test", "differentpass"))
	again, err := repo.GetByEmail(context.Background(), "owner@store.test")
	require.NoError(t, err)
	assert.Equal(t, seeded.PasswordHash, again.PasswordHash)

	// Blank config skips seeding entirely.
	require.NoError(t, uc.EnsureAdmin(context.Background(), "", "", ""))
}
