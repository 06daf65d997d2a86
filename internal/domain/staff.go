package domain

import (
	"context"
	"time"
)

type ContextKey string

const StaffContextKey ContextKey = "staff"

// Roles
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Permissions are the six independent capability flags a staff account
// carries. Admins ignore these entirely.
type Permissions struct {
	CanAddOrders      bool `json:"canAddOrders"`
	CanEditDetails    bool `json:"canEditDetails"`
	CanAddAdvance     bool `json:"canAddAdvance"`
	CanChangeStatus   bool `json:"canChangeStatus"`
	CanManageReturns  bool `json:"canManageReturns"`
	CanProcessRefunds bool `json:"canProcessRefunds"`
}

// DefaultStaffPermissions is the preset applied to newly created staff:
// order entry is on, status/return/refund authority is off.
var DefaultStaffPermissions = Permissions{
	CanAddOrders:   true,
	CanEditDetails: true,
	CanAddAdvance:  true,
}

// Staff is an immutable snapshot of an acting admin or staff member. It is
// produced by staff administration and passed into every gated operation.
type Staff struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"passwordHash,omitempty"`
	Role         Role        `json:"role"`
	IsActive     bool        `json:"isActive"`
	Permissions  Permissions `json:"permissions"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func (s *Staff) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Sanitized strips the credential hash for API responses.
func (s *Staff) Sanitized() *Staff {
	c := *s
	c.PasswordHash = ""
	return &c
}

type StaffRepository interface {
	Create(ctx context.Context, staff *Staff) error
	GetByID(ctx context.Context, id string) (*Staff, error)
	GetByEmail(ctx context.Context, email string) (*Staff, error)
	GetAll(ctx context.Context) ([]Staff, error)
	Update(ctx context.Context, staff *Staff) error
	Delete(ctx context.Context, id string) error
}
