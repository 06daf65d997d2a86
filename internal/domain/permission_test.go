package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPerform_Admin(t *testing.T) {
	admin := &Staff{Role: RoleAdmin, IsActive: true}

	actions := []Action{
		ActionCreateOrder,
		ActionEditDetails,
		ActionAdjustAdvance,
		ActionChangeForwardStatus,
		ActionManageReturnStatus,
		ActionProcessRefund,
		ActionDeleteOrder,
		ActionAdministerStaff,
	}
	for _, a := range actions {
		assert.True(t, CanPerform(admin, a), "admin should be able to %s", a)
	}
}

func TestCanPerform_StaffFlags(t *testing.T) {
	staff := &Staff{
		Role:     RoleStaff,
		IsActive: true,
		Permissions: Permissions{
			CanAddOrders:      true,
			CanProcessRefunds: true,
		},
	}

	assert.True(t, CanPerform(staff, ActionCreateOrder))
	assert.True(t, CanPerform(staff, ActionProcessRefund))
	assert.False(t, CanPerform(staff, ActionEditDetails))
	assert.False(t, CanPerform(staff, ActionAdjustAdvance))
	assert.False(t, CanPerform(staff, ActionChangeForwardStatus))
	assert.False(t, CanPerform(staff, ActionManageReturnStatus))
}

func TestCanPerform_AdminExclusive(t *testing.T) {
	// Even a staff account with every flag set cannot delete orders or
	// manage other accounts.
	staff := &Staff{
		Role:     RoleStaff,
		IsActive: true,
		Permissions: Permissions{
			CanAddOrders:      true,
			CanEditDetails:    true,
			CanAddAdvance:     true,
			CanChangeStatus:   true,
			CanManageReturns:  true,
			CanProcessRefunds: true,
		},
	}

	assert.False(t, CanPerform(staff, ActionDeleteOrder))
	assert.False(t, CanPerform(staff, ActionAdministerStaff))
}

func TestCanPerform_InactiveAndNil(t *testing.T) {
	inactive := &Staff{Role: RoleAdmin, IsActive: false}

	assert.False(t, CanPerform(inactive, ActionCreateOrder))
	assert.False(t, CanPerform(nil, ActionCreateOrder))
}

func TestDefaultStaffPermissions(t *testing.T) {
	assert.True(t, DefaultStaffPermissions.CanAddOrders)
	assert.True(t, DefaultStaffPermissions.CanEditDetails)
	assert.True(t, DefaultStaffPermissions.CanAddAdvance)
	assert.False(t, DefaultStaffPermissions.CanChangeStatus)
	assert.False(t, DefaultStaffPermissions.CanManageReturns)
	assert.False(t, DefaultStaffPermissions.CanProcessRefunds)
}
