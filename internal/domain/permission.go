package domain

// Action enumerates every gated mutation in the system. Keeping the set
// closed means each call site names exactly what it is about to do instead
// of comparing roles ad hoc.
type Action string

const (
	ActionCreateOrder         Action = "create_order"
	ActionEditDetails         Action = "edit_details"
	ActionAdjustAdvance       Action = "adjust_advance"
	ActionChangeForwardStatus Action = "change_forward_status"
	ActionManageReturnStatus  Action = "manage_return_status"
	ActionProcessRefund       Action = "process_refund"
	ActionDeleteOrder         Action = "delete_order"
	ActionAdministerStaff     Action = "administer_staff"
)

// CanPerform resolves whether the actor may perform the action. Admins hold
// every capability. DeleteOrder and AdministerStaff are admin-exclusive no
// matter how a staff account is configured.
func CanPerform(actor *Staff, action Action) bool {
	if actor == nil || !actor.IsActive {
		return false
	}
	if actor.IsAdmin() {
		return true
	}

	switch action {
	case ActionCreateOrder:
		return actor.Permissions.CanAddOrders
	case ActionEditDetails:
		return actor.Permissions.CanEditDetails
	case ActionAdjustAdvance:
		return actor.Permissions.CanAddAdvance
	case ActionChangeForwardStatus:
		return actor.Permissions.CanChangeStatus
	case ActionManageReturnStatus:
		return actor.Permissions.CanManageReturns
	case ActionProcessRefund:
		return actor.Permissions.CanProcessRefunds
	}
	return false
}
