package domain

// The status graph is two disjoint funnels plus cross-links:
//
//	Placed -> Confirmed -> Packed -> Shipped -> Out for Delivery -> Delivered
//	   (forward moves are lenient: any forward target is reachable from any
//	    non-terminal forward status; Cancelled is reachable from anywhere)
//
//	Delivered -> Return Requested -> Return Approved -> Pickup Scheduled -> Returned
//	                      \________________/
//	                              -> Return Rejected (terminal)
//
//	Returned -> Refund Initiated -> Refund Completed (terminal)
//	   (refund moves require a return request of type Refund)

// StatusGroup partitions statuses into the three sub-graphs. The group of a
// *target* status alone decides which rules govern the move and which
// capability gates it.
type StatusGroup int

const (
	GroupForward StatusGroup = iota
	GroupReturn
	GroupRefund
)

var statusGroups = map[OrderStatus]StatusGroup{
	StatusPlaced:          GroupForward,
	StatusConfirmed:       GroupForward,
	StatusPacked:          GroupForward,
	StatusShipped:         GroupForward,
	StatusOutForDelivery:  GroupForward,
	StatusDelivered:       GroupForward,
	StatusCancelled:       GroupForward,
	StatusReturnRequested: GroupReturn,
	StatusReturnApproved:  GroupReturn,
	StatusReturnRejected:  GroupReturn,
	StatusPickupScheduled: GroupReturn,
	StatusReturned:        GroupReturn,
	StatusRefundInitiated: GroupRefund,
	StatusRefundCompleted: GroupRefund,
}

func (s OrderStatus) Group() StatusGroup {
	return statusGroups[s]
}

func (s OrderStatus) Valid() bool {
	_, ok := statusGroups[s]
	return ok
}

// IsTerminal reports whether the status has no legal outgoing transition.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusReturnRejected, StatusRefundCompleted:
		return true
	}
	return false
}

// IsLegalTransition decides whether an order currently at `from` may move to
// `to`. hasReturn and returnType describe the order's return request, if any.
func IsLegalTransition(from, to OrderStatus, hasReturn bool, returnType ReturnType) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from.IsTerminal() {
		return false
	}
	// Resubmitting the current status is a legal no-op.
	if from == to {
		return true
	}

	switch to {
	case StatusCancelled:
		return true
	case StatusPlaced, StatusConfirmed, StatusPacked, StatusShipped, StatusOutForDelivery, StatusDelivered:
		return from.Group() == GroupForward
	case StatusReturnRequested:
		return from == StatusDelivered && !hasReturn
	case StatusReturnApproved:
		return hasReturn && from == StatusReturnRequested
	case StatusReturnRejected:
		return hasReturn && (from == StatusReturnRequested || from == StatusReturnApproved)
	case StatusPickupScheduled:
		return hasReturn && from == StatusReturnApproved
	case StatusReturned:
		return hasReturn && from == StatusPickupScheduled
	case StatusRefundInitiated:
		return hasReturn && returnType == ReturnRefund && from == StatusReturned
	case StatusRefundCompleted:
		return hasReturn && returnType == ReturnRefund && from == StatusRefundInitiated
	}
	return false
}

// ActionFor maps a target status to the capability that gates moving an
// order there.
func ActionFor(target OrderStatus) Action {
	switch target.Group() {
	case GroupReturn:
		return ActionManageReturnStatus
	case GroupRefund:
		return ActionProcessRefund
	default:
		return ActionChangeForwardStatus
	}
}
