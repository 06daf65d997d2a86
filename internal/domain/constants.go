package domain

// OrderStatus is the closed set of lifecycle statuses. The string values are
// the customer-facing labels and are stored as-is.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Placed"
	StatusConfirmed      OrderStatus = "Confirmed"
	StatusPacked         OrderStatus = "Packed"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"

	// Return sub-flow
	StatusReturnRequested OrderStatus = "Return Requested"
	StatusReturnApproved  OrderStatus = "Return Approved"
	StatusReturnRejected  OrderStatus = "Return Rejected"
	StatusPickupScheduled OrderStatus = "Pickup Scheduled"
	StatusReturned        OrderStatus = "Returned"

	// Refund sub-flow
	StatusRefundInitiated OrderStatus = "Refund Initiated"
	StatusRefundCompleted OrderStatus = "Refund Completed"
)

// Payment Methods
type PaymentMethod string

const (
	PaymentCOD     PaymentMethod = "Cash on Delivery"
	PaymentPrepaid PaymentMethod = "Prepaid"
	PaymentPartial PaymentMethod = "Partial Payment"
)

// Return Types
type ReturnType string

const (
	ReturnReplacement ReturnType = "Replacement"
	ReturnRefund      ReturnType = "Refund"
)

// Refund Statuses
type RefundStatus string

const (
	RefundPending   RefundStatus = "Pending"
	RefundCompleted RefundStatus = "Completed"
)

// Refund Methods
type RefundMethod string

const (
	RefundMethodOriginal   RefundMethod = "Original Payment Source"
	RefundMethodManualUPI  RefundMethod = "Manual UPI Transfer"
	RefundMethodManualBank RefundMethod = "Manual Bank Transfer"
	RefundMethodCash       RefundMethod = "Cash"
)

// List Exports for API
var OrderStatuses = []OrderStatus{
	StatusPlaced,
	StatusConfirmed,
	StatusPacked,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
	StatusReturnRequested,
	StatusReturnApproved,
	StatusReturnRejected,
	StatusPickupScheduled,
	StatusReturned,
	StatusRefundInitiated,
	StatusRefundCompleted,
}

var PaymentMethods = []PaymentMethod{
	PaymentCOD,
	PaymentPrepaid,
	PaymentPartial,
}

var ReturnTypes = []ReturnType{
	ReturnReplacement,
	ReturnRefund,
}

var RefundMethods = []RefundMethod{
	RefundMethodOriginal,
	RefundMethodManualUPI,
	RefundMethodManualBank,
	RefundMethodCash,
}

// ReturnReasons is the fixed catalog presented to customers when they
// request a return.
var ReturnReasons = []string{
	"Damaged Product",
	"Wrong Item Received",
	"Size Issue",
	"Quality Not as Expected",
	"Others",
}
