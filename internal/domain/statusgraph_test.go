package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLegalTransition_ForwardFlow(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"placed to confirmed", StatusPlaced, StatusConfirmed, true},
		{"confirmed to packed", StatusConfirmed, StatusPacked, true},
		{"skip ahead placed to shipped", StatusPlaced, StatusShipped, true},
		{"move backwards shipped to confirmed", StatusShipped, StatusConfirmed, true},
		{"placed straight to delivered", StatusPlaced, StatusDelivered, true},
		{"same status is a no-op", StatusPacked, StatusPacked, true},
		{"cancel from placed", StatusPlaced, StatusCancelled, true},
		{"cancel from out for delivery", StatusOutForDelivery, StatusCancelled, true},
		{"nothing leaves cancelled", StatusCancelled, StatusPlaced, false},
		{"cancelled cannot re-cancel", StatusCancelled, StatusCancelled, false},
		{"unknown target", StatusPlaced, OrderStatus("Lost"), false},
		{"unknown source", OrderStatus("Lost"), StatusPlaced, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLegalTransition(tt.from, tt.to, false, ""))
		})
	}
}

func TestIsLegalTransition_ReturnFlow(t *testing.T) {
	tests := []struct {
		name      string
		from      OrderStatus
		to        OrderStatus
		hasReturn bool
		want      bool
	}{
		{"request return when delivered", StatusDelivered, StatusReturnRequested, false, true},
		{"no second return request", StatusDelivered, StatusReturnRequested, true, false},
		{"no return before delivery", StatusShipped, StatusReturnRequested, false, false},
		{"approve requested return", StatusReturnRequested, StatusReturnApproved, true, true},
		{"reject requested return", StatusReturnRequested, StatusReturnRejected, true, true},
		{"reject approved return", StatusReturnApproved, StatusReturnRejected, true, true},
		{"schedule pickup after approval", StatusReturnApproved, StatusPickupScheduled, true, true},
		{"no pickup before approval", StatusReturnRequested, StatusPickupScheduled, true, false},
		{"returned after pickup", StatusPickupScheduled, StatusReturned, true, true},
		{"no skipping to returned", StatusReturnApproved, StatusReturned, true, false},
		{"return flow cannot rewind", StatusReturnApproved, StatusReturnRequested, true, false},
		{"rejected is terminal", StatusReturnRejected, StatusReturnApproved, true, false},
		{"return statuses need a return request", StatusReturnRequested, StatusReturnApproved, false, false},
		{"forward targets blocked mid-return", StatusReturnApproved, StatusShipped, true, false},
		{"cancel still allowed mid-return", StatusReturnRequested, StatusCancelled, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLegalTransition(tt.from, tt.to, tt.hasReturn, ReturnReplacement))
		})
	}
}

func TestIsLegalTransition_RefundFlow(t *testing.T) {
	tests := []struct {
		name       string
		from       OrderStatus
		to         OrderStatus
		returnType ReturnType
		want       bool
	}{
		{"initiate refund after return received", StatusReturned, StatusRefundInitiated, ReturnRefund, true},
		{"complete initiated refund", StatusRefundInitiated, StatusRefundCompleted, ReturnRefund, true},
		{"replacement never refunds", StatusReturned, StatusRefundInitiated, ReturnReplacement, false},
		{"no skipping to completed", StatusReturned, StatusRefundCompleted, ReturnRefund, false},
		{"no refund before items return", StatusPickupScheduled, StatusRefundInitiated, ReturnRefund, false},
		{"completed refund is terminal", StatusRefundCompleted, StatusRefundInitiated, ReturnRefund, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLegalTransition(tt.from, tt.to, true, tt.returnType))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []OrderStatus{StatusCancelled, StatusReturnRejected, StatusRefundCompleted}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), "%s should be terminal", s)
	}

	for _, s := range OrderStatuses {
		switch s {
		case StatusCancelled, StatusReturnRejected, StatusRefundCompleted:
			continue
		}
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}
}

func TestActionFor(t *testing.T) {
	assert.Equal(t, ActionChangeForwardStatus, ActionFor(StatusShipped))
	assert.Equal(t, ActionChangeForwardStatus, ActionFor(StatusCancelled))
	assert.Equal(t, ActionManageReturnStatus, ActionFor(StatusReturnApproved))
	assert.Equal(t, ActionManageReturnStatus, ActionFor(StatusPickupScheduled))
	assert.Equal(t, ActionProcessRefund, ActionFor(StatusRefundInitiated))
	assert.Equal(t, ActionProcessRefund, ActionFor(StatusRefundCompleted))
}
