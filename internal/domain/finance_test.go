package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	items := []LineItem{
		{Name: "Widget", Quantity: 2, UnitPrice: 500},
		{Name: "Gadget", Quantity: 1, UnitPrice: 249.50},
	}
	assert.Equal(t, 1249.50, ComputeTotal(items))
	assert.Equal(t, 0.0, ComputeTotal(nil))
}

func TestComputeBalance(t *testing.T) {
	assert.Equal(t, 700.0, ComputeBalance(1000, 300))
	assert.Equal(t, 0.0, ComputeBalance(1000, 1000))
	// Over-advance floors at zero instead of going negative
	assert.Equal(t, 0.0, ComputeBalance(1000, 1500))
}

func TestOrderRecalculate(t *testing.T) {
	order := &Order{
		Items: []LineItem{
			{Name: "Widget", Quantity: 2, UnitPrice: 500},
		},
		AdvanceAmount: 200,
	}
	order.Recalculate()

	assert.Equal(t, 1000.0, order.TotalAmount)
	assert.Equal(t, 800.0, order.BalanceAmount)

	order.Items = append(order.Items, LineItem{Name: "Gadget", Quantity: 1, UnitPrice: 100})
	order.Recalculate()

	assert.Equal(t, 1100.0, order.TotalAmount)
	assert.Equal(t, 900.0, order.BalanceAmount)
}

func TestOrderClone_IsDeep(t *testing.T) {
	original := &Order{
		ID:      "ORD-1",
		Items:   []LineItem{{Name: "Widget", Quantity: 1, UnitPrice: 10}},
		History: []HistoryEntry{{Status: StatusPlaced}},
		ReturnDetails: &ReturnDetails{
			Reason: "Damaged Product",
			Type:   ReturnRefund,
		},
	}

	clone := original.Clone()
	clone.Items[0].Quantity = 99
	clone.History[0].Status = StatusCancelled
	clone.ReturnDetails.Reason = "changed"

	assert.Equal(t, 1, original.Items[0].Quantity)
	assert.Equal(t, StatusPlaced, original.History[0].Status)
	assert.Equal(t, "Damaged Product", original.ReturnDetails.Reason)
}

func TestOrderPublic_StripsAdminNotes(t *testing.T) {
	order := &Order{ID: "ORD-1", AdminNotes: "VIP customer, waive shipping"}
	public := order.Public()

	assert.Empty(t, public.AdminNotes)
	assert.Equal(t, "VIP customer, waive shipping", order.AdminNotes)
}
