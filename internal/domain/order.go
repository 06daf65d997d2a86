package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type OrderFilter struct {
	Page   int
	Limit  int
	Status OrderStatus
	Search string
}

// --- Order Entities ---

type Customer struct {
	FullName     string `json:"fullName"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
}

func (c Customer) Validate() error {
	if strings.TrimSpace(c.FullName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if strings.TrimSpace(c.MobileNumber) == "" {
		return fmt.Errorf("%w: customer mobile number is required", ErrValidation)
	}
	return nil
}

// LineItem has no identity beyond its position in the order.
type LineItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

func (li LineItem) Validate() error {
	if strings.TrimSpace(li.Name) == "" {
		return fmt.Errorf("%w: line item name is required", ErrValidation)
	}
	if li.Quantity < 1 {
		return fmt.Errorf("%w: line item quantity must be at least 1", ErrValidation)
	}
	if li.UnitPrice < 0 {
		return fmt.Errorf("%w: line item price cannot be negative", ErrValidation)
	}
	return nil
}

func ValidateLineItems(items []LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: order needs at least one line item", ErrValidation)
	}
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// HistoryEntry is one step of the order's audit trail. Entries are
// append-only and never rewritten.
type HistoryEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Note      string      `json:"note,omitempty"`
}

// ReturnDetails exists only after a customer initiates a return; an order
// carries at most one.
type ReturnDetails struct {
	Reason       string       `json:"reason"`
	Type         ReturnType   `json:"type"`
	Remarks      string       `json:"remarks,omitempty"`
	PickupDate   string       `json:"pickupDate,omitempty"`
	PickupTime   string       `json:"pickupTime,omitempty"`
	RefundStatus RefundStatus `json:"refundStatus"`
	RefundMethod RefundMethod `json:"refundMethod,omitempty"`
}

type Order struct {
	ID            string         `json:"id"`
	Customer      Customer       `json:"customer"`
	Items         []LineItem     `json:"items"`
	TotalAmount   float64        `json:"totalAmount"`
	AdvanceAmount float64        `json:"advanceAmount"`
	BalanceAmount float64        `json:"balanceAmount"`
	PaymentMethod PaymentMethod  `json:"paymentMethod"`
	CurrentStatus OrderStatus    `json:"currentStatus"`
	History       []HistoryEntry `json:"history"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`

	AdminNotes string `json:"adminNotes,omitempty"`

	// Logistics
	ExpectedDeliveryDate string `json:"expectedDeliveryDate,omitempty"`
	ExpectedDeliveryTime string `json:"expectedDeliveryTime,omitempty"`
	CourierTrackingURL   string `json:"courierTrackingUrl,omitempty"`

	ReturnDetails *ReturnDetails `json:"returnDetails,omitempty"`
}

// Recalculate re-derives the financial fields from the line items and the
// advance amount. Must run after every item or advance mutation.
func (o *Order) Recalculate() {
	o.TotalAmount = ComputeTotal(o.Items)
	o.BalanceAmount = ComputeBalance(o.TotalAmount, o.AdvanceAmount)
}

// Clone deep-copies the order so a rejected mutation never leaks partial
// changes into the caller's snapshot.
func (o *Order) Clone() *Order {
	c := *o
	c.Items = make([]LineItem, len(o.Items))
	copy(c.Items, o.Items)
	c.History = make([]HistoryEntry, len(o.History))
	copy(c.History, o.History)
	if o.ReturnDetails != nil {
		rd := *o.ReturnDetails
		c.ReturnDetails = &rd
	}
	return &c
}

// Public returns a copy safe for the customer tracking page: internal notes
// are stripped, everything else is customer-visible data.
func (o *Order) Public() *Order {
	c := o.Clone()
	c.AdminNotes = ""
	return c
}

type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	GetAll(ctx context.Context, filter OrderFilter) ([]Order, int64, error)
	// Save replaces the whole stored record (last writer wins).
	Save(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]Order, error)
}
