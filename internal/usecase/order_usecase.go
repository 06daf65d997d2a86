package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"vstore-backend/internal/domain"
	"vstore-backend/pkg/cache"
	"vstore-backend/pkg/utils"
)

// CreateOrderInput carries the caller-supplied fields of a new order. The
// financial totals are always derived, never accepted from the caller.
type CreateOrderInput struct {
	Customer      domain.Customer      `json:"customer"`
	Items         []domain.LineItem    `json:"items"`
	AdvanceAmount float64              `json:"advanceAmount"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	AdminNotes    string               `json:"adminNotes"`

	ExpectedDeliveryDate string `json:"expectedDeliveryDate"`
	ExpectedDeliveryTime string `json:"expectedDeliveryTime"`
	CourierTrackingURL   string `json:"courierTrackingUrl"`
}

// OrderPatch is a partial update. Nil means "leave untouched", so callers can
// adjust a single field without re-sending the record.
type OrderPatch struct {
	Customer      *domain.Customer      `json:"customer"`
	Items         *[]domain.LineItem    `json:"items"`
	AdvanceAmount *float64              `json:"advanceAmount"`
	PaymentMethod *domain.PaymentMethod `json:"paymentMethod"`
	AdminNotes    *string               `json:"adminNotes"`

	ExpectedDeliveryDate *string `json:"expectedDeliveryDate"`
	ExpectedDeliveryTime *string `json:"expectedDeliveryTime"`
	CourierTrackingURL   *string `json:"courierTrackingUrl"`
}

// ReturnRequest is the customer-submitted return initiation payload.
type ReturnRequest struct {
	Reason  string            `json:"reason"`
	Type    domain.ReturnType `json:"type"`
	Remarks string            `json:"remarks"`
}

type OrderUsecase struct {
	orders   domain.OrderRepository
	cache    cache.CacheService
	cacheTTL time.Duration
}

func NewOrderUsecase(orders domain.OrderRepository, cacheService cache.CacheService, cacheTTL time.Duration) *OrderUsecase {
	return &OrderUsecase{
		orders:   orders,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func orderCacheKey(id string) string { return "order:" + id }

// Create validates the input, derives the financial fields and stores a new
// order at status Placed with a single opening history entry.
func (uc *OrderUsecase) Create(ctx context.Context, actor *domain.Staff, input CreateOrderInput) (*domain.Order, error) {
	if !domain.CanPerform(actor, domain.ActionCreateOrder) {
		return nil, fmt.Errorf("%w: create order", domain.ErrPermissionDenied)
	}

	if err := input.Customer.Validate(); err != nil {
		return nil, err
	}
	if err := domain.ValidateLineItems(input.Items); err != nil {
		return nil, err
	}
	if input.AdvanceAmount < 0 {
		return nil, fmt.Errorf("%w: advance amount cannot be negative", domain.ErrValidation)
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = domain.PaymentCOD
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:            utils.NewOrderID(),
		Customer:      input.Customer,
		Items:         input.Items,
		AdvanceAmount: input.AdvanceAmount,
		PaymentMethod: input.PaymentMethod,
		CurrentStatus: domain.StatusPlaced,
		History: []domain.HistoryEntry{
			{Status: domain.StatusPlaced, Timestamp: now, Note: "Order placed"},
		},
		AdminNotes:           input.AdminNotes,
		ExpectedDeliveryDate: input.ExpectedDeliveryDate,
		ExpectedDeliveryTime: input.ExpectedDeliveryTime,
		CourierTrackingURL:   input.CourierTrackingURL,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	order.Recalculate()

	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	slog.Info("order created",
		"orderId", order.ID,
		"actor", actor.Email,
		"total", order.TotalAmount)
	return order, nil
}

func (uc *OrderUsecase) Get(ctx context.Context, id string) (*domain.Order, error) {
	if cached, found := uc.cache.Get(orderCacheKey(id)); found {
		if order, ok := cached.(*domain.Order); ok {
			return order.Clone(), nil
		}
	}

	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(orderCacheKey(id), order.Clone(), uc.cacheTTL)
	return order, nil
}

func (uc *OrderUsecase) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}
	return uc.orders.GetAll(ctx, filter)
}

// ApplyEdit merges a partial update into the order. Detail fields and the
// advance amount are gated separately so a cashier account can take payments
// without being able to rewrite the order.
func (uc *OrderUsecase) ApplyEdit(ctx context.Context, actor *domain.Staff, id string, patch OrderPatch) (*domain.Order, error) {
	editsDetails := patch.Customer != nil || patch.Items != nil || patch.PaymentMethod != nil ||
		patch.AdminNotes != nil || patch.ExpectedDeliveryDate != nil ||
		patch.ExpectedDeliveryTime != nil || patch.CourierTrackingURL != nil

	if editsDetails && !domain.CanPerform(actor, domain.ActionEditDetails) {
		return nil, fmt.Errorf("%w: edit order details", domain.ErrPermissionDenied)
	}
	if patch.AdvanceAmount != nil && !domain.CanPerform(actor, domain.ActionAdjustAdvance) {
		return nil, fmt.Errorf("%w: adjust advance", domain.ErrPermissionDenied)
	}

	current, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order := current.Clone()
	if patch.Customer != nil {
		order.Customer = *patch.Customer
	}
	if patch.Items != nil {
		order.Items = *patch.Items
	}
	if patch.PaymentMethod != nil {
		order.PaymentMethod = *patch.PaymentMethod
	}
	if patch.AdminNotes != nil {
		order.AdminNotes = *patch.AdminNotes
	}
	if patch.ExpectedDeliveryDate != nil {
		order.ExpectedDeliveryDate = *patch.ExpectedDeliveryDate
	}
	if patch.ExpectedDeliveryTime != nil {
		order.ExpectedDeliveryTime = *patch.ExpectedDeliveryTime
	}
	if patch.CourierTrackingURL != nil {
		order.CourierTrackingURL = *patch.CourierTrackingURL
	}
	if patch.AdvanceAmount != nil {
		if *patch.AdvanceAmount < 0 {
			return nil, fmt.Errorf("%w: advance amount cannot be negative", domain.ErrValidation)
		}
		order.AdvanceAmount = *patch.AdvanceAmount
	}

	if err := order.Customer.Validate(); err != nil {
		return nil, err
	}
	if err := domain.ValidateLineItems(order.Items); err != nil {
		return nil, err
	}

	order.Recalculate()
	order.UpdatedAt = time.Now().UTC()

	if err := uc.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	uc.cache.Delete(orderCacheKey(id))

	slog.Info("order updated", "orderId", id, "actor", actor.Email)
	return order, nil
}

// RequestTransition moves an order to the target status. The move is checked
// in a fixed sequence: actor capability first, then return-state coherence,
// then graph legality. A failed check leaves the stored order untouched.
func (uc *OrderUsecase) RequestTransition(ctx context.Context, actor *domain.Staff, id string, target domain.OrderStatus, note string, refundMethod domain.RefundMethod) (*domain.Order, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, target)
	}
	if !domain.CanPerform(actor, domain.ActionFor(target)) {
		return nil, fmt.Errorf("%w: move order to %s", domain.ErrPermissionDenied, target)
	}

	current, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hasReturn := current.ReturnDetails != nil
	var returnType domain.ReturnType
	if hasReturn {
		returnType = current.ReturnDetails.Type
	}

	if target.Group() == domain.GroupRefund && (!hasReturn || returnType != domain.ReturnRefund) {
		return nil, fmt.Errorf("%w: order %s has no refund-type return request", domain.ErrInvalidReturnState, id)
	}
	// Return Requested carries a ReturnDetails payload, so it is reachable
	// only through the customer return-initiation flow.
	if target == domain.StatusReturnRequested && !hasReturn {
		return nil, fmt.Errorf("%w: order %s has no return request", domain.ErrInvalidReturnState, id)
	}
	if !domain.IsLegalTransition(current.CurrentStatus, target, hasReturn, returnType) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, current.CurrentStatus, target)
	}

	// Resubmitting the current status is a no-op: no history entry, no write.
	if current.CurrentStatus == target {
		return current, nil
	}

	order := current.Clone()
	order.CurrentStatus = target
	order.History = append(order.History, domain.HistoryEntry{
		Status:    target,
		Timestamp: time.Now().UTC(),
		Note:      note,
	})
	order.UpdatedAt = time.Now().UTC()

	if target == domain.StatusRefundCompleted {
		order.ReturnDetails.RefundStatus = domain.RefundCompleted
		if refundMethod != "" {
			order.ReturnDetails.RefundMethod = refundMethod
		} else {
			order.ReturnDetails.RefundMethod = domain.RefundMethodOriginal
		}
	}

	if err := uc.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	uc.cache.Delete(orderCacheKey(id))

	slog.Info("order status changed",
		"orderId", id,
		"from", current.CurrentStatus,
		"to", target,
		"actor", actor.Email)
	return order, nil
}

// InitiateReturn records a customer's return request. It is the one status
// mutation reachable without credentials, so it revalidates everything and
// accepts only the Delivered -> Return Requested move.
func (uc *OrderUsecase) InitiateReturn(ctx context.Context, id string, req ReturnRequest) (*domain.Order, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, fmt.Errorf("%w: return reason is required", domain.ErrValidation)
	}
	if req.Type != domain.ReturnReplacement && req.Type != domain.ReturnRefund {
		return nil, fmt.Errorf("%w: unknown return type %q", domain.ErrValidation, req.Type)
	}

	current, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// An order carries at most one return request. Checking this here
	// matters: the graph's same-status shortcut would otherwise wave a
	// repeat request through once the order sits at Return Requested.
	if current.ReturnDetails != nil {
		return nil, fmt.Errorf("%w: order %s already has a return request", domain.ErrIllegalTransition, id)
	}
	if !domain.IsLegalTransition(current.CurrentStatus, domain.StatusReturnRequested, false, "") {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, current.CurrentStatus, domain.StatusReturnRequested)
	}

	order := current.Clone()
	order.ReturnDetails = &domain.ReturnDetails{
		Reason:       req.Reason,
		Type:         req.Type,
		Remarks:      req.Remarks,
		RefundStatus: domain.RefundPending,
	}
	order.CurrentStatus = domain.StatusReturnRequested
	order.History = append(order.History, domain.HistoryEntry{
		Status:    domain.StatusReturnRequested,
		Timestamp: time.Now().UTC(),
		Note:      "Return requested by customer: " + req.Reason,
	})
	order.UpdatedAt = time.Now().UTC()

	if err := uc.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	uc.cache.Delete(orderCacheKey(id))

	slog.Info("return initiated", "orderId", id, "type", req.Type, "reason", req.Reason)
	return order, nil
}

// SchedulePickup attaches pickup logistics to an approved return.
func (uc *OrderUsecase) SchedulePickup(ctx context.Context, actor *domain.Staff, id, pickupDate, pickupTime string) (*domain.Order, error) {
	if !domain.CanPerform(actor, domain.ActionManageReturnStatus) {
		return nil, fmt.Errorf("%w: schedule pickup", domain.ErrPermissionDenied)
	}
	if strings.TrimSpace(pickupDate) == "" {
		return nil, fmt.Errorf("%w: pickup date is required", domain.ErrValidation)
	}

	current, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.ReturnDetails == nil {
		return nil, fmt.Errorf("%w: order %s has no return request", domain.ErrInvalidReturnState, id)
	}
	if !domain.IsLegalTransition(current.CurrentStatus, domain.StatusPickupScheduled, true, current.ReturnDetails.Type) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, current.CurrentStatus, domain.StatusPickupScheduled)
	}

	order := current.Clone()
	order.ReturnDetails.PickupDate = pickupDate
	order.ReturnDetails.PickupTime = pickupTime
	// Rescheduling an already scheduled pickup just rewrites the slot;
	// history records status changes only.
	if order.CurrentStatus != domain.StatusPickupScheduled {
		order.CurrentStatus = domain.StatusPickupScheduled
		order.History = append(order.History, domain.HistoryEntry{
			Status:    domain.StatusPickupScheduled,
			Timestamp: time.Now().UTC(),
			Note:      fmt.Sprintf("Pickup scheduled for %s %s", pickupDate, pickupTime),
		})
	}
	order.UpdatedAt = time.Now().UTC()

	if err := uc.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	uc.cache.Delete(orderCacheKey(id))

	slog.Info("pickup scheduled", "orderId", id, "pickupDate", pickupDate)
	return order, nil
}

// Delete permanently removes an order. Admin only, regardless of flags.
func (uc *OrderUsecase) Delete(ctx context.Context, actor *domain.Staff, id string) error {
	if !domain.CanPerform(actor, domain.ActionDeleteOrder) {
		return fmt.Errorf("%w: delete order", domain.ErrPermissionDenied)
	}

	if err := uc.orders.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Delete(orderCacheKey(id))

	slog.Warn("order deleted", "orderId", id, "actor", actor.Email)
	return nil
}
