package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vstore-backend/internal/domain"
	"vstore-backend/internal/usecase"
)

type AdminOrderHandler struct {
	orderUC        *usecase.OrderUsecase
	notificationUC *usecase.NotificationUsecase
}

func NewAdminOrderHandler(orderUC *usecase.OrderUsecase, notificationUC *usecase.NotificationUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{orderUC: orderUC, notificationUC: notificationUC}
}

func actor(r *http.Request) *domain.Staff {
	staff, _ := r.Context().Value(domain.StaffContextKey).(*domain.Staff)
	return staff
}

// GET /api/v1/admin/orders
func (h *AdminOrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 20
	}

	filter := domain.OrderFilter{
		Page:   page,
		Limit:  limit,
		Status: domain.OrderStatus(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("search"),
	}

	orders, total, err := h.orderUC.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"orders":     orders,
		"pagination": domain.NewPagination(page, limit, total),
	})
}

// POST /api/v1/admin/orders
func (h *AdminOrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	order, err := h.orderUC.Create(r.Context(), actor(r), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// GET /api/v1/admin/orders/{id}
func (h *AdminOrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Order ID required", http.StatusBadRequest)
		return
	}

	order, err := h.orderUC.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// PATCH /api/v1/admin/orders/{id}
func (h *AdminOrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Order ID required", http.StatusBadRequest)
		return
	}

	var patch usecase.OrderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	order, err := h.orderUC.ApplyEdit(r.Context(), actor(r), id, patch)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// PUT /api/v1/admin/orders/{id}/status
func (h *AdminOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Order ID required", http.StatusBadRequest)
		return
	}

	var req struct {
		Status       string `json:"status"`
		Note         string `json:"note"`
		RefundMethod string `json:"refundMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	order, err := h.orderUC.RequestTransition(r.Context(), actor(r), id,
		domain.OrderStatus(req.Status), req.Note, domain.RefundMethod(req.RefundMethod))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// PUT /api/v1/admin/orders/{id}/pickup
func (h *AdminOrderHandler) SchedulePickup(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Order ID required", http.StatusBadRequest)
		return
	}

	var req struct {
		PickupDate string `json:"pickupDate"`
		PickupTime string `json:"pickupTime"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	order, err := h.orderUC.SchedulePickup(r.Context(), actor(r), id, req.PickupDate, req.PickupTime)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// DELETE /api/v1/admin/orders/{id}
func (h *AdminOrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Order ID required", http.StatusBadRequest)
		return
	}

	if err := h.orderUC.Delete(r.Context(), actor(r), id); err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Order deleted"})
}

// GET /api/v1/admin/orders/{id}/whatsapp
func (h *AdminOrderHandler) ComposeWhatsApp(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Order ID required", http.StatusBadRequest)
		return
	}

	notification, err := h.notificationUC.ComposeStatusUpdate(r.Context(), actor(r), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notification)
}
