package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vstore-backend/internal/usecase"
)

// OrderHandler serves the public, credential-free surface: the customer
// tracking page and return initiation.
type OrderHandler struct {
	orderUC  *usecase.OrderUsecase
	searchUC *usecase.SearchUsecase
}

func NewOrderHandler(orderUC *usecase.OrderUsecase, searchUC *usecase.SearchUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, searchUC: searchUC}
}

// GET /api/v1/orders/{id}/track
func (h *OrderHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
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
	json.NewEncoder(w).Encode(order.Public())
}

// GET /api/v1/orders/search?q=...
func (h *OrderHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	orders, err := h.searchUC.Lookup(r.Context(), query, limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// POST /api/v1/orders/{id}/return
func (h *OrderHandler) InitiateReturn(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Order ID required", http.StatusBadRequest)
		return
	}

	var req usecase.ReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	order, err := h.orderUC.InitiateReturn(r.Context(), id, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order.Public())
}
