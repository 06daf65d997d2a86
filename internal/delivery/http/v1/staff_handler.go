package v1

import (
	"encoding/json"
	"net/http"

	"vstore-backend/internal/usecase"
	"vstore-backend/pkg/utils"
)

type StaffHandler struct {
	staffUC *usecase.StaffUsecase
}

func NewStaffHandler(staffUC *usecase.StaffUsecase) *StaffHandler {
	return &StaffHandler{staffUC: staffUC}
}

// GET /api/v1/admin/staff
func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	members, err := h.staffUC.List(r.Context(), actor(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"staff": members})
}

// POST /api/v1/admin/staff
func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateStaffInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	account, err := h.staffUC.Create(r.Context(), actor(r), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, account)
}

// PATCH /api/v1/admin/staff/{id}
func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Staff ID required")
		return
	}

	var input usecase.UpdateStaffInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	account, err := h.staffUC.Update(r.Context(), actor(r), id, input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, account)
}

// DELETE /api/v1/admin/staff/{id}
func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Staff ID required")
		return
	}

	if err := h.staffUC.Delete(r.Context(), actor(r), id); err != nil {
		writeDomainError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Staff deleted"})
}
