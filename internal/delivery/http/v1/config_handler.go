package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"vstore-backend/internal/domain"
	"vstore-backend/pkg/cache"
)

type ConfigHandler struct {
	cache    cache.CacheService
	enumsTTL time.Duration
}

func NewConfigHandler(cacheService cache.CacheService, enumsTTL time.Duration) *ConfigHandler {
	return &ConfigHandler{cache: cacheService, enumsTTL: enumsTTL}
}

// GET /api/v1/config/enums
func (h *ConfigHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	cacheKey := "system:config:enums"

	if val, found := h.cache.Get(cacheKey); found {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		json.NewEncoder(w).Encode(val)
		return
	}

	response := map[string]interface{}{
		"orderStatuses":  domain.OrderStatuses,
		"paymentMethods": domain.PaymentMethods,
		"returnTypes":    domain.ReturnTypes,
		"refundMethods":  domain.RefundMethods,
		"returnReasons":  domain.ReturnReasons,
	}

	h.cache.Set(cacheKey, response, h.enumsTTL)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	json.NewEncoder(w).Encode(response)
}
