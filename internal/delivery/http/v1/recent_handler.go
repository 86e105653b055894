package v1

import (
	"encoding/json"
	"net/http"

	"smartchoice-state/internal/state"
	"smartchoice-state/internal/usecase"
	"smartchoice-state/pkg/logger"
	"smartchoice-state/pkg/utils"
)

type RecentHandler struct {
	recent  *state.RecentlyViewed
	catalog *usecase.CatalogUsecase
}

func NewRecentHandler(recent *state.RecentlyViewed, catalog *usecase.CatalogUsecase) *RecentHandler {
	return &RecentHandler{recent: recent, catalog: catalog}
}

func (h *RecentHandler) GetRecentlyViewed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": h.recent.Items(),
	})
}

type recordViewRequest struct {
	ProductID int64 `json:"productId"`
}

func (h *RecentHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	var req recordViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Int64("product_id", req.ProductID).Msg("Catalog lookup failed")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to look up product")
		return
	}
	if product == nil {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	h.recent.Record(*product)
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Recorded"})
}

func (h *RecentHandler) ClearRecentlyViewed(w http.ResponseWriter, r *http.Request) {
	h.recent.Clear()
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Cleared"})
}
