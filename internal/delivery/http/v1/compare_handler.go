package v1

import (
	"encoding/json"
	"net/http"

	"smartchoice-state/internal/state"
	"smartchoice-state/internal/usecase"
	"smartchoice-state/pkg/logger"
	"smartchoice-state/pkg/utils"
)

type CompareHandler struct {
	compare *state.Compare
	catalog *usecase.CatalogUsecase
}

func NewCompareHandler(compare *state.Compare, catalog *usecase.CatalogUsecase) *CompareHandler {
	return &CompareHandler{compare: compare, catalog: catalog}
}

func (h *CompareHandler) GetCompareList(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": h.compare.Items(),
	})
}

type compareRequest struct {
	ProductID int64 `json:"productId"`
}

func (h *CompareHandler) AddToCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
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

	if !h.compare.Add(*product) {
		utils.WriteError(w, http.StatusConflict, "Compare tray full or product already present")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Added to compare"})
}

func (h *CompareHandler) RemoveFromCompare(w http.ResponseWriter, r *http.Request) {
	productID, err := parseProductID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	h.compare.Remove(productID)
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Removed from compare"})
}

func (h *CompareHandler) ClearCompare(w http.ResponseWriter, r *http.Request) {
	h.compare.Clear()
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Cleared"})
}
