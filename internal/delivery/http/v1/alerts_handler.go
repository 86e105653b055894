package v1

import (
	"encoding/json"
	"net/http"

	"smartchoice-state/internal/state"
	"smartchoice-state/internal/usecase"
	"smartchoice-state/pkg/logger"
	"smartchoice-state/pkg/utils"

	"github.com/shopspring/decimal"
)

type AlertsHandler struct {
	alerts  *state.PriceAlerts
	catalog *usecase.CatalogUsecase
}

func NewAlertsHandler(alerts *state.PriceAlerts, catalog *usecase.CatalogUsecase) *AlertsHandler {
	return &AlertsHandler{alerts: alerts, catalog: catalog}
}

func (h *AlertsHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"alerts": h.alerts.Alerts(),
	})
}

type createAlertRequest struct {
	ProductID   int64           `json:"productId"`
	TargetPrice decimal.Decimal `json:"targetPrice"`
}

func (h *AlertsHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req createAlertRequest
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

	h.alerts.Create(*product, req.TargetPrice)

	alert, _ := h.alerts.Get(req.ProductID)
	utils.WriteJSON(w, http.StatusCreated, alert)
}

type updateAlertRequest struct {
	TargetPrice decimal.Decimal `json:"targetPrice"`
}

func (h *AlertsHandler) UpdateAlert(w http.ResponseWriter, r *http.Request) {
	productID, err := parseProductID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req updateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !h.alerts.Has(productID) {
		utils.WriteError(w, http.StatusNotFound, "No alert for product")
		return
	}

	h.alerts.Update(productID, req.TargetPrice)

	alert, _ := h.alerts.Get(productID)
	utils.WriteJSON(w, http.StatusOK, alert)
}

func (h *AlertsHandler) RemoveAlert(w http.ResponseWriter, r *http.Request) {
	productID, err := parseProductID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	h.alerts.Remove(productID)
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Alert removed"})
}

func (h *AlertsHandler) ClearAlerts(w http.ResponseWriter, r *http.Request) {
	h.alerts.ClearAll()
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Alerts cleared"})
}
