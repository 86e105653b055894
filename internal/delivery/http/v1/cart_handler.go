package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"smartchoice-state/internal/state"
	"smartchoice-state/internal/usecase"
	"smartchoice-state/pkg/logger"
	"smartchoice-state/pkg/utils"
)

type CartHandler struct {
	cart    *state.Cart
	catalog *usecase.CatalogUsecase
}

func NewCartHandler(cart *state.Cart, catalog *usecase.CatalogUsecase) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog}
}

// cartResponse always carries the derived aggregates alongside the items
// so badge/total consumers never compute them client-side.
type cartResponse struct {
	Items      interface{} `json:"items"`
	TotalItems int         `json:"totalItems"`
	Subtotal   string      `json:"subtotal"`
}

func (h *CartHandler) payload() cartResponse {
	return cartResponse{
		Items:      h.cart.Items(),
		TotalItems: h.cart.TotalItems(),
		Subtotal:   h.cart.Subtotal().String(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.payload())
}

type addToCartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
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

	h.cart.Add(*product, req.Quantity)
	utils.WriteJSON(w, http.StatusOK, h.payload())
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := parseProductID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	h.cart.SetQuantity(productID, req.Quantity)
	utils.WriteJSON(w, http.StatusOK, h.payload())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := parseProductID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	h.cart.Remove(productID)
	utils.WriteJSON(w, http.StatusOK, h.payload())
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	utils.WriteJSON(w, http.StatusOK, h.payload())
}

func parseProductID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("productId"), 10, 64)
}
