package v1

import (
	"encoding/json"
	"net/http"

	"smartchoice-state/internal/state"
	"smartchoice-state/internal/usecase"
	"smartchoice-state/pkg/logger"
	"smartchoice-state/pkg/utils"
)

type WishlistHandler struct {
	wishlist *state.Wishlist
	catalog  *usecase.CatalogUsecase
}

func NewWishlistHandler(wishlist *state.Wishlist, catalog *usecase.CatalogUsecase) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, catalog: catalog}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": h.wishlist.Items(),
		"count": h.wishlist.Len(),
	})
}

type wishlistRequest struct {
	ProductID int64 `json:"productId"`
}

func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var req wishlistRequest
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

	h.wishlist.Add(*product)
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Added to wishlist"})
}

func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	productID, err := parseProductID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	h.wishlist.Remove(productID)
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Removed from wishlist"})
}
