package v1

import (
	"errors"
	"net/http"

	"smartchoice-state/internal/state"
	"smartchoice-state/internal/usecase"
	"smartchoice-state/pkg/logger"
	"smartchoice-state/pkg/utils"
)

type CheckoutHandler struct {
	cart     *state.Cart
	checkout *usecase.CheckoutUsecase
}

func NewCheckoutHandler(cart *state.Cart, checkout *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{cart: cart, checkout: checkout}
}

// PlaceOrder hands the cart off to the order backend. The cart is left
// intact; the storefront clears it explicitly after showing confirmation.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := h.checkout.PlaceOrder(r.Context(), h.cart.CheckoutLines())
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyCart) {
			utils.WriteError(w, http.StatusBadRequest, "Cart is empty")
			return
		}
		logger.WithContext(r.Context()).Error().Err(err).Msg("Order placement failed")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to place order")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]string{"orderId": orderID})
}
