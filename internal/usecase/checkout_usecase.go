package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartchoice-state/internal/domain"
	"smartchoice-state/pkg/logger"
	"smartchoice-state/pkg/utils"

	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutUsecase hands a completed cart off to the order backend. The
// cart ledger itself is not cleared here; the caller clears it once the
// order is accepted.
type CheckoutUsecase struct {
	orderRepo domain.OrderRepository
}

func NewCheckoutUsecase(orderRepo domain.OrderRepository) *CheckoutUsecase {
	return &CheckoutUsecase{orderRepo: orderRepo}
}

// PlaceOrder persists one order built from the cart's checkout lines and
// returns its id.
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, lines []domain.OrderLine) (string, error) {
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	order := &domain.Order{
		ID:        utils.GenerateUUID(),
		CreatedAt: time.Now(),
	}

	total := decimal.Zero
	for _, line := range lines {
		order.Items = append(order.Items, domain.OrderItem{
			ID:        utils.GenerateUUID(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.PriceAtPurchase,
		})
		total = total.Add(line.PriceAtPurchase.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	order.TotalAmount = total

	if err := u.orderRepo.CreateOrder(ctx, order); err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	logger.Info().
		Str("order_id", order.ID).
		Int("lines", len(order.Items)).
		Str("total", order.TotalAmount.String()).
		Msg("Order placed")

	return order.ID, nil
}
