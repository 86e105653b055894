package pgxrepo

import (
	"context"
	"fmt"

	"smartchoice-state/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type orderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) domain.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder inserts the order and its lines in one transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO orders (id, total_amount, created_at)
			VALUES ($1, $2::numeric, $3)`,
			order.ID, order.TotalAmount.String(), order.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for _, item := range order.Items {
			_, err := tx.Exec(ctx, `
				INSERT INTO order_items (id, order_id, product_id, quantity, price)
				VALUES ($1, $2, $3, $4, $5::numeric)`,
				item.ID, item.OrderID, item.ProductID, item.Quantity, item.Price.String())
			if err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}
		return nil
	})
}
