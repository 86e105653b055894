package usecase

import (
	"context"
	"errors"
	"testing"

	"smartchoice-state/internal/domain"

	"github.com/shopspring/decimal"
)

type fakeOrderRepo struct {
	created *domain.Order
	err     error
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order *domain.Order) error {
	if f.err != nil {
		return f.err
	}
	f.created = order
	return nil
}

func TestCheckoutUsecase_PlaceOrder(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := NewCheckoutUsecase(repo)

	lines := []domain.OrderLine{
		{ProductID: 1, Quantity: 2, PriceAtPurchase: decimal.RequireFromString("10")},
		{ProductID: 2, Quantity: 1, PriceAtPurchase: decimal.RequireFromString("5.50")},
	}

	orderID, err := uc.PlaceOrder(context.Background(), lines)
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}
	if orderID == "" {
		t.Fatalf("orderID is empty")
	}
	if repo.created == nil {
		t.Fatalf("CreateOrder was not called")
	}
	if repo.created.ID != orderID {
		t.Fatalf("order.ID = %q, want %q", repo.created.ID, orderID)
	}
	if !repo.created.TotalAmount.Equal(decimal.RequireFromString("25.50")) {
		t.Fatalf("TotalAmount = %s, want 25.50", repo.created.TotalAmount)
	}
	if len(repo.created.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(repo.created.Items))
	}
	// Lines map in cart order with the purchase-time price.
	if repo.created.Items[0].ProductID != 1 || repo.created.Items[1].ProductID != 2 {
		t.Fatalf("item order = [%d %d], want [1 2]",
			repo.created.Items[0].ProductID, repo.created.Items[1].ProductID)
	}
	if !repo.created.Items[1].Price.Equal(decimal.RequireFromString("5.50")) {
		t.Fatalf("Items[1].Price = %s, want 5.50", repo.created.Items[1].Price)
	}
}

func TestCheckoutUsecase_EmptyCart(t *testing.T) {
	uc := NewCheckoutUsecase(&fakeOrderRepo{})

	_, err := uc.PlaceOrder(context.Background(), nil)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
}

func TestCheckoutUsecase_RepositoryErrorPropagates(t *testing.T) {
	repoErr := errors.New("insert failed")
	uc := NewCheckoutUsecase(&fakeOrderRepo{err: repoErr})

	lines := []domain.OrderLine{{ProductID: 1, Quantity: 1, PriceAtPurchase: decimal.RequireFromString("10")}}
	_, err := uc.PlaceOrder(context.Background(), lines)
	if !errors.Is(err, repoErr) {
		t.Fatalf("err = %v, want wrapped %v", err, repoErr)
	}
}
