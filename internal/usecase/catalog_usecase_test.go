package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartchoice-state/internal/domain"
	cacheinfra "smartchoice-state/internal/infrastructure/cache"

	"github.com/shopspring/decimal"
)

type fakeCatalogRepo struct {
	calls   int
	product *domain.ProductSnapshot
	err     error
}

func (f *fakeCatalogRepo) GetProductByID(ctx context.Context, id int64) (*domain.ProductSnapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.product != nil && f.product.ID == id {
		return f.product, nil
	}
	return nil, nil
}

func TestCatalogUsecase_SecondLookupServedFromCache(t *testing.T) {
	repo := &fakeCatalogRepo{product: &domain.ProductSnapshot{
		ID:      1,
		TitleEN: "Widget",
		Price:   decimal.RequireFromString("9.99"),
	}}
	uc := NewCatalogUsecase(repo, cacheinfra.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	first, err := uc.GetProduct(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProduct returned error: %v", err)
	}
	if first == nil || first.TitleEN != "Widget" {
		t.Fatalf("GetProduct = %+v, want Widget", first)
	}

	second, err := uc.GetProduct(context.Background(), 1)
	if err != nil {
		t.Fatalf("second GetProduct returned error: %v", err)
	}
	if second == nil || !second.Price.Equal(first.Price) {
		t.Fatalf("second GetProduct = %+v, want cached copy of first", second)
	}
	if repo.calls != 1 {
		t.Fatalf("repo.calls = %d, want 1 (second lookup must hit the cache)", repo.calls)
	}
}

func TestCatalogUsecase_UnknownProductNotCached(t *testing.T) {
	repo := &fakeCatalogRepo{}
	uc := NewCatalogUsecase(repo, cacheinfra.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	for i := 0; i < 2; i++ {
		product, err := uc.GetProduct(context.Background(), 42)
		if err != nil {
			t.Fatalf("GetProduct returned error: %v", err)
		}
		if product != nil {
			t.Fatalf("GetProduct = %+v, want nil for unknown product", product)
		}
	}
	if repo.calls != 2 {
		t.Fatalf("repo.calls = %d, want 2 (absence is not cached)", repo.calls)
	}
}

func TestCatalogUsecase_RepositoryErrorWrapped(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &fakeCatalogRepo{err: repoErr}
	uc := NewCatalogUsecase(repo, cacheinfra.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	_, err := uc.GetProduct(context.Background(), 1)
	if !errors.Is(err, repoErr) {
		t.Fatalf("err = %v, want wrapped %v", err, repoErr)
	}
}
