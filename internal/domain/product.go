package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductSnapshot is the denormalized copy of catalog fields embedded in
// session collections. Entries stay renderable even if the catalog row
// changes or disappears after the copy is taken.
type ProductSnapshot struct {
	ID       int64           `json:"id"`
	TitleEN  string          `json:"title_en"`
	TitleAR  string          `json:"title_ar"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	InStock  bool            `json:"in_stock"`
}

// --- Interfaces ---

type CatalogRepository interface {
	GetProductByID(ctx context.Context, id int64) (*ProductSnapshot, error)
}
