package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceAlert is a watch on a product's price. CurrentPrice is the catalog
// price captured when the alert was created, kept so the UI can show how
// far the price has moved; evaluating whether the target was crossed is an
// external collaborator's job.
type PriceAlert struct {
	ProductID    int64           `json:"productId"`
	TargetPrice  decimal.Decimal `json:"targetPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	ProductTitle string          `json:"productTitle"`
	ProductImage string          `json:"productImage,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}
