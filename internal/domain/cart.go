package domain

import "github.com/shopspring/decimal"

// CartEntry is one line of the cart ledger. At most one entry exists per
// product id; quantity is always >= 1 (a mutation that would drop it to 0
// removes the entry instead).
type CartEntry struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

// OrderLine is the checkout handoff shape: what the order backend receives
// for each cart entry, with the price frozen at purchase time.
type OrderLine struct {
	ProductID       int64           `json:"productId"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
}
