package pgxrepo

import (
	"context"
	"errors"

	"smartchoice-state/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type catalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) domain.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetProductByID(ctx context.Context, id int64) (*domain.ProductSnapshot, error) {
	// price::text keeps numeric exact; decimal parses the string form.
	row := r.db.QueryRow(ctx, `
		SELECT id, title_en, title_ar, price::text, COALESCE(image_url, ''), in_stock
		FROM products
		WHERE id = $1`, id)

	var (
		p        domain.ProductSnapshot
		priceStr string
	)
	if err := row.Scan(&p.ID, &p.TitleEN, &p.TitleAR, &priceStr, &p.ImageURL, &p.InStock); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Return nil if not found
		}
		return nil, err
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, err
	}
	p.Price = price

	return &p, nil
}
