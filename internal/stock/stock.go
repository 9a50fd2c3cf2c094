// Package stock answers whether a distribution center holds a product.
// Availability is advisory: callers treat lookup failures as "in
// stock" so the quote path never blocks on this collaborator.
package stock

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// queryTimeout bounds each availability lookup. On expiry the caller
// falls back to assuming stock.
const queryTimeout = 3 * time.Second

// PG checks availability against the estoque table.
type PG struct {
	pool *pgxpool.Pool
}

// NewPG returns a Postgres-backed checker.
func NewPG(pool *pgxpool.Pool) *PG { return &PG{pool: pool} }

// InStock reports whether the center has any positive quantity of the
// product.
func (p *PG) InStock(ctx context.Context, centerCode, productCode string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var exists bool
	err := p.pool.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM estoque
            WHERE cd = $1 AND produto = $2 AND quantidade > 0
        )
    `, centerCode, productCode).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Assume answers "in stock" for everything, the default when no stock
// database is configured.
type Assume struct{}

func (Assume) InStock(ctx context.Context, centerCode, productCode string) (bool, error) {
	return true, nil
}
