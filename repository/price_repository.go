package repository

import (
	"context"
	"database/sql"
	"wedding-api/logger"
	"wedding-api/model"

	"github.com/lib/pq"
)

type IPriceRepository interface {
	ListPrices(ctx context.Context) ([]model.Price, error)
	GetPrice(ctx context.Context, id int64) (*model.Price, error)
	CreatePrice(ctx context.Context, p *model.Price) error
	UpdatePrice(ctx context.Context, p *model.Price, replaceHighlights bool) error
	DeletePrice(ctx context.Context, id int64) error
}

type PriceRepository struct {
	DB *sql.DB
}

func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{DB: db}
}

const priceColumns = `id, type, price, description, created_at, updated_at`

func (r *PriceRepository) ListPrices(ctx context.Context) ([]model.Price, error) {
	log := logger.Log.WithField("table", "prices")
	log.Info("Executing query to list prices")

	rows, err := r.DB.QueryContext(ctx, `SELECT `+priceColumns+` FROM prices ORDER BY price, id`)
	if err != nil {
		log.WithError(err).Error("Failed to execute list prices query")
		return nil, err
	}
	defer rows.Close()

	prices := []model.Price{}
	ids := []int64{}
	for rows.Next() {
		var p model.Price
		if err := rows.Scan(&p.ID, &p.Type, &p.Price, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			log.WithError(err).Error("Failed to scan price row")
			return nil, err
		}
		p.Highlights = []model.PriceHighlight{}
		prices = append(prices, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return prices, nil
	}

	highlights, err := r.highlightsFor(ctx, r.DB, ids)
	if err != nil {
		return nil, err
	}
	for i := range prices {
		if h, ok := highlights[prices[i].ID]; ok {
			prices[i].Highlights = h
		}
	}
	return prices, nil
}

func (r *PriceRepository) highlightsFor(ctx context.Context, q DBTX, ids []int64) (map[int64][]model.PriceHighlight, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, price_id, description FROM price_highlights WHERE price_id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute price highlights query")
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]model.PriceHighlight, len(ids))
	for rows.Next() {
		var h model.PriceHighlight
		var priceID int64
		if err := rows.Scan(&h.ID, &priceID, &h.Description); err != nil {
			return nil, err
		}
		out[priceID] = append(out[priceID], h)
	}
	return out, rows.Err()
}

func (r *PriceRepository) GetPrice(ctx context.Context, id int64) (*model.Price, error) {
	var p model.Price
	err := r.DB.QueryRowContext(ctx, `SELECT `+priceColumns+` FROM prices WHERE id = $1`, id).
		Scan(&p.ID, &p.Type, &p.Price, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	highlights, err := r.highlightsFor(ctx, r.DB, []int64{id})
	if err != nil {
		return nil, err
	}
	p.Highlights = highlights[id]
	if p.Highlights == nil {
		p.Highlights = []model.PriceHighlight{}
	}
	return &p, nil
}

func (r *PriceRepository) insertHighlights(ctx context.Context, tx DBTX, p *model.Price) error {
	for i := range p.Highlights {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO price_highlights (price_id, description) VALUES ($1, $2) RETURNING id`,
			p.ID, p.Highlights[i].Description).Scan(&p.Highlights[i].ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// CreatePrice stores the price and its highlights in one transaction.
func (r *PriceRepository) CreatePrice(ctx context.Context, p *model.Price) error {
	log := logger.Log.WithField("type", p.Type)
	log.Info("Executing query to create a price")

	err := WithTx(ctx, r.DB, nil, func(ctx context.Context, tx DBTX) error {
		query := `INSERT INTO prices (type, price, description) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
		if err := tx.QueryRowContext(ctx, query, p.Type, p.Price, p.Description).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return err
		}
		return r.insertHighlights(ctx, tx, p)
	})
	if err != nil {
		log.WithError(err).Error("Failed to create price")
		return mapWriteErr(err)
	}
	return nil
}

// UpdatePrice updates the price row. When replaceHighlights is set the
// existing highlights are dropped and p.Highlights inserted in their place.
func (r *PriceRepository) UpdatePrice(ctx context.Context, p *model.Price, replaceHighlights bool) error {
	log := logger.Log.WithField("price_id", p.ID)
	log.Info("Executing query to update a price")

	err := WithTx(ctx, r.DB, nil, func(ctx context.Context, tx DBTX) error {
		query := `UPDATE prices SET type = $1, price = $2, description = $3, updated_at = NOW() WHERE id = $4 RETURNING updated_at`
		if err := tx.QueryRowContext(ctx, query, p.Type, p.Price, p.Description, p.ID).Scan(&p.UpdatedAt); err != nil {
			return err
		}
		if !replaceHighlights {
			return nil
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM price_highlights WHERE price_id = $1`, p.ID); err != nil {
			return err
		}
		return r.insertHighlights(ctx, tx, p)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to update price")
		return mapWriteErr(err)
	}
	return nil
}

func (r *PriceRepository) DeletePrice(ctx context.Context, id int64) error {
	logger.Log.WithField("price_id", id).Info("Executing query to delete a price")
	res, err := r.DB.ExecContext(ctx, `DELETE FROM prices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
