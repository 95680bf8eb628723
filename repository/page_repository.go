package repository

import (
	"context"
	"database/sql"
	"errors"
	"wedding-api/logger"
	"wedding-api/model"
)

// IPageRepository covers the single-row pages: home and about us.
type IPageRepository interface {
	GetHomePage(ctx context.Context) (*model.HomePage, error)
	SaveHomePage(ctx context.Context, p *model.HomePage) error
	GetAboutUs(ctx context.Context) (*model.AboutUs, error)
	SaveAboutUs(ctx context.Context, a *model.AboutUs) error
}

type PageRepository struct {
	DB *sql.DB
}

func NewPageRepository(db *sql.DB) *PageRepository {
	return &PageRepository{DB: db}
}

func (r *PageRepository) GetHomePage(ctx context.Context) (*model.HomePage, error) {
	var p model.HomePage
	err := r.DB.QueryRowContext(ctx, `SELECT id, title, description, image, updated_at FROM home_page ORDER BY id LIMIT 1`).
		Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// currentID returns the id of the first row in table, or 0 when it is empty.
func currentID(ctx context.Context, q DBTX, table string) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, `SELECT id FROM `+table+` ORDER BY id LIMIT 1 FOR UPDATE`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return id, err
}

// SaveHomePage updates the existing home page row or creates the first one.
func (r *PageRepository) SaveHomePage(ctx context.Context, p *model.HomePage) error {
	logger.Log.WithField("title", p.Title).Info("Executing query to save the home page")

	return WithTx(ctx, r.DB, nil, func(ctx context.Context, tx DBTX) error {
		id, err := currentID(ctx, tx, "home_page")
		if err != nil {
			return err
		}
		if id == 0 {
			return tx.QueryRowContext(ctx,
				`INSERT INTO home_page (title, description, image) VALUES ($1, $2, $3) RETURNING id, updated_at`,
				p.Title, p.Description, p.Image).Scan(&p.ID, &p.UpdatedAt)
		}
		p.ID = id
		return tx.QueryRowContext(ctx,
			`UPDATE home_page SET title = $1, description = $2, image = $3, updated_at = NOW() WHERE id = $4 RETURNING updated_at`,
			p.Title, p.Description, p.Image, id).Scan(&p.UpdatedAt)
	})
}

func (r *PageRepository) GetAboutUs(ctx context.Context) (*model.AboutUs, error) {
	var a model.AboutUs
	query := `SELECT id, title, description, image, main_description, successful_events, work_experience, updated_at
		FROM about_us ORDER BY id LIMIT 1`
	err := r.DB.QueryRowContext(ctx, query).Scan(&a.ID, &a.Title, &a.Description, &a.Image, &a.MainDescription,
		&a.SuccessfulEvents, &a.WorkExperience, &a.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT id, title, description FROM about_us_highlights WHERE about_us_id = $1 ORDER BY id`, a.ID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute about us highlights query")
		return nil, err
	}
	defer rows.Close()

	a.Highlights = []model.AboutUsHighlight{}
	for rows.Next() {
		var h model.AboutUsHighlight
		if err := rows.Scan(&h.ID, &h.Title, &h.Description); err != nil {
			return nil, err
		}
		a.Highlights = append(a.Highlights, h)
	}
	return &a, rows.Err()
}

// SaveAboutUs writes the about-us row and replaces its highlights.
func (r *PageRepository) SaveAboutUs(ctx context.Context, a *model.AboutUs) error {
	logger.Log.WithField("title", a.Title).Info("Executing query to save the about us page")

	return WithTx(ctx, r.DB, nil, func(ctx context.Context, tx DBTX) error {
		id, err := currentID(ctx, tx, "about_us")
		if err != nil {
			return err
		}
		if id == 0 {
			err = tx.QueryRowContext(ctx,
				`INSERT INTO about_us (title, description, image, main_description, successful_events, work_experience)
				VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, updated_at`,
				a.Title, a.Description, a.Image, a.MainDescription, a.SuccessfulEvents, a.WorkExperience).Scan(&a.ID, &a.UpdatedAt)
		} else {
			a.ID = id
			err = tx.QueryRowContext(ctx,
				`UPDATE about_us SET title = $1, description = $2, image = $3, main_description = $4,
				successful_events = $5, work_experience = $6, updated_at = NOW() WHERE id = $7 RETURNING updated_at`,
				a.Title, a.Description, a.Image, a.MainDescription, a.SuccessfulEvents, a.WorkExperience, id).Scan(&a.UpdatedAt)
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM about_us_highlights WHERE about_us_id = $1`, a.ID); err != nil {
			return err
		}
		for i := range a.Highlights {
			err := tx.QueryRowContext(ctx,
				`INSERT INTO about_us_highlights (about_us_id, title, description) VALUES ($1, $2, $3) RETURNING id`,
				a.ID, a.Highlights[i].Title, a.Highlights[i].Description).Scan(&a.Highlights[i].ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
