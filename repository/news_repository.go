package repository

import (
	"context"
	"database/sql"
	"wedding-api/logger"
	"wedding-api/model"
)

type INewsRepository interface {
	ListNews(ctx context.Context) ([]model.News, error)
	GetNews(ctx context.Context, id int64) (*model.News, error)
	CreateNews(ctx context.Context, n *model.News) error
	UpdateNews(ctx context.Context, n *model.News) error
	DeleteNews(ctx context.Context, id int64) error
}

type NewsRepository struct {
	DB *sql.DB
}

func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{DB: db}
}

const newsColumns = `id, title, description, image, created_at, updated_at`

func scanNews(row interface{ Scan(...any) error }, n *model.News) error {
	return row.Scan(&n.ID, &n.Title, &n.Description, &n.Image, &n.CreatedAt, &n.UpdatedAt)
}

func (r *NewsRepository) ListNews(ctx context.Context) ([]model.News, error) {
	logger.Log.Info("Executing query to list news")

	rows, err := r.DB.QueryContext(ctx, `SELECT `+newsColumns+` FROM news ORDER BY created_at DESC, id DESC`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list news query")
		return nil, err
	}
	defer rows.Close()

	items := []model.News{}
	for rows.Next() {
		var n model.News
		if err := scanNews(rows, &n); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r *NewsRepository) GetNews(ctx context.Context, id int64) (*model.News, error) {
	var n model.News
	if err := scanNews(r.DB.QueryRowContext(ctx, `SELECT `+newsColumns+` FROM news WHERE id = $1`, id), &n); err != nil {
		return nil, notFound(err)
	}
	return &n, nil
}

func (r *NewsRepository) CreateNews(ctx context.Context, n *model.News) error {
	log := logger.Log.WithField("title", n.Title)
	log.Info("Executing query to create news")

	query := `INSERT INTO news (title, description, image) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	if err := r.DB.QueryRowContext(ctx, query, n.Title, n.Description, n.Image).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		log.WithError(err).Error("Failed to execute create news query")
		return mapWriteErr(err)
	}
	return nil
}

func (r *NewsRepository) UpdateNews(ctx context.Context, n *model.News) error {
	logger.Log.WithField("news_id", n.ID).Info("Executing query to update news")
	query := `UPDATE news SET title = $1, description = $2, image = $3, updated_at = NOW() WHERE id = $4 RETURNING updated_at`
	return mapWriteErr(r.DB.QueryRowContext(ctx, query, n.Title, n.Description, n.Image, n.ID).Scan(&n.UpdatedAt))
}

func (r *NewsRepository) DeleteNews(ctx context.Context, id int64) error {
	logger.Log.WithField("news_id", id).Info("Executing query to delete news")
	res, err := r.DB.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
