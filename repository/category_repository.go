package repository

import (
	"context"
	"database/sql"
	"wedding-api/logger"
	"wedding-api/model"

	"github.com/sirupsen/logrus"
)

type ICategoryRepository interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	UpdateCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	ListGallery(ctx context.Context) ([]model.GalleryItem, error)
	ListGalleryByCategory(ctx context.Context, categoryID int64) ([]model.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, categoryID int64, image string) (*model.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id int64) (int64, error)
}

type CategoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

const categoryColumns = `id, name, description, image, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }, c *model.Category) error {
	return row.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	log := logger.Log.WithField("table", "categories")
	log.Info("Executing query to list categories")

	rows, err := r.DB.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY id`)
	if err != nil {
		log.WithError(err).Error("Failed to execute list categories query")
		return nil, err
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := scanCategory(rows, &c); err != nil {
			log.WithError(err).Error("Failed to scan category row")
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	err := scanCategory(r.DB.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id), &c)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	log := logger.Log.WithField("name", c.Name)
	log.Info("Executing query to create a category")

	query := `INSERT INTO categories (name, description, image) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	if err := r.DB.QueryRowContext(ctx, query, c.Name, c.Description, c.Image).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		log.WithError(err).Error("Failed to execute create category query")
		return mapWriteErr(err)
	}
	return nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, c *model.Category) error {
	log := logger.Log.WithField("category_id", c.ID)
	log.Info("Executing query to update a category")

	query := `UPDATE categories SET name = $1, description = $2, image = $3, updated_at = NOW()
		WHERE id = $4 RETURNING updated_at`
	if err := r.DB.QueryRowContext(ctx, query, c.Name, c.Description, c.Image, c.ID).Scan(&c.UpdatedAt); err != nil {
		log.WithError(err).Warn("Failed to execute update category query")
		return mapWriteErr(err)
	}
	return nil
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	logger.Log.WithField("category_id", id).Info("Executing query to delete a category")
	res, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

const galleryQuery = `SELECT g.id, g.image, c.id, c.name, g.created_at
	FROM gallery g JOIN categories c ON c.id = g.category_id`

func (r *CategoryRepository) queryGallery(ctx context.Context, query string, args ...any) ([]model.GalleryItem, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute gallery query")
		return nil, err
	}
	defer rows.Close()

	items := []model.GalleryItem{}
	for rows.Next() {
		var g model.GalleryItem
		if err := rows.Scan(&g.ID, &g.Image, &g.Category.ID, &g.Category.Name, &g.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan gallery row")
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func (r *CategoryRepository) ListGallery(ctx context.Context) ([]model.GalleryItem, error) {
	logger.Log.Info("Executing query to list gallery")
	return r.queryGallery(ctx, galleryQuery+` ORDER BY g.id DESC`)
}

func (r *CategoryRepository) ListGalleryByCategory(ctx context.Context, categoryID int64) ([]model.GalleryItem, error) {
	logger.Log.WithField("category_id", categoryID).Info("Executing query to list gallery by category")
	return r.queryGallery(ctx, galleryQuery+` WHERE g.category_id = $1 ORDER BY g.id DESC`, categoryID)
}

// CreateGalleryItem inserts an image and returns it joined with its category.
// An unknown category yields ErrBadRef.
func (r *CategoryRepository) CreateGalleryItem(ctx context.Context, categoryID int64, image string) (*model.GalleryItem, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"category_id": categoryID,
		"image":       image,
	})
	log.Info("Executing query to create a gallery item")

	query := `WITH ins AS (
		INSERT INTO gallery (category_id, image) VALUES ($1, $2) RETURNING id, image, category_id, created_at
	)
	SELECT ins.id, ins.image, c.id, c.name, ins.created_at FROM ins JOIN categories c ON c.id = ins.category_id`

	var g model.GalleryItem
	err := r.DB.QueryRowContext(ctx, query, categoryID, image).Scan(&g.ID, &g.Image, &g.Category.ID, &g.Category.Name, &g.CreatedAt)
	if err != nil {
		log.WithError(err).Warn("Failed to execute create gallery item query")
		return nil, mapWriteErr(err)
	}
	return &g, nil
}

// DeleteGalleryItem removes an image and returns the category it belonged to.
func (r *CategoryRepository) DeleteGalleryItem(ctx context.Context, id int64) (int64, error) {
	logger.Log.WithField("gallery_id", id).Info("Executing query to delete a gallery item")
	var categoryID int64
	err := r.DB.QueryRowContext(ctx, `DELETE FROM gallery WHERE id = $1 RETURNING category_id`, id).Scan(&categoryID)
	if err != nil {
		return 0, notFound(err)
	}
	return categoryID, nil
}
