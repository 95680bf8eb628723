package repository

import (
	"context"
	"database/sql"
	"wedding-api/logger"
	"wedding-api/model"
)

// ISiteRepository covers the site-wide settings: social links, contact
// settings and QR codes.
type ISiteRepository interface {
	ListSocialMedia(ctx context.Context) ([]model.SocialMedia, error)
	GetSocialMedia(ctx context.Context, id int64) (*model.SocialMedia, error)
	CreateSocialMedia(ctx context.Context, s *model.SocialMedia) error
	UpdateSocialMedia(ctx context.Context, s *model.SocialMedia) error
	DeleteSocialMedia(ctx context.Context, id int64) error

	ListWebSettings(ctx context.Context) ([]model.WebSettings, error)
	GetWebSettings(ctx context.Context, id int64) (*model.WebSettings, error)
	CreateWebSettings(ctx context.Context, s *model.WebSettings) error
	UpdateWebSettings(ctx context.Context, s *model.WebSettings) error
	DeleteWebSettings(ctx context.Context, id int64) error

	ListQRCodes(ctx context.Context) ([]model.QRCode, error)
	GetQRCode(ctx context.Context, id int64) (*model.QRCode, error)
	CreateQRCode(ctx context.Context, q *model.QRCode) error
	UpdateQRCode(ctx context.Context, q *model.QRCode) error
	DeleteQRCode(ctx context.Context, id int64) error
}

type SiteRepository struct {
	DB *sql.DB
}

func NewSiteRepository(db *sql.DB) *SiteRepository {
	return &SiteRepository{DB: db}
}

func (r *SiteRepository) deleteByID(ctx context.Context, table string, id int64) error {
	logger.Log.WithField("table", table).WithField("id", id).Info("Executing delete query")
	res, err := r.DB.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

const socialColumns = `id, name, url, image, created_at`

func scanSocial(row interface{ Scan(...any) error }, s *model.SocialMedia) error {
	return row.Scan(&s.ID, &s.Name, &s.URL, &s.Image, &s.CreatedAt)
}

func (r *SiteRepository) ListSocialMedia(ctx context.Context) ([]model.SocialMedia, error) {
	logger.Log.Info("Executing query to list social media")

	rows, err := r.DB.QueryContext(ctx, `SELECT `+socialColumns+` FROM social_media ORDER BY id`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list social media query")
		return nil, err
	}
	defer rows.Close()

	items := []model.SocialMedia{}
	for rows.Next() {
		var s model.SocialMedia
		if err := scanSocial(rows, &s); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *SiteRepository) GetSocialMedia(ctx context.Context, id int64) (*model.SocialMedia, error) {
	var s model.SocialMedia
	if err := scanSocial(r.DB.QueryRowContext(ctx, `SELECT `+socialColumns+` FROM social_media WHERE id = $1`, id), &s); err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *SiteRepository) CreateSocialMedia(ctx context.Context, s *model.SocialMedia) error {
	logger.Log.WithField("name", s.Name).Info("Executing query to create a social media link")
	query := `INSERT INTO social_media (name, url, image) VALUES ($1, $2, $3) RETURNING id, created_at`
	return mapWriteErr(r.DB.QueryRowContext(ctx, query, s.Name, s.URL, s.Image).Scan(&s.ID, &s.CreatedAt))
}

func (r *SiteRepository) UpdateSocialMedia(ctx context.Context, s *model.SocialMedia) error {
	logger.Log.WithField("social_media_id", s.ID).Info("Executing query to update a social media link")
	query := `UPDATE social_media SET name = $1, url = $2, image = $3, updated_at = NOW() WHERE id = $4`
	res, err := r.DB.ExecContext(ctx, query, s.Name, s.URL, s.Image, s.ID)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireAffected(res)
}

func (r *SiteRepository) DeleteSocialMedia(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "social_media", id)
}

const settingsColumns = `id, wedding_hall_name, phone_number, email, open_from, close_to, location, location_url, created_at`

func scanSettings(row interface{ Scan(...any) error }, s *model.WebSettings) error {
	return row.Scan(&s.ID, &s.WeddingHallName, &s.PhoneNumber, &s.Email, &s.OpenFrom, &s.CloseTo,
		&s.Location, &s.LocationURL, &s.CreatedAt)
}

func (r *SiteRepository) ListWebSettings(ctx context.Context) ([]model.WebSettings, error) {
	logger.Log.Info("Executing query to list web settings")

	rows, err := r.DB.QueryContext(ctx, `SELECT `+settingsColumns+` FROM web_settings ORDER BY id`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list web settings query")
		return nil, err
	}
	defer rows.Close()

	items := []model.WebSettings{}
	for rows.Next() {
		var s model.WebSettings
		if err := scanSettings(rows, &s); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *SiteRepository) GetWebSettings(ctx context.Context, id int64) (*model.WebSettings, error) {
	var s model.WebSettings
	if err := scanSettings(r.DB.QueryRowContext(ctx, `SELECT `+settingsColumns+` FROM web_settings WHERE id = $1`, id), &s); err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *SiteRepository) CreateWebSettings(ctx context.Context, s *model.WebSettings) error {
	logger.Log.WithField("wedding_hall_name", s.WeddingHallName).Info("Executing query to create web settings")
	query := `INSERT INTO web_settings (wedding_hall_name, phone_number, email, open_from, close_to, location, location_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, s.WeddingHallName, s.PhoneNumber, s.Email, s.OpenFrom, s.CloseTo,
		s.Location, s.LocationURL).Scan(&s.ID, &s.CreatedAt)
	return mapWriteErr(err)
}

func (r *SiteRepository) UpdateWebSettings(ctx context.Context, s *model.WebSettings) error {
	logger.Log.WithField("web_settings_id", s.ID).Info("Executing query to update web settings")
	query := `UPDATE web_settings SET wedding_hall_name = $1, phone_number = $2, email = $3, open_from = $4,
		close_to = $5, location = $6, location_url = $7, updated_at = NOW() WHERE id = $8`
	res, err := r.DB.ExecContext(ctx, query, s.WeddingHallName, s.PhoneNumber, s.Email, s.OpenFrom, s.CloseTo,
		s.Location, s.LocationURL, s.ID)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireAffected(res)
}

func (r *SiteRepository) DeleteWebSettings(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "web_settings", id)
}

const qrColumns = `id, url, created_at, updated_at`

func scanQRCode(row interface{ Scan(...any) error }, q *model.QRCode) error {
	return row.Scan(&q.ID, &q.URL, &q.CreatedAt, &q.UpdatedAt)
}

func (r *SiteRepository) ListQRCodes(ctx context.Context) ([]model.QRCode, error) {
	logger.Log.Info("Executing query to list QR codes")

	rows, err := r.DB.QueryContext(ctx, `SELECT `+qrColumns+` FROM qr_codes ORDER BY id`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list QR codes query")
		return nil, err
	}
	defer rows.Close()

	items := []model.QRCode{}
	for rows.Next() {
		var q model.QRCode
		if err := scanQRCode(rows, &q); err != nil {
			return nil, err
		}
		items = append(items, q)
	}
	return items, rows.Err()
}

func (r *SiteRepository) GetQRCode(ctx context.Context, id int64) (*model.QRCode, error) {
	var q model.QRCode
	if err := scanQRCode(r.DB.QueryRowContext(ctx, `SELECT `+qrColumns+` FROM qr_codes WHERE id = $1`, id), &q); err != nil {
		return nil, notFound(err)
	}
	return &q, nil
}

func (r *SiteRepository) CreateQRCode(ctx context.Context, q *model.QRCode) error {
	logger.Log.WithField("url", q.URL).Info("Executing query to create a QR code")
	query := `INSERT INTO qr_codes (url) VALUES ($1) RETURNING id, created_at, updated_at`
	return mapWriteErr(r.DB.QueryRowContext(ctx, query, q.URL).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt))
}

func (r *SiteRepository) UpdateQRCode(ctx context.Context, q *model.QRCode) error {
	logger.Log.WithField("qr_code_id", q.ID).Info("Executing query to update a QR code")
	query := `UPDATE qr_codes SET url = $1, updated_at = NOW() WHERE id = $2 RETURNING created_at, updated_at`
	return mapWriteErr(r.DB.QueryRowContext(ctx, query, q.URL, q.ID).Scan(&q.CreatedAt, &q.UpdatedAt))
}

func (r *SiteRepository) DeleteQRCode(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "qr_codes", id)
}
