package repository

import (
	"context"
	"database/sql"
	"errors"
	"wedding-api/logger"
	"wedding-api/model"
)

type IStatsRepository interface {
	GetOrCreateBaseline(ctx context.Context) (*model.DashboardStats, error)
}

// StatsRepository stores the manually maintained dashboard baseline
// (historical event count and annual income).
type StatsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// GetOrCreateBaseline returns the first dashboard_stats row, inserting a
// zeroed one when the table is empty.
func (r *StatsRepository) GetOrCreateBaseline(ctx context.Context) (*model.DashboardStats, error) {
	var s model.DashboardStats
	err := r.DB.QueryRowContext(ctx, `SELECT id, events, annual_income FROM dashboard_stats ORDER BY id LIMIT 1`).
		Scan(&s.ID, &s.Events, &s.AnnualIncome)
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		logger.Log.WithError(err).Error("Failed to execute dashboard stats query")
		return nil, err
	}

	logger.Log.Info("Creating dashboard stats baseline row")
	err = r.DB.QueryRowContext(ctx, `INSERT INTO dashboard_stats (events, annual_income) VALUES (0, 0) RETURNING id, events, annual_income`).
		Scan(&s.ID, &s.Events, &s.AnnualIncome)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to create dashboard stats baseline")
		return nil, err
	}
	return &s, nil
}
