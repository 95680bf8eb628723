package repository

import (
	"context"
	"database/sql"
	"wedding-api/logger"
	"wedding-api/model"

	"github.com/sirupsen/logrus"
)

type ITeamRepository interface {
	ListPositions(ctx context.Context) ([]model.Position, error)
	CreatePosition(ctx context.Context, p *model.Position) error
	UpdatePosition(ctx context.Context, p *model.Position) error
	DeletePosition(ctx context.Context, id int64) error

	ListMembers(ctx context.Context) ([]model.TeamMember, error)
	GetMember(ctx context.Context, id int64) (*model.TeamMember, error)
	CreateMember(ctx context.Context, m *model.TeamMember) error
	UpdateMember(ctx context.Context, m *model.TeamMember) error
	DeleteMember(ctx context.Context, id int64) error
	CountMembers(ctx context.Context) (int, error)
}

type TeamRepository struct {
	DB *sql.DB
}

func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) ListPositions(ctx context.Context) ([]model.Position, error) {
	logger.Log.Info("Executing query to list positions")

	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, created_at FROM positions ORDER BY id`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list positions query")
		return nil, err
	}
	defer rows.Close()

	positions := []model.Position{}
	for rows.Next() {
		var p model.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func (r *TeamRepository) CreatePosition(ctx context.Context, p *model.Position) error {
	logger.Log.WithField("name", p.Name).Info("Executing query to create a position")
	err := r.DB.QueryRowContext(ctx, `INSERT INTO positions (name) VALUES ($1) RETURNING id, created_at`, p.Name).Scan(&p.ID, &p.CreatedAt)
	return mapWriteErr(err)
}

func (r *TeamRepository) UpdatePosition(ctx context.Context, p *model.Position) error {
	logger.Log.WithField("position_id", p.ID).Info("Executing query to update a position")
	query := `UPDATE positions SET name = $1, updated_at = NOW() WHERE id = $2 RETURNING created_at`
	return mapWriteErr(r.DB.QueryRowContext(ctx, query, p.Name, p.ID).Scan(&p.CreatedAt))
}

func (r *TeamRepository) DeletePosition(ctx context.Context, id int64) error {
	logger.Log.WithField("position_id", id).Info("Executing query to delete a position")
	res, err := r.DB.ExecContext(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

const memberQuery = `SELECT t.id, t.first_name, t.last_name, t.middle_name, t.position_id, p.name,
	t.from_working_hours, t.to_working_hours, t.salary_type, t.salary, t.work_start_date, t.image,
	t.created_at, t.updated_at
	FROM team_members t JOIN positions p ON p.id = t.position_id`

func scanMember(row interface{ Scan(...any) error }, m *model.TeamMember) error {
	err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.MiddleName, &m.PositionID, &m.Position,
		&m.FromWorkingHours, &m.ToWorkingHours, &m.SalaryType, &m.Salary, &m.WorkStartDate, &m.Image,
		&m.CreatedAt, &m.UpdatedAt)
	m.SalaryTypeName = m.SalaryType.String()
	return err
}

func (r *TeamRepository) ListMembers(ctx context.Context) ([]model.TeamMember, error) {
	log := logger.Log.WithField("table", "team_members")
	log.Info("Executing query to list team members")

	rows, err := r.DB.QueryContext(ctx, memberQuery+` ORDER BY t.id`)
	if err != nil {
		log.WithError(err).Error("Failed to execute list team members query")
		return nil, err
	}
	defer rows.Close()

	members := []model.TeamMember{}
	for rows.Next() {
		var m model.TeamMember
		if err := scanMember(rows, &m); err != nil {
			log.WithError(err).Error("Failed to scan team member row")
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *TeamRepository) GetMember(ctx context.Context, id int64) (*model.TeamMember, error) {
	var m model.TeamMember
	if err := scanMember(r.DB.QueryRowContext(ctx, memberQuery+` WHERE t.id = $1`, id), &m); err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

func (r *TeamRepository) CreateMember(ctx context.Context, m *model.TeamMember) error {
	log := logger.Log.WithFields(logrus.Fields{
		"position_id": m.PositionID,
		"last_name":   m.LastName,
	})
	log.Info("Executing query to create a team member")

	query := `INSERT INTO team_members (first_name, last_name, middle_name, position_id, from_working_hours,
		to_working_hours, salary_type, salary, work_start_date, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at, updated_at`
	err := r.DB.QueryRowContext(ctx, query, m.FirstName, m.LastName, m.MiddleName, m.PositionID, m.FromWorkingHours,
		m.ToWorkingHours, m.SalaryType, m.Salary, m.WorkStartDate, m.Image).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		log.WithError(err).Warn("Failed to execute create team member query")
		return mapWriteErr(err)
	}
	m.SalaryTypeName = m.SalaryType.String()
	return nil
}

func (r *TeamRepository) UpdateMember(ctx context.Context, m *model.TeamMember) error {
	log := logger.Log.WithField("member_id", m.ID)
	log.Info("Executing query to update a team member")

	query := `UPDATE team_members SET first_name = $1, last_name = $2, middle_name = $3, position_id = $4,
		from_working_hours = $5, to_working_hours = $6, salary_type = $7, salary = $8, work_start_date = $9,
		image = $10, updated_at = NOW()
		WHERE id = $11 RETURNING updated_at`
	err := r.DB.QueryRowContext(ctx, query, m.FirstName, m.LastName, m.MiddleName, m.PositionID, m.FromWorkingHours,
		m.ToWorkingHours, m.SalaryType, m.Salary, m.WorkStartDate, m.Image, m.ID).Scan(&m.UpdatedAt)
	if err != nil {
		log.WithError(err).Warn("Failed to execute update team member query")
		return mapWriteErr(err)
	}
	m.SalaryTypeName = m.SalaryType.String()
	return nil
}

func (r *TeamRepository) DeleteMember(ctx context.Context, id int64) error {
	logger.Log.WithField("member_id", id).Info("Executing query to delete a team member")
	res, err := r.DB.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *TeamRepository) CountMembers(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&n)
	return n, err
}
