package repository

import (
	"context"
	"database/sql"
	"wedding-api/logger"
	"wedding-api/model"
)

type IMessageRepository interface {
	ListMessages(ctx context.Context, onlyUnanswered bool) ([]model.Message, error)
	GetMessage(ctx context.Context, id int64) (*model.Message, error)
	CreateMessage(ctx context.Context, m *model.Message) error
	SetAnswered(ctx context.Context, id int64, answered bool) (*model.Message, error)
	DeleteMessage(ctx context.Context, id int64) error
	CountUnanswered(ctx context.Context) (int, error)
}

type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

const messageColumns = `id, first_name, last_name, phone_number, message, answered, created_at`

func scanMessage(row interface{ Scan(...any) error }, m *model.Message) error {
	return row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.PhoneNumber, &m.Message, &m.Answered, &m.CreatedAt)
}

func (r *MessageRepository) ListMessages(ctx context.Context, onlyUnanswered bool) ([]model.Message, error) {
	log := logger.Log.WithField("only_unanswered", onlyUnanswered)
	log.Info("Executing query to list messages")

	query := `SELECT ` + messageColumns + ` FROM messages`
	if onlyUnanswered {
		query += ` WHERE answered = FALSE`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.WithError(err).Error("Failed to execute list messages query")
		return nil, err
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := scanMessage(rows, &m); err != nil {
			log.WithError(err).Error("Failed to scan message row")
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) GetMessage(ctx context.Context, id int64) (*model.Message, error) {
	var m model.Message
	if err := scanMessage(r.DB.QueryRowContext(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id), &m); err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

func (r *MessageRepository) CreateMessage(ctx context.Context, m *model.Message) error {
	log := logger.Log.WithField("phone_number", m.PhoneNumber)
	log.Info("Executing query to store a contact message")

	query := `INSERT INTO messages (first_name, last_name, phone_number, message) VALUES ($1, $2, $3, $4)
		RETURNING id, answered, created_at`
	err := r.DB.QueryRowContext(ctx, query, m.FirstName, m.LastName, m.PhoneNumber, m.Message).Scan(&m.ID, &m.Answered, &m.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create message query")
		return err
	}
	return nil
}

func (r *MessageRepository) SetAnswered(ctx context.Context, id int64, answered bool) (*model.Message, error) {
	logger.Log.WithField("message_id", id).Info("Executing query to update message status")

	var m model.Message
	query := `UPDATE messages SET answered = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + messageColumns
	if err := scanMessage(r.DB.QueryRowContext(ctx, query, answered, id), &m); err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

func (r *MessageRepository) DeleteMessage(ctx context.Context, id int64) error {
	logger.Log.WithField("message_id", id).Info("Executing query to delete a message")
	res, err := r.DB.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *MessageRepository) CountUnanswered(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages WHERE answered = FALSE`).Scan(&n)
	return n, err
}
