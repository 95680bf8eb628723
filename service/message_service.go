package service

import (
	"context"
	"wedding-api/logger"
	"wedding-api/model"
	"wedding-api/repository"
)

type MessageService struct {
	repo repository.IMessageRepository
}

func NewMessageService(repo repository.IMessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// Submit stores a contact form message from the public site.
func (s *MessageService) Submit(ctx context.Context, req model.ContactRequest) (*model.Message, error) {
	m := &model.Message{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Message:     req.Message,
	}
	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return nil, err
	}
	logger.Log.WithField("message_id", m.ID).Info("Contact message received")
	return m, nil
}

func (s *MessageService) List(ctx context.Context) ([]model.Message, error) {
	return s.repo.ListMessages(ctx, false)
}

func (s *MessageService) Unanswered(ctx context.Context) ([]model.Message, error) {
	return s.repo.ListMessages(ctx, true)
}

func (s *MessageService) Get(ctx context.Context, id int64) (*model.Message, error) {
	return s.repo.GetMessage(ctx, id)
}

func (s *MessageService) Update(ctx context.Context, id int64, patch model.MessagePatch) (*model.Message, error) {
	if patch.Answered == nil {
		return s.repo.GetMessage(ctx, id)
	}
	return s.repo.SetAnswered(ctx, id, *patch.Answered)
}

func (s *MessageService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteMessage(ctx, id)
}
