package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
	repo "github.com/morechaitanya606/ucia/internal/domain/repository"
	"github.com/morechaitanya606/ucia/internal/infrastructure/postgres"
	"github.com/morechaitanya606/ucia/pkg/helpers"
	"github.com/morechaitanya606/ucia/pkg/mailer"
)

// MessageService owns contact-form submissions. New messages are queued for
// an admin notification email; queue failures never fail the submission.
type MessageService struct {
	Repo   repo.MessageRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewMessageService(repo repo.MessageRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *MessageService {
	return &MessageService{Repo: repo, Pub: pub, Logger: logger}
}

type SubmitMessageInput struct {
	Name       string
	Email      string
	Message    string
	ProjectRef string
}

func (s *MessageService) Submit(ctx context.Context, in SubmitMessageInput) (*entity.Message, error) {
	m := &entity.Message{
		Name:       in.Name,
		Email:      in.Email,
		Body:       in.Message,
		ProjectRef: in.ProjectRef,
		Status:     entity.MessageNew,
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, err
	}

	if s.Pub != nil {
		job := mailer.ContactJob{
			MessageID:  m.ID,
			Name:       m.Name,
			Email:      m.Email,
			Message:    m.Body,
			ProjectRef: m.ProjectRef,
			ReceivedAt: m.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("message_id", m.ID).Warn("contact notification enqueue failed")
		}
	}
	return m, nil
}

func (s *MessageService) List(ctx context.Context) ([]*entity.Message, error) {
	return s.Repo.List(ctx)
}

func (s *MessageService) SetStatus(ctx context.Context, id string, status entity.MessageStatus) error {
	if err := s.Repo.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
