package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
	repo "github.com/morechaitanya606/ucia/internal/domain/repository"
	"github.com/morechaitanya606/ucia/internal/infrastructure/postgres"
	"github.com/morechaitanya606/ucia/pkg/helpers"
)

// UpdateService owns progress posts. Media files go to GCS and only the
// public URL is persisted.
type UpdateService struct {
	Repo      repo.UpdateRepository
	Projects  repo.ProjectRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewUpdateService(repo repo.UpdateRepository, projects repo.ProjectRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *UpdateService {
	return &UpdateService{Repo: repo, Projects: projects, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

// ListByProjectSlug resolves the project by slug and returns its published
// updates, newest first.
func (s *UpdateService) ListByProjectSlug(ctx context.Context, slug string) ([]*entity.Update, error) {
	p, err := s.Projects.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.ListPublishedByProject(ctx, p.ID)
}

type CreateUpdateInput struct {
	ProjectID string
	Title     string
	Content   string
	MediaURL  string
	Published *bool
}

// Create persists a new update attributed to the authenticated author.
func (s *UpdateService) Create(ctx context.Context, postedBy string, in CreateUpdateInput) (*entity.Update, error) {
	published := true
	if in.Published != nil {
		published = *in.Published
	}
	u := &entity.Update{
		ProjectID: in.ProjectID,
		Title:     in.Title,
		Content:   in.Content,
		MediaURL:  in.MediaURL,
		PostedBy:  postedBy,
		Published: published,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UpdateService) Update(ctx context.Context, id string, in CreateUpdateInput) (*entity.Update, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Title != "" {
		u.Title = in.Title
	}
	if in.Content != "" {
		u.Content = in.Content
	}
	if in.MediaURL != "" {
		u.MediaURL = in.MediaURL
	}
	if in.Published != nil {
		u.Published = *in.Published
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UpdateService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// UploadMedia streams a file to GCS under the update's path, stores the
// public URL on the record, and returns it.
func (s *UpdateService) UploadMedia(ctx context.Context, id string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("object storage not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("updates", u.ID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("update_id", u.ID).Error("media upload failed")
		}
		return "", err
	}

	u.MediaURL = url
	if err := s.Repo.Update(ctx, u); err != nil {
		return "", err
	}
	return url, nil
}
