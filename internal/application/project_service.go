package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
	repo "github.com/morechaitanya606/ucia/internal/domain/repository"
	"github.com/morechaitanya606/ucia/internal/infrastructure/postgres"
)

// ProjectService owns project records. Reads are public and cached; mutations
// are admin-gated upstream and keep the Elasticsearch index and the list
// cache in sync.
type ProjectService struct {
	Repo    repo.ProjectRepository
	Cache   ProjectCache
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
}

func NewProjectService(repo repo.ProjectRepository, cache ProjectCache, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *ProjectService {
	return &ProjectService{Repo: repo, Cache: cache, Logger: logger, ES: es, ESIndex: esIndex}
}

func (s *ProjectService) List(ctx context.Context) ([]*entity.Project, error) {
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx); ok {
			return cached, nil
		}
	}

	projects, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, projects)
	}
	return projects, nil
}

func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	p, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// CreateInput mirrors the mutable project fields; the creator id comes from
// the verified claim, not the payload.
type CreateProjectInput struct {
	Slug             string
	Title            string
	Subtitle         string
	ShortDescription string
	Description      string
	Icon             string
	Gradient         string
	Status           string
	StartDate        *time.Time
	EndDate          *time.Time
	Stats            []entity.ProjectStat
	Features         []string
}

func (s *ProjectService) Create(ctx context.Context, createdBy string, in CreateProjectInput) (*entity.Project, error) {
	status := entity.ProjectStatus(in.Status)
	if status == "" {
		status = entity.ProjectOngoing
	}
	p := &entity.Project{
		Slug:             strings.ToLower(strings.TrimSpace(in.Slug)),
		Title:            in.Title,
		Subtitle:         in.Subtitle,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		Icon:             in.Icon,
		Gradient:         in.Gradient,
		Status:           status,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Stats:            in.Stats,
		Features:         in.Features,
		CreatedBy:        createdBy,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		if errors.Is(err, postgres.ErrDuplicate) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}

	s.invalidateList(ctx)
	_ = s.indexProject(ctx, p)
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, slug string, in CreateProjectInput) (*entity.Project, error) {
	p, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.Title = in.Title
	p.Subtitle = in.Subtitle
	p.ShortDescription = in.ShortDescription
	p.Description = in.Description
	p.Icon = in.Icon
	p.Gradient = in.Gradient
	if in.Status != "" {
		p.Status = entity.ProjectStatus(in.Status)
	}
	p.StartDate = in.StartDate
	p.EndDate = in.EndDate
	p.Stats = in.Stats
	p.Features = in.Features

	if err := s.Repo.Update(ctx, p); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.invalidateList(ctx)
	_ = s.indexProject(ctx, p)
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, slug string) error {
	p, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.Repo.DeleteBySlug(ctx, slug); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.invalidateList(ctx)
	s.removeFromIndex(ctx, p.ID)
	return nil
}

func (s *ProjectService) invalidateList(ctx context.Context) {
	if s.Cache != nil {
		s.Cache.Invalidate(ctx)
	}
}

func (s *ProjectService) indexProject(ctx context.Context, p *entity.Project) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":                p.ID,
		"slug":              p.Slug,
		"title":             p.Title,
		"subtitle":          p.Subtitle,
		"short_description": p.ShortDescription,
		"description":       p.Description,
		"status":            string(p.Status),
		"created_at":        p.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":        p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("project_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("project_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *ProjectService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("project_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over the indexed project text fields.
func (s *ProjectService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "subtitle", "short_description", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
