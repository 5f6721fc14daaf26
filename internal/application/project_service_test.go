package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
)

// fakeProjectCache records cache traffic so tests can observe the
// read-through and invalidation behavior.
type fakeProjectCache struct {
	list        []*entity.Project
	sets        int
	invalidates int
}

func (c *fakeProjectCache) Get(_ context.Context) ([]*entity.Project, bool) {
	if c.list == nil {
		return nil, false
	}
	return c.list, true
}

func (c *fakeProjectCache) Set(_ context.Context, projects []*entity.Project) {
	c.sets++
	c.list = projects
}

func (c *fakeProjectCache) Invalidate(_ context.Context) {
	c.invalidates++
	c.list = nil
}

func newTestProjectService() (*ProjectService, *fakeProjectRepo, *fakeProjectCache) {
	repo := &fakeProjectRepo{bySlug: map[string]*entity.Project{}}
	cache := &fakeProjectCache{}
	return NewProjectService(repo, cache, nil, nil, ""), repo, cache
}

func TestProjectList_CachesReadThrough(t *testing.T) {
	t.Parallel()

	svc, repo, cache := newTestProjectService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "admin-1", CreateProjectInput{Slug: "clean-water", Title: "Clean Water"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	first, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("got %d projects, want 1", len(first))
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	calls := repo.listCalls
	second, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("second List error: %v", err)
	}
	if repo.listCalls != calls {
		t.Fatal("cached List still hit the store")
	}
	if len(second) != 1 {
		t.Fatalf("cached list has %d projects, want 1", len(second))
	}
}

func TestProjectList_WithoutCache(t *testing.T) {
	t.Parallel()

	repo := &fakeProjectRepo{bySlug: map[string]*entity.Project{
		"edu": {ID: "p1", Slug: "edu", Title: "Education"},
	}}
	svc := NewProjectService(repo, nil, nil, nil, "")

	for i := 0; i < 2; i++ {
		got, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("got %d projects, want 1", len(got))
		}
	}
	if repo.listCalls != 2 {
		t.Fatalf("store reads = %d, want 2 (no cache configured)", repo.listCalls)
	}
}

func TestProjectMutations_InvalidateCache(t *testing.T) {
	t.Parallel()

	svc, _, cache := newTestProjectService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "admin-1", CreateProjectInput{Slug: "health", Title: "Health"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if cache.invalidates != 1 {
		t.Fatalf("invalidations after create = %d, want 1", cache.invalidates)
	}

	if _, err := svc.Update(ctx, "health", CreateProjectInput{Title: "Health v2"}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if cache.invalidates != 2 {
		t.Fatalf("invalidations after update = %d, want 2", cache.invalidates)
	}

	if err := svc.Delete(ctx, "health"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if cache.invalidates != 3 {
		t.Fatalf("invalidations after delete = %d, want 3", cache.invalidates)
	}
}

func TestProjectCreate_NormalizesSlugAndRejectsDuplicate(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestProjectService()
	ctx := context.Background()

	p, err := svc.Create(ctx, "admin-1", CreateProjectInput{Slug: "  Clean-Water ", Title: "Clean Water"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.Slug != "clean-water" {
		t.Fatalf("Slug = %q, want clean-water", p.Slug)
	}
	if p.Status != entity.ProjectOngoing {
		t.Fatalf("Status = %q, want ongoing default", p.Status)
	}
	if p.CreatedBy != "admin-1" {
		t.Fatalf("CreatedBy = %q, want admin-1", p.CreatedBy)
	}

	if _, err := svc.Create(ctx, "admin-2", CreateProjectInput{Slug: "clean-water", Title: "Other"}); !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("duplicate slug: got %v, want ErrDuplicateSlug", err)
	}
}

func TestProjectNotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestProjectService()
	ctx := context.Background()

	if _, err := svc.GetBySlug(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetBySlug: got %v, want ErrNotFound", err)
	}
	if _, err := svc.Update(ctx, "missing", CreateProjectInput{Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update: got %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete: got %v, want ErrNotFound", err)
	}
}

func TestSearch_WithoutESReturnsEmpty(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestProjectService()
	hits, err := svc.Search(context.Background(), "water", 10)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("got %d hits without a search backend, want 0", len(hits))
	}
}

// searchTransport plays the Elasticsearch server role and records the last
// request body so tests can inspect the generated query.
type searchTransport struct {
	lastBody []byte
	response string
}

func (tr *searchTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		tr.lastBody, _ = io.ReadAll(req.Body)
	}
	header := http.Header{}
	header.Set("X-Elastic-Product", "Elasticsearch")
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(tr.response)),
		Request:    req,
	}, nil
}

func newSearchBackedService(t *testing.T, tr *searchTransport) *ProjectService {
	t.Helper()
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{"http://search.test:9200"},
		Transport: tr,
	})
	if err != nil {
		t.Fatalf("elasticsearch client: %v", err)
	}
	repo := &fakeProjectRepo{bySlug: map[string]*entity.Project{}}
	return NewProjectService(repo, nil, nil, es, "projects")
}

func TestSearch_ClampsSizeAndParsesHits(t *testing.T) {
	t.Parallel()

	tr := &searchTransport{response: `{"hits":{"hits":[
		{"_id":"p1","_source":{"slug":"clean-water","title":"Clean Water"}},
		{"_id":"p2","_source":{"slug":"edu","title":"Education"}}
	]}}`}
	svc := newSearchBackedService(t, tr)

	hits, err := svc.Search(context.Background(), "water", 500)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	if hits[0]["slug"] != "clean-water" {
		t.Fatalf("first hit slug = %v, want clean-water", hits[0]["slug"])
	}

	var sent struct {
		Size  int `json:"size"`
		Query struct {
			MultiMatch struct {
				Query string `json:"query"`
			} `json:"multi_match"`
		} `json:"query"`
	}
	if err := json.Unmarshal(tr.lastBody, &sent); err != nil {
		t.Fatalf("query body: %v", err)
	}
	if sent.Size != 10 {
		t.Fatalf("size = %d, want 10 (out-of-range size must clamp)", sent.Size)
	}
	if sent.Query.MultiMatch.Query != "water" {
		t.Fatalf("query = %q, want water", sent.Query.MultiMatch.Query)
	}
}
