package application

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
	"github.com/morechaitanya606/ucia/internal/infrastructure/postgres"
)

type fakeMessageRepo struct {
	byID   map[string]*entity.Message
	nextID int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{byID: map[string]*entity.Message{}}
}

func (f *fakeMessageRepo) Create(_ context.Context, m *entity.Message) error {
	f.nextID++
	m.ID = "msg-" + strconv.Itoa(f.nextID)
	m.CreatedAt = time.Now()
	cp := *m
	f.byID[m.ID] = &cp
	return nil
}

func (f *fakeMessageRepo) List(_ context.Context) ([]*entity.Message, error) {
	out := make([]*entity.Message, 0, len(f.byID))
	for _, m := range f.byID {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeMessageRepo) SetStatus(_ context.Context, id string, status entity.MessageStatus) error {
	m, ok := f.byID[id]
	if !ok {
		return postgres.ErrNotFound
	}
	m.Status = status
	return nil
}

func (f *fakeMessageRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return postgres.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestSubmit_StartsAsNew(t *testing.T) {
	t.Parallel()

	repo := newFakeMessageRepo()
	svc := NewMessageService(repo, nil, nil) // no publisher: enqueue is best-effort
	ctx := context.Background()

	m, err := svc.Submit(ctx, SubmitMessageInput{Name: "Visitor", Email: "v@x.com", Message: "Hello"})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if m.ID == "" {
		t.Fatal("submitted message has no id")
	}
	if m.Status != entity.MessageNew {
		t.Fatalf("Status = %q, want new", m.Status)
	}
}

func TestSetStatusAndDelete(t *testing.T) {
	t.Parallel()

	repo := newFakeMessageRepo()
	svc := NewMessageService(repo, nil, nil)
	ctx := context.Background()

	m, err := svc.Submit(ctx, SubmitMessageInput{Name: "V", Email: "v@x.com", Message: "Hi"})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	if err := svc.SetStatus(ctx, m.ID, entity.MessageSeen); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if repo.byID[m.ID].Status != entity.MessageSeen {
		t.Fatalf("stored status = %q, want seen", repo.byID[m.ID].Status)
	}

	if err := svc.SetStatus(ctx, "missing", entity.MessageArchived); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: got %v, want ErrNotFound", err)
	}

	if err := svc.Delete(ctx, m.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := svc.Delete(ctx, m.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}
