package service

import (
	"context"
	"errors"
	"testing"

	dom "todolist/internal/domain"

	"go.mongodb.org/mongo-driver/mongo"
)

// fakeRepo is an in-memory TodoRepo that records how it was called.
type fakeRepo struct {
	items      []dom.Todo
	total      int64
	getErr     error
	updateErr  error
	deleted    bool
	calls      []string
	lastDraft  dom.Draft
	lastPatch  dom.Patch
	lastListID struct{ page, limit int }
}

func (f *fakeRepo) ListPage(ctx context.Context, page, limit int) ([]dom.Todo, int64, error) {
	f.calls = append(f.calls, "ListPage")
	f.lastListID.page, f.lastListID.limit = page, limit
	return f.items, f.total, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (dom.Todo, error) {
	f.calls = append(f.calls, "GetByID")
	if f.getErr != nil {
		return dom.Todo{}, f.getErr
	}
	return dom.Todo{ID: id}, nil
}

func (f *fakeRepo) Create(ctx context.Context, draft dom.Draft) (dom.Todo, error) {
	f.calls = append(f.calls, "Create")
	f.lastDraft = draft
	return dom.Todo{
		ID:          "507f1f77bcf86cd799439011",
		Name:        draft.Name,
		Description: draft.Description,
		CreatedAt:   draft.CreatedAt,
		Deadline:    draft.Deadline,
		Status:      draft.Status,
		Canceled:    draft.Canceled,
	}, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, patch dom.Patch) (dom.Todo, error) {
	f.calls = append(f.calls, "Update")
	f.lastPatch = patch
	if f.updateErr != nil {
		return dom.Todo{}, f.updateErr
	}
	return dom.Todo{ID: id, Status: "done"}, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (bool, error) {
	f.calls = append(f.calls, "Delete")
	return f.deleted, nil
}

func TestListComputesPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		pages int
	}{
		{"empty collection still has one page", 0, 10, 1},
		{"exact fit", 20, 10, 2},
		{"remainder rounds up", 21, 10, 3},
		{"single item", 1, 100, 1},
		{"limit one", 7, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTodoService(&fakeRepo{total: tt.total}, nil)
			got, err := svc.List(context.Background(), 1, tt.limit)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if got.Pages != tt.pages {
				t.Errorf("pages = %d, want %d", got.Pages, tt.pages)
			}
			if got.Total != tt.total || got.Page != 1 || got.Limit != tt.limit {
				t.Errorf("metadata mismatch: %+v", got)
			}
		})
	}
}

func TestListPassesPageAndLimitThrough(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewTodoService(repo, nil)
	if _, err := svc.List(context.Background(), 3, 25); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastListID.page != 3 || repo.lastListID.limit != 25 {
		t.Errorf("repo saw page=%d limit=%d, want 3/25", repo.lastListID.page, repo.lastListID.limit)
	}
}

func TestListReturnsEmptySliceNotNil(t *testing.T) {
	svc := NewTodoService(&fakeRepo{}, nil)
	got, err := svc.List(context.Background(), 5, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got.Items == nil {
		t.Error("items should be an empty slice, not nil")
	}
	if len(got.Items) != 0 {
		t.Errorf("items = %v, want empty", got.Items)
	}
}

func TestGetByIDMapsNoDocumentsToNotFound(t *testing.T) {
	repo := &fakeRepo{getErr: mongo.ErrNoDocuments}
	svc := NewTodoService(repo, nil)
	_, err := svc.GetByID(context.Background(), "507f1f77bcf86cd799439011")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetByIDPassesOtherErrorsThrough(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &fakeRepo{getErr: boom}
	svc := NewTodoService(repo, nil)
	_, err := svc.GetByID(context.Background(), "507f1f77bcf86cd799439011")
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want underlying error untouched", err)
	}
}

func TestCreateStampsDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewTodoService(repo, nil)
	got, err := svc.Create(context.Background(), "buy milk", "2%", "2024-01-01")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.lastDraft.Status != dom.StatusNotDone || repo.lastDraft.Canceled {
		t.Errorf("draft defaults not stamped: %+v", repo.lastDraft)
	}
	if repo.lastDraft.CreatedAt == "" {
		t.Error("draft createdAt not set")
	}
	if got.Status != dom.StatusNotDone || got.Canceled {
		t.Errorf("returned item missing defaults: %+v", got)
	}
}

func TestUpdateRejectsEmptyPatchBeforeStore(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewTodoService(repo, nil)
	_, err := svc.Update(context.Background(), "507f1f77bcf86cd799439011", dom.Patch{})
	if !errors.Is(err, ErrEmptyPatch) {
		t.Fatalf("err = %v, want ErrEmptyPatch", err)
	}
	if len(repo.calls) != 0 {
		t.Errorf("store was touched: %v", repo.calls)
	}
}

func TestUpdateMapsNoDocumentsToNotFound(t *testing.T) {
	status := "done"
	repo := &fakeRepo{updateErr: mongo.ErrNoDocuments}
	svc := NewTodoService(repo, nil)
	_, err := svc.Update(context.Background(), "507f1f77bcf86cd799439011", dom.Patch{Status: &status})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if repo.lastPatch.Status == nil || *repo.lastPatch.Status != "done" {
		t.Errorf("patch not passed through: %+v", repo.lastPatch)
	}
}

func TestDeleteNotFoundWhenNothingRemoved(t *testing.T) {
	repo := &fakeRepo{deleted: false}
	svc := NewTodoService(repo, nil)
	err := svc.Delete(context.Background(), "507f1f77bcf86cd799439011")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTwice(t *testing.T) {
	repo := &fakeRepo{deleted: true}
	svc := NewTodoService(repo, nil)
	if err := svc.Delete(context.Background(), "507f1f77bcf86cd799439011"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	repo.deleted = false
	if err := svc.Delete(context.Background(), "507f1f77bcf86cd799439011"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}
