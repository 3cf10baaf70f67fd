package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todolist/internal/cache"
	dom "todolist/internal/domain"
	"todolist/internal/repo"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound   = errors.New("todo not found")
	ErrEmptyPatch = errors.New("no fields to update")
)

// PagedTodos is a page of todos with pagination metadata.
type PagedTodos struct {
	Items []dom.Todo
	Total int64
	Page  int
	Limit int
	Pages int
}

type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

// List returns one page of todos with metadata. pages is ceil(total/limit)
// but never below 1, so an empty collection still reports one (empty) page.
func (s *TodoService) List(ctx context.Context, page, limit int) (PagedTodos, error) {
	p, err := s.loadPage(ctx, page, limit)
	if err != nil {
		return PagedTodos{}, err
	}
	pages := 1
	if p.Total > 0 {
		pages = int((p.Total + int64(limit) - 1) / int64(limit))
	}
	items := p.Items
	if items == nil {
		items = []dom.Todo{}
	}
	return PagedTodos{
		Items: items,
		Total: p.Total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}, nil
}

func (s *TodoService) loadPage(ctx context.Context, page, limit int) (dom.TodoPage, error) {
	if s.cache == nil {
		items, total, err := s.repo.ListPage(ctx, page, limit)
		if err != nil {
			return dom.TodoPage{}, err
		}
		return dom.TodoPage{Items: items, Total: total}, nil
	}
	key := fmt.Sprintf("list:%d:%d", page, limit)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if p, err := s.cache.GetPage(ctx, page, limit); err == nil && p != nil {
			return *p, nil
		}
		items, total, err := s.repo.ListPage(ctx, page, limit)
		if err != nil {
			return nil, err
		}
		p := dom.TodoPage{Items: items, Total: total}
		_ = s.cache.SetPage(ctx, page, limit, p)
		return p, nil
	})
	if err != nil {
		return dom.TodoPage{}, err
	}
	return v.(dom.TodoPage), nil
}

func (s *TodoService) GetByID(ctx context.Context, id string) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

func (s *TodoService) Create(ctx context.Context, name, description, deadline string) (dom.Todo, error) {
	draft := dom.NewDraft(name, description, deadline, time.Now())
	t, err := s.repo.Create(ctx, draft)
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

// Update applies a partial patch. An empty patch is rejected before the
// store is touched.
func (s *TodoService) Update(ctx context.Context, id string, patch dom.Patch) (dom.Todo, error) {
	if patch.IsEmpty() {
		return dom.Todo{}, ErrEmptyPatch
	}
	t, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *TodoService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
}
