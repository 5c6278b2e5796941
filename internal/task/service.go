// AngelaMos | 2026
// service.go

package task

import (
	"context"

	"github.com/carterperez-dev/taskboard-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreateTaskRequest,
) (*Task, error) {
	t := &Task{
		ID:          core.NewID(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		UserID:      userID,
	}

	if t.Status == "" {
		t.Status = StatusTodo
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Task, error) {
	return s.repo.GetForUser(ctx, id, userID)
}

func (s *Service) List(ctx context.Context, userID string) ([]Task, error) {
	return s.repo.ListForUser(ctx, userID)
}

// Update merges only the supplied fields; updated_at is always refreshed
// by the store.
func (s *Service) Update(
	ctx context.Context,
	userID, id string,
	req UpdateTaskRequest,
) (*Task, error) {
	t, err := s.repo.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteForUser(ctx, id, userID)
}
