// AngelaMos | 2026
// service.go

package note

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
	req CreateNoteRequest,
) (*Note, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	n := &Note{
		ID:      core.NewID(),
		Title:   req.Title,
		Content: req.Content,
		Tags:    tags,
		UserID:  userID,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Note, error) {
	return s.repo.GetForUser(ctx, id, userID)
}

func (s *Service) List(ctx context.Context, userID string) ([]Note, error) {
	return s.repo.ListForUser(ctx, userID)
}

// Update merges only the supplied fields; updated_at is always refreshed
// by the store.
func (s *Service) Update(
	ctx context.Context,
	userID, id string,
	req UpdateNoteRequest,
) (*Note, error) {
	n, err := s.repo.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		n.Title = *req.Title
	}
	if req.Content != nil {
		n.Content = *req.Content
	}
	if req.Tags != nil {
		n.Tags = *req.Tags
	}

	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteForUser(ctx, id, userID)
}
