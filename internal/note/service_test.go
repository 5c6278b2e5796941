// AngelaMos | 2026
// service_test.go

package note

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/taskboard-api/internal/core"
)

type fakeRepository struct {
	notes map[string]*Note
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{notes: make(map[string]*Note)}
}

func (f *fakeRepository) Create(_ context.Context, n *Note) error {
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	stored := *n
	f.notes[n.ID] = &stored
	return nil
}

func (f *fakeRepository) GetForUser(
	_ context.Context,
	id, userID string,
) (*Note, error) {
	n, ok := f.notes[id]
	if !ok || n.UserID != userID {
		return nil, fmt.Errorf("get note: %w", core.ErrNotFound)
	}
	copied := *n
	return &copied, nil
}

func (f *fakeRepository) ListForUser(
	_ context.Context,
	userID string,
) ([]Note, error) {
	var out []Note
	for _, n := range f.notes {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeRepository) Update(_ context.Context, n *Note) error {
	existing, ok := f.notes[n.ID]
	if !ok || existing.UserID != n.UserID {
		return fmt.Errorf("update note: %w", core.ErrNotFound)
	}
	n.UpdatedAt = existing.UpdatedAt.Add(time.Second)
	stored := *n
	f.notes[n.ID] = &stored
	return nil
}

func (f *fakeRepository) DeleteForUser(
	_ context.Context,
	id, userID string,
) error {
	n, ok := f.notes[id]
	if !ok || n.UserID != userID {
		return fmt.Errorf("delete note: %w", core.ErrNotFound)
	}
	delete(f.notes, id)
	return nil
}

func TestCreateNoteNormalizesNilTags(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u-1", CreateNoteRequest{
		Title:   "meeting notes",
		Content: "agenda",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Tags)
	require.Empty(t, created.Tags)

	resp := ToNoteResponse(created)
	require.Equal(t, []string{}, resp.Tags)
}

func TestCreateNoteKeepsTags(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u-1", CreateNoteRequest{
		Title: "meeting notes",
		Tags:  []string{"work", "q3"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"work", "q3"}, []string(created.Tags))
}

func TestUpdateNoteReplacesTags(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u-1", CreateNoteRequest{
		Title:   "meeting notes",
		Content: "agenda",
		Tags:    []string{"work"},
	})
	require.NoError(t, err)

	tags := []string{"personal", "archive"}
	updated, err := svc.Update(ctx, "u-1", created.ID, UpdateNoteRequest{
		Tags: &tags,
	})
	require.NoError(t, err)
	// Tags are replaced wholesale, never appended.
	require.Equal(t, []string{"personal", "archive"}, []string(updated.Tags))
	require.Equal(t, "meeting notes", updated.Title)
	require.Equal(t, "agenda", updated.Content)
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestNoteOwnershipAsNotFound(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u-1", CreateNoteRequest{Title: "mine"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "u-2", created.ID)
	require.ErrorIs(t, err, core.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "u-2", created.ID), core.ErrNotFound)

	_, err = svc.Get(ctx, "u-1", created.ID)
	require.NoError(t, err)
}
