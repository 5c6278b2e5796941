// AngelaMos | 2026
// service_test.go

package task

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/taskboard-api/internal/core"
)

// fakeRepository mirrors the ownership filtering of the real store:
// lookups by (id, userID) and a not-found error for foreign tasks.
type fakeRepository struct {
	tasks map[string]*Task
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{tasks: make(map[string]*Task)}
}

func (f *fakeRepository) Create(_ context.Context, t *Task) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	stored := *t
	f.tasks[t.ID] = &stored
	return nil
}

func (f *fakeRepository) GetForUser(
	_ context.Context,
	id, userID string,
) (*Task, error) {
	t, ok := f.tasks[id]
	if !ok || t.UserID != userID {
		return nil, fmt.Errorf("get task: %w", core.ErrNotFound)
	}
	copied := *t
	return &copied, nil
}

func (f *fakeRepository) ListForUser(
	_ context.Context,
	userID string,
) ([]Task, error) {
	var out []Task
	for _, t := range f.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeRepository) Update(_ context.Context, t *Task) error {
	existing, ok := f.tasks[t.ID]
	if !ok || existing.UserID != t.UserID {
		return fmt.Errorf("update task: %w", core.ErrNotFound)
	}
	t.UpdatedAt = existing.UpdatedAt.Add(time.Second)
	stored := *t
	f.tasks[t.ID] = &stored
	return nil
}

func (f *fakeRepository) DeleteForUser(
	_ context.Context,
	id, userID string,
) error {
	t, ok := f.tasks[id]
	if !ok || t.UserID != userID {
		return fmt.Errorf("delete task: %w", core.ErrNotFound)
	}
	delete(f.tasks, id)
	return nil
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u-1", CreateTaskRequest{
		Title: "write report",
	})
	require.NoError(t, err)
	require.Equal(t, StatusTodo, created.Status)
	require.Equal(t, PriorityMedium, created.Priority)
	require.Equal(t, "u-1", created.UserID)
	require.NotEmpty(t, created.ID)
}

func TestCreateKeepsExplicitValues(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u-1", CreateTaskRequest{
		Title:    "ship release",
		Status:   StatusInProgress,
		Priority: PriorityHigh,
	})
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, created.Status)
	require.Equal(t, PriorityHigh, created.Priority)
}

func TestGetEnforcesOwnership(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u-1", CreateTaskRequest{Title: "mine"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "u-1", created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	// Another user sees not-found, not forbidden.
	_, err = svc.Get(ctx, "u-2", created.ID)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestListReturnsOnlyOwnTasks(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "u-1", CreateTaskRequest{Title: "first"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u-1", CreateTaskRequest{Title: "second"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u-2", CreateTaskRequest{Title: "theirs"})
	require.NoError(t, err)

	tasks, err := svc.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		require.Equal(t, "u-1", task.UserID)
	}
}

func TestUpdateMergesPartialFields(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u-1", CreateTaskRequest{
		Title:       "write report",
		Description: "quarterly numbers",
		Priority:    PriorityHigh,
	})
	require.NoError(t, err)

	status := StatusCompleted
	updated, err := svc.Update(ctx, "u-1", created.ID, UpdateTaskRequest{
		Status: &status,
	})
	require.NoError(t, err)

	require.Equal(t, StatusCompleted, updated.Status)
	// Untouched fields survive the merge.
	require.Equal(t, "write report", updated.Title)
	require.Equal(t, "quarterly numbers", updated.Description)
	require.Equal(t, PriorityHigh, updated.Priority)
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateForeignTask(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u-1", CreateTaskRequest{Title: "mine"})
	require.NoError(t, err)

	title := "hijacked"
	_, err = svc.Update(ctx, "u-2", created.ID, UpdateTaskRequest{
		Title: &title,
	})
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u-1", CreateTaskRequest{Title: "mine"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, "u-2", created.ID), core.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, "u-1", created.ID))
	require.ErrorIs(t, svc.Delete(ctx, "u-1", created.ID), core.ErrNotFound)
}
