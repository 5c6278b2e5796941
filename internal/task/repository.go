// AngelaMos | 2026
// repository.go

package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/taskboard-api/internal/core"
)

// listCap bounds list responses; there is no cursor protocol.
const listCap = 100

type Repository interface {
	Create(ctx context.Context, t *Task) error
	GetForUser(ctx context.Context, id, userID string) (*Task, error)
	ListForUser(ctx context.Context, userID string) ([]Task, error)
	Update(ctx context.Context, t *Task) error
	DeleteForUser(ctx context.Context, id, userID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	query := `
		INSERT INTO tasks (id, title, description, status, priority, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, t, query,
		t.ID,
		t.Title,
		t.Description,
		t.Status,
		t.Priority,
		t.UserID,
	)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

// GetForUser filters by owner as well as id, so another user's task is
// indistinguishable from an absent one.
func (r *repository) GetForUser(
	ctx context.Context,
	id, userID string,
) (*Task, error) {
	query := `
		SELECT id, title, description, status, priority, user_id,
		       created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2`

	var t Task
	err := r.db.GetContext(ctx, &t, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get task: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	return &t, nil
}

func (r *repository) ListForUser(
	ctx context.Context,
	userID string,
) ([]Task, error) {
	query := `
		SELECT id, title, description, status, priority, user_id,
		       created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	tasks := make([]Task, 0, listCap)
	if err := r.db.SelectContext(ctx, &tasks, query, userID, listCap); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	query := `
		UPDATE tasks
		SET title = $3, description = $4, status = $5, priority = $6,
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &t.UpdatedAt, query,
		t.ID,
		t.UserID,
		t.Title,
		t.Description,
		t.Status,
		t.Priority,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update task: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	return nil
}

func (r *repository) DeleteForUser(
	ctx context.Context,
	id, userID string,
) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete task: %w", core.ErrNotFound)
	}

	return nil
}
