// AngelaMos | 2026
// repository.go

package note

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
	Create(ctx context.Context, n *Note) error
	GetForUser(ctx context.Context, id, userID string) (*Note, error)
	ListForUser(ctx context.Context, userID string) ([]Note, error)
	Update(ctx context.Context, n *Note) error
	DeleteForUser(ctx context.Context, id, userID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Note) error {
	query := `
		INSERT INTO notes (id, title, content, tags, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, n, query,
		n.ID,
		n.Title,
		n.Content,
		n.Tags,
		n.UserID,
	)
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	return nil
}

// GetForUser filters by owner as well as id, so another user's note is
// indistinguishable from an absent one.
func (r *repository) GetForUser(
	ctx context.Context,
	id, userID string,
) (*Note, error) {
	query := `
		SELECT id, title, content, tags, user_id, created_at, updated_at
		FROM notes
		WHERE id = $1 AND user_id = $2`

	var n Note
	err := r.db.GetContext(ctx, &n, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get note: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	return &n, nil
}

func (r *repository) ListForUser(
	ctx context.Context,
	userID string,
) ([]Note, error) {
	query := `
		SELECT id, title, content, tags, user_id, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	notes := make([]Note, 0, listCap)
	if err := r.db.SelectContext(ctx, &notes, query, userID, listCap); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func (r *repository) Update(ctx context.Context, n *Note) error {
	query := `
		UPDATE notes
		SET title = $3, content = $4, tags = $5, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &n.UpdatedAt, query,
		n.ID,
		n.UserID,
		n.Title,
		n.Content,
		n.Tags,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update note: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}

	return nil
}

func (r *repository) DeleteForUser(
	ctx context.Context,
	id, userID string,
) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete note: %w", core.ErrNotFound)
	}

	return nil
}
