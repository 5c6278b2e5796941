// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/taskboard-api/internal/core"
)

// listCap bounds every user listing; there is no cursor protocol.
const listCap = 100

type Repository interface {
	Create(ctx context.Context, u *User) error
	CreateAdmin(ctx context.Context, u *User) error
	GetByID(ctx context.Context, role, id string) (*User, error)
	GetByEmail(ctx context.Context, role, email string) (*User, error)
	ExistsByEmail(ctx context.Context, role, email string) (bool, error)
	UpdateProfile(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, role, id, passwordHash string) error
	List(ctx context.Context) ([]User, error)
	DeleteCascade(ctx context.Context, id string) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// roleTable maps a role claim to its account partition. Anything that is
// not an admin reads the regular users table.
func roleTable(role string) string {
	if role == RoleAdmin {
		return "admins"
	}
	return "users"
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.insert(ctx, "users", u)
}

func (r *repository) CreateAdmin(ctx context.Context, u *User) error {
	return r.insert(ctx, "admins", u)
}

func (r *repository) insert(ctx context.Context, table string, u *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, email, name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`, table)

	err := r.db.GetContext(ctx, &u.CreatedAt, query,
		u.ID,
		u.Email,
		u.Name,
		u.PasswordHash,
		u.Role,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create account: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create account: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	role, id string,
) (*User, error) {
	query := fmt.Sprintf(`
		SELECT id, email, name, password_hash, role, created_at
		FROM %s
		WHERE id = $1`, roleTable(role))

	var u User
	err := r.db.GetContext(ctx, &u, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get account: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	return &u, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	role, email string,
) (*User, error) {
	query := fmt.Sprintf(`
		SELECT id, email, name, password_hash, role, created_at
		FROM %s
		WHERE email = $1`, roleTable(role))

	var u User
	err := r.db.GetContext(ctx, &u, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get account by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get account by email: %w", err)
	}

	return &u, nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	role, email string,
) (bool, error) {
	query := fmt.Sprintf(
		`SELECT EXISTS(SELECT 1 FROM %s WHERE email = $1)`,
		roleTable(role),
	)

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func (r *repository) UpdateProfile(ctx context.Context, u *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $2, email = $3
		WHERE id = $1`, roleTable(u.Role))

	result, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Email)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("update profile: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update profile: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	role, id, passwordHash string,
) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET password_hash = $2
		WHERE id = $1`, roleTable(role))

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, email, name, password_hash, role, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1`

	users := make([]User, 0, listCap)
	if err := r.db.SelectContext(ctx, &users, query, listCap); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// DeleteCascade removes the user together with every task and note the
// user owns, in one transaction.
func (r *repository) DeleteCascade(ctx context.Context, id string) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM tasks WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("delete user tasks: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM notes WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("delete user notes: %w", err)
		}

		result, err := tx.ExecContext(ctx,
			`DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf("delete user: %w", core.ErrNotFound)
		}

		return nil
	})
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
