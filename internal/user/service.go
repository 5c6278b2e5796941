// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/carterperez-dev/taskboard-api/internal/auth"
	"github.com/carterperez-dev/taskboard-api/internal/config"
	"github.com/carterperez-dev/taskboard-api/internal/core"
	"github.com/carterperez-dev/taskboard-api/internal/middleware"
)

var ErrWrongPassword = errors.New("current password is incorrect")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FindLoginAccount(
	ctx context.Context,
	email string,
) (*auth.Account, error) {
	email = strings.ToLower(email)

	u, err := s.repo.GetByEmail(ctx, RoleUser, email)
	if err == nil {
		return toAccount(u), nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	admin, err := s.repo.GetByEmail(ctx, RoleAdmin, email)
	if err != nil {
		return nil, err
	}

	return toAccount(admin), nil
}

func (s *Service) GetAccount(
	ctx context.Context,
	role, email string,
) (*auth.Account, error) {
	u, err := s.repo.GetByEmail(ctx, role, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return toAccount(u), nil
}

func (s *Service) CreateUser(
	ctx context.Context,
	email, passwordHash, name string,
) (*auth.Account, error) {
	u := &User{
		ID:           core.NewID(),
		Email:        strings.ToLower(email),
		Name:         name,
		PasswordHash: passwordHash,
		Role:         RoleUser,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return toAccount(u), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	role, id, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, role, id, passwordHash)
}

func (s *Service) GetProfile(
	ctx context.Context,
	identity *middleware.Identity,
) (*User, error) {
	return s.repo.GetByID(ctx, identity.Role, identity.UserID)
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	identity *middleware.Identity,
	req UpdateProfileRequest,
) (*User, error) {
	u, err := s.repo.GetByID(ctx, identity.Role, identity.UserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}

	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		if email != u.Email {
			exists, err := s.repo.ExistsByEmail(ctx, identity.Role, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, fmt.Errorf(
					"update profile: %w",
					core.ErrDuplicateKey,
				)
			}
			u.Email = email
		}
	}

	if err := s.repo.UpdateProfile(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) ChangePassword(
	ctx context.Context,
	identity *middleware.Identity,
	oldPassword, newPassword string,
) error {
	u, err := s.repo.GetByID(ctx, identity.Role, identity.UserID)
	if err != nil {
		return err
	}

	valid, _, err := core.VerifyPasswordWithRehash(
		oldPassword,
		u.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return ErrWrongPassword
	}

	newHash, err := core.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, identity.Role, identity.UserID, newHash)
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// DeleteUser removes a regular account and everything it owns. An admin
// may not delete their own account through this path.
func (s *Service) DeleteUser(
	ctx context.Context,
	identity *middleware.Identity,
	targetID string,
) error {
	if identity.UserID == targetID {
		return fmt.Errorf(
			"delete user: cannot delete own account: %w",
			core.ErrInvalidInput,
		)
	}

	return s.repo.DeleteCascade(ctx, targetID)
}

// EnsureAdmin seeds the bootstrap admin account when configured and not
// yet present. Existing accounts are never touched.
func (s *Service) EnsureAdmin(
	ctx context.Context,
	cfg config.AdminConfig,
) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	email := strings.ToLower(cfg.Email)

	exists, err := s.repo.ExistsByEmail(ctx, RoleAdmin, email)
	if err != nil {
		return fmt.Errorf("check admin exists: %w", err)
	}
	if exists {
		return nil
	}

	passwordHash, err := core.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &User{
		ID:           core.NewID(),
		Email:        email,
		Name:         cfg.Name,
		PasswordHash: passwordHash,
		Role:         RoleAdmin,
	}

	if err := s.repo.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil
		}
		return fmt.Errorf("create admin: %w", err)
	}

	slog.Info("bootstrap admin created", "email", email)
	return nil
}

func toAccount(u *User) *auth.Account {
	return &auth.Account{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}

var _ auth.AccountProvider = (*Service)(nil)
