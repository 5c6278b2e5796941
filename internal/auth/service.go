// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carterperez-dev/taskboard-api/internal/core"
	"github.com/carterperez-dev/taskboard-api/internal/middleware"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// AccountProvider hides the two disjoint account partitions (users and
// admins) from the auth flow.
type AccountProvider interface {
	// FindLoginAccount searches the users partition first, then admins.
	FindLoginAccount(ctx context.Context, email string) (*Account, error)
	// GetAccount looks up the partition selected by the role claim.
	GetAccount(ctx context.Context, role, email string) (*Account, error)
	CreateUser(
		ctx context.Context,
		email, passwordHash, name string,
	) (*Account, error)
	UpdatePassword(ctx context.Context, role, id, passwordHash string) error
}

type Service struct {
	accounts AccountProvider
	jwt      *JWTManager
}

func NewService(accounts AccountProvider, jwt *JWTManager) *Service {
	return &Service{
		accounts: accounts,
		jwt:      jwt,
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account, err := s.accounts.CreateUser(
		ctx,
		req.Email,
		passwordHash,
		req.Name,
	)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	return s.createAuthResponse(account)
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	account, err := s.accounts.FindLoginAccount(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&account.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		//nolint:errcheck // best-effort rehash upgrade
		_ = s.accounts.UpdatePassword(ctx, account.Role, account.ID, newHash)
	}

	return s.createAuthResponse(account)
}

// ResolveIdentity re-validates the caller on every protected request: a
// verified token is not enough, the account it names must still exist in
// the partition its role claim selects.
func (s *Service) ResolveIdentity(
	ctx context.Context,
	token string,
) (*middleware.Identity, error) {
	claims, err := s.jwt.VerifyAccessToken(token)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.GetAccount(ctx, claims.Role, claims.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf(
				"resolve identity: account not found: %w",
				core.ErrUnauthorized,
			)
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}

	return &middleware.Identity{
		UserID: account.ID,
		Email:  account.Email,
		Role:   account.Role,
	}, nil
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	identity *middleware.Identity,
) (*UserResponse, error) {
	account, err := s.accounts.GetAccount(ctx, identity.Role, identity.Email)
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(account)
	return &resp, nil
}

func (s *Service) createAuthResponse(account *Account) (*AuthResponse, error) {
	accessToken, err := s.jwt.CreateAccessToken(account.Email, account.Role)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	return &AuthResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        toUserResponse(account),
	}, nil
}

func toUserResponse(account *Account) UserResponse {
	return UserResponse{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
	}
}

var _ middleware.IdentityResolver = (*Service)(nil)
