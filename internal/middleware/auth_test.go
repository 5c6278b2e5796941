// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/taskboard-api/internal/core"
)

type fakeResolver struct {
	identity *Identity
	err      error
	gotToken string
}

func (f *fakeResolver) ResolveIdentity(
	_ context.Context,
	token string,
) (*Identity, error) {
	f.gotToken = token
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

func TestExtractToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", ""},
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", ""},
		{"scheme only", "Bearer", ""},
		{"padded token", "Bearer   abc.def.ghi", "abc.def.ghi"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			require.Equal(t, tc.want, ExtractToken(req))
		})
	}
}

func TestAuthenticatorSetsIdentity(t *testing.T) {
	resolver := &fakeResolver{
		identity: &Identity{UserID: "u-1", Email: "a@example.com", Role: "user"},
	}

	var seen *Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()

	Authenticator(resolver)(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "some-token", resolver.gotToken)
	require.NotNil(t, seen)
	require.Equal(t, "u-1", seen.UserID)
}

func TestAuthenticatorMissingToken(t *testing.T) {
	resolver := &fakeResolver{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Authenticator(resolver)(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			"expired token",
			fmt.Errorf("verify: %w", core.ErrTokenExpired),
			http.StatusUnauthorized,
			"TOKEN_EXPIRED",
		},
		{
			"invalid token",
			fmt.Errorf("verify: %w", core.ErrTokenInvalid),
			http.StatusUnauthorized,
			"TOKEN_INVALID",
		},
		{
			"deleted account",
			fmt.Errorf("resolve: %w", core.ErrUnauthorized),
			http.StatusUnauthorized,
			"UNAUTHENTICATED",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &fakeResolver{err: tc.err}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not run")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer some-token")
			rec := httptest.NewRecorder()

			Authenticator(resolver)(next).ServeHTTP(rec, req)
			require.Equal(t, tc.wantStatus, rec.Code)
			require.Contains(t, rec.Body.String(), tc.wantCode)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guarded := RequireAdmin(next)

	// No identity at all.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Plain user.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), &Identity{
		UserID: "u-1", Email: "a@example.com", Role: "user",
	}))
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Admin.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), &Identity{
		UserID: "a-1", Email: "root@example.com", Role: "admin",
	}))
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentityHelpers(t *testing.T) {
	ctx := context.Background()
	require.False(t, IsAuthenticated(ctx))
	require.False(t, IsAdmin(ctx))
	require.Empty(t, GetUserID(ctx))

	ctx = WithIdentity(ctx, &Identity{
		UserID: "a-1", Email: "root@example.com", Role: "admin",
	})
	require.True(t, IsAuthenticated(ctx))
	require.True(t, IsAdmin(ctx))
	require.Equal(t, "a-1", GetUserID(ctx))
	require.Equal(t, "admin", GetUserRole(ctx))
}
