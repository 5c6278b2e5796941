// AngelaMos | 2026
// handler_test.go

package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/taskboard-api/internal/middleware"
)

func newTestRouter(t *testing.T) (chi.Router, *fakeAccounts) {
	t.Helper()

	svc, accounts := newTestService(t)
	handler := NewHandler(svc)

	router := chi.NewRouter()
	handler.RegisterRoutes(router, middleware.Authenticator(svc))
	return router, accounts
}

func doJSON(
	t *testing.T,
	router chi.Router,
	method, path string,
	body any,
	token string,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", RegisterRequest{
		Email:    "alice@example.com",
		Password: "s3cret-password",
		Name:     "Alice",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "bearer", resp.TokenType)
	require.Equal(t, "alice@example.com", resp.User.Email)
}

// Password length is the client's business: a one-character password is
// accepted, hashed, and usable for login like any other.
func TestRegisterAcceptsShortPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", RegisterRequest{
		Email:    "a@x.com",
		Password: "p",
		Name:     "A",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "a@x.com", resp.User.Email)

	login := doJSON(t, router, http.MethodPost, "/auth/login", LoginRequest{
		Email:    "a@x.com",
		Password: "p",
	}, "")
	require.Equal(t, http.StatusOK, login.Code)
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	router, _ := newTestRouter(t)

	first := doJSON(t, router, http.MethodPost, "/auth/register", RegisterRequest{
		Email:    "alice@example.com",
		Password: "s3cret-password",
		Name:     "Alice",
	}, "")
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(t, router, http.MethodPost, "/auth/register", RegisterRequest{
		Email:    "alice@example.com",
		Password: "another-password",
		Name:     "Imposter",
	}, "")
	require.Equal(t, http.StatusBadRequest, second.Code)
	require.Contains(t, second.Body.String(), "ALREADY_EXISTS")
}

func TestRegisterEndpointValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing email", RegisterRequest{Password: "s3cret-password", Name: "A"}},
		{"bad email", RegisterRequest{Email: "not-an-email", Password: "s3cret-password", Name: "A"}},
		{"missing password", RegisterRequest{Email: "a@example.com", Name: "A"}},
		{"missing name", RegisterRequest{Email: "a@example.com", Password: "s3cret-password"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/auth/register", tc.req, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLoginEndpointFailuresLookIdentical(t *testing.T) {
	router, accounts := newTestRouter(t)
	accounts.addUser(t, "alice@example.com", "s3cret-password")

	unknown := doJSON(t, router, http.MethodPost, "/auth/login", LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	}, "")
	wrongPassword := doJSON(t, router, http.MethodPost, "/auth/login", LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	}, "")

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, unknown.Body.String(), wrongPassword.Body.String())
}

func TestGetMeEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", RegisterRequest{
		Email:    "alice@example.com",
		Password: "s3cret-password",
		Name:     "Alice",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var auth AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&auth))

	me := doJSON(t, router, http.MethodGet, "/auth/me", nil, auth.AccessToken)
	require.Equal(t, http.StatusOK, me.Code)

	var user UserResponse
	require.NoError(t, json.NewDecoder(me.Body).Decode(&user))
	require.Equal(t, "alice@example.com", user.Email)
	require.Equal(t, auth.User.ID, user.ID)
}

func TestGetMeRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/auth/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/auth/me", nil, "bad-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetMeDeletedAccount(t *testing.T) {
	router, accounts := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", RegisterRequest{
		Email:    "alice@example.com",
		Password: "s3cret-password",
		Name:     "Alice",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var auth AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&auth))

	delete(accounts.users, "alice@example.com")

	me := doJSON(t, router, http.MethodGet, "/auth/me", nil, auth.AccessToken)
	require.Equal(t, http.StatusUnauthorized, me.Code)
}
