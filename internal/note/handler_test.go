// AngelaMos | 2026
// handler_test.go

package note

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/taskboard-api/internal/middleware"
)

func identityInjector(identity *middleware.Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := middleware.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestRouter() chi.Router {
	handler := NewHandler(NewService(newFakeRepository()))
	router := chi.NewRouter()
	handler.RegisterRoutes(router, identityInjector(&middleware.Identity{
		UserID: uuid.New().String(),
		Email:  "alice@example.com",
		Role:   "user",
	}))
	return router
}

func doJSON(
	t *testing.T,
	router chi.Router,
	method, path string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateNoteEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/notes/", CreateNoteRequest{
		Title: "meeting notes",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp NoteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "meeting notes", resp.Title)
	require.Equal(t, []string{}, resp.Tags)
	require.NotEmpty(t, resp.ID)
}

func TestNoteCrudFlow(t *testing.T) {
	router := newTestRouter()

	created := doJSON(t, router, http.MethodPost, "/notes/", CreateNoteRequest{
		Title:   "meeting notes",
		Content: "agenda",
		Tags:    []string{"work"},
	})
	require.Equal(t, http.StatusOK, created.Code)

	var note NoteResponse
	require.NoError(t, json.NewDecoder(created.Body).Decode(&note))

	rec := doJSON(t, router, http.MethodGet, "/notes/"+note.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/notes/"+note.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/notes/"+note.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetNoteBadID(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/notes/undefined", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_IDENTIFIER")
}
