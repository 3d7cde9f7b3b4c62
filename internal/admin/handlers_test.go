package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/campuslink-bot/internal/storage"
)

func newTestAPI(t *testing.T) (http.Handler, *storage.SQLite) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	r := chi.NewRouter()
	NewHandler(store, store).RegisterRoutes(r)
	return r, store
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGetDashboard(t *testing.T) {
	h, store := newTestAPI(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertUser(ctx, &storage.User{ActorID: 1}))
	require.NoError(t, store.InsertTicket(ctx, &storage.Ticket{ID: "t1", ActorID: 1, Message: "help"}))

	rec := doJSON(t, h, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats storage.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Equal(t, 1, stats.Users)
	require.Equal(t, 1, stats.OpenTickets)
	require.Equal(t, 0, stats.PendingSubmissions)
}

func TestCreateAndListOpportunities(t *testing.T) {
	h, _ := newTestAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/opportunities",
		`{"title": "Backend Intern", "company": "Acme", "link": "https://acme.test/jobs/1", "active": true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created storage.Opportunity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Backend Intern", created.Title)

	rec = doJSON(t, h, http.MethodPost, "/api/opportunities", `{"title": "  "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/opportunities", `{bad json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/opportunities?active=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var opps []storage.Opportunity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opps))
	require.Len(t, opps, 1)
}

func TestSubmissionReview(t *testing.T) {
	h, store := newTestAPI(t)

	require.NoError(t, store.InsertSubmission(context.Background(), &storage.Submission{
		ID: "s1", ActorID: 42, Title: "Algorithms Notes", Kind: "notes", Course: "CS201", Term: 3, Status: "pending",
	}))

	rec := doJSON(t, h, http.MethodGet, "/api/submissions?status=pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var subs []storage.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
	require.Len(t, subs, 1)

	rec = doJSON(t, h, http.MethodPatch, "/api/submissions/s1/status", `{"status": "approved"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/submissions?status=approved", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	require.Equal(t, "approved", subs[0].Status)

	rec = doJSON(t, h, http.MethodPatch, "/api/submissions/s1/status", `{"status": "published"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPatch, "/api/submissions/missing/status", `{"status": "approved"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTicketReview(t *testing.T) {
	h, store := newTestAPI(t)

	require.NoError(t, store.InsertTicket(context.Background(), &storage.Ticket{
		ID: "t1", ActorID: 42, Message: "upload keeps failing",
	}))

	rec := doJSON(t, h, http.MethodGet, "/api/tickets?status=open", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tickets []storage.Ticket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tickets))
	require.Len(t, tickets, 1)

	rec = doJSON(t, h, http.MethodPatch, "/api/tickets/t1", `{"status": "closed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPatch, "/api/tickets/t1", `{"status": "resolved"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPatch, "/api/tickets/missing", `{"status": "closed"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
