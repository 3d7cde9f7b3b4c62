package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/campuslink/campuslink-bot/internal/storage"
)

// Dashboarder aggregates the counters for the dashboard endpoint.
type Dashboarder interface {
	Dashboard(ctx context.Context) (*storage.DashboardStats, error)
}

// Handler implements the admin API endpoints.
type Handler struct {
	store storage.Store
	stats Dashboarder
}

// NewHandler creates a new Handler.
func NewHandler(store storage.Store, stats Dashboarder) *Handler {
	return &Handler{store: store, stats: stats}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", h.GetDashboard)
		r.Get("/opportunities", h.ListOpportunities)
		r.Post("/opportunities", h.CreateOpportunity)
		r.Get("/submissions", h.ListSubmissions)
		r.Patch("/submissions/{id}/status", h.UpdateSubmissionStatus)
		r.Get("/tickets", h.ListTickets)
		r.Patch("/tickets/{id}", h.UpdateTicket)
	})
}

// GetDashboard returns the aggregated platform counters.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Dashboard(r.Context())
	if err != nil {
		slog.Error("Dashboard query failed", "error", err)
		Error(w, http.StatusInternalServerError, "dashboard query failed")
		return
	}
	JSON(w, http.StatusOK, stats)
}

// ListOpportunities returns all opportunities, newest first.
func (h *Handler) ListOpportunities(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	opps, err := h.store.ListOpportunities(r.Context(), activeOnly)
	if err != nil {
		slog.Error("Opportunity query failed", "error", err)
		Error(w, http.StatusInternalServerError, "query failed")
		return
	}
	JSON(w, http.StatusOK, opps)
}

type opportunityRequest struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Details string `json:"details"`
	Link    string `json:"link"`
	Active  bool   `json:"active"`
}

// CreateOpportunity inserts a new industry posting.
func (h *Handler) CreateOpportunity(w http.ResponseWriter, r *http.Request) {
	var req opportunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		Error(w, http.StatusBadRequest, "title is required")
		return
	}

	opp := &storage.Opportunity{
		ID:      uuid.NewString(),
		Title:   req.Title,
		Company: req.Company,
		Details: req.Details,
		Link:    req.Link,
		Active:  req.Active,
	}
	if err := h.store.InsertOpportunity(r.Context(), opp); err != nil {
		slog.Error("Opportunity insert failed", "error", err)
		Error(w, http.StatusInternalServerError, "insert failed")
		return
	}
	JSON(w, http.StatusCreated, opp)
}

// ListSubmissions returns submissions, optionally filtered by status.
func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.store.ListSubmissions(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		slog.Error("Submission query failed", "error", err)
		Error(w, http.StatusInternalServerError, "query failed")
		return
	}
	JSON(w, http.StatusOK, subs)
}

type statusRequest struct {
	Status string `json:"status"`
}

var validSubmissionStatus = map[string]bool{
	"pending": true, "approved": true, "rejected": true,
}

// UpdateSubmissionStatus moves a submission through review.
func (h *Handler) UpdateSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !validSubmissionStatus[req.Status] {
		Error(w, http.StatusBadRequest, "status must be pending, approved or rejected")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.store.UpdateSubmissionStatus(r.Context(), id, req.Status); err != nil {
		Error(w, http.StatusNotFound, err.Error())
		return
	}
	JSON(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
}

// ListTickets returns support tickets, optionally filtered by status.
func (h *Handler) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.store.ListTickets(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		slog.Error("Ticket query failed", "error", err)
		Error(w, http.StatusInternalServerError, "query failed")
		return
	}
	JSON(w, http.StatusOK, tickets)
}

var validTicketStatus = map[string]bool{"open": true, "closed": true}

// UpdateTicket opens or closes a ticket.
func (h *Handler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !validTicketStatus[req.Status] {
		Error(w, http.StatusBadRequest, "status must be open or closed")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.store.UpdateTicketStatus(r.Context(), id, req.Status); err != nil {
		Error(w, http.StatusNotFound, err.Error())
		return
	}
	JSON(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
}
