// Package api provides HTTP handlers for the bookpress server REST API.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coregx/bookpress"
	"github.com/coregx/bookpress/model"
	"github.com/go-chi/chi/v5"
)

// Handler holds dependencies for API handlers.
type Handler struct {
	submitter *bookpress.Submitter
	catalog   *bookpress.Catalog
	ledger    *bookpress.StatusLedger
	logger    bookpress.Logger
}

// NewHandler creates a new API handler.
func NewHandler(
	submitter *bookpress.Submitter,
	catalog *bookpress.Catalog,
	ledger *bookpress.StatusLedger,
	logger bookpress.Logger,
) *Handler {
	return &Handler{
		submitter: submitter,
		catalog:   catalog,
		ledger:    ledger,
		logger:    logger,
	}
}

// Routes mounts all API routes on a chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/books", h.HandleSubmit)
	r.Get("/books/{bookID}", h.HandleGetBook)
	r.Get("/books/{bookID}/versions", h.HandleGetBookVersions)
	r.Delete("/books/{bookID}", h.HandleRemoveBook)
	r.Get("/submissions/{submissionID}", h.HandleGetStatus)
	r.Get("/health", h.HandleHealth)
	return r
}

// SubmitResponse is returned when a submission is accepted.
type SubmitResponse struct {
	SubmissionID string `json:"submissionID"`
}

// StatusResponse carries the full status history of a submission.
type StatusResponse struct {
	SubmissionID string              `json:"submissionID"`
	History      []model.StatusEvent `json:"history"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HandleSubmit handles POST /api/v1/books.
// Accepts a book for asynchronous publishing and returns the submission id
// the client can poll for status.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req bookpress.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid JSON", "INVALID_JSON")
		return
	}

	sub, err := h.submitter.Submit(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusAccepted, SubmitResponse{SubmissionID: sub.SubmissionID})
}

// HandleGetStatus handles GET /api/v1/submissions/{submissionID}.
// Returns the full ordered status history for a submission.
func (h *Handler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, "submissionID")

	history, err := h.ledger.History(r.Context(), submissionID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, StatusResponse{
		SubmissionID: submissionID,
		History:      history,
	})
}

// HandleGetBook handles GET /api/v1/books/{bookID}.
// Returns the current active version of the book.
func (h *Handler) HandleGetBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookID")

	version, err := h.catalog.GetCurrent(r.Context(), bookID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, version)
}

// HandleGetBookVersions handles GET /api/v1/books/{bookID}/versions.
// Returns the full version history, newest first, including removed versions.
func (h *Handler) HandleGetBookVersions(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookID")

	versions, err := h.catalog.Versions(r.Context(), bookID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, versions)
}

// HandleRemoveBook handles DELETE /api/v1/books/{bookID}.
// Soft-deletes the book and returns the now-inactive version.
func (h *Handler) HandleRemoveBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookID")

	version, err := h.catalog.SoftDelete(r.Context(), bookID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, version)
}

// HandleHealth handles GET /api/v1/health.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondServiceError maps typed bookpress errors onto HTTP status codes.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	var bpErr *bookpress.Error
	if errors.As(err, &bpErr) {
		switch bpErr.Code {
		case bookpress.ErrCodeNotFound:
			h.respondError(w, http.StatusNotFound, bpErr.Message, bpErr.Code)
			return
		case bookpress.ErrCodeValidation:
			h.respondError(w, http.StatusUnprocessableEntity, bpErr.Message, bpErr.Code)
			return
		}
	}

	h.logger.Errorf("Internal error: %v", err)
	h.respondError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message, code string) {
	h.respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}
