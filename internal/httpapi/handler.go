package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/contract"
	"github.com/alexanderramin/skinadvisor/internal/service"
)

// maxActionBody caps inbound action payloads.
const maxActionBody = 64 << 10

type Handler struct {
	sessions service.AdvisorSessionService
	catalog  *catalog.Catalog
	logger   *slog.Logger
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/catalog/skin-types", h.handleSkinTypes)
	r.Post("/sessions", h.handleStartSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/profile", h.handleProfile)
		r.Get("/history", h.handleHistory)
		r.Post("/actions", h.handleAction)
		r.Delete("/", h.handleEndSession)
	})
}

func (h *Handler) handleSkinTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, contract.FromSkinTypes(h.catalog))
}

func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Start(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, contract.FromSession(sess))
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.sessions.Profile(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, contract.FromProfile(p))
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.sessions.History(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, contract.FromJournal(entries))
}

func (h *Handler) handleAction(w http.ResponseWriter, r *http.Request) {
	var req contract.ActionRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxActionBody))
	if err := dec.Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, contract.ErrorBody{Code: "INVALID_BODY", Message: "invalid request body"})
		return
	}

	reply, err := h.sessions.Dispatch(r.Context(), chi.URLParam(r, "sessionID"), app.ActionName(req.Action), req.Args)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, contract.FromReply(reply))
}

func (h *Handler) handleEndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.End(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	if ve, ok := app.AsValidationError(err); ok {
		respondJSON(w, http.StatusBadRequest, contract.FromValidationError(ve))
		return
	}
	if errors.Is(err, app.ErrSessionNotFound) {
		respondJSON(w, http.StatusNotFound, contract.ErrorBody{Code: "SESSION_NOT_FOUND", Message: "session not found"})
		return
	}
	h.logger.Error("request failed", "error", err)
	respondJSON(w, http.StatusInternalServerError, contract.ErrorBody{Code: "INTERNAL", Message: "internal error"})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
