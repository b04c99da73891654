package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/devlinks/api/internal/api/middleware"
	"github.com/devlinks/api/internal/api/types"
	"github.com/devlinks/api/internal/api/validators"
	"github.com/devlinks/api/internal/services"
	appErr "github.com/devlinks/api/pkg/errors"
)

type LinksHandler struct {
	links services.LinkService
}

func NewLinksHandler(links services.LinkService) *LinksHandler {
	return &LinksHandler{links: links}
}

func (h *LinksHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req types.SaveLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Platform name and URL are required.")
		return
	}

	ownerID, err := authedUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	link, err := h.links.Create(r.Context(), ownerID, req.PlatformName, req.PlatformURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"message": "Link saved successfully!",
			"link":    link,
		},
	})
}

// List returns the links owned by the user id in the path. Link collections
// are public data anyway (see the public profile route), so no ownership
// check is applied to reads.
func (h *LinksHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Invalid ID format")
		return
	}

	links, err := h.links.List(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: links})
}

func (h *LinksHandler) Update(w http.ResponseWriter, r *http.Request) {
	linkID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Invalid link ID.")
		return
	}

	var req types.UpdateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}

	ownerID, err := authedUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.links.Update(r.Context(), linkID, ownerID, services.LinkUpdate{
		PlatformName: req.PlatformName,
		PlatformURL:  req.PlatformURL,
	}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    map[string]any{"message": "Link updated successfully."},
	})
}

func (h *LinksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	linkID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "Invalid ID format")
		return
	}

	ownerID, err := authedUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.links.Delete(r.Context(), linkID, ownerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    map[string]any{"message": "Link deleted successfully"},
	})
}

func authedUserID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(middleware.GetUserID(r.Context()))
	if err != nil {
		return uuid.Nil, appErr.New(appErr.CodeUnauthorized, "No token provided")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFromError(err), types.APIResponse{Success: false, Error: types.FromAppError(err)})
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.APIResponse{Success: false, Error: &types.APIError{Code: "invalid", Message: msg}})
}

// statusFromError maps the error taxonomy onto HTTP statuses.
func statusFromError(err error) int {
	var ae *appErr.AppError
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Code {
	case appErr.CodeInvalid, appErr.CodeAlreadyExists, appErr.CodeConflict:
		return http.StatusBadRequest
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized
	case appErr.CodeForbidden:
		return http.StatusForbidden
	case appErr.CodeNotFound:
		return http.StatusNotFound
	case appErr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
