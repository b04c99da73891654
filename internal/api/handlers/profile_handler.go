package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devlinks/api/internal/api/middleware"
	"github.com/devlinks/api/internal/api/types"
	"github.com/devlinks/api/internal/services"
)

// maxImageSize caps the multipart form memory for profile image uploads.
const maxImageSize = 10 << 20

type ProfileHandler struct {
	profiles services.ProfileService
}

func NewProfileHandler(profiles services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Public serves the unauthenticated profile page data: the user (password
// hash excluded by the model's JSON encoding) plus all their links.
func (h *ProfileHandler) Public(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profile, err := h.profiles.GetPublic(r.Context(), username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: profile})
}

// Update handles the multipart profile form: first_name, last_name, and an
// optional image file that is pushed to object storage.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	upd := services.ProfileUpdate{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		ImageURL:  r.FormValue("imageUrl"),
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		upd.Image = file
		upd.ImageContentType = header.Header.Get("Content-Type")
	}

	user, err := h.profiles.Update(r.Context(), middleware.GetUserID(r.Context()), upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"message": "Profile updated successfully",
			"user":    user,
		},
	})
}
