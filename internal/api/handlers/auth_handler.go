package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/devlinks/api/internal/api/middleware"
	"github.com/devlinks/api/internal/api/types"
	"github.com/devlinks/api/internal/api/validators"
	"github.com/devlinks/api/internal/services"
	"github.com/devlinks/api/pkg/token"
)

type AuthHandler struct {
	auth       services.AuthService
	production bool
}

func NewAuthHandler(auth services.AuthService, production bool) *AuthHandler {
	return &AuthHandler{auth: auth, production: production}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	user, tok, err := h.auth.Register(r.Context(), services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	h.setAuthCookie(w, tok)
	writeJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"message":   "User registered successfully.",
			"token":     tok,
			"user_name": user.UserName,
		},
	})
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req types.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeErrorStr(w, http.StatusBadRequest, "email and password are required")
		return
	}

	_, tok, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.setAuthCookie(w, tok)
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"message": "Sign-in successful.",
			"token":   tok,
		},
	})
}

// Logout clears the cookie and always succeeds; the token itself stays valid
// until expiry, the client is just told to drop it.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: h.cookieSameSite(),
	})
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    map[string]any{"message": "Logged out successfully."},
	})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Profile(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: user})
}

func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, tok string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(token.DefaultTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.production,
		SameSite: h.cookieSameSite(),
	})
}

// SameSite=None requires Secure, so it is limited to production where the
// frontend runs on another origin over HTTPS.
func (h *AuthHandler) cookieSameSite() http.SameSite {
	if h.production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
