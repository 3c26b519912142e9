package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/camden-git/totenbilder/models"
	"github.com/camden-git/totenbilder/web"
)

// Authenticator verifies administrator credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, login, password string) (models.SessionUser, error)
}

// SessionManager issues, reads and clears administrator sessions.
type SessionManager interface {
	Start(w http.ResponseWriter, user models.SessionUser) error
	End(w http.ResponseWriter)
	FromRequest(r *http.Request) (models.SessionUser, error)
}

const loginFailedMessage = "Invalid credentials."

type AuthHandler struct {
	Auth     Authenticator
	Sessions SessionManager
	Renderer *web.Renderer
	Logger   *zap.Logger
}

func (h *AuthHandler) render(w http.ResponseWriter, status int, page string, data pageData) {
	(&PageHandler{Renderer: h.Renderer, Logger: h.Logger}).render(w, status, page, data)
}

// LoginPage renders the login form, or forwards to the admin page when a
// session already exists.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Sessions.FromRequest(r); err == nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, "login", pageData{})
}

// Login handles the submitted login form.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, "login", pageData{Error: "Invalid request."})
		return
	}
	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	user, err := h.Auth.Authenticate(r.Context(), username, password)
	if err != nil {
		h.render(w, http.StatusUnauthorized, "login", pageData{Username: username, Error: loginFailedMessage})
		return
	}

	if err := h.Sessions.Start(w, user); err != nil {
		h.Logger.Error("failed to start session", zap.Error(err))
		h.render(w, http.StatusInternalServerError, "login", pageData{Username: username, Error: "Something went wrong."})
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout clears the session and returns to the archive.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.End(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Session handles GET /api/auth/session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, err := h.Sessions.FromRequest(r)
	if err != nil {
		WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, "Not logged in")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// Admin renders the protected dashboard. It must run behind RequireSession.
func (h *AuthHandler) Admin(w http.ResponseWriter, r *http.Request) {
	user, ok := SessionUserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, "admin", pageData{User: user})
}
