package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/fadzzz/timesheet/config"
	"github.com/fadzzz/timesheet/middleware"
	"github.com/fadzzz/timesheet/store"

	"github.com/bytedance/sonic"
	"golang.org/x/oauth2"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleEndpoint is spelled out here instead of importing the google
// subpackage, which drags in cloud SDK metadata dependencies.
var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

type AuthHandler struct {
	config *config.Config
	store  *store.Store
	oauth  *oauth2.Config
}

func NewAuthHandler(cfg *config.Config, st *store.Store) *AuthHandler {
	h := &AuthHandler{config: cfg, store: st}
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		h.oauth = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     googleEndpoint,
		}
	}
	return h
}

func generateState() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// Login redirects to the Google consent screen. Without configured
// OAuth credentials the service runs in demo mode and issues a
// session for a local demo identity instead.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil {
		h.issueSession(w, r, "demo", "demo@localhost", "Demo User", "")
		return
	}

	state, err := generateState()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.oauth.AuthCodeURL(state), http.StatusSeeOther)
}

type googleUserinfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Callback completes the OAuth code exchange and establishes the
// session cookie.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	if h.oauth == nil {
		http.Redirect(w, r, "/auth/google", http.StatusSeeOther)
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		writeError(w, http.StatusUnauthorized, "invalid oauth state")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: "oauth_state", Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusUnauthorized, "authorization code missing")
		return
	}

	token, err := h.oauth.Exchange(r.Context(), code)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "code exchange failed")
		return
	}

	resp, err := h.oauth.Client(r.Context(), token).Get(userinfoURL)
	if err != nil {
		writeError(w, http.StatusBadGateway, "failed to fetch user info")
		return
	}
	defer resp.Body.Close()

	var info googleUserinfo
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&info); err != nil {
		writeError(w, http.StatusBadGateway, "failed to decode user info")
		return
	}
	if info.Email == "" {
		writeError(w, http.StatusUnauthorized, "no email in Google profile")
		return
	}

	h.issueSession(w, r, info.ID, info.Email, info.Name, info.Picture)
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, r *http.Request, googleID, email, name, avatarURL string) {
	user, _, err := h.store.UpsertUserByGoogleID(googleID, email, name, avatarURL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load user")
		return
	}

	token, err := middleware.GenerateToken(user, h.config.JWTExpiration)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.config.JWTExpiration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.config.FrontendURL, http.StatusSeeOther)
}

// Me returns the current user, or 401 when the session is missing or
// corrupt.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("token")
	if err != nil || cookie.Value == "" {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	claims, err := middleware.ValidateToken(cookie.Value)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":         claims.UserID,
		"email":      claims.Email,
		"name":       claims.Name,
		"avatar_url": claims.AvatarURL,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
