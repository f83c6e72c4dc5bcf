package handler

import (
	"encoding/json"
	"net/http"

	"memo_api/internal/api/middleware"
	"memo_api/internal/app/service"
	"memo_api/internal/common"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterPublicRoutes mounts the endpoints reachable without a token.
func (h *AuthHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/token", h.login)
	r.Post("/users/", h.createUser)
}

// RegisterProtectedRoutes mounts the endpoints behind the Authenticator.
func (h *AuthHandler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/users/me/", h.readUsersMe)
}

// login implements POST /token. The body is form-encoded, matching the
// OAuth2 password flow shape the frontend submits.
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form payload: "+err.Error())
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	resp, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		code := common.HTTPStatusFromError(err)
		if code == http.StatusUnauthorized {
			common.RespondWithAuthError(w, code, "Incorrect username or password")
			return
		}
		common.RespondWithError(w, code, err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.authService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) readUsersMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, service.NewUserResponse(user))
}
