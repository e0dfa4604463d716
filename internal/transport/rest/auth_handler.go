package rest

import (
	"net/http"
	"strconv"
	"time"

	"ecowear-be/internal/apperr"
	"ecowear-be/internal/user"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	service user.Service
}

func NewAuthHandler(service user.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=BUYER SELLER"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the wire shape of a user. The password hash never leaves
// the service layer through it.
type userResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		WriteError(w, r, err)
		return
	}

	role := user.RoleBuyer
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	token, created, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	setTokenCookie(w, token)
	WriteJSON(w, http.StatusCreated, Response{Data: authResponse{Token: token, User: toUserResponse(created)}})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		WriteError(w, r, err)
		return
	}

	token, u, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	setTokenCookie(w, token)
	WriteJSON(w, http.StatusOK, Response{Data: authResponse{Token: token, User: toUserResponse(u)}})
}

func (h *AuthHandler) Sellers(w http.ResponseWriter, r *http.Request) {
	caller, err := callerIdentity(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	sellers, err := h.service.Sellers(r.Context(), caller)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	out := make([]userResponse, 0, len(sellers))
	for _, s := range sellers {
		out = append(out, toUserResponse(s))
	}
	WriteJSON(w, http.StatusOK, Response{Data: out})
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	caller, err := callerIdentity(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, r, apperr.Validation("invalid user id"))
		return
	}

	verified, err := h.service.Verify(r.Context(), caller, userID)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, Response{Data: toUserResponse(verified)})
}

func setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int((24 * time.Hour).Seconds()),
	})
}
