package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rasupy/todo-myapp/internal/api/shared"
	"github.com/rasupy/todo-myapp/internal/domain"
	"github.com/rasupy/todo-myapp/internal/service/auth"
	"github.com/rasupy/todo-myapp/internal/store"
)

// AuthHandler handles registration, login and user lookup.
//
// Identity in this API is the caller-supplied user_id; there is no session
// or token layer. Login verifies credentials and returns the user record
// for the client to remember locally, and logout is a stateless
// acknowledgement.
type AuthHandler struct {
	userStore        store.UserStore
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		userStore:        userStore,
		passwordHasher:   hasher,
		passwordVerifier: verifier,
		logger:           log.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "name, email and password (min 6 chars) are required")
		return
	}

	user, err := domain.NewUser(req.Name, req.Email)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	hash, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to register user")
		return
	}
	user.HashedPassword = hash

	if err := h.userStore.Create(r.Context(), user); err != nil {
		// The unique constraint on email closes the race between two
		// concurrent registrations; both paths surface as 409 here.
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newUserResponse(user))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("failed to get user by email", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newUserResponse(user))
}

// Me handles GET /auth/me. The user is identified by the user_id query
// parameter, mirroring the client's locally stored identity.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _, err := getQueryID(r, "user_id", true)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newUserResponse(user))
}

// Logout handles POST /auth/logout. There is no server-side session to
// clear; the client is expected to drop its stored identity.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}
