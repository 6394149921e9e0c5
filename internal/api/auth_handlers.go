package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/example/storefront/internal/api/middleware"
	"github.com/example/storefront/internal/auth"
	"github.com/example/storefront/internal/domain/user"
	"github.com/example/storefront/internal/infrastructure/store"
	"github.com/google/uuid"
)

// AuthHandlers handles authentication-related HTTP requests
type AuthHandlers struct {
	verifier   auth.Verifier
	users      store.UserStore
	jwtService *auth.JWTService
}

// NewAuthHandlers creates a new AuthHandlers instance. users may be nil when
// running with a static verifier only; registration and /auth/me lookups
// then degrade accordingly.
func NewAuthHandlers(verifier auth.Verifier, users store.UserStore, jwtService *auth.JWTService) *AuthHandlers {
	return &AuthHandlers{
		verifier:   verifier,
		users:      users,
		jwtService: jwtService,
	}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents user data in responses
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Register handles user registration
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	if h.users == nil {
		respondJSONError(w, "Registration is not available", http.StatusNotImplemented)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Name == "" {
		respondJSONError(w, "Email and name are required", http.StatusBadRequest)
		return
	}

	if _, exists := h.users.GetUserByEmail(r.Context(), req.Email); exists {
		respondJSONError(w, "Email already registered", http.StatusConflict)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			respondJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		respondJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	newUser := &user.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         user.RoleCustomer,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := h.users.CreateUser(r.Context(), newUser); err != nil {
		respondJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.respondWithToken(w, http.StatusCreated, newUser)
}

// Login verifies credentials and returns a bearer token
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.verifier.Verify(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondJSONError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		respondJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.respondWithToken(w, http.StatusOK, u)
}

// Me returns the current authenticated user's information
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		respondJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	resp := UserResponse{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}
	if h.users != nil {
		if u, exists := h.users.GetUser(r.Context(), claims.UserID); exists {
			resp.Name = u.Name
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *AuthHandlers) respondWithToken(w http.ResponseWriter, status int, u *user.User) {
	token, _, err := h.jwtService.GenerateToken(u.ID, u.Email, u.Role)
	if err != nil {
		respondJSONError(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	respondJSON(w, status, AuthResponse{
		Token: token,
		User: UserResponse{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.Name,
			Role:  u.Role,
		},
	})
}
