package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fintrack/internal/domain/user"
	"fintrack/internal/shared/auth"
	"fintrack/internal/shared/middleware"

	"github.com/google/uuid"
)

type AuthHandler struct {
	userRepo user.Repository
	jwt      *auth.JWT
}

func NewAuthHandler(userRepo user.Repository, jwt *auth.JWT) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		jwt:      jwt,
	}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// HandleRegister creates a new user with password authentication. The user
// row, default categories, and the starting account are provisioned in one
// atomic unit by the repository.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx := r.Context()

	// Check if user already exists. The unique constraint catches races;
	// this check just gives the common case a clean error.
	if existing, err := h.userRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		writeError(w, http.StatusBadRequest, "User already exists")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password during registration: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var name *string
	if req.Name != "" {
		name = &req.Name
	}

	_, err = h.userRepo.Create(ctx, user.CreateUserParams{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         name,
		PasswordHash: passwordHash,
	})
	if err == user.ErrEmailTaken {
		writeError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		log.Printf("Error creating user %s: %v", req.Email, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

// HandleLogin verifies credentials and issues a session token
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx := r.Context()

	userModel, err := h.userRepo.GetByEmail(ctx, req.Email)
	if err != nil || userModel == nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := auth.VerifyPassword(userModel.PasswordHash, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwt.Generate(userModel.ID, userModel.Email)
	if err != nil {
		log.Printf("Error generating token for user %s: %v", userModel.ID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	setAuthCookie(w, token)
	writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: userModel})
}

// HandleLogout clears the session cookie
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
