package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	Result

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token. Attempts are throttled per username.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.Result "Invalid request body"
// @Failure 401 {object} handlers.Result "Invalid username or password"
// @Failure 429 {object} handlers.Result "Too many login attempts"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				respondJSON(w, http.StatusUnauthorized, Result{Success: false, Error: "Invalid username or password"})
			case errors.Is(err, services.ErrRateLimited):
				respondJSON(w, http.StatusTooManyRequests, Result{Success: false, Error: "Too many login attempts, try again later"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				respondJSON(w, http.StatusInternalServerError, Result{Success: false, Error: "Internal server error"})
			}
			return
		}

		respondJSON(w, http.StatusOK, LoginResponse{
			Result: ok(),
			Token:  token,
		})
	}
}
