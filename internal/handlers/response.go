package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/jwt"
	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/middlewares"
	"github.com/investflow/investflow/internal/services"
)

// Result is the common envelope shared by all endpoints.
// swagger:model Result
type Result struct {
	// Whether the operation succeeded
	// default: true
	Success bool `json:"success"`

	// Error message when success is false
	Error string `json:"error,omitempty"`
}

func ok() Result {
	return Result{Success: true}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// businessErrors are expected rule violations. They are reported to the
// caller as success=false with HTTP 200; everything else is an
// infrastructure failure.
var businessErrors = []error{
	services.ErrInvalidAmount,
	services.ErrBelowMinimum,
	services.ErrInsufficientFunds,
	services.ErrStaleBalance,
	services.ErrNotFound,
	services.ErrInvalidStateTransition,
	services.ErrRateLimited,
}

func isBusinessError(err error) bool {
	for _, be := range businessErrors {
		if errors.Is(err, be) {
			return true
		}
	}
	return false
}

// respondServiceError rolls back the request transaction and reports the
// failure. Partial writes from a half-finished operation never commit.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	middlewares.MarkRollback(r.Context())

	if isBusinessError(err) {
		respondJSON(w, http.StatusOK, Result{Success: false, Error: err.Error()})
		return
	}

	logger.Log.Errorw("internal server error", "err", err)
	respondJSON(w, http.StatusInternalServerError, Result{Success: false, Error: "Internal server error"})
}

func respondBadRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, Result{Success: false, Error: msg})
}

// uuidParam parses a UUID path parameter.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// callerClaims returns the authenticated caller's claims, writing 401
// when the auth middleware did not run or did not authenticate.
func callerClaims(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	claims := middlewares.GetClaimsFromContext(r.Context())
	if claims == nil {
		logger.Log.Errorw("missing identity claims in request context")
		respondJSON(w, http.StatusUnauthorized, Result{Success: false, Error: "Unauthorized"})
		return nil, false
	}
	return claims, true
}
