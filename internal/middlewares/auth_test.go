package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/jwt"
	"github.com/stretchr/testify/assert"
)

type fakeTokener struct {
	token    string
	tokenErr error
	claims   *jwt.Claims
	claimErr error
}

func (f *fakeTokener) GetTokenFromRequest(_ context.Context, _ *http.Request) (string, error) {
	return f.token, f.tokenErr
}

func (f *fakeTokener) GetClaims(_ context.Context, _ string) (*jwt.Claims, error) {
	return f.claims, f.claimErr
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		tokener      *fakeTokener
		expectedCode int
		expectClaims bool
	}{
		{
			name:         "valid token stores claims",
			tokener:      &fakeTokener{token: "tok", claims: &jwt.Claims{UserID: userID, IsAdmin: true}},
			expectedCode: http.StatusOK,
			expectClaims: true,
		},
		{
			name:         "missing authorization header",
			tokener:      &fakeTokener{tokenErr: errors.New("authorization header missing")},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid token",
			tokener:      &fakeTokener{token: "tok", claimErr: errors.New("invalid token")},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims *jwt.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims = GetClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/wallet", nil)
			w := httptest.NewRecorder()

			AuthMiddleware(tt.tokener)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectClaims {
				assert.NotNil(t, gotClaims)
				assert.Equal(t, userID, gotClaims.UserID)
				assert.True(t, gotClaims.IsAdmin)
			} else {
				assert.Nil(t, gotClaims)
			}
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		claims       *jwt.Claims
		expectedCode int
	}{
		{
			name:         "admin passes",
			claims:       &jwt.Claims{UserID: uuid.New(), IsAdmin: true},
			expectedCode: http.StatusOK,
		},
		{
			name:         "non-admin is forbidden",
			claims:       &jwt.Claims{UserID: uuid.New()},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "no claims at all",
			claims:       nil,
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			w := httptest.NewRecorder()

			AdminMiddleware()(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
