package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/ecocart/backend/internal/logging"
	"github.com/pageza/ecocart/backend/internal/middleware"
	"github.com/pageza/ecocart/backend/internal/mocks"
	"github.com/pageza/ecocart/backend/internal/models"
	"github.com/pageza/ecocart/backend/internal/service"
)

func setupAuthRouter(auth *mocks.MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected",
		middleware.AuthMiddleware(auth, logging.Discard()),
		middleware.WithUser(func(c *gin.Context, user *models.User) {
			c.JSON(http.StatusOK, gin.H{"user_id": user.ID, "username": user.Username})
		}),
	)
	return router
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestAuthMiddleware(t *testing.T) {
	alice := &models.User{ID: 7, Username: "alice"}

	tests := []struct {
		name       string
		header     string
		setup      func(m *mocks.MockAuthService)
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Token is missing",
		},
		{
			name:       "not a bearer header",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Token is invalid",
		},
		{
			name:       "bearer without token",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Token is invalid",
		},
		{
			name:   "garbage token",
			header: "Bearer garbage",
			setup: func(m *mocks.MockAuthService) {
				m.On("Authenticate", mock.Anything, "garbage").Return(nil, service.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Token is invalid",
		},
		{
			name:   "database failure",
			header: "Bearer good",
			setup: func(m *mocks.MockAuthService) {
				m.On("Authenticate", mock.Anything, "good").Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to authenticate request",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mocks.MockAuthService) {
				m.On("Authenticate", mock.Anything, "good").Return(alice, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(mocks.MockAuthService)
			if tt.setup != nil {
				tt.setup(auth)
			}
			router := setupAuthRouter(auth)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorBody(t, w))
			} else {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, float64(7), body["user_id"])
				assert.Equal(t, "alice", body["username"])
			}
			auth.AssertExpectations(t)
		})
	}
}

func TestWithUser_WithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	called := false
	router.GET("/", middleware.WithUser(func(c *gin.Context, user *models.User) { called = true }))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}
