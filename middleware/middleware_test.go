package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/services"
)

type stubAuthenticator map[string]*models.User

func (s stubAuthenticator) Authenticate(ctx context.Context, token string) (*models.User, error) {
	switch token {
	case "gone":
		return nil, services.ErrUserGone
	case "broken":
		return nil, errors.New("db down")
	}
	if u, ok := s[token]; ok {
		return u, nil
	}
	return nil, services.ErrInvalidToken
}

var (
	pending = &models.User{ID: primitive.NewObjectID(), Username: "pending", Role: models.RoleMember}
	member  = &models.User{ID: primitive.NewObjectID(), Username: "member", Role: models.RoleMember, IsApproved: true}
	admin   = &models.User{ID: primitive.NewObjectID(), Username: "admin", Role: models.RoleAdmin}
	authn   = stubAuthenticator{"pending": pending, "member": member, "admin": admin}
)

// newRouter mounts the full chain and counts how often the handler ran.
func newRouter(reached *int, chain ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append(chain, func(c *gin.Context) {
		*reached++
		c.Status(http.StatusNoContent)
	})
	r.POST("/action", handlers...)
	return r
}

func do(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/action", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestProtect(t *testing.T) {
	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic member", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"invalid token", "Bearer nope", http.StatusUnauthorized},
		{"deleted user", "Bearer gone", http.StatusUnauthorized},
		{"lookup failure", "Bearer broken", http.StatusInternalServerError},
		{"valid", "Bearer member", http.StatusNoContent},
		{"lowercase scheme", "bearer member", http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reached := 0
			r := newRouter(&reached, Protect(authn))

			w := do(r, tc.header)
			assert.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusNoContent {
				assert.Equal(t, 1, reached)
			} else {
				assert.Zero(t, reached)
			}
		})
	}
}

func TestRestrictToIsCaseInsensitive(t *testing.T) {
	reached := 0
	r := newRouter(&reached, Protect(authn), RestrictTo("admin"))

	assert.Equal(t, http.StatusNoContent, do(r, "Bearer admin").Code)

	w := do(r, "Bearer member")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 1, reached)
}

func TestRequireApproval(t *testing.T) {
	reached := 0
	r := newRouter(&reached, Protect(authn), RestrictTo("member", "admin"), RequireApproval())

	w := do(r, "Bearer pending")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Your account is pending approval", message(t, w))
	assert.Zero(t, reached)

	assert.Equal(t, http.StatusNoContent, do(r, "Bearer member").Code)
	assert.Equal(t, http.StatusNoContent, do(r, "Bearer admin").Code)
	assert.Equal(t, 2, reached)
}

func TestChainShortCircuitsBeforeRoleGate(t *testing.T) {
	reached := 0
	r := newRouter(&reached, Protect(authn), RestrictTo("admin"), RequireApproval())

	w := do(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, reached)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextKeyRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
