package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio/internal/auth"
	"portfolio/internal/database"
	"portfolio/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedEngine(user *models.User) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if user != nil {
			c.Set(currentUserCtxKey, user)
		}
	})
	r.Use(RequireAuth())
	handler := func(c *gin.Context) { c.String(http.StatusOK, "secret") }
	r.GET("/dashboard", handler)
	r.POST("/api/message/read/:id", handler)
	return r
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name     string
		user     *models.User
		method   string
		path     string
		header   map[string]string
		status   int
		location string
	}{
		{name: "browser redirected", method: http.MethodGet, path: "/dashboard", status: http.StatusFound, location: "/login"},
		{name: "api path gets 401", method: http.MethodPost, path: "/api/message/read/1", status: http.StatusUnauthorized},
		{name: "json accept gets 401", method: http.MethodGet, path: "/dashboard", header: map[string]string{"Accept": "application/json"}, status: http.StatusUnauthorized},
		{name: "bad bearer gets 401", method: http.MethodGet, path: "/dashboard", header: map[string]string{"Authorization": "Bearer junk"}, status: http.StatusUnauthorized},
		{name: "authenticated passes", user: &models.User{ID: 1, Username: "admin"}, method: http.MethodGet, path: "/dashboard", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			protectedEngine(tt.user).ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, w.Header().Get("Location"))
			}
			if tt.status != http.StatusOK {
				assert.NotContains(t, w.Body.String(), "secret")
			}
		})
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"status":204`)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
}

type downStore struct{}

func (downStore) UserByID(context.Context, uint) (*models.User, error) {
	return nil, errors.New("connection refused")
}

type missingStore struct{}

func (missingStore) UserByID(context.Context, uint) (*models.User, error) {
	return nil, database.ErrNotFound
}

func TestIdentifyBearer(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	token, _, err := tokens.Issue(7)
	require.NoError(t, err)

	tests := []struct {
		name   string
		users  IdentityStore
		status int
	}{
		{name: "store unreachable keeps the token id", users: downStore{}, status: http.StatusOK},
		{name: "deleted user is anonymous", users: missingStore{}, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(sessions.Sessions("s", cookie.NewStore([]byte("secret"))))
			r.Use(Identify(tt.users, tokens, zerolog.Nop()))
			r.Use(RequireAuth())
			r.GET("/dashboard", func(c *gin.Context) {
				u, _ := CurrentUser(c)
				c.String(http.StatusOK, "%d", u.ID)
			})

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "7", w.Body.String())
			}
		})
	}
}
