package middleware

import (
	"context"
	"errors"
	"strings"

	"portfolio/internal/auth"
	"portfolio/internal/database"
	"portfolio/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	SessionUserKey    = "user_id"
	currentUserCtxKey = "CurrentUser"
)

type IdentityStore interface {
	UserByID(ctx context.Context, id uint) (*models.User, error)
}

// Identify resolves the caller from the session cookie or, failing that,
// a bearer token. Unknown callers pass through anonymously. If the user
// row cannot be read, the caller keeps the id carried by the credential.
func Identify(users IdentityStore, tokens *auth.Tokens, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uid, ok := sess.Get(SessionUserKey).(uint); ok && uid > 0 {
			user, err := users.UserByID(c.Request.Context(), uid)
			switch {
			case err == nil:
				c.Set(currentUserCtxKey, user)
			case errors.Is(err, database.ErrNotFound):
				// user row is gone; drop the stale session
				sess.Clear()
				_ = sess.Save()
			default:
				// store unreachable; keep the signed id
				log.Warn().Err(err).Uint("user_id", uid).Msg("load session user")
				c.Set(currentUserCtxKey, &models.User{ID: uid})
			}
			c.Next()
			return
		}

		if token, ok := bearerToken(c); ok {
			if uid, err := tokens.Parse(token); err == nil {
				user, err := users.UserByID(c.Request.Context(), uid)
				switch {
				case err == nil:
					c.Set(currentUserCtxKey, user)
				case !errors.Is(err, database.ErrNotFound):
					log.Warn().Err(err).Uint("user_id", uid).Msg("load token user")
					c.Set(currentUserCtxKey, &models.User{ID: uid})
				}
			}
		}

		c.Next()
	}
}

// CurrentUser returns the identity attached by Identify.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserCtxKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok && u != nil
}

func bearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
