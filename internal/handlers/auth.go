package handlers

import (
	"errors"
	"net/http"
	"time"

	"portfolio/internal/auth"
	"portfolio/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handlers) ShowLogin(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"flashes": h.takeFlashes(c)})
}

type loginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (h *Handlers) Login(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, "Invalid form data")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), form.Username, form.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		h.log.Info().Str("username", form.Username).Str("client_ip", c.ClientIP()).Msg("failed login")
		h.flash(c, "Invalid credentials")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(middleware.SessionUserKey, user.ID)
	if err := sess.Save(); err != nil {
		h.fail(c, err)
		return
	}

	h.log.Info().Uint("user_id", user.ID).Msg("user logged in")
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout is safe to repeat.
func (h *Handlers) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}

// APILogin exchanges credentials for a bearer token.
func (h *Handlers) APILogin(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.fail(c, ErrMalformedBody)
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	token, expires, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expires.UTC().Format(time.RFC3339),
	})
}
