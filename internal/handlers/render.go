package handlers

import (
	"net/http"

	"portfolio/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and passes the current user to every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if u, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = u
		data["CurrentUsername"] = u.Username
	}

	c.HTML(status, tmpl, data)
}

func redirectToTab(c *gin.Context, tab string) {
	c.Redirect(http.StatusFound, "/dashboard?tab="+tab)
}

func (h *Handlers) flash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg)
	if err := sess.Save(); err != nil {
		h.log.Warn().Err(err).Msg("save flash")
	}
}

func (h *Handlers) takeFlashes(c *gin.Context) []string {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(); err != nil {
		h.log.Warn().Err(err).Msg("clear flashes")
	}

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
