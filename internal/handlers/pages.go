package handlers

import (
	"context"
	"net/http"
	"time"

	"portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) IndexPage(c *gin.Context) {
	_, ok := middleware.CurrentUser(c)

	c.Header("Cache-Control", "public, max-age=0")
	render(c, http.StatusOK, "index.html", gin.H{
		"isAuthed": ok,
	})
}

func (h *Handlers) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("health check: store unreachable")
		c.String(http.StatusServiceUnavailable, "store unavailable")
		return
	}
	c.String(http.StatusOK, "ok")
}
