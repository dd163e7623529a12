package handlers

import (
	"portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
)

// audit records a dashboard mutation. Failures are logged only; the
// mutation itself already succeeded.
func (h *Handlers) audit(c *gin.Context, entity string, entityID uint, action, details string) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}
	if err := h.store.RecordAudit(c.Request.Context(), u.ID, entity, entityID, action, details); err != nil {
		h.log.Warn().Err(err).Str("entity", entity).Uint("entity_id", entityID).Msg("record audit")
	}
}
