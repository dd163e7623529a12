package handlers

import (
	"context"
	"errors"
	"net/http"

	"portfolio/internal/database"
	"portfolio/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	defaultTab   = "messages"
	auditEntries = 100
)

type dashboardData struct {
	about       *models.About
	skills      []models.Skill
	education   []models.Education
	experience  []models.Experience
	projects    []models.Project
	theses      []models.Thesis
	messages    []models.ContactMessage
	unreadCount int64
	audit       []models.AuditLog
}

func emptyDashboard() dashboardData {
	return dashboardData{
		about:      &models.About{},
		skills:     []models.Skill{},
		education:  []models.Education{},
		experience: []models.Experience{},
		projects:   []models.Project{},
		theses:     []models.Thesis{},
		messages:   []models.ContactMessage{},
		audit:      []models.AuditLog{},
	}
}

// Dashboard renders the admin panel. If the store cannot be read the page
// still renders, with every collection empty.
func (h *Handlers) Dashboard(c *gin.Context) {
	tab := c.DefaultQuery("tab", defaultTab)

	data, err := h.loadDashboard(c.Request.Context())
	if err != nil {
		h.log.Warn().Err(err).Msg("dashboard store read failed, rendering empty")
		data = emptyDashboard()
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"about":        data.about,
		"skills":       data.skills,
		"education":    data.education,
		"experience":   data.experience,
		"projects":     data.projects,
		"theses":       data.theses,
		"messages":     data.messages,
		"unread_count": data.unreadCount,
		"audit":        data.audit,
		"active_tab":   tab,
		"flashes":      h.takeFlashes(c),
	})
}

func (h *Handlers) loadDashboard(ctx context.Context) (dashboardData, error) {
	d := emptyDashboard()

	about, err := h.store.About(ctx)
	switch {
	case err == nil:
		d.about = about
	case !errors.Is(err, database.ErrNotFound):
		return d, err
	}

	if d.skills, err = h.store.Skills().List(ctx); err != nil {
		return d, err
	}
	if d.education, err = h.store.Education().List(ctx); err != nil {
		return d, err
	}
	if d.experience, err = h.store.Experience().List(ctx); err != nil {
		return d, err
	}
	if d.projects, err = h.store.Projects().List(ctx); err != nil {
		return d, err
	}
	if d.theses, err = h.store.Theses().List(ctx); err != nil {
		return d, err
	}
	if d.messages, err = h.store.Messages(ctx); err != nil {
		return d, err
	}
	if d.unreadCount, err = h.store.UnreadCount(ctx); err != nil {
		return d, err
	}
	if d.audit, err = h.store.RecentAudit(ctx, auditEntries); err != nil {
		return d, err
	}
	return d, nil
}
