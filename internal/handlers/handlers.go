package handlers

import (
	"context"

	"portfolio/internal/auth"
	"portfolio/internal/database"
	"portfolio/internal/models"

	"github.com/rs/zerolog"
)

// ContentStore is what the handlers need from the entity store.
type ContentStore interface {
	Skills() database.Collection[models.Skill]
	Education() database.Collection[models.Education]
	Experience() database.Collection[models.Experience]
	Projects() database.Collection[models.Project]
	Theses() database.Collection[models.Thesis]

	About(ctx context.Context) (*models.About, error)
	SaveAbout(ctx context.Context, about *models.About) error

	CreateMessage(ctx context.Context, msg *models.ContactMessage) error
	Messages(ctx context.Context) ([]models.ContactMessage, error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkMessageRead(ctx context.Context, id uint) (int64, error)

	RecordAudit(ctx context.Context, userID uint, entity string, entityID uint, action, details string) error
	RecentAudit(ctx context.Context, limit int) ([]models.AuditLog, error)

	Ping(ctx context.Context) error
}

type Handlers struct {
	store  ContentStore
	auth   *auth.Authenticator
	tokens *auth.Tokens
	log    zerolog.Logger
}

func New(store ContentStore, authn *auth.Authenticator, tokens *auth.Tokens, log zerolog.Logger) *Handlers {
	return &Handlers{
		store:  store,
		auth:   authn,
		tokens: tokens,
		log:    log,
	}
}
