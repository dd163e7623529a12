package auth

import (
	"context"
	"errors"

	"portfolio/internal/database"
	"portfolio/internal/models"

	"github.com/rs/zerolog"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserStore interface {
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, userID uint, hash string) error
}

type Authenticator struct {
	users     UserStore
	log       zerolog.Logger
	dummyHash string
}

func NewAuthenticator(users UserStore, log zerolog.Logger) (*Authenticator, error) {
	dummy, err := HashPassword("not-a-real-password")
	if err != nil {
		return nil, err
	}
	return &Authenticator{users: users, log: log, dummyHash: dummy}, nil
}

// Authenticate maps a credential pair to a user. Legacy pbkdf2 hashes are
// upgraded to bcrypt after a successful match.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := a.users.UserByUsername(ctx, username)
	if errors.Is(err, database.ErrNotFound) {
		// same cost as a real comparison
		_, _ = verifyPassword(a.dummyHash, password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := verifyPassword(user.PasswordHash, password)
	if err != nil {
		a.log.Warn().Err(err).Uint("user_id", user.ID).Msg("stored password hash is unreadable")
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if isLegacyHash(user.PasswordHash) {
		a.upgradeHash(ctx, user, password)
	}
	return user, nil
}

func (a *Authenticator) upgradeHash(ctx context.Context, user *models.User, password string) {
	hash, err := HashPassword(password)
	if err != nil {
		a.log.Warn().Err(err).Msg("rehash password")
		return
	}
	if err := a.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		a.log.Warn().Err(err).Uint("user_id", user.ID).Msg("store upgraded password hash")
		return
	}
	user.PasswordHash = hash
	a.log.Info().Uint("user_id", user.ID).Msg("upgraded legacy password hash to bcrypt")
}
