package database

import (
	"context"
	"errors"

	"portfolio/internal/models"
)

// EnsureAdmin creates the admin user unless one with that username
// exists. It reports whether a row was created.
func (s *Store) EnsureAdmin(ctx context.Context, username, passwordHash string) (bool, error) {
	_, err := s.UserByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	if err := s.CreateUser(ctx, &models.User{Username: username, PasswordHash: passwordHash}); err != nil {
		return false, err
	}
	return true, nil
}

// EnsureAbout seeds the profile singleton with a placeholder name.
func (s *Store) EnsureAbout(ctx context.Context, name string) (bool, error) {
	_, err := s.About(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	if err := s.SaveAbout(ctx, &models.About{Name: name}); err != nil {
		return false, err
	}
	return true, nil
}
