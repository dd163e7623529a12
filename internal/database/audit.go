package database

import (
	"context"
	"fmt"

	"portfolio/internal/models"
)

// RecordAudit appends one entry to the dashboard audit trail.
func (s *Store) RecordAudit(ctx context.Context, userID uint, entity string, entityID uint, action, details string) error {
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("record audit: %w", err)
	}
	return nil
}

func (s *Store) RecentAudit(ctx context.Context, limit int) ([]models.AuditLog, error) {
	logs := []models.AuditLog{}
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	return logs, nil
}
