package models

import "time"

// AuditLog records who changed which dashboard record.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`

	UserID uint
	User   User

	Entity   string `gorm:"size:50;not null"` // "skill", "project", "about"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "update", "delete"
	Details  string `gorm:"type:text"`
}

// All lists every model for migrations.
func All() []any {
	return []any{
		&User{},
		&About{},
		&Skill{},
		&Education{},
		&Experience{},
		&Project{},
		&Thesis{},
		&ContactMessage{},
		&AuditLog{},
	}
}
