package models

type Skill struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:50;not null" json:"name"`
	Percentage int    `gorm:"not null" json:"percentage"` // 0-100, not enforced
}
