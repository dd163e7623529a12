package models

type Education struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Degree      string `gorm:"size:100;not null" json:"degree"`
	Institution string `gorm:"size:100;not null" json:"institution"`
	YearRange   string `gorm:"size:50" json:"year_range"`
	Description string `gorm:"type:text" json:"description"`
}

type Experience struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Role        string `gorm:"size:100;not null" json:"role"`
	Company     string `gorm:"size:100;not null" json:"company"`
	YearRange   string `gorm:"size:50" json:"year_range"`
	Description string `gorm:"type:text" json:"description"`
}
