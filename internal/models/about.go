package models

// AboutID is the fixed key of the single profile row.
const AboutID uint = 1

// About is the profile singleton. The check constraint keeps the table
// at one row at most.
type About struct {
	ID              uint   `gorm:"primaryKey;autoIncrement:false;check:id = 1" json:"-"`
	Name            string `gorm:"size:100" json:"name"`
	Birthday        string `gorm:"size:50" json:"birthday"`
	Website         string `gorm:"size:100" json:"website"`
	Phone           string `gorm:"size:20" json:"phone"`
	City            string `gorm:"size:50" json:"city"`
	Degree          string `gorm:"size:50" json:"degree"`
	Email           string `gorm:"size:100" json:"email"`
	FreelanceStatus string `gorm:"size:20" json:"freelance_status"`
	ShortBio        string `gorm:"type:text" json:"short_bio"`
	LongBio         string `gorm:"type:text" json:"long_bio"`
	ProfileImage    string `gorm:"size:255" json:"profile_image"`
}
