package models

// User is the dashboard identity. Rows are created only by the
// create-admin command. The table and hash column keep the names used by
// earlier deployments of the site so their admin rows stay usable.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	PasswordHash string `gorm:"column:password;size:150;not null" json:"-"`
}

func (User) TableName() string { return "user" }
