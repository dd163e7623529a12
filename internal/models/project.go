package models

type Project struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Category    string `gorm:"size:50" json:"category"`
	ImageURL    string `gorm:"size:255" json:"image_url"`
	ProjectLink string `gorm:"size:255" json:"project_link"`
}

// Thesis is a published paper or dissertation.
type Thesis struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"size:200;not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	Link            string `gorm:"size:255" json:"link"`
	PublicationDate string `gorm:"size:50" json:"publication_date"`
}
