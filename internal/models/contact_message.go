package models

import (
	"encoding/json"
	"time"
)

type MessageState string

const (
	MessageUnread MessageState = "unread"
	MessageRead   MessageState = "read"
)

// ContactMessage is appended by the public contact form. Its state only
// ever moves from unread to read.
type ContactMessage struct {
	ID        uint         `gorm:"primaryKey"`
	Name      string       `gorm:"size:100;not null"`
	Email     string       `gorm:"size:100;not null"`
	Subject   string       `gorm:"size:200"`
	Message   string       `gorm:"type:text;not null"`
	Timestamp time.Time    `gorm:"autoCreateTime;index"`
	State     MessageState `gorm:"type:varchar(10);not null;default:unread;index"`
}

func (m ContactMessage) IsRead() bool {
	return m.State == MessageRead
}

func (m ContactMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        uint   `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		Subject   string `json:"subject"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
		Read      bool   `json:"read"`
	}{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Timestamp: m.Timestamp.UTC().Format(time.RFC3339),
		Read:      m.IsRead(),
	})
}
