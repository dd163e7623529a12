package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the gorm-backed entity store. It is passed explicitly to
// everything that needs it.
type Store struct {
	db *gorm.DB

	skills     Collection[models.Skill]
	education  Collection[models.Education]
	experience Collection[models.Experience]
	projects   Collection[models.Project]
	theses     Collection[models.Thesis]
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		skills:     NewCollection[models.Skill](db),
		education:  NewCollection[models.Education](db),
		experience: NewCollection[models.Experience](db),
		projects:   NewCollection[models.Project](db),
		theses:     NewCollection[models.Thesis](db),
	}
}

func (s *Store) Skills() Collection[models.Skill]           { return s.skills }
func (s *Store) Education() Collection[models.Education]   { return s.education }
func (s *Store) Experience() Collection[models.Experience] { return s.experience }
func (s *Store) Projects() Collection[models.Project]      { return s.projects }
func (s *Store) Theses() Collection[models.Thesis]         { return s.theses }

// About returns the profile singleton or ErrNotFound.
func (s *Store) About(ctx context.Context) (*models.About, error) {
	var about models.About
	err := s.db.WithContext(ctx).First(&about, models.AboutID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get about: %w", err)
	}
	return &about, nil
}

// SaveAbout creates the profile row or overwrites it in place.
func (s *Store) SaveAbout(ctx context.Context, about *models.About) error {
	about.ID = models.AboutID
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(about).Error
	if err != nil {
		return fmt.Errorf("save about: %w", err)
	}
	return nil
}

func (s *Store) CreateMessage(ctx context.Context, msg *models.ContactMessage) error {
	msg.State = models.MessageUnread
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// Messages returns every contact message, newest first.
func (s *Store) Messages(ctx context.Context) ([]models.ContactMessage, error) {
	msgs := []models.ContactMessage{}
	err := s.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order("id desc").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *Store) UnreadCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.ContactMessage{}).
		Where("state = ?", models.MessageUnread).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return n, nil
}

// MarkMessageRead moves a message to the read state (a no-op when it is
// already read) and returns the remaining unread count.
func (s *Store) MarkMessageRead(ctx context.Context, id uint) (int64, error) {
	var unread int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var msg models.ContactMessage
		if err := tx.Select("id", "state").First(&msg, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !msg.IsRead() {
			err := tx.Model(&models.ContactMessage{}).
				Where("id = ? AND state = ?", id, models.MessageUnread).
				Update("state", models.MessageRead).Error
			if err != nil {
				return err
			}
		}

		return tx.Model(&models.ContactMessage{}).
			Where("state = ?", models.MessageUnread).
			Count(&unread).Error
	})
	if errors.Is(err, ErrNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("mark message %d read: %w", id, err)
	}
	return unread, nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return &user, nil
}

func (s *Store) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user %q: %w", user.Username, err)
	}
	return nil
}

func (s *Store) UpdatePasswordHash(ctx context.Context, userID uint, hash string) error {
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("password", hash).Error
	if err != nil {
		return fmt.Errorf("update password for user %d: %w", userID, err)
	}
	return nil
}

// Ping checks the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
