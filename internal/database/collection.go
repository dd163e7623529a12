package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Collection is the CRUD surface shared by the dashboard-managed content
// types.
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, rec *T) error
	// Update overwrites every column of an existing row; ErrNotFound if
	// the row is gone.
	Update(ctx context.Context, rec *T) error
	// Delete removes the row if it exists and reports whether it did. A
	// missing row is not an error.
	Delete(ctx context.Context, id uint) (bool, error)
}

type gormCollection[T any] struct {
	db *gorm.DB
}

func NewCollection[T any](db *gorm.DB) Collection[T] {
	return gormCollection[T]{db: db}
}

func kind[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func (c gormCollection[T]) List(ctx context.Context) ([]T, error) {
	out := []T{}
	if err := c.db.WithContext(ctx).Order("id asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", kind[T](), err)
	}
	return out, nil
}

func (c gormCollection[T]) Get(ctx context.Context, id uint) (*T, error) {
	var rec T
	err := c.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", kind[T](), id, err)
	}
	return &rec, nil
}

func (c gormCollection[T]) Create(ctx context.Context, rec *T) error {
	if err := c.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("create %s: %w", kind[T](), err)
	}
	return nil
}

func (c gormCollection[T]) Update(ctx context.Context, rec *T) error {
	res := c.db.WithContext(ctx).Model(rec).Select("*").Updates(rec)
	if res.Error != nil {
		return fmt.Errorf("update %s: %w", kind[T](), res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (c gormCollection[T]) Delete(ctx context.Context, id uint) (bool, error) {
	var zero T
	res := c.db.WithContext(ctx).Delete(&zero, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete %s %d: %w", kind[T](), id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
