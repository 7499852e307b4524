package repository

import (
	"context"

	"gorm.io/gorm"
)

// ==================== CRUDRepository ====================

// CRUDRepository is the read/write surface every master table shares.
// Lookups return gorm.ErrRecordNotFound when the uuid does not exist.
type CRUDRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetByUUID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id string) (int64, error)
	DeleteUnreferenced(ctx context.Context, id string, refs ...Reference) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, opts ListOptions) ([]T, error)
}

// ListOptions narrows and orders a List call.
type ListOptions struct {
	Scopes []func(*gorm.DB) *gorm.DB
	Order  string
}

// Reference names a column in another table that points at this table's uuid.
type Reference struct {
	Table  string
	Column string
}

// ==================== Scopes ====================

// ByCorporation filters on corporation_uuid. With includeGlobal, rows without a
// corporation are returned as well.
func ByCorporation(corporationUUID string, includeGlobal bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if corporationUUID == "" {
			return db
		}
		if includeGlobal {
			return db.Where("(corporation_uuid = ? OR corporation_uuid IS NULL)", corporationUUID)
		}
		return db.Where("corporation_uuid = ?", corporationUUID)
	}
}

// ByEqual adds `column = value` when value is non-empty.
func ByEqual(column, value string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

// ByBool adds `column = value` when value is set.
func ByBool(column string, value *bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db
		}
		return db.Where(column+" = ?", *value)
	}
}

// ==================== Implementation ====================

type crudRepository[T any] struct {
	db *gorm.DB
}

// NewCRUDRepository creates a repository for model T.
func NewCRUDRepository[T any](db *gorm.DB) CRUDRepository[T] {
	return &crudRepository[T]{db: db}
}

func (r *crudRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *crudRepository[T]) GetByUUID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// Update writes every column of entity (full replace).
func (r *crudRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete hard-deletes by uuid and returns the affected row count.
func (r *crudRepository[T]) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(new(T))
	return res.RowsAffected, res.Error
}

// DeleteUnreferenced deletes the row only if no reference points at it. The
// check and the delete are one statement, so a reference inserted
// concurrently cannot slip between them. Zero rows affected means either the
// row is missing or it is referenced; callers use Exists to tell which.
func (r *crudRepository[T]) DeleteUnreferenced(ctx context.Context, id string, refs ...Reference) (int64, error) {
	q := r.db.WithContext(ctx).Where("uuid = ?", id)
	for _, ref := range refs {
		q = q.Where("NOT EXISTS (SELECT 1 FROM "+ref.Table+" WHERE "+ref.Column+" = ?)", id)
	}
	res := q.Delete(new(T))
	return res.RowsAffected, res.Error
}

func (r *crudRepository[T]) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("uuid = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *crudRepository[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	q := r.db.WithContext(ctx).Model(new(T)).Scopes(opts.Scopes...)
	if opts.Order != "" {
		q = q.Order(opts.Order)
	} else {
		q = q.Order("created_at DESC")
	}

	list := make([]T, 0)
	err := q.Find(&list).Error
	return list, err
}
