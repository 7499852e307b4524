package repository

import (
	"context"

	"gorm.io/gorm"

	"bizops/internal/model"
)

// ItemTypeRepository reads item types joined with their project name.
type ItemTypeRepository interface {
	CRUDRepository[model.ItemType]
	ListByScope(ctx context.Context, filter ItemTypeFilter) ([]model.ItemType, error)
	GetWithProject(ctx context.Context, id string) (*model.ItemType, error)
}

// ItemTypeFilter item type list conditions
type ItemTypeFilter struct {
	CorporationUUID string
	ProjectUUID     string
	IsActive        *bool
}

// PreferredItemTypeRef is the column that marks an item type as in use.
var PreferredItemTypeRef = Reference{Table: "cost_code_preferred_items", Column: "item_type_uuid"}

type itemTypeRepository struct {
	CRUDRepository[model.ItemType]
	db *gorm.DB
}

// NewItemTypeRepository creates the item type repository.
func NewItemTypeRepository(db *gorm.DB) ItemTypeRepository {
	return &itemTypeRepository{
		CRUDRepository: NewCRUDRepository[model.ItemType](db),
		db:             db,
	}
}

func (r *itemTypeRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.ItemType{}).
		Select("item_types.*, projects.project_name AS project_name").
		Joins("LEFT JOIN projects ON projects.uuid = item_types.project_uuid")
}

func (r *itemTypeRepository) ListByScope(ctx context.Context, filter ItemTypeFilter) ([]model.ItemType, error) {
	q := r.joined(ctx).Where("item_types.corporation_uuid = ?", filter.CorporationUUID)
	if filter.ProjectUUID != "" {
		q = q.Where("item_types.project_uuid = ?", filter.ProjectUUID)
	}
	if filter.IsActive != nil {
		q = q.Where("item_types.is_active = ?", *filter.IsActive)
	}

	list := make([]model.ItemType, 0)
	err := q.Order("item_types.created_at DESC").Find(&list).Error
	return list, err
}

func (r *itemTypeRepository) GetWithProject(ctx context.Context, id string) (*model.ItemType, error) {
	var it model.ItemType
	if err := r.joined(ctx).Where("item_types.uuid = ?", id).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}
