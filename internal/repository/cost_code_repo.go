package repository

import (
	"context"

	"gorm.io/gorm"

	"bizops/internal/model"
)

// CostCodeConfigRepository stores configurations together with their
// preferred items.
type CostCodeConfigRepository interface {
	CRUDRepository[model.CostCodeConfiguration]
	ListWithItems(ctx context.Context, filter CostCodeConfigFilter) ([]model.CostCodeConfiguration, error)
	GetWithItems(ctx context.Context, id string) (*model.CostCodeConfiguration, error)
	// ReplaceWithItems saves cfg and swaps its preferred items for cfg.PreferredItems.
	ReplaceWithItems(ctx context.Context, cfg *model.CostCodeConfiguration) error
}

// CostCodeConfigFilter configuration list conditions
type CostCodeConfigFilter struct {
	CorporationUUID string
	DivisionUUID    string
	IsActive        *bool
}

type costCodeConfigRepository struct {
	CRUDRepository[model.CostCodeConfiguration]
	db *gorm.DB
}

func NewCostCodeConfigRepository(db *gorm.DB) CostCodeConfigRepository {
	return &costCodeConfigRepository{
		CRUDRepository: NewCRUDRepository[model.CostCodeConfiguration](db),
		db:             db,
	}
}

func preferredItemsByCreation(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

func (r *costCodeConfigRepository) ListWithItems(ctx context.Context, filter CostCodeConfigFilter) ([]model.CostCodeConfiguration, error) {
	list := make([]model.CostCodeConfiguration, 0)
	err := r.db.WithContext(ctx).
		Preload("PreferredItems", preferredItemsByCreation).
		Scopes(
			ByCorporation(filter.CorporationUUID, false),
			ByEqual("division_uuid", filter.DivisionUUID),
			ByBool("is_active", filter.IsActive),
		).
		Order("cost_code_number ASC").
		Find(&list).Error
	return list, err
}

func (r *costCodeConfigRepository) GetWithItems(ctx context.Context, id string) (*model.CostCodeConfiguration, error) {
	var cfg model.CostCodeConfiguration
	err := r.db.WithContext(ctx).
		Preload("PreferredItems", preferredItemsByCreation).
		Where("uuid = ?", id).
		First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *costCodeConfigRepository) ReplaceWithItems(ctx context.Context, cfg *model.CostCodeConfiguration) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := cfg.PreferredItems
		cfg.PreferredItems = nil

		if err := tx.Omit("PreferredItems").Save(cfg).Error; err != nil {
			return err
		}
		if err := tx.Where("configuration_uuid = ?", cfg.UUID).Delete(&model.PreferredItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].UUID = ""
			items[i].ConfigurationUUID = cfg.UUID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		cfg.PreferredItems = items
		return nil
	})
}
