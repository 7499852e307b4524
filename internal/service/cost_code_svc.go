package service

import (
	"context"

	"gorm.io/gorm"

	"bizops/internal/api/dto"
	"bizops/internal/auth"
	"bizops/internal/model"
	"bizops/internal/repository"
	"bizops/pkg/apperr"
)

// ==================== CostCodeDivisionService ====================

// CostCodeDivisionService deleting a division removes its configurations
// through the foreign key cascade.
type CostCodeDivisionService struct {
	crud crudService[model.CostCodeDivision, *model.CostCodeDivision]
}

func NewCostCodeDivisionService(repo repository.CRUDRepository[model.CostCodeDivision], audit *AuditService) *CostCodeDivisionService {
	return &CostCodeDivisionService{crud: crudService[model.CostCodeDivision, *model.CostCodeDivision]{
		repo: repo, audit: audit, name: "Cost code division", kind: "cost_code_division",
		scope: func(d *model.CostCodeDivision) *string { return scoped(d.CorporationUUID) },
	}}
}

func (s *CostCodeDivisionService) List(ctx context.Context, q dto.CorporationQuery) ([]model.CostCodeDivision, error) {
	return s.crud.list(ctx, repository.ListOptions{
		Scopes: []func(*gorm.DB) *gorm.DB{
			repository.ByCorporation(q.CorporationUUID, false),
			repository.ByBool("is_active", q.IsActive),
		},
		Order: "division_order ASC, division_number ASC",
	})
}

func (s *CostCodeDivisionService) Get(ctx context.Context, id string) (*model.CostCodeDivision, error) {
	return s.crud.get(ctx, id)
}

func (s *CostCodeDivisionService) Create(ctx context.Context, caller auth.Caller, req dto.CostCodeDivisionReq) (*model.CostCodeDivision, error) {
	var d model.CostCodeDivision
	req.ApplyTo(&d)
	return s.crud.create(ctx, caller, &d)
}

func (s *CostCodeDivisionService) Update(ctx context.Context, caller auth.Caller, id string, req dto.CostCodeDivisionReq) (*model.CostCodeDivision, error) {
	return s.crud.update(ctx, caller, id, func(d *model.CostCodeDivision) { req.ApplyTo(d) })
}

func (s *CostCodeDivisionService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	return s.crud.delete(ctx, caller, id)
}

// ==================== CostCodeConfigService ====================

const msgMissingDivision = "division_uuid does not reference an existing division"

// CostCodeConfigService manages configurations with their preferred items;
// an update replaces the item list as a whole.
type CostCodeConfigService struct {
	crud      crudService[model.CostCodeConfiguration, *model.CostCodeConfiguration]
	repo      repository.CostCodeConfigRepository
	divisions repository.CRUDRepository[model.CostCodeDivision]
}

func NewCostCodeConfigService(repo repository.CostCodeConfigRepository, divisions repository.CRUDRepository[model.CostCodeDivision], audit *AuditService) *CostCodeConfigService {
	return &CostCodeConfigService{
		crud: crudService[model.CostCodeConfiguration, *model.CostCodeConfiguration]{
			repo: repo, audit: audit, name: "Cost code configuration", kind: "cost_code_configuration",
			scope: func(c *model.CostCodeConfiguration) *string { return scoped(c.CorporationUUID) },
		},
		repo:      repo,
		divisions: divisions,
	}
}

func (s *CostCodeConfigService) List(ctx context.Context, q dto.CostCodeConfigQuery) ([]model.CostCodeConfiguration, error) {
	list, err := s.repo.ListWithItems(ctx, repository.CostCodeConfigFilter{
		CorporationUUID: q.CorporationUUID,
		DivisionUUID:    q.DivisionUUID,
		IsActive:        q.IsActive,
	})
	if err != nil {
		return nil, apperr.FromDB(err, s.crud.name)
	}
	return list, nil
}

func (s *CostCodeConfigService) Get(ctx context.Context, id string) (*model.CostCodeConfiguration, error) {
	cfg, err := s.repo.GetWithItems(ctx, id)
	if err != nil {
		return nil, apperr.FromDB(err, s.crud.name)
	}
	return cfg, nil
}

func (s *CostCodeConfigService) Create(ctx context.Context, caller auth.Caller, req dto.CostCodeConfigurationReq) (*model.CostCodeConfiguration, error) {
	if err := s.requireDivision(ctx, req.DivisionUUID); err != nil {
		return nil, err
	}
	var cfg model.CostCodeConfiguration
	req.ApplyTo(&cfg)
	stampItems(&cfg, caller.ID)

	created, err := s.crud.create(ctx, caller, &cfg)
	if apperr.IsForeignKeyViolation(err) {
		return nil, apperr.BadRequest(msgMissingDivision)
	}
	return created, err
}

func (s *CostCodeConfigService) Update(ctx context.Context, caller auth.Caller, id string, req dto.CostCodeConfigurationReq) (*model.CostCodeConfiguration, error) {
	cfg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireDivision(ctx, req.DivisionUUID); err != nil {
		return nil, err
	}

	req.ApplyTo(cfg)
	cfg.Stamp(caller.ID)
	stampItems(cfg, caller.ID)
	if err := s.repo.ReplaceWithItems(ctx, cfg); err != nil {
		if apperr.IsForeignKeyViolation(err) {
			return nil, apperr.BadRequest(msgMissingDivision)
		}
		return nil, apperr.FromDB(err, s.crud.name)
	}
	s.crud.record(ctx, caller, cfg, model.AuditActionUpdate)
	return cfg, nil
}

// Delete removes the configuration; its preferred items go with it.
func (s *CostCodeConfigService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	return s.crud.delete(ctx, caller, id)
}

func (s *CostCodeConfigService) requireDivision(ctx context.Context, divisionUUID string) error {
	ok, err := s.divisions.Exists(ctx, divisionUUID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.BadRequest(msgMissingDivision)
	}
	return nil
}

func stampItems(cfg *model.CostCodeConfiguration, userID string) {
	for i := range cfg.PreferredItems {
		cfg.PreferredItems[i].Stamp(userID)
	}
}
