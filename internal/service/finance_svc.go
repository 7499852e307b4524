package service

import (
	"context"

	"gorm.io/gorm"

	"bizops/internal/api/dto"
	"bizops/internal/auth"
	"bizops/internal/model"
	"bizops/internal/repository"
)

// ==================== ChargeService ====================

type ChargeService struct {
	crud crudService[model.Charge, *model.Charge]
}

func NewChargeService(repo repository.CRUDRepository[model.Charge], audit *AuditService) *ChargeService {
	return &ChargeService{crud: crudService[model.Charge, *model.Charge]{
		repo: repo, audit: audit, name: "Charge", kind: "charge",
		scope: func(c *model.Charge) *string { return c.CorporationUUID },
	}}
}

// List returns the corporation's charges plus the global ones.
func (s *ChargeService) List(ctx context.Context, q dto.ScopeQuery) ([]model.Charge, error) {
	return s.crud.list(ctx, repository.ListOptions{Scopes: scopeQueryScopes(q)})
}

func (s *ChargeService) Get(ctx context.Context, id string) (*model.Charge, error) {
	return s.crud.get(ctx, id)
}

func (s *ChargeService) Create(ctx context.Context, caller auth.Caller, req dto.ChargeReq) (*model.Charge, error) {
	var c model.Charge
	req.ApplyTo(&c)
	return s.crud.create(ctx, caller, &c)
}

func (s *ChargeService) Update(ctx context.Context, caller auth.Caller, id string, req dto.ChargeReq) (*model.Charge, error) {
	return s.crud.update(ctx, caller, id, func(c *model.Charge) { req.ApplyTo(c) })
}

func (s *ChargeService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	return s.crud.delete(ctx, caller, id)
}

// ==================== SalesTaxService ====================

type SalesTaxService struct {
	crud crudService[model.SalesTax, *model.SalesTax]
}

func NewSalesTaxService(repo repository.CRUDRepository[model.SalesTax], audit *AuditService) *SalesTaxService {
	return &SalesTaxService{crud: crudService[model.SalesTax, *model.SalesTax]{
		repo: repo, audit: audit, name: "Sales tax", kind: "sales_tax",
		scope: func(t *model.SalesTax) *string { return t.CorporationUUID },
	}}
}

func (s *SalesTaxService) List(ctx context.Context, q dto.ScopeQuery) ([]model.SalesTax, error) {
	return s.crud.list(ctx, repository.ListOptions{Scopes: scopeQueryScopes(q)})
}

func (s *SalesTaxService) Get(ctx context.Context, id string) (*model.SalesTax, error) {
	return s.crud.get(ctx, id)
}

func (s *SalesTaxService) Create(ctx context.Context, caller auth.Caller, req dto.SalesTaxReq) (*model.SalesTax, error) {
	var t model.SalesTax
	req.ApplyTo(&t)
	return s.crud.create(ctx, caller, &t)
}

func (s *SalesTaxService) Update(ctx context.Context, caller auth.Caller, id string, req dto.SalesTaxReq) (*model.SalesTax, error) {
	return s.crud.update(ctx, caller, id, func(t *model.SalesTax) { req.ApplyTo(t) })
}

func (s *SalesTaxService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	return s.crud.delete(ctx, caller, id)
}

// ==================== UOMService ====================

type UOMService struct {
	crud crudService[model.UOM, *model.UOM]
}

func NewUOMService(repo repository.CRUDRepository[model.UOM], audit *AuditService) *UOMService {
	return &UOMService{crud: crudService[model.UOM, *model.UOM]{
		repo: repo, audit: audit, name: "UOM", kind: "uom",
		scope: func(u *model.UOM) *string { return u.CorporationUUID },
	}}
}

func (s *UOMService) List(ctx context.Context, q dto.ScopeQuery) ([]model.UOM, error) {
	return s.crud.list(ctx, repository.ListOptions{Scopes: scopeQueryScopes(q)})
}

func (s *UOMService) Get(ctx context.Context, id string) (*model.UOM, error) {
	return s.crud.get(ctx, id)
}

func (s *UOMService) Create(ctx context.Context, caller auth.Caller, req dto.UOMReq) (*model.UOM, error) {
	var u model.UOM
	req.ApplyTo(&u)
	return s.crud.create(ctx, caller, &u)
}

func (s *UOMService) Update(ctx context.Context, caller auth.Caller, id string, req dto.UOMReq) (*model.UOM, error) {
	return s.crud.update(ctx, caller, id, func(u *model.UOM) { req.ApplyTo(u) })
}

func (s *UOMService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	return s.crud.delete(ctx, caller, id)
}

func scopeQueryScopes(q dto.ScopeQuery) []func(*gorm.DB) *gorm.DB {
	return []func(*gorm.DB) *gorm.DB{
		repository.ByCorporation(q.CorporationUUID, true),
		repository.ByEqual("status", q.Status),
	}
}
