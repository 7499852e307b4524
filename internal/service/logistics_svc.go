package service

import (
	"context"

	"gorm.io/gorm"

	"bizops/internal/api/dto"
	"bizops/internal/auth"
	"bizops/internal/model"
	"bizops/internal/repository"
)

// Freight and locations are global: no corporation scope.

// ==================== FreightService ====================

type FreightService struct {
	crud crudService[model.Freight, *model.Freight]
}

func NewFreightService(repo repository.CRUDRepository[model.Freight], audit *AuditService) *FreightService {
	return &FreightService{crud: crudService[model.Freight, *model.Freight]{
		repo: repo, audit: audit, name: "Freight", kind: "freight",
	}}
}

func (s *FreightService) List(ctx context.Context, q dto.ActiveQuery) ([]model.Freight, error) {
	return s.crud.list(ctx, repository.ListOptions{
		Scopes: []func(*gorm.DB) *gorm.DB{repository.ByBool("active", q.Active)},
	})
}

func (s *FreightService) Get(ctx context.Context, id string) (*model.Freight, error) {
	return s.crud.get(ctx, id)
}

func (s *FreightService) Create(ctx context.Context, caller auth.Caller, req dto.FreightReq) (*model.Freight, error) {
	var f model.Freight
	req.ApplyTo(&f)
	return s.crud.create(ctx, caller, &f)
}

func (s *FreightService) Update(ctx context.Context, caller auth.Caller, id string, req dto.FreightReq) (*model.Freight, error) {
	return s.crud.update(ctx, caller, id, func(f *model.Freight) { req.ApplyTo(f) })
}

func (s *FreightService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	return s.crud.delete(ctx, caller, id)
}

// ==================== LocationService ====================

type LocationService struct {
	crud crudService[model.Location, *model.Location]
}

func NewLocationService(repo repository.CRUDRepository[model.Location], audit *AuditService) *LocationService {
	return &LocationService{crud: crudService[model.Location, *model.Location]{
		repo: repo, audit: audit, name: "Location", kind: "location",
	}}
}

func (s *LocationService) List(ctx context.Context, q dto.ActiveQuery) ([]model.Location, error) {
	return s.crud.list(ctx, repository.ListOptions{
		Scopes: []func(*gorm.DB) *gorm.DB{repository.ByBool("active", q.Active)},
	})
}

func (s *LocationService) Get(ctx context.Context, id string) (*model.Location, error) {
	return s.crud.get(ctx, id)
}

func (s *LocationService) Create(ctx context.Context, caller auth.Caller, req dto.LocationReq) (*model.Location, error) {
	var l model.Location
	req.ApplyTo(&l)
	return s.crud.create(ctx, caller, &l)
}

func (s *LocationService) Update(ctx context.Context, caller auth.Caller, id string, req dto.LocationReq) (*model.Location, error) {
	return s.crud.update(ctx, caller, id, func(l *model.Location) { req.ApplyTo(l) })
}

func (s *LocationService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	return s.crud.delete(ctx, caller, id)
}
