package service

import (
	"context"

	"gorm.io/gorm"

	"bizops/internal/api/dto"
	"bizops/internal/auth"
	"bizops/internal/model"
	"bizops/internal/repository"
)

// ==================== POInstructionService ====================

type POInstructionService struct {
	crud crudService[model.POInstruction, *model.POInstruction]
}

func NewPOInstructionService(repo repository.CRUDRepository[model.POInstruction], audit *AuditService) *POInstructionService {
	return &POInstructionService{crud: crudService[model.POInstruction, *model.POInstruction]{
		repo: repo, audit: audit, name: "PO instruction", kind: "po_instruction",
		scope: func(p *model.POInstruction) *string { return scoped(p.CorporationUUID) },
	}}
}

func (s *POInstructionService) List(ctx context.Context, q dto.CorporationQuery) ([]model.POInstruction, error) {
	return s.crud.list(ctx, repository.ListOptions{
		Scopes: []func(*gorm.DB) *gorm.DB{
			repository.ByCorporation(q.CorporationUUID, false),
			repository.ByEqual("status", q.Status),
		},
	})
}

func (s *POInstructionService) Get(ctx context.Context, id string) (*model.POInstruction, error) {
	return s.crud.get(ctx, id)
}

func (s *POInstructionService) Create(ctx context.Context, caller auth.Caller, req dto.POInstructionReq) (*model.POInstruction, error) {
	var p model.POInstruction
	req.ApplyTo(&p)
	return s.crud.create(ctx, caller, &p)
}

func (s *POInstructionService) Update(ctx context.Context, caller auth.Caller, id string, req dto.POInstructionReq) (*model.POInstruction, error) {
	return s.crud.update(ctx, caller, id, func(p *model.POInstruction) { req.ApplyTo(p) })
}

func (s *POInstructionService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	return s.crud.delete(ctx, caller, id)
}

// ==================== TermsService ====================

type TermsService struct {
	crud crudService[model.TermsAndCondition, *model.TermsAndCondition]
}

func NewTermsService(repo repository.CRUDRepository[model.TermsAndCondition], audit *AuditService) *TermsService {
	return &TermsService{crud: crudService[model.TermsAndCondition, *model.TermsAndCondition]{
		repo: repo, audit: audit, name: "Terms and condition", kind: "terms_and_condition",
		scope: func(t *model.TermsAndCondition) *string { return scoped(t.CorporationUUID) },
	}}
}

func (s *TermsService) List(ctx context.Context, q dto.CorporationQuery) ([]model.TermsAndCondition, error) {
	return s.crud.list(ctx, repository.ListOptions{
		Scopes: []func(*gorm.DB) *gorm.DB{
			repository.ByCorporation(q.CorporationUUID, false),
			repository.ByBool("is_active", q.IsActive),
		},
	})
}

func (s *TermsService) Get(ctx context.Context, id string) (*model.TermsAndCondition, error) {
	return s.crud.get(ctx, id)
}

func (s *TermsService) Create(ctx context.Context, caller auth.Caller, req dto.TermsAndConditionReq) (*model.TermsAndCondition, error) {
	var t model.TermsAndCondition
	req.ApplyTo(&t)
	return s.crud.create(ctx, caller, &t)
}

func (s *TermsService) Update(ctx context.Context, caller auth.Caller, id string, req dto.TermsAndConditionReq) (*model.TermsAndCondition, error) {
	return s.crud.update(ctx, caller, id, func(t *model.TermsAndCondition) { req.ApplyTo(t) })
}

func (s *TermsService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	return s.crud.delete(ctx, caller, id)
}
