package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"bizops/internal/api/dto"
	"bizops/internal/auth"
	"bizops/internal/model"
	"bizops/internal/repository"
	"bizops/pkg/apperr"
)

const (
	msgProjectInUse   = "Project is in use and cannot be deleted"
	msgItemTypeInUse  = "Item type is in use and cannot be deleted"
	msgMissingProject = "project_uuid does not reference an existing project"
	msgForeignProject = "project_uuid belongs to a different corporation"
)

// ProjectItemTypeRef marks a project as in use by its item types.
var ProjectItemTypeRef = repository.Reference{Table: "item_types", Column: "project_uuid"}

// ==================== ProjectService ====================

type ProjectService struct {
	crud crudService[model.Project, *model.Project]
}

func NewProjectService(repo repository.CRUDRepository[model.Project], audit *AuditService) *ProjectService {
	return &ProjectService{crud: crudService[model.Project, *model.Project]{
		repo: repo, audit: audit, name: "Project", kind: "project",
		scope: func(p *model.Project) *string { return scoped(p.CorporationUUID) },
	}}
}

func (s *ProjectService) List(ctx context.Context, q dto.CorporationQuery) ([]model.Project, error) {
	return s.crud.list(ctx, repository.ListOptions{
		Scopes: []func(*gorm.DB) *gorm.DB{
			repository.ByCorporation(q.CorporationUUID, false),
			repository.ByEqual("status", q.Status),
		},
	})
}

func (s *ProjectService) Get(ctx context.Context, id string) (*model.Project, error) {
	return s.crud.get(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, caller auth.Caller, req dto.ProjectReq) (*model.Project, error) {
	var p model.Project
	req.ApplyTo(&p)
	return s.crud.create(ctx, caller, &p)
}

func (s *ProjectService) Update(ctx context.Context, caller auth.Caller, id string, req dto.ProjectReq) (*model.Project, error) {
	return s.crud.update(ctx, caller, id, func(p *model.Project) { req.ApplyTo(p) })
}

// Delete refuses with 409 while any item type still belongs to the project.
func (s *ProjectService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	return s.crud.deleteUnreferenced(ctx, caller, id, msgProjectInUse, ProjectItemTypeRef)
}

// ==================== ItemTypeService ====================

type ItemTypeService struct {
	crud     crudService[model.ItemType, *model.ItemType]
	repo     repository.ItemTypeRepository
	projects repository.CRUDRepository[model.Project]
}

func NewItemTypeService(repo repository.ItemTypeRepository, projects repository.CRUDRepository[model.Project], audit *AuditService) *ItemTypeService {
	return &ItemTypeService{
		crud: crudService[model.ItemType, *model.ItemType]{
			repo: repo, audit: audit, name: "Item type", kind: "item_type",
			scope: func(it *model.ItemType) *string { return scoped(it.CorporationUUID) },
		},
		repo:     repo,
		projects: projects,
	}
}

// List returns item types with their project name, optionally for one project.
func (s *ItemTypeService) List(ctx context.Context, q dto.ItemTypeQuery) ([]model.ItemType, error) {
	list, err := s.repo.ListByScope(ctx, repository.ItemTypeFilter{
		CorporationUUID: q.CorporationUUID,
		ProjectUUID:     q.ProjectUUID,
		IsActive:        q.IsActive,
	})
	if err != nil {
		return nil, apperr.FromDB(err, s.crud.name)
	}
	return list, nil
}

func (s *ItemTypeService) Get(ctx context.Context, id string) (*model.ItemType, error) {
	it, err := s.repo.GetWithProject(ctx, id)
	if err != nil {
		return nil, apperr.FromDB(err, s.crud.name)
	}
	return it, nil
}

func (s *ItemTypeService) Create(ctx context.Context, caller auth.Caller, req dto.ItemTypeReq) (*model.ItemType, error) {
	if err := s.requireProject(ctx, req); err != nil {
		return nil, err
	}
	var it model.ItemType
	req.ApplyTo(&it)

	created, err := s.crud.create(ctx, caller, &it)
	if err != nil {
		if apperr.IsForeignKeyViolation(err) {
			return nil, apperr.BadRequest(msgMissingProject)
		}
		return nil, err
	}
	return s.reload(ctx, created)
}

func (s *ItemTypeService) Update(ctx context.Context, caller auth.Caller, id string, req dto.ItemTypeReq) (*model.ItemType, error) {
	if err := s.requireProject(ctx, req); err != nil {
		return nil, err
	}
	updated, err := s.crud.update(ctx, caller, id, func(it *model.ItemType) { req.ApplyTo(it) })
	if err != nil {
		if apperr.IsForeignKeyViolation(err) {
			return nil, apperr.BadRequest(msgMissingProject)
		}
		return nil, err
	}
	return s.reload(ctx, updated)
}

// Delete refuses with 409 while a cost code preferred item references it.
func (s *ItemTypeService) Delete(ctx context.Context, caller auth.Caller, id string) error {
	return s.crud.deleteUnreferenced(ctx, caller, id, msgItemTypeInUse, repository.PreferredItemTypeRef)
}

// requireProject checks the project exists and belongs to the item type's
// corporation.
func (s *ItemTypeService) requireProject(ctx context.Context, req dto.ItemTypeReq) error {
	p, err := s.projects.GetByUUID(ctx, strings.TrimSpace(req.ProjectUUID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.BadRequest(msgMissingProject)
		}
		return apperr.Internal(err)
	}
	if p.CorporationUUID != strings.TrimSpace(req.CorporationUUID) {
		return apperr.BadRequest(msgForeignProject)
	}
	return nil
}

// reload fills project_name for the response.
func (s *ItemTypeService) reload(ctx context.Context, it *model.ItemType) (*model.ItemType, error) {
	fresh, err := s.repo.GetWithProject(ctx, it.UUID)
	if err != nil {
		return it, nil
	}
	return fresh, nil
}
