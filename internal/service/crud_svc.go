package service

import (
	"context"

	"bizops/internal/auth"
	"bizops/internal/model"
	"bizops/internal/repository"
	"bizops/pkg/apperr"
)

// entity is satisfied by a pointer to any model embedding model.BaseModel.
type entity[T any] interface {
	*T
	GetUUID() string
	Stamp(userID string)
}

// crudService is the get/create/update/delete core every resource service
// embeds. name is used in error messages ("Charge not found"), kind is the
// audit entity_type.
type crudService[T any, PT entity[T]] struct {
	repo  repository.CRUDRepository[T]
	audit *AuditService
	name  string
	kind  string
	scope func(*T) *string
}

func (s *crudService[T, PT]) get(ctx context.Context, id string) (*T, error) {
	e, err := s.repo.GetByUUID(ctx, id)
	if err != nil {
		return nil, apperr.FromDB(err, s.name)
	}
	return e, nil
}

func (s *crudService[T, PT]) list(ctx context.Context, opts repository.ListOptions) ([]T, error) {
	list, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, apperr.FromDB(err, s.name)
	}
	return list, nil
}

func (s *crudService[T, PT]) create(ctx context.Context, caller auth.Caller, e *T) (*T, error) {
	PT(e).Stamp(caller.ID)
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, apperr.FromDB(err, s.name)
	}
	s.record(ctx, caller, e, model.AuditActionCreate)
	return e, nil
}

// update loads the row first: Save on a missing uuid would insert it.
func (s *crudService[T, PT]) update(ctx context.Context, caller auth.Caller, id string, apply func(*T)) (*T, error) {
	e, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(e)
	PT(e).Stamp(caller.ID)
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, apperr.FromDB(err, s.name)
	}
	s.record(ctx, caller, e, model.AuditActionUpdate)
	return e, nil
}

func (s *crudService[T, PT]) delete(ctx context.Context, caller auth.Caller, id string) error {
	e, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.FromDB(err, s.name)
	}
	if n == 0 {
		return apperr.NotFound(s.name)
	}
	s.record(ctx, caller, e, model.AuditActionDelete)
	return nil
}

// deleteUnreferenced deletes only when none of refs points at the row. The
// guard and the delete are one statement; on zero rows an existence read
// decides between 404 and inUse.
func (s *crudService[T, PT]) deleteUnreferenced(ctx context.Context, caller auth.Caller, id, inUse string, refs ...repository.Reference) error {
	e, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.repo.DeleteUnreferenced(ctx, id, refs...)
	if err != nil {
		return apperr.FromDB(err, s.name)
	}
	if n == 0 {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return apperr.Internal(err)
		}
		if exists {
			return apperr.Conflict(inUse)
		}
		return apperr.NotFound(s.name)
	}
	s.record(ctx, caller, e, model.AuditActionDelete)
	return nil
}

func (s *crudService[T, PT]) record(ctx context.Context, caller auth.Caller, e *T, action string) {
	if s.audit == nil {
		return
	}
	var corp *string
	if s.scope != nil {
		corp = s.scope(e)
	}
	s.audit.Record(ctx, caller, corp, s.kind, PT(e).GetUUID(), action, e)
}

func scoped(corporationUUID string) *string {
	if corporationUUID == "" {
		return nil
	}
	return &corporationUUID
}
