package controller

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"bizops/internal/api/dto"
	"bizops/internal/auth"
	"bizops/internal/middleware"
	"bizops/pkg/apperr"
	"bizops/pkg/response"
	"bizops/pkg/validate"
)

// ResourceService is what a master-data service exposes to its controller.
// T is the model, Q the list query, R the create/update body.
type ResourceService[T, Q, R any] interface {
	List(ctx context.Context, q Q) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, caller auth.Caller, req R) (*T, error)
	Update(ctx context.Context, caller auth.Caller, id string, req R) (*T, error)
	Delete(ctx context.Context, caller auth.Caller, id string) error
}

// ResourceController serves the five routes every master table has:
//
//	GET    /            list (query Q)
//	GET    /:uuid       detail
//	POST   /            create (body R)
//	PUT    /:uuid       full replace (body R)
//	DELETE /:uuid       delete; DELETE /?uuid= is accepted too
//
// Input is validated before the service is called.
type ResourceController[T, Q, R any] struct {
	svc  ResourceService[T, Q, R]
	name string
}

func NewResourceController[T, Q, R any](svc ResourceService[T, Q, R], name string) *ResourceController[T, Q, R] {
	return &ResourceController[T, Q, R]{svc: svc, name: name}
}

// Register mounts the routes on g.
func (ctl *ResourceController[T, Q, R]) Register(g *gin.RouterGroup) {
	g.GET("", ctl.List)
	g.GET("/:uuid", ctl.Get)
	g.POST("", ctl.Create)
	g.PUT("/:uuid", ctl.Update)
	g.DELETE("/:uuid", ctl.Delete)
	g.DELETE("", ctl.Delete)
}

func (ctl *ResourceController[T, Q, R]) List(c *gin.Context) {
	var q Q
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, validate.TranslateQuery(err, &q, c.Request.URL.Query()))
		return
	}

	list, err := ctl.svc.List(c.Request.Context(), q)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, list)
}

func (ctl *ResourceController[T, Q, R]) Get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("uuid"))
	item, err := ctl.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, item)
}

func (ctl *ResourceController[T, Q, R]) Create(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.Fail(c, apperr.Unauthorized())
		return
	}
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, validate.Translate(err))
		return
	}

	item, err := ctl.svc.Create(c.Request.Context(), caller, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OKMessage(c, item, ctl.name+" created successfully")
}

func (ctl *ResourceController[T, Q, R]) Update(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.Fail(c, apperr.Unauthorized())
		return
	}
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, validate.Translate(err))
		return
	}

	item, err := ctl.svc.Update(c.Request.Context(), caller, strings.TrimSpace(c.Param("uuid")), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OKMessage(c, item, ctl.name+" updated successfully")
}

// Delete takes the uuid from the path, or from ?uuid= for older clients.
func (ctl *ResourceController[T, Q, R]) Delete(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.Fail(c, apperr.Unauthorized())
		return
	}
	id := strings.TrimSpace(c.Param("uuid"))
	if id == "" {
		var q dto.UUIDQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			response.Fail(c, validate.TranslateQuery(err, &q, c.Request.URL.Query()))
			return
		}
		id = strings.TrimSpace(q.UUID)
	}

	if err := ctl.svc.Delete(c.Request.Context(), caller, id); err != nil {
		response.Fail(c, err)
		return
	}
	response.OKMessage(c, nil, ctl.name+" deleted successfully")
}
