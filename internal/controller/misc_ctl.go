package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bizops/internal/api/dto"
	"bizops/internal/service"
	"bizops/pkg/apperr"
	"bizops/pkg/links"
	"bizops/pkg/response"
	"bizops/pkg/validate"
)

// ==================== Audit logs ====================

type AuditController struct {
	auditSvc *service.AuditService
}

func NewAuditController(auditSvc *service.AuditService) *AuditController {
	return &AuditController{auditSvc: auditSvc}
}

// List audit trail of one entity, newest first
// @Summary Audit trail
// @Tags Audit
// @Produce json
// @Param corporation_uuid query string true "corporation"
// @Param entity_uuid query string true "entity"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/audit-logs [get]
func (ctl *AuditController) List(c *gin.Context) {
	var q dto.AuditLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, validate.TranslateQuery(err, &q, c.Request.URL.Query()))
		return
	}

	list, err := ctl.auditSvc.List(c.Request.Context(), q.CorporationUUID, q.EntityUUID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, list)
}

// ==================== Print links ====================

type LinkController struct {
	resolver *links.Resolver
}

func NewLinkController(resolver *links.Resolver) *LinkController {
	return &LinkController{resolver: resolver}
}

// Resolve absolute URL of a printable view
// @Summary Resolve print link
// @Tags Links
// @Produce json
// @Param path query string true "internal path"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/print-links [get]
func (ctl *LinkController) Resolve(c *gin.Context) {
	var q dto.PrintLinkQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, validate.TranslateQuery(err, &q, c.Request.URL.Query()))
		return
	}
	if !links.IsInternal(q.Path) {
		response.Fail(c, apperr.BadRequest("path must be an internal path"))
		return
	}
	response.OK(c, dto.PrintLinkResp{URL: ctl.resolver.Resolve(q.Path)})
}

// ==================== Health ====================

// Health reports whether the database answers.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
