// Package app assembles the repositories, services, controllers and router
// from one database handle and one configuration.
package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bizops/internal/api/dto"
	"bizops/internal/auth"
	"bizops/internal/controller"
	"bizops/internal/middleware"
	"bizops/internal/model"
	"bizops/internal/repository"
	"bizops/internal/router"
	"bizops/internal/service"
	"bizops/internal/sessionsync"
	"bizops/internal/task"
	"bizops/pkg/apperr"
	"bizops/pkg/config"
	"bizops/pkg/links"
)

// ==================== Dependency container ====================

// App holds the wired application.
type App struct {
	DB       *gorm.DB
	Repos    *Repositories
	Services *Services
	Limiter  *middleware.KeyedLimiter
	Hub      *sessionsync.Hub
	Router   *gin.Engine
	Tasks    *task.MaintenanceTask
}

// Repositories repository set
type Repositories struct {
	Charge        repository.CRUDRepository[model.Charge]
	SalesTax      repository.CRUDRepository[model.SalesTax]
	UOM           repository.CRUDRepository[model.UOM]
	Freight       repository.CRUDRepository[model.Freight]
	Location      repository.CRUDRepository[model.Location]
	Division      repository.CRUDRepository[model.CostCodeDivision]
	CostCode      repository.CostCodeConfigRepository
	Project       repository.CRUDRepository[model.Project]
	ItemType      repository.ItemTypeRepository
	POInstruction repository.CRUDRepository[model.POInstruction]
	Terms         repository.CRUDRepository[model.TermsAndCondition]
	AuditLog      repository.AuditLogRepository
}

// Services service set
type Services struct {
	Audit         *service.AuditService
	Auth          *service.AuthService
	Charge        *service.ChargeService
	SalesTax      *service.SalesTaxService
	UOM           *service.UOMService
	Freight       *service.FreightService
	Location      *service.LocationService
	Division      *service.CostCodeDivisionService
	CostCode      *service.CostCodeConfigService
	Project       *service.ProjectService
	ItemType      *service.ItemTypeService
	POInstruction *service.POInstructionService
	Terms         *service.TermsService
}

// New wires everything. provider may be nil, in which case it is chosen from
// cfg (JWT secret first, then the remote user endpoint).
func New(cfg *config.Config, db *gorm.DB, provider auth.Provider, logger *zap.Logger) *App {
	var remote *auth.RemoteProvider
	if cfg.AuthURL != "" {
		remote = auth.NewRemoteProvider(auth.RemoteOptions{
			BaseURL:    cfg.AuthURL,
			ServiceKey: cfg.AuthServiceRoleKey,
			AnonKey:    cfg.AuthAnonKey,
		})
	}
	if provider == nil {
		provider = SelectProvider(cfg, remote)
	}
	var resetter auth.PasswordResetter = unavailableResetter{}
	if remote != nil {
		resetter = remote
	}

	resolver := links.NewResolver(cfg.BaseURL)
	limiter := middleware.NewKeyedLimiter()
	hub := sessionsync.NewHub(32)

	repos := initRepositories(db)
	services := initServices(repos, resetter, limiter, resolver, logger)
	controllers := initControllers(services, resolver, hub, cfg, logger)

	r := router.SetupRouter(controllers, router.Options{
		DB:          db,
		Provider:    provider,
		CookieName:  cfg.AuthCookieName,
		CORSOrigins: cfg.CORSOrigins,
		Limiter:     limiter,
		Logger:      logger,
	})

	return &App{
		DB:       db,
		Repos:    repos,
		Services: services,
		Limiter:  limiter,
		Hub:      hub,
		Router:   r,
		Tasks:    task.NewMaintenanceTask(services.Audit, limiter, cfg.AuditRetentionDays, logger),
	}
}

// SelectProvider prefers local JWT verification when a secret is configured.
func SelectProvider(cfg *config.Config, remote *auth.RemoteProvider) auth.Provider {
	if cfg.AuthJWTSecret != "" {
		return auth.NewJWTVerifier(cfg.AuthJWTSecret)
	}
	if remote != nil {
		return remote
	}
	return rejectAll{}
}

func initRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Charge:        repository.NewCRUDRepository[model.Charge](db),
		SalesTax:      repository.NewCRUDRepository[model.SalesTax](db),
		UOM:           repository.NewCRUDRepository[model.UOM](db),
		Freight:       repository.NewCRUDRepository[model.Freight](db),
		Location:      repository.NewCRUDRepository[model.Location](db),
		Division:      repository.NewCRUDRepository[model.CostCodeDivision](db),
		CostCode:      repository.NewCostCodeConfigRepository(db),
		Project:       repository.NewCRUDRepository[model.Project](db),
		ItemType:      repository.NewItemTypeRepository(db),
		POInstruction: repository.NewCRUDRepository[model.POInstruction](db),
		Terms:         repository.NewCRUDRepository[model.TermsAndCondition](db),
		AuditLog:      repository.NewAuditLogRepository(db),
	}
}

func initServices(repos *Repositories, resetter auth.PasswordResetter, limiter *middleware.KeyedLimiter, resolver *links.Resolver, logger *zap.Logger) *Services {
	audit := service.NewAuditService(repos.AuditLog, logger)
	return &Services{
		Audit:         audit,
		Auth:          service.NewAuthService(resetter, limiter, resolver, logger),
		Charge:        service.NewChargeService(repos.Charge, audit),
		SalesTax:      service.NewSalesTaxService(repos.SalesTax, audit),
		UOM:           service.NewUOMService(repos.UOM, audit),
		Freight:       service.NewFreightService(repos.Freight, audit),
		Location:      service.NewLocationService(repos.Location, audit),
		Division:      service.NewCostCodeDivisionService(repos.Division, audit),
		CostCode:      service.NewCostCodeConfigService(repos.CostCode, repos.Division, audit),
		Project:       service.NewProjectService(repos.Project, audit),
		ItemType:      service.NewItemTypeService(repos.ItemType, repos.Project, audit),
		POInstruction: service.NewPOInstructionService(repos.POInstruction, audit),
		Terms:         service.NewTermsService(repos.Terms, audit),
	}
}

func initControllers(svc *Services, resolver *links.Resolver, hub *sessionsync.Hub, cfg *config.Config, logger *zap.Logger) *router.Controllers {
	return &router.Controllers{
		Charge:        controller.NewResourceController[model.Charge, dto.ScopeQuery, dto.ChargeReq](svc.Charge, "Charge"),
		SalesTax:      controller.NewResourceController[model.SalesTax, dto.ScopeQuery, dto.SalesTaxReq](svc.SalesTax, "Sales tax"),
		UOM:           controller.NewResourceController[model.UOM, dto.ScopeQuery, dto.UOMReq](svc.UOM, "UOM"),
		Freight:       controller.NewResourceController[model.Freight, dto.ActiveQuery, dto.FreightReq](svc.Freight, "Freight"),
		Location:      controller.NewResourceController[model.Location, dto.ActiveQuery, dto.LocationReq](svc.Location, "Location"),
		Division:      controller.NewResourceController[model.CostCodeDivision, dto.CorporationQuery, dto.CostCodeDivisionReq](svc.Division, "Cost code division"),
		CostCode:      controller.NewResourceController[model.CostCodeConfiguration, dto.CostCodeConfigQuery, dto.CostCodeConfigurationReq](svc.CostCode, "Cost code configuration"),
		Project:       controller.NewResourceController[model.Project, dto.CorporationQuery, dto.ProjectReq](svc.Project, "Project"),
		ItemType:      controller.NewResourceController[model.ItemType, dto.ItemTypeQuery, dto.ItemTypeReq](svc.ItemType, "Item type"),
		POInstruction: controller.NewResourceController[model.POInstruction, dto.CorporationQuery, dto.POInstructionReq](svc.POInstruction, "PO instruction"),
		Terms:         controller.NewResourceController[model.TermsAndCondition, dto.CorporationQuery, dto.TermsAndConditionReq](svc.Terms, "Terms and condition"),

		Audit:   controller.NewAuditController(svc.Audit),
		Auth:    controller.NewAuthController(svc.Auth),
		Link:    controller.NewLinkController(resolver),
		Session: controller.NewSessionController(hub, cfg.CORSOrigins, logger),
	}
}

// ==================== Fallbacks ====================

// rejectAll is used when no auth backend is configured.
type rejectAll struct{}

func (rejectAll) GetUser(context.Context, string) (*auth.Caller, error) {
	return nil, auth.ErrUnauthorized
}

type unavailableResetter struct{}

func (unavailableResetter) SendPasswordReset(context.Context, string, string) error {
	return apperr.New(http.StatusServiceUnavailable, "Password reset is not configured")
}
