package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "bizops/docs"
	"bizops/internal/api/dto"
	"bizops/internal/auth"
	"bizops/internal/controller"
	"bizops/internal/middleware"
	"bizops/internal/model"
	"bizops/pkg/apperr"
	"bizops/pkg/response"
	"bizops/pkg/validate"
)

// Controllers every controller the router mounts
type Controllers struct {
	Charge        *controller.ResourceController[model.Charge, dto.ScopeQuery, dto.ChargeReq]
	SalesTax      *controller.ResourceController[model.SalesTax, dto.ScopeQuery, dto.SalesTaxReq]
	UOM           *controller.ResourceController[model.UOM, dto.ScopeQuery, dto.UOMReq]
	Freight       *controller.ResourceController[model.Freight, dto.ActiveQuery, dto.FreightReq]
	Location      *controller.ResourceController[model.Location, dto.ActiveQuery, dto.LocationReq]
	Division      *controller.ResourceController[model.CostCodeDivision, dto.CorporationQuery, dto.CostCodeDivisionReq]
	CostCode      *controller.ResourceController[model.CostCodeConfiguration, dto.CostCodeConfigQuery, dto.CostCodeConfigurationReq]
	Project       *controller.ResourceController[model.Project, dto.CorporationQuery, dto.ProjectReq]
	ItemType      *controller.ResourceController[model.ItemType, dto.ItemTypeQuery, dto.ItemTypeReq]
	POInstruction *controller.ResourceController[model.POInstruction, dto.CorporationQuery, dto.POInstructionReq]
	Terms         *controller.ResourceController[model.TermsAndCondition, dto.CorporationQuery, dto.TermsAndConditionReq]

	Audit   *controller.AuditController
	Auth    *controller.AuthController
	Link    *controller.LinkController
	Session *controller.SessionController
}

// Options the router's infrastructure dependencies
type Options struct {
	DB          *gorm.DB
	Provider    auth.Provider
	CookieName  string
	CORSOrigins []string
	Limiter     *middleware.KeyedLimiter
	Logger      *zap.Logger
}

// SetupRouter builds the engine with every route registered.
func SetupRouter(ctl *Controllers, opts Options) *gin.Engine {
	validate.Setup()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.Recovery(opts.Logger),
		middleware.RequestLogger(opts.Logger),
		middleware.Metrics(),
		middleware.CORS(opts.CORSOrigins),
	)

	r.NoMethod(func(c *gin.Context) {
		response.Fail(c, apperr.New(http.StatusMethodNotAllowed, "Method not allowed"))
	})
	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, apperr.New(http.StatusNotFound, "Not found"))
	})

	// http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/healthz", controller.Health(opts.DB))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.Auth(opts.Provider, opts.CookieName)

	api := r.Group("/api")
	{
		// public
		authGroup := api.Group("/auth")
		{
			// POST /api/auth/forgot-password
			authGroup.POST("/forgot-password",
				middleware.RateLimit(opts.Limiter, middleware.ByClientIP, 5*time.Second),
				ctl.Auth.ForgotPassword,
			)
			// GET /api/auth/me
			authGroup.GET("/me", requireAuth, ctl.Auth.Me)
		}

		secured := api.Group("", requireAuth)
		{
			ctl.Charge.Register(secured.Group("/charges"))
			ctl.SalesTax.Register(secured.Group("/sales-taxes"))
			ctl.UOM.Register(secured.Group("/uoms"))
			ctl.Freight.Register(secured.Group("/freights"))
			ctl.Location.Register(secured.Group("/locations"))
			ctl.Division.Register(secured.Group("/cost-code-divisions"))
			ctl.CostCode.Register(secured.Group("/cost-code-configurations"))
			ctl.Project.Register(secured.Group("/projects"))
			ctl.ItemType.Register(secured.Group("/item-types"))
			ctl.POInstruction.Register(secured.Group("/po-instructions"))
			ctl.Terms.Register(secured.Group("/terms-and-conditions"))

			// GET /api/audit-logs?corporation_uuid=&entity_uuid=
			secured.GET("/audit-logs", ctl.Audit.List)
			// GET /api/print-links?path=
			secured.GET("/print-links", ctl.Link.Resolve)
			// GET /api/session/ws
			secured.GET("/session/ws", ctl.Session.Connect)
		}
	}

	return r
}
