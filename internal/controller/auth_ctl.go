package controller

import (
	"github.com/gin-gonic/gin"

	"bizops/internal/api/dto"
	"bizops/internal/middleware"
	"bizops/internal/service"
	"bizops/pkg/apperr"
	"bizops/pkg/response"
	"bizops/pkg/validate"
)

type AuthController struct {
	authSvc *service.AuthService
}

func NewAuthController(authSvc *service.AuthService) *AuthController {
	return &AuthController{authSvc: authSvc}
}

// Me returns the authenticated caller
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/auth/me [get]
func (ctl *AuthController) Me(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		response.Fail(c, apperr.Unauthorized())
		return
	}
	response.OK(c, caller)
}

// ForgotPassword sends a password reset mail
// @Summary Request a password reset mail
// @Description One request per address per 60 seconds.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.ForgotPasswordReq true "email"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /api/auth/forgot-password [post]
func (ctl *AuthController) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, validate.Translate(err))
		return
	}

	if err := ctl.authSvc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		response.Fail(c, err)
		return
	}
	response.OKMessage(c, nil, "If the address is registered, a reset link has been sent")
}
