package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizops/pkg/apperr"
)

// Envelope is the single JSON wrapper every /api route returns.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	StatusCode int         `json:"statusCode,omitempty"`
}

// OK writes {success: true, data}.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// OKMessage writes {success: true, data, message}.
func OKMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// Fail writes the failure envelope. Structured errors keep their status and
// message; everything else becomes 500 "Internal server error" and the cause
// is attached to the gin context for the request logger.
func Fail(c *gin.Context, err error) {
	appErr := apperr.From(err)
	if appErr.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(appErr.StatusCode, Envelope{
		Success:    false,
		Error:      appErr.StatusMessage,
		StatusCode: appErr.StatusCode,
	})
}
