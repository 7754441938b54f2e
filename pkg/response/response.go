package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/skillradar/skillradar/pkg/errors"
)

// ErrorBody is the JSON shape written for every failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes the payload as-is with the provided status code.
// Resource payloads are returned flat rather than wrapped in an envelope so the
// wire shapes stay stable for existing API consumers.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message writes a simple {message} payload.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Error writes a JSON error response derived from an AppError.
func Error(c *gin.Context, err error) {
	if err == nil {
		err = appErrors.ErrInternalServer
	}

	appErr := appErrors.FromError(err)
	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	c.JSON(status, ErrorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}
