package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - the error body. "error" stays a plain string because the
// existing clients read it as text.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    ErrorCode   `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// GinErrorHandler - writes AppErrors to a gin context
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("Server error: %v", appErr.Unwrap())
	}

	resp := ErrorResponse{Error: appErr.Message, Code: appErr.Code}
	if h.Debug || appErr.HTTPCode < 500 {
		resp.Details = appErr.Details
	}
	c.AbortWithStatusJSON(appErr.HTTPCode, resp)
}

// HandleError - shortcut used by handlers and middleware
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() == gin.DebugMode}
	handler.HandleGinError(c, err)
}

// AsAppError - unwraps err down to an *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
