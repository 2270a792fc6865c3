package handlers

import (
	"fmt"
	"strconv"

	"meu_delivery/internal/logger"
	"meu_delivery/internal/validator"
	"meu_delivery/pkg/apperrors"
	"meu_delivery/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// validationFailer is implemented by request DTOs whose clients expect a
// specific error message instead of the field map. vErr is nil when the body
// could not be decoded at all.
type validationFailer interface {
	ValidationFailure(vErr *validator.ValidationError) *apperrors.AppError
}

// GetDB returns the *gorm.DB set by DBMiddleware, bound to the request context.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db.WithContext(c.Request.Context())
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()
	failer, hasFailure := obj.(validationFailer)

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		if hasFailure {
			apperrors.HandleError(c, failer.ValidationFailure(nil))
			return false
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError("Corpo da requisição inválido."))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		vErr, ok := err.(*validator.ValidationError)
		if !ok {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
			return false
		}

		logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
		if hasFailure {
			apperrors.HandleError(c, failer.ValidationFailure(vErr).WithDetails(vErr.Errors))
			return false
		}
		apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if appErr.HTTPCode >= 500 {
			logger.CtxWithError(ctx, "Service failure", err, "path", c.Request.URL.Path)
		} else {
			logger.CtxWarn(ctx, "Service error",
				"error", appErr.Message,
				"code", appErr.Code,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// ParseParamUint reads a positive numeric path parameter. It writes notFound
// and returns false when the value is not a valid id.
func (h *BaseHandler) ParseParamUint(c *gin.Context, key string, notFound *apperrors.AppError) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil || value == 0 {
		logger.CtxWarn(c.Request.Context(), "Invalid path parameter", "key", key, "value", c.Param(key))
		apperrors.HandleError(c, notFound)
		return 0, false
	}
	return uint(value), true
}

// withGuards returns a fresh chain so route registrations never share a backing array.
func withGuards(guards []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, handler)
}
