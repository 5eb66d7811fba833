package middleware

import (
	"errors"
	"net/http"

	"contact_manager/internal/model"
	"contact_manager/internal/service"
	"contact_manager/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler turns the last error a handler attached with c.Error into the
// {"errors": ...} envelope. Anything it does not recognise becomes a logged 500.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		status, body := classify(last)
		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(last.Err))
		}
		c.AbortWithStatusJSON(status, model.ErrorResponse{Errors: body})
	}
}

// sentinels maps domain errors to their status; the client sees only the sentinel's own message
var sentinels = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrUsernameTaken, http.StatusBadRequest, service.ErrUsernameTaken.Error()},
	{service.ErrFirstNameRequired, http.StatusBadRequest, service.ErrFirstNameRequired.Error()},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, service.ErrInvalidCredentials.Error()},
	{service.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{service.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{service.ErrContactNotFound, http.StatusNotFound, service.ErrContactNotFound.Error()},
	{service.ErrAddressNotFound, http.StatusNotFound, service.ErrAddressNotFound.Error()},
}

func classify(e *gin.Error) (int, any) {
	err := e.Err

	var verr *validation.Error
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Fields
	}
	if e.IsType(gin.ErrorTypeBind) {
		return http.StatusBadRequest, err.Error()
	}
	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return s.status, s.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}
