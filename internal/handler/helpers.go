package handler

import (
	"errors"
	"strconv"

	"contact_manager/internal/middleware"
	"contact_manager/internal/model"
	"contact_manager/internal/service"

	"github.com/gin-gonic/gin"
)

var errNumericParam = errors.New("validation failed (numeric string is expected)")

// getAuthUser returns the API user bound by the auth middleware
func getAuthUser(c *gin.Context) (*model.User, error) {
	user, ok := middleware.AuthUser[*model.User](c)
	if !ok || user == nil {
		return nil, service.ErrUnauthorized
	}
	return user, nil
}

// paramID parses a numeric path parameter; on failure it records a 400 and returns false
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		_ = c.Error(errNumericParam).SetType(gin.ErrorTypeBind)
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body into req; malformed JSON is recorded as a 400
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return false
	}
	return true
}
