package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contact_manager/internal/middleware"
	"contact_manager/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const testToken = "test"

var testUser = &model.User{ID: 1, Username: "test", Name: "test", Role: model.RoleUser}

// newAPIRouter wires the same middleware chain as cmd/server with a single known token
func newAPIRouter(register func(api *gin.RouterGroup, authMW gin.HandlerFunc)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop()))
	r.Use(middleware.Authenticate[*model.User](func(_ context.Context, token string) (*model.User, error) {
		if token == testToken {
			return testUser, nil
		}
		return nil, nil
	}, zap.NewNop()))
	register(r.Group("/api"), middleware.RequireAuth())
	return r
}

func do(t *testing.T, r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
