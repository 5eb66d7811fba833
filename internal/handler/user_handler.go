package handler

import (
	"net/http"

	"contact_manager/internal/model"
	"contact_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles registration, login and the current user's profile
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[*model.UserResponse]{Data: resp})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginUserRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[*model.UserResponse]{Data: resp})
}

func (h *UserHandler) Current(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), user)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[*model.UserResponse]{Data: resp})
}

func (h *UserHandler) Update(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req model.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), user, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[*model.UserResponse]{Data: resp})
}

func (h *UserHandler) Logout(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.Logout(c.Request.Context(), user); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[bool]{Data: true})
}

// RegisterUserRoutes registers /users; profile routes sit behind authMW
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("", h.Register)
		users.POST("/login", h.Login)

		current := users.Group("/current", authMW)
		current.GET("", h.Current)
		current.PATCH("", h.Update)
		current.DELETE("", h.Logout)
	}
}
