package handler

import (
	"net/http"
	"strconv"

	"contact_manager/internal/connection"
	"contact_manager/internal/middleware"
	"contact_manager/internal/model"
	"contact_manager/internal/service"
	"contact_manager/internal/utils"
	"contact_manager/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const nameCookie = "name"

// BasicsHandler serves the demo app: views, cookies, redirects and a role-guarded greeting
type BasicsHandler struct {
	service    service.SampleService
	connection connection.Connection
	cookies    *utils.CookieSigner
	logger     *zap.Logger
}

// NewBasicsHandler creates a new BasicsHandler
func NewBasicsHandler(s service.SampleService, conn connection.Connection, cookies *utils.CookieSigner, logger *zap.Logger) *BasicsHandler {
	return &BasicsHandler{service: s, connection: conn, cookies: cookies, logger: logger}
}

func (h *BasicsHandler) Current(c *gin.Context) {
	user, _ := middleware.AuthUser[*model.SampleUser](c)
	msg, err := h.service.Greet(user)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[string]{Data: msg})
}

func (h *BasicsHandler) Login(c *gin.Context) {
	var req model.SampleLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validation.Validate(req); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[string]{Data: "Hello " + req.Username})
}

func (h *BasicsHandler) Connection(c *gin.Context) {
	name := h.connection.Name()
	h.logger.Info("connection requested", zap.String("connection", name))
	c.String(http.StatusOK, name)
}

func (h *BasicsHandler) Create(c *gin.Context) {
	user, err := h.service.Create(c.Request.Context(), c.Query("first_name"), c.Query("last_name"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *BasicsHandler) Hello(c *gin.Context) {
	c.String(http.StatusOK, h.service.SayHello(c.Query("name")))
}

func (h *BasicsHandler) ViewHello(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Template Engine",
		"name":  c.Query("name"),
	})
}

func (h *BasicsHandler) SetCookie(c *gin.Context) {
	signed, err := h.cookies.Sign(nameCookie, c.Query("name"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.SetCookie(nameCookie, signed, 0, "/", "", false, true)
	c.String(http.StatusOK, "Success Set Cookie")
}

// GetCookie echoes the signed name cookie; a missing or forged cookie reads as empty
func (h *BasicsHandler) GetCookie(c *gin.Context) {
	raw, err := c.Cookie(nameCookie)
	if err != nil {
		c.String(http.StatusOK, "")
		return
	}
	name, err := h.cookies.Verify(nameCookie, raw)
	if err != nil {
		h.logger.Warn("rejected cookie", zap.String("cookie", nameCookie), zap.Error(err))
		c.String(http.StatusOK, "")
		return
	}
	c.String(http.StatusOK, name)
}

func (h *BasicsHandler) SampleResponse(c *gin.Context) {
	c.JSON(http.StatusOK, model.WebResponse[string]{Data: "Sample Response"})
}

func (h *BasicsHandler) Redirect(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, "/api/users/sample-response")
}

func (h *BasicsHandler) Post(c *gin.Context) {
	c.String(http.StatusOK, "POST")
}

func (h *BasicsHandler) Sample(c *gin.Context) {
	c.String(http.StatusOK, "Hello Go")
}

func (h *BasicsHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.String(http.StatusOK, "GET "+strconv.FormatInt(id, 10))
}

// RegisterBasicsRoutes registers the demo routes under /users
func (h *BasicsHandler) RegisterBasicsRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/current", middleware.StaffMiddleware(), h.Current)
		users.POST("/login", middleware.ResponseTime(), h.Login)
		users.GET("/connection", h.Connection)
		users.POST("/create", h.Create)
		users.GET("/hello", h.Hello)
		users.GET("/view/hello", h.ViewHello)
		users.GET("/set-cookie", h.SetCookie)
		users.GET("/get-cookie", h.GetCookie)
		users.GET("/sample-response", h.SampleResponse)
		users.GET("/redirect", h.Redirect)
		users.POST("", h.Post)
		users.GET("/sample", h.Sample)
		users.GET("/:id", h.GetByID)
	}
}
