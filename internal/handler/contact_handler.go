package handler

import (
	"net/http"

	"contact_manager/internal/model"
	"contact_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles the authenticated user's contacts
type ContactHandler struct {
	service service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{service: s}
}

func (h *ContactHandler) Create(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req model.CreateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), user, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[*model.ContactResponse]{Data: resp})
}

func (h *ContactHandler) Get(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	contactID, ok := paramID(c, "contactId")
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), user, contactID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[*model.ContactResponse]{Data: resp})
}

func (h *ContactHandler) Update(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	contactID, ok := paramID(c, "contactId")
	if !ok {
		return
	}

	var req model.UpdateContactRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = contactID

	resp, err := h.service.Update(c.Request.Context(), user, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[*model.ContactResponse]{Data: resp})
}

func (h *ContactHandler) Remove(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	contactID, ok := paramID(c, "contactId")
	if !ok {
		return
	}

	if _, err := h.service.Remove(c.Request.Context(), user, contactID); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[bool]{Data: true})
}

// Search reads name, email, phone, page and size from the query string
func (h *ContactHandler) Search(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req model.SearchContactRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	data, paging, err := h.service.Search(c.Request.Context(), user, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[[]model.ContactResponse]{Data: data, Paging: paging})
}

// RegisterContactRoutes registers /contacts, every route behind authMW
func (h *ContactHandler) RegisterContactRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	contacts := rg.Group("/contacts", authMW)
	{
		contacts.POST("", h.Create)
		contacts.GET("", h.Search)
		contacts.GET("/:contactId", h.Get)
		contacts.PUT("/:contactId", h.Update)
		contacts.DELETE("/:contactId", h.Remove)
	}
}
