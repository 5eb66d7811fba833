package handler

import (
	"net/http"

	"contact_manager/internal/model"
	"contact_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// AddressHandler handles addresses nested under /contacts/:contactId
type AddressHandler struct {
	service service.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(s service.AddressService) *AddressHandler {
	return &AddressHandler{service: s}
}

// addressRef binds both path ids through their uri tags
func addressRef(c *gin.Context) (model.AddressRef, bool) {
	var ref model.AddressRef
	if err := c.ShouldBindUri(&ref); err != nil {
		_ = c.Error(errNumericParam).SetType(gin.ErrorTypeBind)
		return model.AddressRef{}, false
	}
	return ref, true
}

func (h *AddressHandler) Create(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	contactID, ok := paramID(c, "contactId")
	if !ok {
		return
	}

	var req model.CreateAddressRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ContactID = contactID

	resp, err := h.service.Create(c.Request.Context(), user, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[*model.AddressResponse]{Data: resp})
}

func (h *AddressHandler) Get(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ref, ok := addressRef(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), user, ref)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[*model.AddressResponse]{Data: resp})
}

func (h *AddressHandler) Update(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ref, ok := addressRef(c)
	if !ok {
		return
	}

	var req model.UpdateAddressRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ContactID = ref.ContactID
	req.ID = ref.AddressID

	resp, err := h.service.Update(c.Request.Context(), user, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[*model.AddressResponse]{Data: resp})
}

func (h *AddressHandler) Remove(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ref, ok := addressRef(c)
	if !ok {
		return
	}

	if _, err := h.service.Remove(c.Request.Context(), user, ref); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[bool]{Data: true})
}

func (h *AddressHandler) List(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	contactID, ok := paramID(c, "contactId")
	if !ok {
		return
	}

	data, err := h.service.List(c.Request.Context(), user, contactID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.WebResponse[[]model.AddressResponse]{Data: data})
}

// RegisterAddressRoutes registers /contacts/:contactId/addresses behind authMW
func (h *AddressHandler) RegisterAddressRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	addresses := rg.Group("/contacts/:contactId/addresses", authMW)
	{
		addresses.POST("", h.Create)
		addresses.GET("", h.List)
		addresses.GET("/:addressId", h.Get)
		addresses.PUT("/:addressId", h.Update)
		addresses.DELETE("/:addressId", h.Remove)
	}
}
