package customer

import (
	"net/http"

	"equiprent/internal/pkg/response"
	"equiprent/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.POST("", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}

	contacts := rg.Group("/contacts")
	{
		contacts.GET("", h.ListContacts)
		contacts.POST("", h.CreateContact)
		contacts.GET("/:id", h.GetContact)
		contacts.PUT("/:id", h.UpdateContact)
		contacts.DELETE("/:id", h.DeleteContact)
	}
}

func (h *Handler) ListCustomers(c *gin.Context) {
	items, err := h.store.ListCustomers(c.Request.Context())
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}
	item, err := h.store.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item := req.toEntity()
	if err := h.store.CreateCustomer(c.Request.Context(), item); err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, err := h.store.UpdateCustomer(c.Request.Context(), id, req.toPatch())
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}
	if err := h.store.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.StoreError(c, err)
		return
	}
	response.NoContent(c)
}

// ListContacts supports ?customerId= to narrow to one customer.
func (h *Handler) ListContacts(c *gin.Context) {
	customerID, err := utils.QueryInt64(c, "customerId")
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.store.ListContacts(c.Request.Context(), customerID)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetContact(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid contact ID")
		return
	}
	item, err := h.store.GetContact(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item := req.toEntity()
	if err := h.store.CreateContact(c.Request.Context(), item); err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) UpdateContact(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid contact ID")
		return
	}
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, err := h.store.UpdateContact(c.Request.Context(), id, req.toPatch())
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) DeleteContact(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid contact ID")
		return
	}
	if err := h.store.DeleteContact(c.Request.Context(), id); err != nil {
		response.StoreError(c, err)
		return
	}
	response.NoContent(c)
}
