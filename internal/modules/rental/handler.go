package rental

import (
	"net/http"
	"time"

	"equiprent/internal/pkg/response"
	"equiprent/internal/pkg/utils"
	"equiprent/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store Store
	now   func() time.Time
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store, now: time.Now}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rentals := rg.Group("/rentals")
	{
		rentals.GET("", h.List)
		rentals.POST("", h.Create)
		rentals.GET("/:id", h.Get)
		rentals.PUT("/:id", h.Update)
		rentals.DELETE("/:id", h.Delete)
	}
}

// List supports ?customerId=, ?equipmentId=, ?equipmentUnitId=, ?active=true
// and ?overdue=true.
func (h *Handler) List(c *gin.Context) {
	f := repository.RentalFilter{
		ActiveOnly:  utils.QueryBool(c, "active"),
		OverdueOnly: utils.QueryBool(c, "overdue"),
	}
	var err error
	if f.CustomerID, err = utils.QueryInt64(c, "customerId"); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if f.EquipmentID, err = utils.QueryInt64(c, "equipmentId"); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if f.EquipmentUnitID, err = utils.QueryInt64(c, "equipmentUnitId"); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.store.ListRentals(c.Request.Context(), f)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, newRentalViews(items, h.now()))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid rental ID")
		return
	}
	item, err := h.store.GetRental(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, NewRentalView(*item, h.now()))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, field, err := req.toEntity()
	if err != nil {
		response.ValidationError(c, err.Error(), map[string]string{field: "date"})
		return
	}
	if err := h.store.CreateRental(c.Request.Context(), item); err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, NewRentalView(*item, h.now()))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid rental ID")
		return
	}
	var req UpdateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	patch, field, err := req.toPatch()
	if err != nil {
		response.ValidationError(c, err.Error(), map[string]string{field: "date"})
		return
	}
	item, err := h.store.UpdateRental(c.Request.Context(), id, patch)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, NewRentalView(*item, h.now()))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid rental ID")
		return
	}
	if err := h.store.DeleteRental(c.Request.Context(), id); err != nil {
		response.StoreError(c, err)
		return
	}
	response.NoContent(c)
}
