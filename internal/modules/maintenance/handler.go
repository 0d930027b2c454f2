package maintenance

import (
	"net/http"

	"equiprent/internal/pkg/response"
	"equiprent/internal/pkg/utils"
	"equiprent/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	maintenance := rg.Group("/maintenance")
	{
		maintenance.GET("", h.List)
		maintenance.POST("", h.Create)
		maintenance.GET("/:id", h.Get)
		maintenance.PUT("/:id", h.Update)
		maintenance.DELETE("/:id", h.Delete)
	}
}

// List supports ?equipmentId=, ?equipmentUnitId= and ?pending=true.
func (h *Handler) List(c *gin.Context) {
	f := repository.MaintenanceFilter{PendingOnly: utils.QueryBool(c, "pending")}
	var err error
	if f.EquipmentID, err = utils.QueryInt64(c, "equipmentId"); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if f.EquipmentUnitID, err = utils.QueryInt64(c, "equipmentUnitId"); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.store.ListMaintenance(c.Request.Context(), f)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid maintenance ID")
		return
	}
	item, err := h.store.GetMaintenance(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, field, err := req.toEntity()
	if err != nil {
		response.ValidationError(c, err.Error(), map[string]string{field: "date"})
		return
	}
	if err := h.store.CreateMaintenance(c.Request.Context(), item); err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid maintenance ID")
		return
	}
	var req UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	patch, field, err := req.toPatch()
	if err != nil {
		response.ValidationError(c, err.Error(), map[string]string{field: "date"})
		return
	}
	item, err := h.store.UpdateMaintenance(c.Request.Context(), id, patch)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid maintenance ID")
		return
	}
	if err := h.store.DeleteMaintenance(c.Request.Context(), id); err != nil {
		response.StoreError(c, err)
		return
	}
	response.NoContent(c)
}
