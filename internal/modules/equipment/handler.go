package equipment

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
	equipment := rg.Group("/equipment")
	{
		equipment.GET("", h.List)
		equipment.POST("", h.Create)
		equipment.GET("/:id", h.Get)
		equipment.PUT("/:id", h.Update)
		equipment.DELETE("/:id", h.Delete)

		equipment.GET("/:id/units", h.ListUnits)
		equipment.POST("/:id/units", h.CreateUnit)
	}

	units := rg.Group("/equipment-units")
	{
		units.GET("/:id", h.GetUnit)
		units.PUT("/:id", h.UpdateUnit)
		units.DELETE("/:id", h.DeleteUnit)
	}
}

// List supports ?categoryId= and ?brandId=.
func (h *Handler) List(c *gin.Context) {
	var f repository.EquipmentFilter
	var err error
	if f.CategoryID, err = utils.QueryInt64(c, "categoryId"); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if f.BrandID, err = utils.QueryInt64(c, "brandId"); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.store.ListEquipment(c.Request.Context(), f)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}
	item, err := h.store.GetEquipment(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item := req.toEntity()
	if err := h.store.CreateEquipment(c.Request.Context(), item); err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}
	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, err := h.store.UpdateEquipment(c.Request.Context(), id, req.toPatch())
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}
	if err := h.store.DeleteEquipment(c.Request.Context(), id); err != nil {
		response.StoreError(c, err)
		return
	}
	response.NoContent(c)
}

// ListUnits supports ?available=true.
func (h *Handler) ListUnits(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}
	items, err := h.store.ListUnits(c.Request.Context(), id, utils.QueryBool(c, "available"))
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetUnit(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid unit ID")
		return
	}
	item, err := h.store.GetUnit(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) CreateUnit(c *gin.Context) {
	equipmentID, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}
	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, err := req.toEntity(equipmentID)
	if err != nil {
		response.ValidationError(c, err.Error(), map[string]string{"purchaseDate": "date"})
		return
	}
	if err := h.store.CreateUnit(c.Request.Context(), item); err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) UpdateUnit(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid unit ID")
		return
	}
	var req UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		response.ValidationError(c, err.Error(), map[string]string{"purchaseDate": "date"})
		return
	}
	item, err := h.store.UpdateUnit(c.Request.Context(), id, patch)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) DeleteUnit(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid unit ID")
		return
	}
	if err := h.store.DeleteUnit(c.Request.Context(), id); err != nil {
		response.StoreError(c, err)
		return
	}
	response.NoContent(c)
}
