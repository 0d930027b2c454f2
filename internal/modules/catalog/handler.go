package catalog

import (
	"net/http"

	"equiprent/internal/domain"
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
	brands := rg.Group("/brands")
	{
		brands.GET("", h.ListBrands)
		brands.POST("", h.CreateBrand)
		brands.GET("/:id", h.GetBrand)
		brands.PUT("/:id", h.UpdateBrand)
		brands.DELETE("/:id", h.DeleteBrand)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.CreateCategory)
		categories.GET("/:id", h.GetCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

func (h *Handler) ListBrands(c *gin.Context) {
	items, err := h.store.ListBrands(c.Request.Context())
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetBrand(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid brand ID")
		return
	}
	item, err := h.store.GetBrand(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) CreateBrand(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item := &domain.Brand{Name: req.Name, Description: req.Description}
	if err := h.store.CreateBrand(c.Request.Context(), item); err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) UpdateBrand(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid brand ID")
		return
	}
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, err := h.store.UpdateBrand(c.Request.Context(), id, req.toPatch())
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) DeleteBrand(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid brand ID")
		return
	}
	if err := h.store.DeleteBrand(c.Request.Context(), id); err != nil {
		response.StoreError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) ListCategories(c *gin.Context) {
	items, err := h.store.ListCategories(c.Request.Context())
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid category ID")
		return
	}
	item, err := h.store.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item := &domain.Category{Name: req.Name, Description: req.Description}
	if err := h.store.CreateCategory(c.Request.Context(), item); err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid category ID")
		return
	}
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, err := h.store.UpdateCategory(c.Request.Context(), id, req.toPatch())
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid category ID")
		return
	}
	if err := h.store.DeleteCategory(c.Request.Context(), id); err != nil {
		response.StoreError(c, err)
		return
	}
	response.NoContent(c)
}
