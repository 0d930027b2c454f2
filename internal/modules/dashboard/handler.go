package dashboard

import (
	"net/http"

	"equiprent/internal/modules/rental"
	"equiprent/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.Stats)
		dashboard.GET("/equipment-availability", h.EquipmentAvailability)
		dashboard.GET("/overdue-rentals", h.OverdueRentals)
	}
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) EquipmentAvailability(c *gin.Context) {
	items, err := h.svc.EquipmentAvailability(c.Request.Context())
	if err != nil {
		response.StoreError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) OverdueRentals(c *gin.Context) {
	items, now, err := h.svc.OverdueRentals(c.Request.Context())
	if err != nil {
		response.StoreError(c, err)
		return
	}
	views := make([]rental.RentalView, 0, len(items))
	for _, r := range items {
		views = append(views, rental.NewRentalView(r, now))
	}
	response.Success(c, http.StatusOK, views)
}
