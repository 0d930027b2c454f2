package maintenance

import (
	"equiprent/internal/domain"
	"equiprent/internal/pkg/utils"
	"equiprent/internal/repository"
)

type CreateMaintenanceRequest struct {
	EquipmentID     int64                    `json:"equipmentId" binding:"required,gt=0"`
	EquipmentUnitID *int64                   `json:"equipmentUnitId" binding:"omitempty,gt=0"`
	Type            string                   `json:"type" binding:"required,max=100"`
	Description     string                   `json:"description" binding:"required"`
	ScheduledDate   *string                  `json:"scheduledDate"`
	CompletedDate   *string                  `json:"completedDate"`
	Cost            *int64                   `json:"cost" binding:"omitempty,gte=0"`
	Notes           *string                  `json:"notes"`
	Status          domain.MaintenanceStatus `json:"status" binding:"omitempty,oneof=scheduled in-progress completed"`
}

// toEntity returns the offending json field name alongside a date error.
func (r CreateMaintenanceRequest) toEntity() (*domain.Maintenance, string, error) {
	scheduled, err := utils.ParseTimePtr(r.ScheduledDate)
	if err != nil {
		return nil, "scheduledDate", err
	}
	completed, err := utils.ParseTimePtr(r.CompletedDate)
	if err != nil {
		return nil, "completedDate", err
	}
	return &domain.Maintenance{
		EquipmentID:     r.EquipmentID,
		EquipmentUnitID: r.EquipmentUnitID,
		Type:            r.Type,
		Description:     r.Description,
		ScheduledDate:   scheduled,
		CompletedDate:   completed,
		Cost:            r.Cost,
		Notes:           r.Notes,
		Status:          r.Status,
	}, "", nil
}

type UpdateMaintenanceRequest struct {
	EquipmentID     *int64                    `json:"equipmentId" binding:"omitempty,gt=0"`
	EquipmentUnitID *int64                    `json:"equipmentUnitId" binding:"omitempty,gt=0"`
	Type            *string                   `json:"type" binding:"omitempty,min=1,max=100"`
	Description     *string                   `json:"description" binding:"omitempty,min=1"`
	ScheduledDate   *string                   `json:"scheduledDate"`
	CompletedDate   *string                   `json:"completedDate"`
	Cost            *int64                    `json:"cost" binding:"omitempty,gte=0"`
	Notes           *string                   `json:"notes"`
	Status          *domain.MaintenanceStatus `json:"status" binding:"omitempty,oneof=scheduled in-progress completed"`
}

func (r UpdateMaintenanceRequest) toPatch() (repository.MaintenancePatch, string, error) {
	scheduled, err := utils.ParseTimePtr(r.ScheduledDate)
	if err != nil {
		return repository.MaintenancePatch{}, "scheduledDate", err
	}
	completed, err := utils.ParseTimePtr(r.CompletedDate)
	if err != nil {
		return repository.MaintenancePatch{}, "completedDate", err
	}
	return repository.MaintenancePatch{
		EquipmentID:     r.EquipmentID,
		EquipmentUnitID: r.EquipmentUnitID,
		Type:            r.Type,
		Description:     r.Description,
		ScheduledDate:   scheduled,
		CompletedDate:   completed,
		Cost:            r.Cost,
		Notes:           r.Notes,
		Status:          r.Status,
	}, "", nil
}
