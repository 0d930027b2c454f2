package equipment

import (
	"encoding/json"
	"errors"

	"equiprent/internal/domain"
	"equiprent/internal/pkg/utils"
	"equiprent/internal/repository"
)

// Unit counters are owned by the store and deliberately absent here.
type CreateEquipmentRequest struct {
	Name       string                 `json:"name" binding:"required,max=255"`
	Model      *string                `json:"model"`
	BrandID    *int64                 `json:"brandId" binding:"omitempty,gt=0"`
	CategoryID *int64                 `json:"categoryId" binding:"omitempty,gt=0"`
	DailyRate  int64                  `json:"dailyRate" binding:"gte=0"`
	Status     domain.EquipmentStatus `json:"status" binding:"omitempty,oneof=available rented maintenance unavailable"`
	Notes      *string                `json:"notes"`
}

func (r CreateEquipmentRequest) toEntity() *domain.Equipment {
	return &domain.Equipment{
		Name:       r.Name,
		Model:      r.Model,
		BrandID:    r.BrandID,
		CategoryID: r.CategoryID,
		DailyRate:  r.DailyRate,
		Status:     r.Status,
		Notes:      r.Notes,
	}
}

type UpdateEquipmentRequest struct {
	Name       *string                 `json:"name" binding:"omitempty,min=1,max=255"`
	Model      *string                 `json:"model"`
	BrandID    nullableID              `json:"brandId"`
	CategoryID nullableID              `json:"categoryId"`
	DailyRate  *int64                  `json:"dailyRate" binding:"omitempty,gte=0"`
	Status     *domain.EquipmentStatus `json:"status" binding:"omitempty,oneof=available rented maintenance unavailable"`
	Notes      *string                 `json:"notes"`
}

func (r UpdateEquipmentRequest) toPatch() repository.EquipmentPatch {
	return repository.EquipmentPatch{
		Name:          r.Name,
		Model:         r.Model,
		BrandID:       r.BrandID.Value,
		CategoryID:    r.CategoryID.Value,
		ClearBrand:    r.BrandID.null(),
		ClearCategory: r.CategoryID.null(),
		DailyRate:     r.DailyRate,
		Status:        r.Status,
		Notes:         r.Notes,
	}
}

// nullableID tells an explicit null (unlink) apart from an absent field.
type nullableID struct {
	Set   bool
	Value *int64
}

func (n *nullableID) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v <= 0 {
		return errors.New("id must be positive")
	}
	n.Value = &v
	return nil
}

func (n nullableID) null() bool {
	return n.Set && n.Value == nil
}

type CreateUnitRequest struct {
	SerialNumber  string                 `json:"serialNumber" binding:"required,max=100"`
	PurchaseDate  *string                `json:"purchaseDate"`
	PurchasePrice *int64                 `json:"purchasePrice" binding:"omitempty,gte=0"`
	Status        domain.EquipmentStatus `json:"status" binding:"omitempty,oneof=available rented maintenance unavailable"`
	Condition     *string                `json:"condition"`
	Notes         *string                `json:"notes"`
}

func (r CreateUnitRequest) toEntity(equipmentID int64) (*domain.EquipmentUnit, error) {
	purchased, err := utils.ParseTimePtr(r.PurchaseDate)
	if err != nil {
		return nil, err
	}
	return &domain.EquipmentUnit{
		EquipmentID:   equipmentID,
		SerialNumber:  r.SerialNumber,
		PurchaseDate:  purchased,
		PurchasePrice: r.PurchasePrice,
		Status:        r.Status,
		Condition:     r.Condition,
		Notes:         r.Notes,
	}, nil
}

type UpdateUnitRequest struct {
	EquipmentID   *int64                  `json:"equipmentId" binding:"omitempty,gt=0"`
	SerialNumber  *string                 `json:"serialNumber" binding:"omitempty,min=1,max=100"`
	PurchaseDate  *string                 `json:"purchaseDate"`
	PurchasePrice *int64                  `json:"purchasePrice" binding:"omitempty,gte=0"`
	Status        *domain.EquipmentStatus `json:"status" binding:"omitempty,oneof=available rented maintenance unavailable"`
	Condition     *string                 `json:"condition"`
	Notes         *string                 `json:"notes"`
}

func (r UpdateUnitRequest) toPatch() (repository.UnitPatch, error) {
	purchased, err := utils.ParseTimePtr(r.PurchaseDate)
	if err != nil {
		return repository.UnitPatch{}, err
	}
	return repository.UnitPatch{
		EquipmentID:   r.EquipmentID,
		SerialNumber:  r.SerialNumber,
		PurchaseDate:  purchased,
		PurchasePrice: r.PurchasePrice,
		Status:        r.Status,
		Condition:     r.Condition,
		Notes:         r.Notes,
	}, nil
}
