package equipment

import (
	"context"

	"equiprent/internal/domain"
	"equiprent/internal/repository"
)

type Store interface {
	ListEquipment(ctx context.Context, f repository.EquipmentFilter) ([]domain.Equipment, error)
	GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error)
	CreateEquipment(ctx context.Context, eq *domain.Equipment) error
	UpdateEquipment(ctx context.Context, id int64, p repository.EquipmentPatch) (*domain.Equipment, error)
	DeleteEquipment(ctx context.Context, id int64) error

	ListUnits(ctx context.Context, equipmentID int64, availableOnly bool) ([]domain.EquipmentUnit, error)
	GetUnit(ctx context.Context, id int64) (*domain.EquipmentUnit, error)
	CreateUnit(ctx context.Context, u *domain.EquipmentUnit) error
	UpdateUnit(ctx context.Context, id int64, p repository.UnitPatch) (*domain.EquipmentUnit, error)
	DeleteUnit(ctx context.Context, id int64) error
}
