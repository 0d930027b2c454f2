package maintenance

import (
	"context"

	"equiprent/internal/domain"
	"equiprent/internal/repository"
)

type Store interface {
	ListMaintenance(ctx context.Context, f repository.MaintenanceFilter) ([]domain.Maintenance, error)
	GetMaintenance(ctx context.Context, id int64) (*domain.Maintenance, error)
	CreateMaintenance(ctx context.Context, m *domain.Maintenance) error
	UpdateMaintenance(ctx context.Context, id int64, p repository.MaintenancePatch) (*domain.Maintenance, error)
	DeleteMaintenance(ctx context.Context, id int64) error
}
