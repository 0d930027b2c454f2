package rental

import (
	"context"

	"equiprent/internal/domain"
	"equiprent/internal/repository"
)

type Store interface {
	ListRentals(ctx context.Context, f repository.RentalFilter) ([]domain.Rental, error)
	GetRental(ctx context.Context, id int64) (*domain.Rental, error)
	CreateRental(ctx context.Context, r *domain.Rental) error
	UpdateRental(ctx context.Context, id int64, p repository.RentalPatch) (*domain.Rental, error)
	DeleteRental(ctx context.Context, id int64) error
}
