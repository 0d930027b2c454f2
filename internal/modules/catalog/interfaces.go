package catalog

import (
	"context"

	"equiprent/internal/domain"
	"equiprent/internal/repository"
)

type Store interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	GetBrand(ctx context.Context, id int64) (*domain.Brand, error)
	CreateBrand(ctx context.Context, b *domain.Brand) error
	UpdateBrand(ctx context.Context, id int64, p repository.CatalogPatch) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	UpdateCategory(ctx context.Context, id int64, p repository.CatalogPatch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
