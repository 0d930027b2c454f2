package repository

import (
	"context"

	"equiprent/internal/domain"

	"gorm.io/gorm"
)

// CatalogPatch updates a Brand or a Category; both carry the same fields.
type CatalogPatch struct {
	Name        *string
	Description *string
}

func (s *Store) ListBrands(ctx context.Context) (out []domain.Brand, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		out, err = listAll[domain.Brand](db)
		return err
	})
	return out, err
}

func (s *Store) GetBrand(ctx context.Context, id int64) (out *domain.Brand, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		out, err = getByID[domain.Brand](db, id)
		return err
	})
	return out, err
}

func (s *Store) CreateBrand(ctx context.Context, b *domain.Brand) error {
	return s.write(ctx, func(tx *gorm.DB) error {
		b.ID = 0
		return tx.Create(b).Error
	})
}

func (s *Store) UpdateBrand(ctx context.Context, id int64, p CatalogPatch) (out *domain.Brand, err error) {
	err = s.write(ctx, func(tx *gorm.DB) error {
		out, err = getByID[domain.Brand](tx, id)
		if err != nil {
			return err
		}
		setIf(&out.Name, p.Name)
		setPtrIf(&out.Description, p.Description)
		return tx.Save(out).Error
	})
	return out, err
}

func (s *Store) DeleteBrand(ctx context.Context, id int64) error {
	return s.write(ctx, func(tx *gorm.DB) error {
		if _, err := getByID[domain.Brand](tx, id); err != nil {
			return err
		}
		if err := ensureUnused(tx, "brand", &domain.Equipment{}, "equipment", "brand_id = ?", id); err != nil {
			return err
		}
		return deleteByID[domain.Brand](tx, id)
	})
}

func (s *Store) ListCategories(ctx context.Context) (out []domain.Category, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		out, err = listAll[domain.Category](db)
		return err
	})
	return out, err
}

func (s *Store) GetCategory(ctx context.Context, id int64) (out *domain.Category, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		out, err = getByID[domain.Category](db, id)
		return err
	})
	return out, err
}

func (s *Store) CreateCategory(ctx context.Context, c *domain.Category) error {
	return s.write(ctx, func(tx *gorm.DB) error {
		c.ID = 0
		return tx.Create(c).Error
	})
}

func (s *Store) UpdateCategory(ctx context.Context, id int64, p CatalogPatch) (out *domain.Category, err error) {
	err = s.write(ctx, func(tx *gorm.DB) error {
		out, err = getByID[domain.Category](tx, id)
		if err != nil {
			return err
		}
		setIf(&out.Name, p.Name)
		setPtrIf(&out.Description, p.Description)
		return tx.Save(out).Error
	})
	return out, err
}

// DeleteCategory is rejected while any equipment is filed under the category.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	return s.write(ctx, func(tx *gorm.DB) error {
		if _, err := getByID[domain.Category](tx, id); err != nil {
			return err
		}
		if err := ensureUnused(tx, "category", &domain.Equipment{}, "equipment", "category_id = ?", id); err != nil {
			return err
		}
		return deleteByID[domain.Category](tx, id)
	})
}
