package repository

import (
	"context"
	"fmt"
	"strings"

	"equiprent/internal/domain"

	"gorm.io/gorm"
)

type EquipmentFilter struct {
	CategoryID *int64
	BrandID    *int64
}

type EquipmentPatch struct {
	Name       *string
	Model      *string
	BrandID    *int64
	CategoryID *int64
	// ClearBrand and ClearCategory unlink the model; a nil pointer alone
	// means "leave as is".
	ClearBrand    bool
	ClearCategory bool
	DailyRate     *int64
	Status        *domain.EquipmentStatus
	Notes         *string
}

func (s *Store) ListEquipment(ctx context.Context, f EquipmentFilter) (out []domain.Equipment, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		if f.CategoryID != nil {
			db = db.Where("category_id = ?", *f.CategoryID)
		}
		if f.BrandID != nil {
			db = db.Where("brand_id = ?", *f.BrandID)
		}
		out, err = listAll[domain.Equipment](db)
		return err
	})
	return out, err
}

func (s *Store) GetEquipment(ctx context.Context, id int64) (out *domain.Equipment, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		out, err = getByID[domain.Equipment](db, id)
		return err
	})
	return out, err
}

// CreateEquipment registers a model. Status may only start as available or
// unavailable; unit counters always start at zero.
func (s *Store) CreateEquipment(ctx context.Context, eq *domain.Equipment) error {
	if strings.TrimSpace(eq.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if eq.Status == "" {
		eq.Status = domain.EquipmentAvailable
	}
	if err := checkManualStatus(eq.Status); err != nil {
		return err
	}
	if eq.DailyRate < 0 {
		return fmt.Errorf("%w: dailyRate must not be negative", ErrValidation)
	}

	return s.write(ctx, func(tx *gorm.DB) error {
		if err := checkCatalogRefs(tx, eq.CategoryID, eq.BrandID); err != nil {
			return err
		}
		eq.ID = 0
		eq.TotalUnits = 0
		eq.AvailableUnits = 0
		return tx.Create(eq).Error
	})
}

// UpdateEquipment merges p. Setting status to unavailable is an
// administrative override; setting it back to available clears the override
// and lets reconciliation derive the real status.
func (s *Store) UpdateEquipment(ctx context.Context, id int64, p EquipmentPatch) (out *domain.Equipment, err error) {
	if p.Status != nil {
		if err := checkManualStatus(*p.Status); err != nil {
			return nil, err
		}
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if p.DailyRate != nil && *p.DailyRate < 0 {
		return nil, fmt.Errorf("%w: dailyRate must not be negative", ErrValidation)
	}
	if (p.ClearBrand && p.BrandID != nil) || (p.ClearCategory && p.CategoryID != nil) {
		return nil, fmt.Errorf("%w: a link cannot be set and cleared at once", ErrValidation)
	}

	err = s.write(ctx, func(tx *gorm.DB) error {
		eq, err := getByID[domain.Equipment](tx, id)
		if err != nil {
			return err
		}
		if err := checkCatalogRefs(tx, p.CategoryID, p.BrandID); err != nil {
			return err
		}

		prev := eq.Status
		setIf(&eq.Name, p.Name)
		setPtrIf(&eq.Model, p.Model)
		setPtrIf(&eq.BrandID, p.BrandID)
		setPtrIf(&eq.CategoryID, p.CategoryID)
		if p.ClearBrand {
			eq.BrandID = nil
		}
		if p.ClearCategory {
			eq.CategoryID = nil
		}
		setIf(&eq.DailyRate, p.DailyRate)
		setIf(&eq.Status, p.Status)
		setPtrIf(&eq.Notes, p.Notes)
		if err := tx.Save(eq).Error; err != nil {
			return err
		}

		if p.Status != nil && *p.Status == domain.EquipmentAvailable {
			if err := s.reconcileEquipment(tx, id); err != nil {
				return err
			}
		} else if prev != eq.Status {
			s.emit(EventEquipmentStatus, id, map[string]any{"from": prev, "to": eq.Status})
		}

		out, err = getByID[domain.Equipment](tx, id)
		return err
	})
	return out, err
}

// DeleteEquipment is rejected while units, rentals or maintenance records
// still reference the model.
func (s *Store) DeleteEquipment(ctx context.Context, id int64) error {
	return s.write(ctx, func(tx *gorm.DB) error {
		if _, err := getByID[domain.Equipment](tx, id); err != nil {
			return err
		}
		if err := ensureUnused(tx, "equipment", &domain.EquipmentUnit{}, "units", "equipment_id = ?", id); err != nil {
			return err
		}
		if err := ensureUnused(tx, "equipment", &domain.Rental{}, "rentals", "equipment_id = ?", id); err != nil {
			return err
		}
		if err := ensureUnused(tx, "equipment", &domain.Maintenance{}, "maintenance records", "equipment_id = ?", id); err != nil {
			return err
		}
		return deleteByID[domain.Equipment](tx, id)
	})
}

// checkManualStatus allows only the statuses an operator may set by hand.
func checkManualStatus(st domain.EquipmentStatus) error {
	switch st {
	case domain.EquipmentAvailable, domain.EquipmentUnavailable:
		return nil
	case domain.EquipmentRented, domain.EquipmentMaintenance:
		return fmt.Errorf("%w: status %q is derived from rentals and maintenance", ErrValidation, st)
	default:
		return fmt.Errorf("%w: unknown status %q", ErrValidation, st)
	}
}

func checkCatalogRefs(tx *gorm.DB, categoryID, brandID *int64) error {
	if categoryID != nil {
		if _, err := requireRef[domain.Category](tx, "category", *categoryID); err != nil {
			return err
		}
	}
	if brandID != nil {
		if _, err := requireRef[domain.Brand](tx, "brand", *brandID); err != nil {
			return err
		}
	}
	return nil
}
