package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"equiprent/internal/domain"

	"gorm.io/gorm"
)

type UnitPatch struct {
	EquipmentID   *int64
	SerialNumber  *string
	PurchaseDate  *time.Time
	PurchasePrice *int64
	Status        *domain.EquipmentStatus
	Condition     *string
	Notes         *string
}

// ListUnits returns the units of an equipment model, optionally only the
// available ones.
func (s *Store) ListUnits(ctx context.Context, equipmentID int64, availableOnly bool) (out []domain.EquipmentUnit, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		if _, err := getByID[domain.Equipment](db, equipmentID); err != nil {
			return err
		}
		q := db.Where("equipment_id = ?", equipmentID)
		if availableOnly {
			q = q.Where("status = ?", domain.EquipmentAvailable)
		}
		out, err = listAll[domain.EquipmentUnit](q)
		return err
	})
	return out, err
}

func (s *Store) GetUnit(ctx context.Context, id int64) (out *domain.EquipmentUnit, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		out, err = getByID[domain.EquipmentUnit](db, id)
		return err
	})
	return out, err
}

// CreateUnit adds a unit and bumps totalUnits, plus availableUnits when the
// unit starts out available.
func (s *Store) CreateUnit(ctx context.Context, u *domain.EquipmentUnit) error {
	if strings.TrimSpace(u.SerialNumber) == "" {
		return fmt.Errorf("%w: serialNumber is required", ErrValidation)
	}
	if u.Status == "" {
		u.Status = domain.EquipmentAvailable
	}
	if err := checkUnitStatus(u.Status); err != nil {
		return err
	}

	return s.write(ctx, func(tx *gorm.DB) error {
		if _, err := requireRef[domain.Equipment](tx, "equipment", u.EquipmentID); err != nil {
			return err
		}
		u.ID = 0
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		avail := 0
		if u.Status == domain.EquipmentAvailable {
			avail = 1
		}
		return adjustUnitCounters(tx, u.EquipmentID, 1, avail)
	})
}

func (s *Store) UpdateUnit(ctx context.Context, id int64, p UnitPatch) (out *domain.EquipmentUnit, err error) {
	if p.Status != nil {
		if err := checkUnitStatus(*p.Status); err != nil {
			return nil, err
		}
	}
	if p.SerialNumber != nil && strings.TrimSpace(*p.SerialNumber) == "" {
		return nil, fmt.Errorf("%w: serialNumber must not be empty", ErrValidation)
	}

	err = s.write(ctx, func(tx *gorm.DB) error {
		unit, err := getByID[domain.EquipmentUnit](tx, id)
		if err != nil {
			return err
		}
		if p.EquipmentID != nil && *p.EquipmentID != unit.EquipmentID {
			return fmt.Errorf("%w: a unit cannot move to another equipment model", ErrValidation)
		}

		setIf(&unit.SerialNumber, p.SerialNumber)
		setPtrIf(&unit.PurchaseDate, p.PurchaseDate)
		setPtrIf(&unit.PurchasePrice, p.PurchasePrice)
		setPtrIf(&unit.Condition, p.Condition)
		setPtrIf(&unit.Notes, p.Notes)
		if err := tx.Save(unit).Error; err != nil {
			return err
		}

		if p.Status != nil && *p.Status != unit.Status {
			if err := ensureNoActiveRental(tx, unit.ID); err != nil {
				return err
			}
			next := *p.Status
			// Back to available clears a manual override; pending
			// maintenance still holds the unit.
			if next == domain.EquipmentAvailable {
				if next, err = deriveUnitStatus(tx, unit.ID); err != nil {
					return err
				}
			}
			if err := s.setUnitStatus(tx, unit, next); err != nil {
				return err
			}
		}
		out = unit
		return nil
	})
	return out, err
}

// DeleteUnit removes a unit that no rental or maintenance record references
// and takes it off the counters.
func (s *Store) DeleteUnit(ctx context.Context, id int64) error {
	return s.write(ctx, func(tx *gorm.DB) error {
		unit, err := getByID[domain.EquipmentUnit](tx, id)
		if err != nil {
			return err
		}
		if err := ensureNoActiveRental(tx, unit.ID); err != nil {
			return err
		}
		if err := ensureUnused(tx, "unit", &domain.Rental{}, "rentals", "equipment_unit_id = ?", id); err != nil {
			return err
		}
		if err := ensureUnused(tx, "unit", &domain.Maintenance{}, "maintenance records", "equipment_unit_id = ?", id); err != nil {
			return err
		}
		if err := deleteByID[domain.EquipmentUnit](tx, id); err != nil {
			return err
		}
		avail := 0
		if unit.Status == domain.EquipmentAvailable {
			avail = -1
		}
		return adjustUnitCounters(tx, unit.EquipmentID, -1, avail)
	})
}

// checkUnitStatus rejects "rented"; only a rental puts a unit in that state.
func checkUnitStatus(st domain.EquipmentStatus) error {
	if !st.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, st)
	}
	if st == domain.EquipmentRented {
		return fmt.Errorf("%w: units become rented only through a rental", ErrValidation)
	}
	return nil
}

func ensureNoActiveRental(tx *gorm.DB, unitID int64) error {
	n, err := count(tx, &domain.Rental{}, "equipment_unit_id = ? AND status = ?", unitID, domain.RentalActive)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: unit %d is out on an active rental", ErrConflict, unitID)
	}
	return nil
}
