package repository

import (
	"context"
	"fmt"
	"time"

	"equiprent/internal/domain"

	"gorm.io/gorm"
)

type RentalFilter struct {
	CustomerID      *int64
	EquipmentID     *int64
	EquipmentUnitID *int64
	ActiveOnly      bool
	// OverdueOnly keeps active rentals whose end date is before now.
	OverdueOnly bool
}

type RentalPatch struct {
	CustomerID      *int64
	EquipmentID     *int64
	EquipmentUnitID *int64
	StartDate       *time.Time
	EndDate         *time.Time
	ReturnDate      *time.Time
	DailyRate       *int64
	Status          *domain.RentalStatus
	Notes           *string
}

func (s *Store) ListRentals(ctx context.Context, f RentalFilter) (out []domain.Rental, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		if f.CustomerID != nil {
			db = db.Where("customer_id = ?", *f.CustomerID)
		}
		if f.EquipmentID != nil {
			db = db.Where("equipment_id = ?", *f.EquipmentID)
		}
		if f.EquipmentUnitID != nil {
			db = db.Where("equipment_unit_id = ?", *f.EquipmentUnitID)
		}
		if f.ActiveOnly || f.OverdueOnly {
			db = db.Where("status = ?", domain.RentalActive)
		}
		out, err = listAll[domain.Rental](db)
		return err
	})
	if err != nil || !f.OverdueOnly {
		return out, err
	}

	// Overdue is compared in Go: stored timestamps may carry different zones.
	now := s.now()
	overdue := make([]domain.Rental, 0, len(out))
	for i := range out {
		if out[i].IsOverdue(now) {
			overdue = append(overdue, out[i])
		}
	}
	return overdue, nil
}

func (s *Store) GetRental(ctx context.Context, id int64) (out *domain.Rental, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		out, err = getByID[domain.Rental](db, id)
		return err
	})
	return out, err
}

// CreateRental books equipment for a customer. An active rental is refused
// when the equipment already has one, or is rented or unavailable, or when
// the named unit is not available. Nothing is written on refusal.
func (s *Store) CreateRental(ctx context.Context, r *domain.Rental) error {
	if r.Status == "" {
		r.Status = domain.RentalActive
	}
	if err := checkStoredRentalStatus(r.Status); err != nil {
		return err
	}
	if err := checkRentalDates(r.StartDate, r.EndDate); err != nil {
		return err
	}
	if err := checkReturnDate(r.StartDate, r.ReturnDate); err != nil {
		return err
	}
	if r.Status == domain.RentalActive && r.ReturnDate != nil {
		return fmt.Errorf("%w: returnDate is only set when a rental is completed", ErrValidation)
	}
	if r.DailyRate != nil && *r.DailyRate < 0 {
		return fmt.Errorf("%w: dailyRate must not be negative", ErrValidation)
	}

	return s.write(ctx, func(tx *gorm.DB) error {
		if _, err := requireRef[domain.Customer](tx, "customer", r.CustomerID); err != nil {
			return err
		}
		if err := checkEquipmentRefs(tx, r.EquipmentID, r.EquipmentUnitID); err != nil {
			return err
		}
		eq, err := getByID[domain.Equipment](tx, r.EquipmentID)
		if err != nil {
			return err
		}

		if r.Status == domain.RentalActive {
			if err := checkRentable(tx, eq, r.EquipmentUnitID); err != nil {
				return err
			}
		} else if r.ReturnDate == nil {
			ret := r.EndDate
			r.ReturnDate = &ret
		}
		if r.DailyRate == nil {
			rate := eq.DailyRate
			r.DailyRate = &rate
		}

		r.ID = 0
		if err := tx.Create(r).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: equipment %d already has an active rental", ErrConflict, r.EquipmentID)
			}
			return err
		}
		if err := s.reconcileEquipment(tx, r.EquipmentID); err != nil {
			return err
		}
		if err := s.reconcileUnit(tx, r.EquipmentUnitID); err != nil {
			return err
		}
		s.emit(EventRentalCreated, r.ID, r)
		return nil
	})
}

// UpdateRental merges p. The only status change allowed is active to
// completed, which stamps returnDate (now unless supplied) and releases the
// equipment and unit.
func (s *Store) UpdateRental(ctx context.Context, id int64, p RentalPatch) (out *domain.Rental, err error) {
	if p.Status != nil {
		if err := checkStoredRentalStatus(*p.Status); err != nil {
			return nil, err
		}
	}
	if p.DailyRate != nil && *p.DailyRate < 0 {
		return nil, fmt.Errorf("%w: dailyRate must not be negative", ErrValidation)
	}

	err = s.write(ctx, func(tx *gorm.DB) error {
		r, err := getByID[domain.Rental](tx, id)
		if err != nil {
			return err
		}
		if p.EquipmentID != nil && *p.EquipmentID != r.EquipmentID {
			return fmt.Errorf("%w: equipmentId cannot be changed", ErrValidation)
		}
		if p.EquipmentUnitID != nil && (r.EquipmentUnitID == nil || *p.EquipmentUnitID != *r.EquipmentUnitID) {
			return fmt.Errorf("%w: equipmentUnitId cannot be changed", ErrValidation)
		}
		if p.CustomerID != nil && *p.CustomerID != r.CustomerID {
			if _, err := requireRef[domain.Customer](tx, "customer", *p.CustomerID); err != nil {
				return err
			}
		}

		next := r.Status
		if p.Status != nil {
			next = *p.Status
		}
		if r.Status == domain.RentalCompleted && next == domain.RentalActive {
			return fmt.Errorf("%w: a completed rental cannot be reopened", ErrInvalidStatusTransition)
		}
		if p.ReturnDate != nil && next != domain.RentalCompleted {
			return fmt.Errorf("%w: returnDate is only set when a rental is completed", ErrValidation)
		}

		completing := r.Status != domain.RentalCompleted && next == domain.RentalCompleted
		setIf(&r.CustomerID, p.CustomerID)
		setIf(&r.StartDate, p.StartDate)
		setIf(&r.EndDate, p.EndDate)
		setPtrIf(&r.ReturnDate, p.ReturnDate)
		setPtrIf(&r.DailyRate, p.DailyRate)
		setPtrIf(&r.Notes, p.Notes)
		r.Status = next
		if completing && r.ReturnDate == nil {
			now := s.now()
			r.ReturnDate = &now
		}
		if err := checkRentalDates(r.StartDate, r.EndDate); err != nil {
			return err
		}
		// An automatic stamp before the start (cancelled early) is kept.
		if p.ReturnDate != nil || p.StartDate != nil {
			if err := checkReturnDate(r.StartDate, r.ReturnDate); err != nil {
				return err
			}
		}
		if err := tx.Save(r).Error; err != nil {
			return err
		}

		if completing {
			if err := s.reconcileEquipment(tx, r.EquipmentID); err != nil {
				return err
			}
			if err := s.reconcileUnit(tx, r.EquipmentUnitID); err != nil {
				return err
			}
			s.emit(EventRentalCompleted, r.ID, r)
		}
		out = r
		return nil
	})
	return out, err
}

// DeleteRental removes the record and re-derives the equipment status, so
// deleting an active rental frees the equipment.
func (s *Store) DeleteRental(ctx context.Context, id int64) error {
	return s.write(ctx, func(tx *gorm.DB) error {
		r, err := getByID[domain.Rental](tx, id)
		if err != nil {
			return err
		}
		if err := deleteByID[domain.Rental](tx, id); err != nil {
			return err
		}
		if err := s.reconcileEquipment(tx, r.EquipmentID); err != nil {
			return err
		}
		if err := s.reconcileUnit(tx, r.EquipmentUnitID); err != nil {
			return err
		}
		s.emit(EventRentalDeleted, id, nil)
		return nil
	})
}

func checkRentable(tx *gorm.DB, eq *domain.Equipment, unitID *int64) error {
	active, err := count(tx, &domain.Rental{}, "equipment_id = ? AND status = ?", eq.ID, domain.RentalActive)
	if err != nil {
		return err
	}
	if active > 0 {
		return fmt.Errorf("%w: equipment %d already has an active rental", ErrConflict, eq.ID)
	}
	switch eq.Status {
	case domain.EquipmentAvailable, domain.EquipmentMaintenance:
	default:
		return fmt.Errorf("%w: equipment %d is %s", ErrConflict, eq.ID, eq.Status)
	}

	if unitID == nil {
		return nil
	}
	unit, err := getByID[domain.EquipmentUnit](tx, *unitID)
	if err != nil {
		return err
	}
	if unit.Status != domain.EquipmentAvailable {
		return fmt.Errorf("%w: unit %d is %s", ErrConflict, unit.ID, unit.Status)
	}
	return nil
}

// checkStoredRentalStatus rejects anything but active and completed; overdue
// is computed on read and never stored.
func checkStoredRentalStatus(st domain.RentalStatus) error {
	switch st {
	case domain.RentalActive, domain.RentalCompleted:
		return nil
	case domain.RentalOverdue:
		return fmt.Errorf("%w: overdue is derived from endDate and cannot be stored", ErrValidation)
	default:
		return fmt.Errorf("%w: unknown status %q", ErrValidation, st)
	}
}

func checkRentalDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrValidation)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrValidation)
	}
	return nil
}

func checkReturnDate(start time.Time, ret *time.Time) error {
	if ret != nil && ret.Before(start) {
		return fmt.Errorf("%w: returnDate must not be before startDate", ErrValidation)
	}
	return nil
}
