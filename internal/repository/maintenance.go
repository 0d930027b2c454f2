package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"equiprent/internal/domain"

	"gorm.io/gorm"
)

type MaintenanceFilter struct {
	EquipmentID     *int64
	EquipmentUnitID *int64
	PendingOnly     bool
}

type MaintenancePatch struct {
	EquipmentID     *int64
	EquipmentUnitID *int64
	Type            *string
	Description     *string
	ScheduledDate   *time.Time
	CompletedDate   *time.Time
	Cost            *int64
	Notes           *string
	Status          *domain.MaintenanceStatus
}

func (s *Store) ListMaintenance(ctx context.Context, f MaintenanceFilter) (out []domain.Maintenance, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		if f.EquipmentID != nil {
			db = db.Where("equipment_id = ?", *f.EquipmentID)
		}
		if f.EquipmentUnitID != nil {
			db = db.Where("equipment_unit_id = ?", *f.EquipmentUnitID)
		}
		if f.PendingOnly {
			db = db.Where("status <> ?", domain.MaintenanceCompleted)
		}
		out, err = listAll[domain.Maintenance](db)
		return err
	})
	return out, err
}

func (s *Store) GetMaintenance(ctx context.Context, id int64) (out *domain.Maintenance, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		out, err = getByID[domain.Maintenance](db, id)
		return err
	})
	return out, err
}

// CreateMaintenance records work on a piece of equipment (and optionally one
// of its units) and re-derives their status.
func (s *Store) CreateMaintenance(ctx context.Context, m *domain.Maintenance) error {
	if m.Status == "" {
		m.Status = domain.MaintenanceScheduled
	}
	if !m.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, m.Status)
	}
	if strings.TrimSpace(m.Type) == "" || strings.TrimSpace(m.Description) == "" {
		return fmt.Errorf("%w: type and description are required", ErrValidation)
	}
	if m.Status.Pending() && m.CompletedDate != nil {
		return fmt.Errorf("%w: completedDate is only set when maintenance is completed", ErrValidation)
	}

	return s.write(ctx, func(tx *gorm.DB) error {
		if err := checkEquipmentRefs(tx, m.EquipmentID, m.EquipmentUnitID); err != nil {
			return err
		}
		if m.Status == domain.MaintenanceCompleted && m.CompletedDate == nil {
			now := s.now()
			m.CompletedDate = &now
		}
		m.ID = 0
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if err := s.reconcileEquipment(tx, m.EquipmentID); err != nil {
			return err
		}
		if err := s.reconcileUnit(tx, m.EquipmentUnitID); err != nil {
			return err
		}
		s.emit(EventMaintenanceCreated, m.ID, m)
		return nil
	})
}

// UpdateMaintenance merges p. Status only moves forward; reaching completed
// stamps completedDate (now unless supplied).
func (s *Store) UpdateMaintenance(ctx context.Context, id int64, p MaintenancePatch) (out *domain.Maintenance, err error) {
	if p.Status != nil && !p.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *p.Status)
	}

	err = s.write(ctx, func(tx *gorm.DB) error {
		m, err := getByID[domain.Maintenance](tx, id)
		if err != nil {
			return err
		}
		if p.EquipmentID != nil && *p.EquipmentID != m.EquipmentID {
			return fmt.Errorf("%w: equipmentId cannot be changed", ErrValidation)
		}
		if p.EquipmentUnitID != nil && (m.EquipmentUnitID == nil || *p.EquipmentUnitID != *m.EquipmentUnitID) {
			return fmt.Errorf("%w: equipmentUnitId cannot be changed", ErrValidation)
		}

		next := m.Status
		if p.Status != nil {
			if !m.Status.CanMoveTo(*p.Status) {
				return fmt.Errorf("%w: maintenance cannot go from %s to %s", ErrInvalidStatusTransition, m.Status, *p.Status)
			}
			next = *p.Status
		}
		if p.CompletedDate != nil && next.Pending() {
			return fmt.Errorf("%w: completedDate is only set when maintenance is completed", ErrValidation)
		}

		completing := m.Status.Pending() && !next.Pending()
		setIf(&m.Type, p.Type)
		setIf(&m.Description, p.Description)
		setPtrIf(&m.ScheduledDate, p.ScheduledDate)
		setPtrIf(&m.CompletedDate, p.CompletedDate)
		setPtrIf(&m.Cost, p.Cost)
		setPtrIf(&m.Notes, p.Notes)
		m.Status = next
		if completing && m.CompletedDate == nil {
			now := s.now()
			m.CompletedDate = &now
		}
		if strings.TrimSpace(m.Type) == "" || strings.TrimSpace(m.Description) == "" {
			return fmt.Errorf("%w: type and description must not be empty", ErrValidation)
		}
		if err := tx.Save(m).Error; err != nil {
			return err
		}

		if err := s.reconcileEquipment(tx, m.EquipmentID); err != nil {
			return err
		}
		if err := s.reconcileUnit(tx, m.EquipmentUnitID); err != nil {
			return err
		}
		s.emit(EventMaintenanceUpdated, m.ID, m)
		out = m
		return nil
	})
	return out, err
}

func (s *Store) DeleteMaintenance(ctx context.Context, id int64) error {
	return s.write(ctx, func(tx *gorm.DB) error {
		m, err := getByID[domain.Maintenance](tx, id)
		if err != nil {
			return err
		}
		if err := deleteByID[domain.Maintenance](tx, id); err != nil {
			return err
		}
		if err := s.reconcileEquipment(tx, m.EquipmentID); err != nil {
			return err
		}
		if err := s.reconcileUnit(tx, m.EquipmentUnitID); err != nil {
			return err
		}
		s.emit(EventMaintenanceDeleted, id, nil)
		return nil
	})
}

// checkEquipmentRefs verifies the equipment exists and, when a unit is given,
// that the unit belongs to it.
func checkEquipmentRefs(tx *gorm.DB, equipmentID int64, unitID *int64) error {
	if _, err := requireRef[domain.Equipment](tx, "equipment", equipmentID); err != nil {
		return err
	}
	if unitID == nil {
		return nil
	}
	unit, err := requireRef[domain.EquipmentUnit](tx, "equipment unit", *unitID)
	if err != nil {
		return err
	}
	if unit.EquipmentID != equipmentID {
		return fmt.Errorf("%w: unit %d does not belong to equipment %d", ErrValidation, unit.ID, equipmentID)
	}
	return nil
}
