package repository

import (
	"equiprent/internal/domain"
	"equiprent/internal/logger"

	"gorm.io/gorm"
)

// deriveStatus applies the precedence rental > pending maintenance > available.
func deriveStatus(activeRentals, pendingMaintenance int64) domain.EquipmentStatus {
	switch {
	case activeRentals > 0:
		return domain.EquipmentRented
	case pendingMaintenance > 0:
		return domain.EquipmentMaintenance
	default:
		return domain.EquipmentAvailable
	}
}

// reconcileEquipment recomputes Equipment.status from the rentals and
// maintenance that reference it. A manual "unavailable" is left alone.
func (s *Store) reconcileEquipment(tx *gorm.DB, equipmentID int64) error {
	eq, err := getByID[domain.Equipment](tx, equipmentID)
	if err != nil {
		return err
	}
	if eq.Status == domain.EquipmentUnavailable {
		return nil
	}

	rentals, err := count(tx, &domain.Rental{}, "equipment_id = ? AND status = ?", equipmentID, domain.RentalActive)
	if err != nil {
		return err
	}
	maint, err := count(tx, &domain.Maintenance{}, "equipment_id = ? AND status <> ?", equipmentID, domain.MaintenanceCompleted)
	if err != nil {
		return err
	}

	next := deriveStatus(rentals, maint)
	if next == eq.Status {
		return nil
	}
	if err := tx.Model(&domain.Equipment{}).Where("id = ?", eq.ID).Update("status", next).Error; err != nil {
		return err
	}
	logger.Debug("equipment status reconciled", "equipment_id", eq.ID, "from", eq.Status, "to", next)
	s.emit(EventEquipmentStatus, eq.ID, map[string]any{"from": eq.Status, "to": next})
	return nil
}

// reconcileUnit does the same for a single unit and keeps the parent's
// availableUnits counter in step.
func (s *Store) reconcileUnit(tx *gorm.DB, unitID *int64) error {
	if unitID == nil {
		return nil
	}
	unit, err := getByID[domain.EquipmentUnit](tx, *unitID)
	if err != nil {
		return err
	}
	if unit.Status == domain.EquipmentUnavailable {
		return nil
	}

	next, err := deriveUnitStatus(tx, unit.ID)
	if err != nil {
		return err
	}
	return s.setUnitStatus(tx, unit, next)
}

// deriveUnitStatus is the status a unit's rentals and maintenance give it.
func deriveUnitStatus(tx *gorm.DB, unitID int64) (domain.EquipmentStatus, error) {
	rentals, err := count(tx, &domain.Rental{}, "equipment_unit_id = ? AND status = ?", unitID, domain.RentalActive)
	if err != nil {
		return "", err
	}
	maint, err := count(tx, &domain.Maintenance{}, "equipment_unit_id = ? AND status <> ?", unitID, domain.MaintenanceCompleted)
	if err != nil {
		return "", err
	}
	return deriveStatus(rentals, maint), nil
}

// setUnitStatus writes a unit status and moves availableUnits by one when the
// unit crosses the "available" boundary. It never recounts.
func (s *Store) setUnitStatus(tx *gorm.DB, unit *domain.EquipmentUnit, next domain.EquipmentStatus) error {
	prev := unit.Status
	if prev == next {
		return nil
	}
	if err := tx.Model(&domain.EquipmentUnit{}).Where("id = ?", unit.ID).Update("status", next).Error; err != nil {
		return err
	}
	unit.Status = next

	delta := 0
	switch {
	case prev == domain.EquipmentAvailable && next != domain.EquipmentAvailable:
		delta = -1
	case prev != domain.EquipmentAvailable && next == domain.EquipmentAvailable:
		delta = 1
	}
	if delta != 0 {
		if err := adjustUnitCounters(tx, unit.EquipmentID, 0, delta); err != nil {
			return err
		}
	}
	s.emit(EventUnitStatus, unit.ID, map[string]any{"equipmentId": unit.EquipmentID, "from": prev, "to": next})
	return nil
}

// adjustUnitCounters applies deltas to totalUnits/availableUnits, flooring
// both at zero.
func adjustUnitCounters(tx *gorm.DB, equipmentID int64, total, available int) error {
	eq, err := getByID[domain.Equipment](tx, equipmentID)
	if err != nil {
		return err
	}
	return tx.Model(&domain.Equipment{}).Where("id = ?", equipmentID).Updates(map[string]any{
		"total_units":     max(0, eq.TotalUnits+total),
		"available_units": max(0, eq.AvailableUnits+available),
	}).Error
}
