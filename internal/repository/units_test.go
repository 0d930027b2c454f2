package repository_test

import (
	"context"
	"testing"

	"equiprent/internal/domain"
	"equiprent/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertCounters checks the incrementally kept counters against a recount of
// the unit rows.
func assertCounters(t *testing.T, s *repository.Store, equipmentID int64) {
	t.Helper()
	ctx := context.Background()

	eq, err := s.GetEquipment(ctx, equipmentID)
	require.NoError(t, err)
	all, err := s.ListUnits(ctx, equipmentID, false)
	require.NoError(t, err)
	available, err := s.ListUnits(ctx, equipmentID, true)
	require.NoError(t, err)

	assert.Equal(t, len(all), eq.TotalUnits, "totalUnits")
	assert.Equal(t, len(available), eq.AvailableUnits, "availableUnits")
	assert.GreaterOrEqual(t, eq.AvailableUnits, 0)
}

func TestUnits_CounterFidelity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	eq := mkEquipment(t, s, nil)
	assertCounters(t, s, eq.ID)

	a := mkUnit(t, s, eq.ID, domain.EquipmentAvailable)
	assertCounters(t, s, eq.ID)
	b := mkUnit(t, s, eq.ID, domain.EquipmentAvailable)
	c := mkUnit(t, s, eq.ID, domain.EquipmentMaintenance)
	assertCounters(t, s, eq.ID)

	steps := []struct {
		unit   int64
		status domain.EquipmentStatus
	}{
		{a.ID, domain.EquipmentMaintenance},
		{a.ID, domain.EquipmentUnavailable},
		{c.ID, domain.EquipmentAvailable},
		{c.ID, domain.EquipmentAvailable},
		{b.ID, domain.EquipmentUnavailable},
		{a.ID, domain.EquipmentAvailable},
	}
	for _, step := range steps {
		status := step.status
		_, err := s.UpdateUnit(ctx, step.unit, repository.UnitPatch{Status: &status})
		require.NoError(t, err)
		assertCounters(t, s, eq.ID)
	}

	require.NoError(t, s.DeleteUnit(ctx, b.ID))
	assertCounters(t, s, eq.ID)
	require.NoError(t, s.DeleteUnit(ctx, a.ID))
	assertCounters(t, s, eq.ID)
	require.NoError(t, s.DeleteUnit(ctx, c.ID))
	assertCounters(t, s, eq.ID)

	final, err := s.GetEquipment(ctx, eq.ID)
	require.NoError(t, err)
	assert.Zero(t, final.TotalUnits)
	assert.Zero(t, final.AvailableUnits)
}

func TestUnits_RentalMovesUnitAndCounters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cust := mkCustomer(t, s, "Skyline")
	eq := mkEquipment(t, s, nil)
	unit := mkUnit(t, s, eq.ID, domain.EquipmentAvailable)
	mkUnit(t, s, eq.ID, domain.EquipmentAvailable)

	r := activeRental(cust.ID, eq.ID)
	r.EquipmentUnitID = &unit.ID
	require.NoError(t, s.CreateRental(ctx, r))

	got, err := s.GetUnit(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentRented, got.Status)
	assertCounters(t, s, eq.ID)

	// A unit held by a rental can be neither changed by hand nor deleted.
	maint := domain.EquipmentMaintenance
	_, err = s.UpdateUnit(ctx, unit.ID, repository.UnitPatch{Status: &maint})
	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.ErrorIs(t, s.DeleteUnit(ctx, unit.ID), repository.ErrConflict)

	completed := domain.RentalCompleted
	_, err = s.UpdateRental(ctx, r.ID, repository.RentalPatch{Status: &completed})
	require.NoError(t, err)

	got, err = s.GetUnit(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentAvailable, got.Status)
	assertCounters(t, s, eq.ID)
}

func TestUnits_MaintenanceOnUnit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	eq := mkEquipment(t, s, nil)
	unit := mkUnit(t, s, eq.ID, domain.EquipmentAvailable)

	m := &domain.Maintenance{EquipmentID: eq.ID, EquipmentUnitID: &unit.ID, Type: "Preventive", Description: "greasing"}
	require.NoError(t, s.CreateMaintenance(ctx, m))

	got, err := s.GetUnit(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentMaintenance, got.Status)
	assertCounters(t, s, eq.ID)

	require.NoError(t, s.DeleteMaintenance(ctx, m.ID))
	got, err = s.GetUnit(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentAvailable, got.Status)
	assertCounters(t, s, eq.ID)
}

func TestUnits_OnlyAvailableUnitsCanBeRented(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cust := mkCustomer(t, s, "Skyline")
	eq := mkEquipment(t, s, nil)
	unit := mkUnit(t, s, eq.ID, domain.EquipmentUnavailable)

	r := activeRental(cust.ID, eq.ID)
	r.EquipmentUnitID = &unit.ID
	assert.ErrorIs(t, s.CreateRental(ctx, r), repository.ErrConflict)

	rented := domain.EquipmentRented
	_, err := s.UpdateUnit(ctx, unit.ID, repository.UnitPatch{Status: &rented})
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestUnits_UnknownEquipment(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.CreateUnit(ctx, &domain.EquipmentUnit{EquipmentID: 404, SerialNumber: "SN-1"})
	assert.ErrorIs(t, err, repository.ErrReferenceNotFound)

	_, err = s.ListUnits(ctx, 404, false)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUnits_ManualAvailableKeepsPendingMaintenance(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cust := mkCustomer(t, s, "Skyline")
	eq := mkEquipment(t, s, nil)
	unit := mkUnit(t, s, eq.ID, domain.EquipmentAvailable)
	mkUnit(t, s, eq.ID, domain.EquipmentAvailable)

	m := &domain.Maintenance{EquipmentID: eq.ID, EquipmentUnitID: &unit.ID, Type: "Repair", Description: "hydraulic leak"}
	require.NoError(t, s.CreateMaintenance(ctx, m))
	assertCounters(t, s, eq.ID)

	available := domain.EquipmentAvailable
	got, err := s.UpdateUnit(ctx, unit.ID, repository.UnitPatch{Status: &available})
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentMaintenance, got.Status)
	assertCounters(t, s, eq.ID)

	// Through the override and back lands on maintenance again.
	unavailable := domain.EquipmentUnavailable
	_, err = s.UpdateUnit(ctx, unit.ID, repository.UnitPatch{Status: &unavailable})
	require.NoError(t, err)
	assertCounters(t, s, eq.ID)
	got, err = s.UpdateUnit(ctx, unit.ID, repository.UnitPatch{Status: &available})
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentMaintenance, got.Status)
	assertCounters(t, s, eq.ID)

	eqGot, err := s.UpdateEquipment(ctx, eq.ID, repository.EquipmentPatch{Status: &available})
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentMaintenance, eqGot.Status)

	r := activeRental(cust.ID, eq.ID)
	r.EquipmentUnitID = &unit.ID
	assert.ErrorIs(t, s.CreateRental(ctx, r), repository.ErrConflict)

	done := domain.MaintenanceCompleted
	_, err = s.UpdateMaintenance(ctx, m.ID, repository.MaintenancePatch{Status: &done})
	require.NoError(t, err)
	got, err = s.GetUnit(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentAvailable, got.Status)
	assertCounters(t, s, eq.ID)

	r = activeRental(cust.ID, eq.ID)
	r.EquipmentUnitID = &unit.ID
	require.NoError(t, s.CreateRental(ctx, r))
	assertCounters(t, s, eq.ID)
}
