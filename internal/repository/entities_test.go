package repository_test

import (
	"context"
	"testing"

	"equiprent/internal/domain"
	"equiprent/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_UnknownIDsReturnNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetCustomer(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = s.UpdateCustomer(ctx, 99, repository.CustomerPatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, s.DeleteCustomer(ctx, 99), repository.ErrNotFound)
	assert.ErrorIs(t, s.DeleteContact(ctx, 99), repository.ErrNotFound)
	assert.ErrorIs(t, s.DeleteRental(ctx, 99), repository.ErrNotFound)

	_, err = s.UpdateRental(ctx, 99, repository.RentalPatch{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_PartialUpdateKeepsOtherFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := &domain.Customer{Name: "BuildWell", Email: strPtr("info@buildwell.com"), City: strPtr("Springfield")}
	require.NoError(t, s.CreateCustomer(ctx, c))

	updated, err := s.UpdateCustomer(ctx, c.ID, repository.CustomerPatch{City: strPtr("Shelbyville")})
	require.NoError(t, err)
	assert.Equal(t, "BuildWell", updated.Name)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "info@buildwell.com", *updated.Email)
	assert.Equal(t, "Shelbyville", *updated.City)
}

func TestStore_EquipmentLinksCanBeCleared(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cat := mkCategory(t, s, "Loaders")
	brand := mkBrand(t, s, "Bobcat")
	eq := mkEquipment(t, s, &cat.ID)
	_, err := s.UpdateEquipment(ctx, eq.ID, repository.EquipmentPatch{BrandID: &brand.ID})
	require.NoError(t, err)

	got, err := s.UpdateEquipment(ctx, eq.ID, repository.EquipmentPatch{ClearCategory: true})
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
	require.NotNil(t, got.BrandID, "untouched link stays")
	assert.Equal(t, brand.ID, *got.BrandID)

	// Unlinked, the category can go.
	require.NoError(t, s.DeleteCategory(ctx, cat.ID))

	_, err = s.UpdateEquipment(ctx, eq.ID, repository.EquipmentPatch{BrandID: &brand.ID, ClearBrand: true})
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestStore_IDsAreNeverReused(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := mkBrand(t, s, "Caterpillar")
	second := mkBrand(t, s, "Komatsu")
	require.NoError(t, s.DeleteBrand(ctx, second.ID))

	third := mkBrand(t, s, "Volvo")
	assert.Greater(t, third.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestStore_ListFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cat := mkCategory(t, s, "Loaders")
	other := mkCategory(t, s, "Generators")
	a := mkEquipment(t, s, &cat.ID)
	mkEquipment(t, s, &other.ID)

	items, err := s.ListEquipment(ctx, repository.EquipmentFilter{CategoryID: &cat.ID})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, a.ID, items[0].ID)

	c1 := mkCustomer(t, s, "Metro")
	c2 := mkCustomer(t, s, "Skyline")
	require.NoError(t, s.CreateContact(ctx, &domain.Contact{CustomerID: c1.ID, FirstName: "John", LastName: "Builder"}))
	require.NoError(t, s.CreateContact(ctx, &domain.Contact{CustomerID: c2.ID, FirstName: "Sarah", LastName: "Skyline"}))

	contacts, err := s.ListContacts(ctx, &c2.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Sarah", contacts[0].FirstName)

	all, err := s.ListContacts(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStore_ReferencesMustExist(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.CreateContact(ctx, &domain.Contact{CustomerID: 42, FirstName: "A", LastName: "B"})
	assert.ErrorIs(t, err, repository.ErrReferenceNotFound)

	err = s.CreateEquipment(ctx, &domain.Equipment{Name: "Dozer", CategoryID: int64Ptr(7)})
	assert.ErrorIs(t, err, repository.ErrReferenceNotFound)

	cust := mkCustomer(t, s, "Coastal")
	err = s.CreateRental(ctx, activeRental(cust.ID, 123))
	assert.ErrorIs(t, err, repository.ErrReferenceNotFound)

	eq := mkEquipment(t, s, nil)
	err = s.CreateRental(ctx, activeRental(999, eq.ID))
	assert.ErrorIs(t, err, repository.ErrReferenceNotFound)

	rentals, err := s.ListRentals(ctx, repository.RentalFilter{})
	require.NoError(t, err)
	assert.Empty(t, rentals)
	assert.Equal(t, domain.EquipmentAvailable, equipmentStatus(t, s, eq.ID))
}

func TestStore_UnitMustBelongToEquipment(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cust := mkCustomer(t, s, "Metro")
	a := mkEquipment(t, s, nil)
	b := mkEquipment(t, s, nil)
	unit := mkUnit(t, s, b.ID, domain.EquipmentAvailable)

	r := activeRental(cust.ID, a.ID)
	r.EquipmentUnitID = &unit.ID
	assert.ErrorIs(t, s.CreateRental(ctx, r), repository.ErrValidation)

	m := &domain.Maintenance{EquipmentID: a.ID, EquipmentUnitID: &unit.ID, Type: "Preventive", Description: "oil"}
	assert.ErrorIs(t, s.CreateMaintenance(ctx, m), repository.ErrValidation)
}

func TestStore_DeleteReferencedIsRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cat := mkCategory(t, s, "Excavators")
	brand := mkBrand(t, s, "Caterpillar")
	eq := &domain.Equipment{Name: "320", CategoryID: &cat.ID, BrandID: &brand.ID}
	require.NoError(t, s.CreateEquipment(ctx, eq))

	assert.ErrorIs(t, s.DeleteCategory(ctx, cat.ID), repository.ErrInUse)
	assert.ErrorIs(t, s.DeleteBrand(ctx, brand.ID), repository.ErrInUse)

	stored, err := s.GetEquipment(ctx, eq.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CategoryID)
	assert.Equal(t, cat.ID, *stored.CategoryID)

	cust := mkCustomer(t, s, "Foundation Experts")
	require.NoError(t, s.CreateRental(ctx, activeRental(cust.ID, eq.ID)))
	assert.ErrorIs(t, s.DeleteCustomer(ctx, cust.ID), repository.ErrInUse)
	assert.ErrorIs(t, s.DeleteEquipment(ctx, eq.ID), repository.ErrInUse)

	// Once nothing references it the category can go.
	unused := mkCategory(t, s, "Concrete")
	assert.NoError(t, s.DeleteCategory(ctx, unused.ID))
}

func TestStore_Users(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", u.PasswordHash)

	got, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.True(t, repository.CheckPassword(got, "s3cret"))
	assert.False(t, repository.CheckPassword(got, "wrong"))

	_, err = s.CreateUser(ctx, "admin", "other")
	assert.ErrorIs(t, err, repository.ErrConflict)

	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
