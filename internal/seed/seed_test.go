package seed_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"equiprent/internal/database"
	"equiprent/internal/domain"
	"equiprent/internal/repository"
	"equiprent/internal/seed"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_LoadsFixturesOnce(t *testing.T) {
	db, err := database.Connect(fmt.Sprintf("file:seed_%s?mode=memory&cache=shared", uuid.NewString()), "error")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	store := repository.NewStore(db)
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	opts := seed.Options{AdminPassword: "s3cret-pass"}

	require.NoError(t, seed.Run(ctx, store, now, opts))
	require.NoError(t, seed.Run(ctx, store, now, opts), "second run is a no-op")

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Categories, 5)
	assert.Len(t, snap.Equipment, 12)

	active, pending := 0, 0
	for _, r := range snap.Rentals {
		if r.IsActive() {
			active++
		}
	}
	for _, m := range snap.Maintenance {
		if m.Status.Pending() {
			pending++
		}
	}
	assert.Equal(t, 4, active)
	assert.Equal(t, 5, pending)

	units := 0
	for _, eq := range snap.Equipment {
		units += eq.TotalUnits
		assert.GreaterOrEqual(t, eq.AvailableUnits, 0)
		assert.LessOrEqual(t, eq.AvailableUnits, eq.TotalUnits)
	}
	assert.Equal(t, 24, units)

	user, err := store.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	for _, r := range snap.Rentals {
		if r.IsActive() {
			eq, err := store.GetEquipment(ctx, r.EquipmentID)
			require.NoError(t, err)
			assert.Equal(t, domain.EquipmentRented, eq.Status)
		}
	}
}
