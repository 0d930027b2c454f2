package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"equiprent/internal/database"
	"equiprent/internal/domain"
	"equiprent/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:equiprent_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Connect(dsn, "error")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	s := repository.NewStore(db)
	s.SetClock(func() time.Time { return testNow })
	return s
}

// recordingPublisher collects published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []repository.Event
}

func (p *recordingPublisher) Publish(ev repository.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

func mkCategory(t *testing.T, s *repository.Store, name string) *domain.Category {
	t.Helper()
	c := &domain.Category{Name: name}
	require.NoError(t, s.CreateCategory(context.Background(), c))
	return c
}

func mkBrand(t *testing.T, s *repository.Store, name string) *domain.Brand {
	t.Helper()
	b := &domain.Brand{Name: name}
	require.NoError(t, s.CreateBrand(context.Background(), b))
	return b
}

func mkCustomer(t *testing.T, s *repository.Store, name string) *domain.Customer {
	t.Helper()
	c := &domain.Customer{Name: name}
	require.NoError(t, s.CreateCustomer(context.Background(), c))
	return c
}

func mkEquipment(t *testing.T, s *repository.Store, categoryID *int64) *domain.Equipment {
	t.Helper()
	eq := &domain.Equipment{Name: "Excavator", CategoryID: categoryID, DailyRate: 250}
	require.NoError(t, s.CreateEquipment(context.Background(), eq))
	return eq
}

func mkUnit(t *testing.T, s *repository.Store, equipmentID int64, status domain.EquipmentStatus) *domain.EquipmentUnit {
	t.Helper()
	u := &domain.EquipmentUnit{EquipmentID: equipmentID, SerialNumber: "SN-" + uuid.NewString()[:8], Status: status}
	require.NoError(t, s.CreateUnit(context.Background(), u))
	return u
}

func activeRental(customerID, equipmentID int64) *domain.Rental {
	return &domain.Rental{
		CustomerID:  customerID,
		EquipmentID: equipmentID,
		StartDate:   testNow.AddDate(0, 0, -2),
		EndDate:     testNow.AddDate(0, 0, 5),
		Status:      domain.RentalActive,
	}
}

func equipmentStatus(t *testing.T, s *repository.Store, id int64) domain.EquipmentStatus {
	t.Helper()
	eq, err := s.GetEquipment(context.Background(), id)
	require.NoError(t, err)
	return eq.Status
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }
func timePtr(v time.Time) *time.Time { return &v }
