package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"equiprent/internal/domain"
	"equiprent/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	rentals []domain.Rental
	err     error
	filters []repository.RentalFilter
}

func (f *fakeLister) ListRentals(_ context.Context, filter repository.RentalFilter) ([]domain.Rental, error) {
	f.filters = append(f.filters, filter)
	return f.rentals, f.err
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []repository.Event
}

func (p *recordingPublisher) Publish(ev repository.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

var sweepNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func overdueRental(id int64) domain.Rental {
	return domain.Rental{
		ID:          id,
		CustomerID:  1,
		EquipmentID: id,
		StartDate:   sweepNow.AddDate(0, 0, -10),
		EndDate:     sweepNow.AddDate(0, 0, -2),
		Status:      domain.RentalActive,
	}
}

func newTestSweep(lister *fakeLister, pub *recordingPublisher) *OverdueSweep {
	s := NewOverdueSweep(lister, pub)
	s.now = func() time.Time { return sweepNow }
	return s
}

func ids(rentals []domain.Rental) []int64 {
	out := make([]int64, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, r.ID)
	}
	return out
}

func TestOverdueSweep_ReportsOnlyNewRentals(t *testing.T) {
	lister := &fakeLister{rentals: []domain.Rental{overdueRental(1), overdueRental(2)}}
	pub := &recordingPublisher{}
	sweep := newTestSweep(lister, pub)

	fresh, err := sweep.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(fresh))
	require.Len(t, pub.events, 2)
	assert.Equal(t, repository.EventRentalOverdue, pub.events[0].Type)
	assert.Equal(t, sweepNow, pub.events[0].At)

	lister.rentals = append(lister.rentals, overdueRental(3))
	fresh, err = sweep.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids(fresh))
	assert.Len(t, pub.events, 3)

	for _, f := range lister.filters {
		assert.True(t, f.OverdueOnly)
	}
}

func TestOverdueSweep_ForgetsReturnedRentals(t *testing.T) {
	lister := &fakeLister{rentals: []domain.Rental{overdueRental(1)}}
	sweep := newTestSweep(lister, &recordingPublisher{})

	_, err := sweep.RunOnce(context.Background())
	require.NoError(t, err)

	lister.rentals = nil
	fresh, err := sweep.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fresh)

	// Overdue again after being cleared counts as new.
	lister.rentals = []domain.Rental{overdueRental(1)}
	fresh, err = sweep.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(fresh))
}

func TestOverdueSweep_ListError(t *testing.T) {
	lister := &fakeLister{err: errors.New("db down")}
	pub := &recordingPublisher{}
	sweep := newTestSweep(lister, pub)

	_, err := sweep.RunOnce(context.Background())
	assert.EqualError(t, err, "db down")
	assert.Empty(t, pub.events)

	// Run logs instead of returning.
	assert.NotPanics(t, sweep.Run)
}

func TestOverdueSweep_NilPublisher(t *testing.T) {
	sweep := NewOverdueSweep(&fakeLister{rentals: []domain.Rental{overdueRental(4)}}, nil)

	fresh, err := sweep.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Len(t, fresh, 1)
}

func TestNewScheduler(t *testing.T) {
	sweep := NewOverdueSweep(&fakeLister{}, nil)

	s, err := NewScheduler("0 */15 * * * *", sweep)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Entries())
	s.Start()
	s.Stop()

	_, err = NewScheduler("not a schedule", sweep)
	assert.Error(t, err)
}
