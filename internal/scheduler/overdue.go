package scheduler

import (
	"context"
	"sync"
	"time"

	"equiprent/internal/domain"
	"equiprent/internal/logger"
	"equiprent/internal/repository"
)

type RentalLister interface {
	ListRentals(ctx context.Context, f repository.RentalFilter) ([]domain.Rental, error)
}

// OverdueSweep reports rentals that have gone overdue since the last run.
// It only reads; overdue is never written back to the rental.
type OverdueSweep struct {
	rentals   RentalLister
	publisher repository.Publisher
	now       func() time.Time

	mu       sync.Mutex
	notified map[int64]struct{}
}

func NewOverdueSweep(rentals RentalLister, publisher repository.Publisher) *OverdueSweep {
	return &OverdueSweep{
		rentals:   rentals,
		publisher: publisher,
		now:       time.Now,
		notified:  make(map[int64]struct{}),
	}
}

// Run is the cron entry point.
func (j *OverdueSweep) Run() {
	if _, err := j.RunOnce(context.Background()); err != nil {
		logger.Error("overdue sweep failed", "error", err)
	}
}

// RunOnce returns the rentals that became overdue since the previous call.
// Rentals that are no longer overdue (returned or deleted) are forgotten so a
// later overdue period is reported again.
func (j *OverdueSweep) RunOnce(ctx context.Context) ([]domain.Rental, error) {
	overdue, err := j.rentals.ListRentals(ctx, repository.RentalFilter{OverdueOnly: true})
	if err != nil {
		return nil, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	current := make(map[int64]struct{}, len(overdue))
	var fresh []domain.Rental
	for _, r := range overdue {
		current[r.ID] = struct{}{}
		if _, seen := j.notified[r.ID]; seen {
			continue
		}
		fresh = append(fresh, r)
		logger.Warn("rental overdue",
			"rental_id", r.ID,
			"equipment_id", r.EquipmentID,
			"customer_id", r.CustomerID,
			"end_date", r.EndDate,
			"days_late", int(now.Sub(r.EndDate).Hours()/24),
		)
		if j.publisher != nil {
			j.publisher.Publish(repository.Event{
				Type:     repository.EventRentalOverdue,
				EntityID: r.ID,
				Data:     r,
				At:       now,
			})
		}
	}
	j.notified = current

	if len(fresh) > 0 {
		logger.Info("overdue sweep finished", "overdue", len(overdue), "new", len(fresh))
	}
	return fresh, nil
}
