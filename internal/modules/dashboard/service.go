package dashboard

import (
	"context"
	"slices"
	"time"

	"equiprent/internal/domain"
	"equiprent/internal/repository"
)

// Service recomputes every figure from a fresh snapshot on each call.
// Nothing is cached between calls.
type Service struct {
	source SnapshotSource
	now    func() time.Time
}

func NewService(source SnapshotSource) *Service {
	return &Service{source: source, now: time.Now}
}

func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(snap)
	return &stats, nil
}

func (s *Service) EquipmentAvailability(ctx context.Context) ([]domain.CategoryAvailability, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeAvailability(snap), nil
}

func (s *Service) OverdueRentals(ctx context.Context) ([]domain.Rental, time.Time, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}
	now := s.now()
	return OverdueRentals(snap, now), now, nil
}

func ComputeStats(snap *repository.Snapshot) domain.DashboardStats {
	var stats domain.DashboardStats
	customers := make(map[int64]struct{})
	for i := range snap.Rentals {
		if snap.Rentals[i].IsActive() {
			stats.ActiveRentals++
			customers[snap.Rentals[i].CustomerID] = struct{}{}
		}
	}
	stats.ActiveCustomers = len(customers)

	for i := range snap.Equipment {
		if snap.Equipment[i].Status == domain.EquipmentAvailable {
			stats.AvailableEquipment++
		}
	}
	for i := range snap.Maintenance {
		if snap.Maintenance[i].Status.Pending() {
			stats.PendingMaintenance++
		}
	}
	return stats
}

// ComputeAvailability emits one entry per category in id order, including
// categories without equipment. Uncategorised equipment is not counted.
func ComputeAvailability(snap *repository.Snapshot) []domain.CategoryAvailability {
	type tally struct{ available, total int }
	byCategory := make(map[int64]*tally, len(snap.Categories))
	for _, cat := range snap.Categories {
		byCategory[cat.ID] = &tally{}
	}
	for i := range snap.Equipment {
		eq := &snap.Equipment[i]
		if eq.CategoryID == nil {
			continue
		}
		t, ok := byCategory[*eq.CategoryID]
		if !ok {
			continue
		}
		t.total++
		if eq.Status == domain.EquipmentAvailable {
			t.available++
		}
	}

	out := make([]domain.CategoryAvailability, 0, len(snap.Categories))
	for _, cat := range snap.Categories {
		t := byCategory[cat.ID]
		out = append(out, domain.CategoryAvailability{
			CategoryName: cat.Name,
			Available:    t.available,
			Total:        t.total,
		})
	}
	return out
}

// OverdueRentals lists active rentals whose end date is before now, oldest
// end date first.
func OverdueRentals(snap *repository.Snapshot, now time.Time) []domain.Rental {
	out := make([]domain.Rental, 0)
	for i := range snap.Rentals {
		if snap.Rentals[i].IsOverdue(now) {
			out = append(out, snap.Rentals[i])
		}
	}
	sortByEndDate(out)
	return out
}

func sortByEndDate(items []domain.Rental) {
	slices.SortStableFunc(items, func(a, b domain.Rental) int {
		return a.EndDate.Compare(b.EndDate)
	})
}
