package repository

import (
	"context"

	"equiprent/internal/domain"

	"gorm.io/gorm"
)

// Snapshot is a consistent copy of the tables the dashboard aggregates over.
type Snapshot struct {
	Categories  []domain.Category
	Equipment   []domain.Equipment
	Maintenance []domain.Maintenance
	Rentals     []domain.Rental
}

// Snapshot loads every collection under one read lock and one transaction,
// so no write can land between the individual scans.
func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			var err error
			if snap.Categories, err = listAll[domain.Category](tx); err != nil {
				return err
			}
			if snap.Equipment, err = listAll[domain.Equipment](tx); err != nil {
				return err
			}
			if snap.Maintenance, err = listAll[domain.Maintenance](tx); err != nil {
				return err
			}
			snap.Rentals, err = listAll[domain.Rental](tx)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}
