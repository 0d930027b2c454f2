package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"equiprent/internal/domain"

	"gorm.io/gorm"
)

// Store owns every entity table. All writes are serialised by mu and run in a
// single transaction, so unit counters are never updated concurrently and a
// rejected operation leaves nothing behind. Readers share mu.
type Store struct {
	db  *gorm.DB
	mu  sync.RWMutex
	now func() time.Time

	publisher Publisher
	pending   []Event
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Models lists every table the store needs, in migration order.
func Models() []any {
	return []any{
		&domain.User{},
		&domain.Customer{},
		&domain.Contact{},
		&domain.Brand{},
		&domain.Category{},
		&domain.Equipment{},
		&domain.EquipmentUnit{},
		&domain.Maintenance{},
		&domain.Rental{},
	}
}

// SetPublisher attaches the sink that receives events after each committed
// write.
func (s *Store) SetPublisher(p Publisher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publisher = p
}

// SetClock replaces time.Now, used for return/completion dates.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) write(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = s.pending[:0]
	if err := s.db.WithContext(ctx).Transaction(fn); err != nil {
		s.pending = s.pending[:0]
		return err
	}
	if s.publisher != nil {
		for _, ev := range s.pending {
			s.publisher.Publish(ev)
		}
	}
	s.pending = s.pending[:0]
	return nil
}

func (s *Store) read(ctx context.Context, fn func(db *gorm.DB) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.db.WithContext(ctx))
}

func (s *Store) emit(eventType string, id int64, data any) {
	s.pending = append(s.pending, Event{Type: eventType, EntityID: id, Data: data, At: s.now()})
}

func getByID[T any](db *gorm.DB, id int64) (*T, error) {
	rec := new(T)
	if err := db.First(rec, id).Error; err != nil {
		return nil, notFound(err)
	}
	return rec, nil
}

func listAll[T any](db *gorm.DB) ([]T, error) {
	out := make([]T, 0)
	if err := db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func deleteByID[T any](db *gorm.DB, id int64) error {
	tx := db.Delete(new(T), id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func count(db *gorm.DB, model any, query string, args ...any) (int64, error) {
	var n int64
	err := db.Model(model).Where(query, args...).Count(&n).Error
	return n, err
}

// requireRef fails with ErrReferenceNotFound when the referenced row is missing.
func requireRef[T any](db *gorm.DB, name string, id int64) (*T, error) {
	rec, err := getByID[T](db, id)
	if err == ErrNotFound {
		return nil, fmt.Errorf("%w: %s %d does not exist", ErrReferenceNotFound, name, id)
	}
	return rec, err
}

// ensureUnused fails with ErrInUse when query matches any row of model.
func ensureUnused(db *gorm.DB, what string, model any, by string, query string, args ...any) error {
	n, err := count(db, model, query, args...)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: %s is referenced by %d %s", ErrInUse, what, n, by)
	}
	return nil
}
