package repository

import (
	"context"

	"equiprent/internal/domain"

	"gorm.io/gorm"
)

type CustomerPatch struct {
	Name       *string
	Email      *string
	Phone      *string
	Address    *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
	Notes      *string
}

func (p CustomerPatch) apply(c *domain.Customer) {
	setIf(&c.Name, p.Name)
	setPtrIf(&c.Email, p.Email)
	setPtrIf(&c.Phone, p.Phone)
	setPtrIf(&c.Address, p.Address)
	setPtrIf(&c.City, p.City)
	setPtrIf(&c.State, p.State)
	setPtrIf(&c.PostalCode, p.PostalCode)
	setPtrIf(&c.Country, p.Country)
	setPtrIf(&c.Notes, p.Notes)
}

func (s *Store) ListCustomers(ctx context.Context) (out []domain.Customer, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		out, err = listAll[domain.Customer](db)
		return err
	})
	return out, err
}

func (s *Store) GetCustomer(ctx context.Context, id int64) (out *domain.Customer, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		out, err = getByID[domain.Customer](db, id)
		return err
	})
	return out, err
}

func (s *Store) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	return s.write(ctx, func(tx *gorm.DB) error {
		c.ID = 0
		return tx.Create(c).Error
	})
}

func (s *Store) UpdateCustomer(ctx context.Context, id int64, p CustomerPatch) (out *domain.Customer, err error) {
	err = s.write(ctx, func(tx *gorm.DB) error {
		out, err = getByID[domain.Customer](tx, id)
		if err != nil {
			return err
		}
		p.apply(out)
		return tx.Save(out).Error
	})
	return out, err
}

// DeleteCustomer refuses while contacts or rentals still point at the customer.
func (s *Store) DeleteCustomer(ctx context.Context, id int64) error {
	return s.write(ctx, func(tx *gorm.DB) error {
		if _, err := getByID[domain.Customer](tx, id); err != nil {
			return err
		}
		if err := ensureUnused(tx, "customer", &domain.Contact{}, "contacts", "customer_id = ?", id); err != nil {
			return err
		}
		if err := ensureUnused(tx, "customer", &domain.Rental{}, "rentals", "customer_id = ?", id); err != nil {
			return err
		}
		return deleteByID[domain.Customer](tx, id)
	})
}

type ContactPatch struct {
	CustomerID *int64
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	Position   *string
	IsPrimary  *bool
}

func (p ContactPatch) apply(c *domain.Contact) {
	setIf(&c.CustomerID, p.CustomerID)
	setIf(&c.FirstName, p.FirstName)
	setIf(&c.LastName, p.LastName)
	setPtrIf(&c.Email, p.Email)
	setPtrIf(&c.Phone, p.Phone)
	setPtrIf(&c.Position, p.Position)
	setIf(&c.IsPrimary, p.IsPrimary)
}

// ListContacts returns every contact, or only those of customerID when set.
func (s *Store) ListContacts(ctx context.Context, customerID *int64) (out []domain.Contact, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		if customerID != nil {
			db = db.Where("customer_id = ?", *customerID)
		}
		out, err = listAll[domain.Contact](db)
		return err
	})
	return out, err
}

func (s *Store) GetContact(ctx context.Context, id int64) (out *domain.Contact, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		out, err = getByID[domain.Contact](db, id)
		return err
	})
	return out, err
}

func (s *Store) CreateContact(ctx context.Context, c *domain.Contact) error {
	return s.write(ctx, func(tx *gorm.DB) error {
		if _, err := requireRef[domain.Customer](tx, "customer", c.CustomerID); err != nil {
			return err
		}
		c.ID = 0
		return tx.Create(c).Error
	})
}

func (s *Store) UpdateContact(ctx context.Context, id int64, p ContactPatch) (out *domain.Contact, err error) {
	err = s.write(ctx, func(tx *gorm.DB) error {
		out, err = getByID[domain.Contact](tx, id)
		if err != nil {
			return err
		}
		if p.CustomerID != nil && *p.CustomerID != out.CustomerID {
			if _, err := requireRef[domain.Customer](tx, "customer", *p.CustomerID); err != nil {
				return err
			}
		}
		p.apply(out)
		return tx.Save(out).Error
	})
	return out, err
}

func (s *Store) DeleteContact(ctx context.Context, id int64) error {
	return s.write(ctx, func(tx *gorm.DB) error {
		return deleteByID[domain.Contact](tx, id)
	})
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setPtrIf[T any](dst **T, v *T) {
	if v != nil {
		val := *v
		*dst = &val
	}
}
