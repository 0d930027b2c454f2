package customer

import (
	"context"

	"equiprent/internal/domain"
	"equiprent/internal/repository"
)

// Store is the slice of repository.Store the customer handlers use.
type Store interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	UpdateCustomer(ctx context.Context, id int64, p repository.CustomerPatch) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error

	ListContacts(ctx context.Context, customerID *int64) ([]domain.Contact, error)
	GetContact(ctx context.Context, id int64) (*domain.Contact, error)
	CreateContact(ctx context.Context, c *domain.Contact) error
	UpdateContact(ctx context.Context, id int64, p repository.ContactPatch) (*domain.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}
