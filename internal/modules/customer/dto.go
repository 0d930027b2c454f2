package customer

import (
	"equiprent/internal/domain"
	"equiprent/internal/repository"
)

type CreateCustomerRequest struct {
	Name       string  `json:"name" binding:"required,max=255"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postalCode"`
	Country    *string `json:"country"`
	Notes      *string `json:"notes"`
}

func (r CreateCustomerRequest) toEntity() *domain.Customer {
	return &domain.Customer{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Notes:      r.Notes,
	}
}

type UpdateCustomerRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postalCode"`
	Country    *string `json:"country"`
	Notes      *string `json:"notes"`
}

func (r UpdateCustomerRequest) toPatch() repository.CustomerPatch {
	return repository.CustomerPatch{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Notes:      r.Notes,
	}
}

type CreateContactRequest struct {
	CustomerID int64   `json:"customerId" binding:"required,gt=0"`
	FirstName  string  `json:"firstName" binding:"required,max=100"`
	LastName   string  `json:"lastName" binding:"required,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	Position   *string `json:"position"`
	IsPrimary  bool    `json:"isPrimary"`
}

func (r CreateContactRequest) toEntity() *domain.Contact {
	return &domain.Contact{
		CustomerID: r.CustomerID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Position:   r.Position,
		IsPrimary:  r.IsPrimary,
	}
}

type UpdateContactRequest struct {
	CustomerID *int64  `json:"customerId" binding:"omitempty,gt=0"`
	FirstName  *string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName   *string `json:"lastName" binding:"omitempty,min=1,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	Position   *string `json:"position"`
	IsPrimary  *bool   `json:"isPrimary"`
}

func (r UpdateContactRequest) toPatch() repository.ContactPatch {
	return repository.ContactPatch{
		CustomerID: r.CustomerID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Position:   r.Position,
		IsPrimary:  r.IsPrimary,
	}
}
