package domain

import "time"

type Customer struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"not null"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	Address    *string   `json:"address"`
	City       *string   `json:"city"`
	State      *string   `json:"state"`
	PostalCode *string   `json:"postalCode"`
	Country    *string   `json:"country"`
	Notes      *string   `json:"notes" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Contact is a person attached to a customer company.
type Contact struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID int64     `json:"customerId" gorm:"not null;index"`
	FirstName  string    `json:"firstName" gorm:"not null"`
	LastName   string    `json:"lastName" gorm:"not null"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	Position   *string   `json:"position"`
	IsPrimary  bool      `json:"isPrimary" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"createdAt"`
}
