package domain

import (
	"math"
	"time"
)

type RentalStatus string

const (
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
	// RentalOverdue is only ever a display label, see Rental.DisplayStatus.
	RentalOverdue RentalStatus = "overdue"
)

type Rental struct {
	ID              int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID      int64        `json:"customerId" gorm:"not null;index"`
	EquipmentID     int64        `json:"equipmentId" gorm:"not null;index"`
	EquipmentUnitID *int64       `json:"equipmentUnitId" gorm:"index"`
	StartDate       time.Time    `json:"startDate" gorm:"not null"`
	EndDate         time.Time    `json:"endDate" gorm:"not null"`
	ReturnDate      *time.Time   `json:"returnDate"`
	DailyRate       *int64       `json:"dailyRate"`
	Status          RentalStatus `json:"status" gorm:"type:varchar(16);not null;default:active;index"`
	Notes           *string      `json:"notes" gorm:"type:text"`
	CreatedAt       time.Time    `json:"createdAt"`
}

func (r *Rental) IsActive() bool {
	return r.Status == RentalActive
}

// IsOverdue is true for an active rental whose end date has passed.
func (r *Rental) IsOverdue(now time.Time) bool {
	return r.IsActive() && r.EndDate.Before(now)
}

func (r *Rental) DisplayStatus(now time.Time) RentalStatus {
	if r.IsOverdue(now) {
		return RentalOverdue
	}
	return r.Status
}

// DurationDays counts started days from StartDate to ReturnDate, or to
// EndDate while the rental is still out.
func (r *Rental) DurationDays() int64 {
	end := r.EndDate
	if r.ReturnDate != nil {
		end = *r.ReturnDate
	}
	if !end.After(r.StartDate) {
		return 0
	}
	return int64(math.Ceil(end.Sub(r.StartDate).Hours() / 24))
}

func (r *Rental) TotalCost() int64 {
	if r.DailyRate == nil {
		return 0
	}
	return r.DurationDays() * *r.DailyRate
}
