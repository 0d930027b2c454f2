package rental

import (
	"time"

	"equiprent/internal/domain"
	"equiprent/internal/pkg/utils"
	"equiprent/internal/repository"
)

// CreateRentalRequest accepts "completed" so historical rentals can be
// recorded; "overdue" is never accepted.
type CreateRentalRequest struct {
	CustomerID      int64               `json:"customerId" binding:"required,gt=0"`
	EquipmentID     int64               `json:"equipmentId" binding:"required,gt=0"`
	EquipmentUnitID *int64              `json:"equipmentUnitId" binding:"omitempty,gt=0"`
	StartDate       string              `json:"startDate" binding:"required"`
	EndDate         string              `json:"endDate" binding:"required"`
	ReturnDate      *string             `json:"returnDate"`
	DailyRate       *int64              `json:"dailyRate" binding:"omitempty,gte=0"`
	Status          domain.RentalStatus `json:"status" binding:"omitempty,oneof=active completed"`
	Notes           *string             `json:"notes"`
}

func (r CreateRentalRequest) toEntity() (*domain.Rental, string, error) {
	start, err := utils.ParseTime(r.StartDate)
	if err != nil {
		return nil, "startDate", err
	}
	end, err := utils.ParseTime(r.EndDate)
	if err != nil {
		return nil, "endDate", err
	}
	returned, err := utils.ParseTimePtr(r.ReturnDate)
	if err != nil {
		return nil, "returnDate", err
	}
	return &domain.Rental{
		CustomerID:      r.CustomerID,
		EquipmentID:     r.EquipmentID,
		EquipmentUnitID: r.EquipmentUnitID,
		StartDate:       start,
		EndDate:         end,
		ReturnDate:      returned,
		DailyRate:       r.DailyRate,
		Status:          r.Status,
		Notes:           r.Notes,
	}, "", nil
}

type UpdateRentalRequest struct {
	CustomerID      *int64               `json:"customerId" binding:"omitempty,gt=0"`
	EquipmentID     *int64               `json:"equipmentId" binding:"omitempty,gt=0"`
	EquipmentUnitID *int64               `json:"equipmentUnitId" binding:"omitempty,gt=0"`
	StartDate       *string              `json:"startDate"`
	EndDate         *string              `json:"endDate"`
	ReturnDate      *string              `json:"returnDate"`
	DailyRate       *int64               `json:"dailyRate" binding:"omitempty,gte=0"`
	Status          *domain.RentalStatus `json:"status" binding:"omitempty,oneof=active completed"`
	Notes           *string              `json:"notes"`
}

func (r UpdateRentalRequest) toPatch() (repository.RentalPatch, string, error) {
	p := repository.RentalPatch{
		CustomerID:      r.CustomerID,
		EquipmentID:     r.EquipmentID,
		EquipmentUnitID: r.EquipmentUnitID,
		DailyRate:       r.DailyRate,
		Status:          r.Status,
		Notes:           r.Notes,
	}
	dates := []struct {
		field string
		raw   *string
		dst   **time.Time
	}{
		{"startDate", r.StartDate, &p.StartDate},
		{"endDate", r.EndDate, &p.EndDate},
		{"returnDate", r.ReturnDate, &p.ReturnDate},
	}
	for _, d := range dates {
		t, err := utils.ParseTimePtr(d.raw)
		if err != nil {
			return repository.RentalPatch{}, d.field, err
		}
		*d.dst = t
	}
	return p, "", nil
}

// RentalView is a Rental plus the figures derived at read time.
type RentalView struct {
	domain.Rental
	DisplayStatus domain.RentalStatus `json:"displayStatus"`
	DurationDays  int64               `json:"durationDays"`
	TotalCost     int64               `json:"totalCost"`
}

func NewRentalView(r domain.Rental, now time.Time) RentalView {
	return RentalView{
		Rental:        r,
		DisplayStatus: r.DisplayStatus(now),
		DurationDays:  r.DurationDays(),
		TotalCost:     r.TotalCost(),
	}
}

func newRentalViews(items []domain.Rental, now time.Time) []RentalView {
	out := make([]RentalView, 0, len(items))
	for _, r := range items {
		out = append(out, NewRentalView(r, now))
	}
	return out
}
