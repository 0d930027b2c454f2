package domain

import "time"

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentRented      EquipmentStatus = "rented"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentUnavailable EquipmentStatus = "unavailable"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentAvailable, EquipmentRented, EquipmentMaintenance, EquipmentUnavailable:
		return true
	}
	return false
}

// Equipment is a rentable model. Status is derived from rentals and
// maintenance; TotalUnits and AvailableUnits are counters kept in step with
// the EquipmentUnit rows by the store.
type Equipment struct {
	ID             int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string          `json:"name" gorm:"not null"`
	Model          *string         `json:"model"`
	BrandID        *int64          `json:"brandId" gorm:"index"`
	CategoryID     *int64          `json:"categoryId" gorm:"index"`
	DailyRate      int64           `json:"dailyRate" gorm:"not null;default:0"`
	Status         EquipmentStatus `json:"status" gorm:"type:varchar(16);not null;default:available;index"`
	TotalUnits     int             `json:"totalUnits" gorm:"not null;default:0"`
	AvailableUnits int             `json:"availableUnits" gorm:"not null;default:0"`
	Notes          *string         `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func (Equipment) TableName() string { return "equipment" }

// EquipmentUnit is one serial-numbered physical item of an Equipment model.
type EquipmentUnit struct {
	ID            int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	EquipmentID   int64           `json:"equipmentId" gorm:"not null;index"`
	SerialNumber  string          `json:"serialNumber" gorm:"not null"`
	PurchaseDate  *time.Time      `json:"purchaseDate"`
	PurchasePrice *int64          `json:"purchasePrice"`
	Status        EquipmentStatus `json:"status" gorm:"type:varchar(16);not null;default:available;index"`
	Condition     *string         `json:"condition"`
	Notes         *string         `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time       `json:"createdAt"`
}
