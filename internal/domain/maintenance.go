package domain

import "time"

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in-progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
)

func (s MaintenanceStatus) Valid() bool {
	return s.rank() >= 0
}

func (s MaintenanceStatus) rank() int {
	switch s {
	case MaintenanceScheduled:
		return 0
	case MaintenanceInProgress:
		return 1
	case MaintenanceCompleted:
		return 2
	}
	return -1
}

// CanMoveTo reports whether the record may go from s to next. Maintenance
// only moves forward: scheduled, in-progress, completed.
func (s MaintenanceStatus) CanMoveTo(next MaintenanceStatus) bool {
	return next.Valid() && next.rank() >= s.rank()
}

// Pending is true for every status except completed.
func (s MaintenanceStatus) Pending() bool {
	return s != MaintenanceCompleted
}

type Maintenance struct {
	ID              int64             `json:"id" gorm:"primaryKey;autoIncrement"`
	EquipmentID     int64             `json:"equipmentId" gorm:"not null;index"`
	EquipmentUnitID *int64            `json:"equipmentUnitId" gorm:"index"`
	Type            string            `json:"type" gorm:"not null"`
	Description     string            `json:"description" gorm:"type:text;not null"`
	ScheduledDate   *time.Time        `json:"scheduledDate"`
	CompletedDate   *time.Time        `json:"completedDate"`
	Cost            *int64            `json:"cost"`
	Notes           *string           `json:"notes" gorm:"type:text"`
	Status          MaintenanceStatus `json:"status" gorm:"type:varchar(16);not null;default:scheduled;index"`
	CreatedAt       time.Time         `json:"createdAt"`
}

func (Maintenance) TableName() string { return "maintenance" }
