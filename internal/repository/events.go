package repository

import "time"

const (
	EventEquipmentStatus    = "equipment.status"
	EventUnitStatus         = "equipment_unit.status"
	EventRentalCreated      = "rental.created"
	EventRentalCompleted    = "rental.completed"
	EventRentalDeleted      = "rental.deleted"
	EventMaintenanceCreated = "maintenance.created"
	EventMaintenanceUpdated = "maintenance.updated"
	EventMaintenanceDeleted = "maintenance.deleted"
	EventRentalOverdue      = "rental.overdue"
)

// Event describes a committed change that dashboards may want to hear about.
type Event struct {
	Type     string    `json:"type"`
	EntityID int64     `json:"entityId"`
	Data     any       `json:"data,omitempty"`
	At       time.Time `json:"at"`
}

type Publisher interface {
	Publish(ev Event)
}
