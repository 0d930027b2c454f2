package domain

type DashboardStats struct {
	ActiveRentals      int `json:"activeRentals"`
	AvailableEquipment int `json:"availableEquipment"`
	PendingMaintenance int `json:"pendingMaintenance"`
	ActiveCustomers    int `json:"activeCustomers"`
}

type CategoryAvailability struct {
	CategoryName string `json:"categoryName"`
	Available    int    `json:"available"`
	Total        int    `json:"total"`
}
