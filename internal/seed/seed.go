package seed

import (
	"context"
	"fmt"
	"time"

	"equiprent/internal/domain"
	"equiprent/internal/logger"
	"equiprent/internal/repository"
)

// Options tweak the fixture run. An empty AdminPassword skips the stub user.
type Options struct {
	AdminUsername string
	AdminPassword string
}

// Run loads the demo fixture set through the store, so every counter and
// derived status is produced by the normal write path. It does nothing when
// categories already exist.
func Run(ctx context.Context, store *repository.Store, now time.Time, opts Options) error {
	existing, err := store.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("seed skipped, data already present")
		return nil
	}

	if opts.AdminPassword != "" {
		username := opts.AdminUsername
		if username == "" {
			username = "admin"
		}
		if _, err := store.CreateUser(ctx, username, opts.AdminPassword); err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
	}

	categories := []domain.Category{
		{Name: "Excavators", Description: ptr("Earth moving equipment for digging")},
		{Name: "Bulldozers", Description: ptr("Heavy equipment for earth moving and grading")},
		{Name: "Loaders", Description: ptr("Equipment used for loading materials")},
		{Name: "Generators", Description: ptr("Portable power generation equipment")},
		{Name: "Concrete Equipment", Description: ptr("Equipment for concrete work")},
	}
	for i := range categories {
		if err := store.CreateCategory(ctx, &categories[i]); err != nil {
			return fmt.Errorf("seed category: %w", err)
		}
	}

	brands := []domain.Brand{
		{Name: "Caterpillar", Description: ptr("American heavy equipment manufacturer")},
		{Name: "John Deere", Description: ptr("American manufacturer of agricultural and construction equipment")},
		{Name: "Komatsu", Description: ptr("Japanese manufacturer of construction equipment")},
		{Name: "Bobcat", Description: ptr("American manufacturer of farm and construction equipment")},
		{Name: "Volvo", Description: ptr("Swedish multinational manufacturing company")},
	}
	for i := range brands {
		if err := store.CreateBrand(ctx, &brands[i]); err != nil {
			return fmt.Errorf("seed brand: %w", err)
		}
	}

	customers := []domain.Customer{
		customer("BuildWell Construction", "info@buildwell.com", "555-123-4567", "123 Builder Ave", "Construction City", "CA", "90210", "Regular customer since 2020"),
		customer("Skyline Developers", "contact@skylinedev.com", "555-987-6543", "456 Skyline Blvd", "Highland", "NY", "10001", ""),
		customer("Metro Engineering", "engineering@metro.com", "555-246-8101", "789 Metro St", "Urbanville", "IL", "60601", "Prefers monthly billing"),
		customer("Foundation Experts", "info@foundationexperts.com", "555-369-8520", "101 Foundation Rd", "Bedrock", "TX", "75001", ""),
		customer("Coastal Builders", "info@coastalbuilders.com", "555-741-9630", "202 Coastal Hwy", "Oceanside", "FL", "33101", "Seasonal projects only"),
	}
	for i := range customers {
		if err := store.CreateCustomer(ctx, &customers[i]); err != nil {
			return fmt.Errorf("seed customer: %w", err)
		}
	}

	contacts := []domain.Contact{
		{CustomerID: customers[0].ID, FirstName: "John", LastName: "Builder", Email: ptr("john@buildwell.com"), Phone: ptr("555-111-2222"), Position: ptr("Project Manager"), IsPrimary: true},
		{CustomerID: customers[1].ID, FirstName: "Sarah", LastName: "Skyline", Email: ptr("sarah@skylinedev.com"), Phone: ptr("555-333-4444"), Position: ptr("CEO"), IsPrimary: true},
	}
	for i := range contacts {
		if err := store.CreateContact(ctx, &contacts[i]); err != nil {
			return fmt.Errorf("seed contact: %w", err)
		}
	}

	equipment := make([]domain.Equipment, 12)
	for i := range equipment {
		cat := categories[i%len(categories)]
		equipment[i] = domain.Equipment{
			Name:       fmt.Sprintf("%s %d", cat.Name, i+1),
			Model:      ptr(fmt.Sprintf("Model %c", 'A'+rune(i%26))),
			BrandID:    ptr(brands[i%len(brands)].ID),
			CategoryID: ptr(cat.ID),
			DailyRate:  int64(100 + i*25),
			Notes:      ptr("Available for rental"),
		}
		if err := store.CreateEquipment(ctx, &equipment[i]); err != nil {
			return fmt.Errorf("seed equipment: %w", err)
		}
	}

	units := make([]domain.EquipmentUnit, 24)
	for i := range units {
		eq := equipment[i%len(equipment)]
		units[i] = domain.EquipmentUnit{
			EquipmentID:   eq.ID,
			SerialNumber:  fmt.Sprintf("SN%d-%d", eq.ID, i+100),
			PurchaseDate:  ptr(time.Date(2022, time.Month(i%12+1), i%28+1, 0, 0, 0, 0, time.UTC)),
			PurchasePrice: ptr(int64(10000 + i*2000)),
			Condition:     ptr("good"),
			Notes:         ptr("Ready for rental"),
		}
		if err := store.CreateUnit(ctx, &units[i]); err != nil {
			return fmt.Errorf("seed unit: %w", err)
		}
	}

	maintenanceTypes := []string{"Scheduled", "Emergency", "Preventive"}
	for i := 0; i < 5; i++ {
		eq := equipment[i%len(equipment)]
		kind := maintenanceTypes[i%len(maintenanceTypes)]
		m := &domain.Maintenance{
			EquipmentID:     eq.ID,
			EquipmentUnitID: ptr(units[i].ID),
			Type:            kind,
			Description:     fmt.Sprintf("%s maintenance for %s", kind, eq.Name),
			ScheduledDate:   ptr(now.AddDate(0, 0, 3+i)),
			Status:          domain.MaintenanceScheduled,
			Notes:           ptr("Regular maintenance check"),
		}
		if err := store.CreateMaintenance(ctx, m); err != nil {
			return fmt.Errorf("seed maintenance: %w", err)
		}
	}

	// Units 18-21 belong to four different models, one active rental each.
	for i := 0; i < 4; i++ {
		unit := units[18+i]
		start := now.AddDate(0, 0, -(10 + i))
		r := &domain.Rental{
			CustomerID:      customers[i%len(customers)].ID,
			EquipmentID:     unit.EquipmentID,
			EquipmentUnitID: ptr(unit.ID),
			StartDate:       start,
			EndDate:         start.AddDate(0, 0, 30),
			DailyRate:       ptr(int64(100 + i*50)),
			Status:          domain.RentalActive,
			Notes:           ptr("Regular rental agreement"),
		}
		if err := store.CreateRental(ctx, r); err != nil {
			return fmt.Errorf("seed rental: %w", err)
		}
	}

	pastStart := now.AddDate(0, 0, -30)
	pastEnd := pastStart.AddDate(0, 0, 15)
	done := &domain.Rental{
		CustomerID:      customers[4].ID,
		EquipmentID:     equipment[4].ID,
		EquipmentUnitID: ptr(units[16].ID),
		StartDate:       pastStart,
		EndDate:         pastEnd,
		ReturnDate:      ptr(pastEnd),
		DailyRate:       ptr(int64(150)),
		Status:          domain.RentalCompleted,
		Notes:           ptr("Returned on time"),
	}
	if err := store.CreateRental(ctx, done); err != nil {
		return fmt.Errorf("seed completed rental: %w", err)
	}

	logger.Info("seed data loaded",
		"categories", len(categories),
		"customers", len(customers),
		"equipment", len(equipment),
		"units", len(units),
	)
	return nil
}

func customer(name, email, phone, address, city, state, postal, notes string) domain.Customer {
	c := domain.Customer{
		Name:       name,
		Email:      ptr(email),
		Phone:      ptr(phone),
		Address:    ptr(address),
		City:       ptr(city),
		State:      ptr(state),
		PostalCode: ptr(postal),
		Country:    ptr("USA"),
	}
	if notes != "" {
		c.Notes = ptr(notes)
	}
	return c
}

func ptr[T any](v T) *T {
	return &v
}
