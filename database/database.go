package database

import (
	"fmt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"motogarage-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Motorcycle{},
		&models.BookingRequest{},
		&models.ServiceDocument{},
		&models.Shop{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Composite index backing the directory's country/city/name ordering.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_shops_country_city_name ON shops(country, city, name)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for shops: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_user_created ON booking_requests(user_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for booking_requests: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_documents_motorcycle_created ON service_documents(motorcycle_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for service_documents: %v\n", err)
	}

	return nil
}

// SeedData loads a handful of directory rows so a development install has
// something to browse. Production shop data comes from the external
// ingestion job.
func SeedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Shop{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	shops := []models.Shop{
		{Name: "Moto Technik Berlin", Country: "Germany", City: "Berlin", Address: strPtr("Kurfürstendamm 21"), Phone: strPtr("+49 30 1234567"), Rating: floatPtr(4.7), ReviewsCount: intPtr(182)},
		{Name: "Zweirad Meister", Country: "Germany", City: "Munich", Address: strPtr("Leopoldstraße 55"), Rating: floatPtr(4.4), ReviewsCount: intPtr(96)},
		{Name: "Atelier Moto Paris", Country: "France", City: "Paris", Address: strPtr("Rue de Rivoli 12"), Phone: strPtr("+33 1 44556677"), Rating: floatPtr(4.6), ReviewsCount: intPtr(240)},
		{Name: "Garage Deux Roues", Country: "France", City: "Lyon", Rating: floatPtr(4.2), ReviewsCount: intPtr(63)},
		{Name: "Officina Moto Roma", Country: "Italy", City: "Rome", Address: strPtr("Via del Corso 88"), Rating: floatPtr(4.8), ReviewsCount: intPtr(310)},
		{Name: "Moto Service Milano", Country: "Italy", City: "Milan", Rating: floatPtr(4.3), ReviewsCount: intPtr(127)},
	}

	if err := db.Create(&shops).Error; err != nil {
		return fmt.Errorf("failed to seed shops: %w", err)
	}

	return nil
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }
