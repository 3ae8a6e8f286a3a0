package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/venuecraft/banquet-service/internal/models"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Booking{},
		&models.Plan{},
		&models.VendorAssignment{},
		&models.MenuItem{},
		&models.Hall{},
		&models.Customer{},
		&models.Vendor{},
		&models.Expense{},
		&models.VendorPayment{},
		&models.TenantPolicy{},
	); err != nil {
		logrus.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: one vendor per category per plan, except the
	// unbounded "other" bucket.
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_vendor_category_exclusive
		ON vendor_assignments (plan_id, category)
		WHERE category <> 'other'
	`)

	// Partial unique index: one confirmed booking per hall/date/slot.
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_hall_slot_confirmed
		ON bookings (tenant_id, hall_id, event_date, slot)
		WHERE status = 'confirmed'
	`)

	return db
}
