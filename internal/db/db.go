package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hartmannbarbearia/booking-api/internal/config"
	"github.com/hartmannbarbearia/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.ShopSettings{},
		&models.User{},
		&models.Service{},
		&models.WorkingHoursRule{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Dois clientes podem enxergar o mesmo slot "livre" ao mesmo tempo; o
	// índice parcial fecha a corrida no banco, não na UI.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_appointments_barber_slot
        ON appointments (barber_id, date)
        WHERE status <> 'canceled'
    `)

	db.Exec(`
        INSERT INTO shop_settings (id, name, timezone, slot_interval_minutes, auto_confirm, created_at, updated_at)
        VALUES (1, 'Hartmann Barbearia', ?, ?, true, NOW(), NOW())
        ON CONFLICT (id) DO NOTHING
    `, cfg.Timezone, cfg.SlotIntervalMinutes)

	return db
}
