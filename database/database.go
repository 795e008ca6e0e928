package database

import (
	"log"

	"github.com/DurgaPydahSoft/client-sub008/config"
	"github.com/DurgaPydahSoft/client-sub008/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.Student{},
		&models.Course{},
		&models.Branch{},
		&models.Room{},
		&models.Occupant{},
		&models.RenewalRecord{},
		&models.RateSettings{},
		&models.User{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	// Beds are unique per room across students and staff/guest occupants.
	// AutoMigrate can't express a partial index, so create it directly.
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_occupants_room_bed
		ON occupants (room_number, bed_number)
		WHERE checkout_date IS NULL AND bed_number <> ''`)
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_students_room_bed
		ON students (room_number, bed_number)
		WHERE bed_number <> ''`)
}
