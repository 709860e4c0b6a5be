package database

import (
	"log"

	"trucklog-backend/internal/config"
	"trucklog-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}

	// Trip migration: net_weight was introduced after the weighbridge
	// integration; older rows only carry the hand-entered tonnage column.
	// Backfill before AutoMigrate so reports never see a zero net weight
	// on legacy trips. (Manual on purpose: AutoMigrate adds the column
	// but would leave the backfill to us anyway.)
	if DB.Migrator().HasTable(&models.Trip{}) {
		if !DB.Migrator().HasColumn(&models.Trip{}, "net_weight") {
			log.Println("Adding trips.net_weight column...")
			if err := DB.Exec("ALTER TABLE trips ADD COLUMN net_weight DOUBLE PRECISION DEFAULT 0").Error; err != nil {
				log.Printf("Error adding net_weight column (may already exist): %v", err)
			}
		}

		var legacyCount int64
		DB.Raw("SELECT COUNT(*) FROM trips WHERE (net_weight IS NULL OR net_weight = 0) AND tonnage > 0").Scan(&legacyCount)
		if legacyCount > 0 {
			log.Printf("Backfilling net_weight from tonnage for %d legacy trips...", legacyCount)
			if err := DB.Exec("UPDATE trips SET net_weight = tonnage WHERE (net_weight IS NULL OR net_weight = 0) AND tonnage > 0").Error; err != nil {
				log.Printf("Error backfilling net_weight: %v", err)
			} else {
				log.Println("net_weight backfill complete")
			}
		}
	}

	err = DB.AutoMigrate(
		&models.User{},
		// Modern master data
		&models.VendorCustomer{},
		&models.MineQuarry{},
		&models.TransportOwnerProfile{},
		&models.RoyaltyOwnerProfile{},
		// Legacy master data (read-only, name-keyed)
		&models.Customer{},
		&models.Quarry{},
		&models.Vehicle{},
		&models.RoyaltyOwner{},
		&models.Material{},
		&models.RateCard{},
		&models.CapitalAccount{},
		// Event streams
		&models.Trip{},
		&models.Payment{},
		&models.Advance{},
		&models.DailyExpense{},
		&models.LedgerEntry{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate error: %v", err)
	}

	log.Println("Database connection established. Migration complete.")
}
