// Seed initializes a fresh database with the default pricing table and an
// administrator account. Safe to run repeatedly: existing rows are left
// untouched.
package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type pricingRule struct {
	deliverySpeed int
	baseRate      int64
	ratePerKg     int64
}

// Default rates per delivery-speed tier, in cents. Speeds are stored as
// enum ordinals: 1 overnight, 2 two-day, 3 standard, 4 economy.
var defaultRules = []pricingRule{
	{deliverySpeed: 1, baseRate: 20000, ratePerKg: 2000},
	{deliverySpeed: 2, baseRate: 15000, ratePerKg: 1500},
	{deliverySpeed: 3, baseRate: 10000, ratePerKg: 1000},
	{deliverySpeed: 4, baseRate: 8000, ratePerKg: 500},
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_SSLMODE"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	if err = seedPricingRules(db); err != nil {
		log.Fatalf("Error seeding pricing rules: %v", err)
	}

	if err = seedAdminUser(db); err != nil {
		log.Fatalf("Error seeding admin user: %v", err)
	}

	log.Info("Seeding completed")
}

func seedPricingRules(db *sql.DB) error {
	for _, rule := range defaultRules {
		_, err := db.Exec(
			`INSERT INTO pricing_rules (id, delivery_speed, base_rate, rate_per_kg, rate_per_km, updated_at)
			 VALUES ($1, $2, $3, $4, 0, $5)
			 ON CONFLICT (delivery_speed) DO NOTHING`,
			uuid.New(), rule.deliverySpeed, rule.baseRate, rule.ratePerKg, time.Now().UTC(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedAdminUser(db *sql.DB) error {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is not set")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// Role ordinal 4 is admin.
	_, err = db.Exec(
		`INSERT INTO users (id, username, password_hash, full_name, email, phone, role, department)
		 VALUES ($1, 'admin', $2, 'System Administrator', 'admin@parceltrack.local', '', 4, 'operations')
		 ON CONFLICT (username) DO NOTHING`,
		uuid.New(), string(hash),
	)
	return err
}
