package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/groomshop/grooming-scheduler/internal/config"
	"github.com/groomshop/grooming-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
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
		&models.User{},
		&models.ServiceType{},
		&models.Appointment{},
		&models.AppointmentHistory{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	installDiscountFunction(db)
	seedServiceTypes(db)

	return db
}

// The discount rule lives in SQL: 10% off the list price once the user
// has five completed appointments created before the reference instant.
// Anchoring on the reference keeps reruns of the computation stable.
func installDiscountFunction(db *gorm.DB) {
	db.Exec(`
        CREATE OR REPLACE FUNCTION calculate_appointment_discount(
            p_user_id bigint,
            p_service_type_id bigint,
            p_reference timestamptz
        ) RETURNS numeric AS $$
        DECLARE
            v_price numeric;
            v_completed bigint;
        BEGIN
            SELECT price INTO v_price
            FROM service_types
            WHERE id = p_service_type_id;

            IF v_price IS NULL THEN
                RETURN 0;
            END IF;

            SELECT count(*) INTO v_completed
            FROM appointments
            WHERE user_id = p_user_id
              AND status = 'Completed'
              AND created_at < p_reference;

            IF v_completed >= 5 THEN
                RETURN round(v_price * 0.10, 2);
            END IF;

            RETURN 0;
        END;
        $$ LANGUAGE plpgsql
    `)
}

func seedServiceTypes(db *gorm.DB) {
	db.Exec(`
        INSERT INTO service_types (name, duration_minutes, price, created_at, updated_at)
        VALUES
            ('Wash', 30, 50.00, now(), now()),
            ('Full Groom', 90, 120.00, now(), now()),
            ('Nail Trim', 15, 25.00, now(), now()),
            ('De-shedding Treatment', 60, 85.00, now(), now())
        ON CONFLICT (name) DO NOTHING
    `)
}
