package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'property_status') THEN
			CREATE TYPE property_status AS ENUM ('AVAILABLE', 'RENTED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'agreement_status') THEN
			CREATE TYPE agreement_status AS ENUM ('PENDING', 'APPROVED');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL,
		email VARCHAR(254) NOT NULL,
		phone VARCHAR(32),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (email);`,
	`CREATE TABLE IF NOT EXISTS landlords (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL,
		email VARCHAR(254) NOT NULL,
		phone VARCHAR(32),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_landlords_email ON landlords (email);`,
	`CREATE TABLE IF NOT EXISTS properties (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		landlord_id UUID NOT NULL REFERENCES landlords(id),
		name VARCHAR(128) NOT NULL,
		address_line VARCHAR(256),
		city VARCHAR(64),
		state VARCHAR(64),
		rent NUMERIC(12,2) NOT NULL,
		status property_status NOT NULL DEFAULT 'AVAILABLE',
		tenant_id UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_properties_landlord_id ON properties (landlord_id);`,
	`CREATE INDEX IF NOT EXISTS idx_properties_status ON properties (status);`,
	`CREATE TABLE IF NOT EXISTS agreements (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		property_id UUID NOT NULL REFERENCES properties(id),
		tenant_id UUID NOT NULL REFERENCES users(id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		rent NUMERIC(12,2) NOT NULL,
		status agreement_status NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT chk_agreements_dates CHECK (start_date < end_date)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_agreements_property_id ON agreements (property_id);`,
	`CREATE INDEX IF NOT EXISTS idx_agreements_tenant_id ON agreements (tenant_id);`,
	`CREATE INDEX IF NOT EXISTS idx_agreements_status ON agreements (status);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
