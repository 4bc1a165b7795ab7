package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// farmer_id on customers is COLLATE NOCASE so the case-insensitive
// uniqueness invariant holds even if a write path skips the service check.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
    id TEXT PRIMARY KEY,
    farmer_id TEXT NOT NULL UNIQUE COLLATE NOCASE,
    farmer_name TEXT NOT NULL,
    address TEXT NOT NULL DEFAULT '',
    mobile_number TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS milk_entries (
    id TEXT PRIMARY KEY,
    session TEXT NOT NULL,
    date TEXT NOT NULL,
    farmer_id TEXT NOT NULL,
    farmer_name TEXT NOT NULL DEFAULT '',
    liters REAL NOT NULL,
    fat REAL NOT NULL,
    snf REAL NOT NULL,
    rate REAL NOT NULL,
    total_amount REAL NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS invoices (
    id TEXT PRIMARY KEY,
    farmer_id TEXT NOT NULL,
    farmer_name TEXT NOT NULL,
    period_start TEXT NOT NULL,
    period_end TEXT NOT NULL,
    total_liters REAL NOT NULL,
    gross_amount REAL NOT NULL,
    status TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    line_items TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS cash_advances (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL,
    farmer_id TEXT NOT NULL,
    farmer_name TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    amount REAL NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS supplement_entries (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL,
    farmer_id TEXT NOT NULL,
    farmer_name TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    amount REAL NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS rate_charts (
    id TEXT PRIMARY KEY,
    fat REAL NOT NULL,
    snf REAL NOT NULL,
    rate_per_liter REAL NOT NULL,
    effective_from TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS feed_entries (
    id TEXT PRIMARY KEY,
    farmer_id TEXT NOT NULL,
    farmer_name TEXT NOT NULL DEFAULT '',
    feed_name TEXT NOT NULL,
    rate REAL NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_milk_entries_date ON milk_entries(date);
CREATE INDEX IF NOT EXISTS idx_milk_entries_farmer_id ON milk_entries(farmer_id);
CREATE INDEX IF NOT EXISTS idx_invoices_farmer_id ON invoices(farmer_id);
CREATE INDEX IF NOT EXISTS idx_cash_advances_farmer_id ON cash_advances(farmer_id);
CREATE INDEX IF NOT EXISTS idx_supplement_entries_farmer_id ON supplement_entries(farmer_id);
CREATE INDEX IF NOT EXISTS idx_rate_charts_effective_from ON rate_charts(effective_from);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
