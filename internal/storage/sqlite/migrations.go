package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist. Nested structures (the full
// extraction record, participant lists, split results) are stored as JSON
// text; the scalar columns exist for indexing and inspection.
const schema = `
CREATE TABLE IF NOT EXISTS receipts (
    id TEXT PRIMARY KEY,
    store_name TEXT NOT NULL,
    total_amount REAL,
    subtotal_amount REAL,
    tax_amount REAL,
    record TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS bill_splits (
    id TEXT PRIMARY KEY,
    receipt_data TEXT NOT NULL,
    participants TEXT NOT NULL,
    split_method TEXT NOT NULL,
    tax_rate REAL NOT NULL,
    tip_percentage REAL NOT NULL,
    split_result TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_receipts_created_at ON receipts(created_at);
CREATE INDEX IF NOT EXISTS idx_bill_splits_created_at ON bill_splits(created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
