package database

// Schema statements are idempotent so EnsureSchema can run on every start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS reservations (
		id                   UUID PRIMARY KEY,
		name                 TEXT NOT NULL,
		email                TEXT NOT NULL,
		phone                TEXT NOT NULL,
		date                 TEXT NOT NULL,
		time                 TEXT NOT NULL,
		people               TEXT NOT NULL DEFAULT '',
		activities           JSONB NOT NULL DEFAULT '[]',
		food                 TEXT[] NOT NULL DEFAULT '{}',
		drinks               TEXT[] NOT NULL DEFAULT '{}',
		menu_items           JSONB NOT NULL DEFAULT '[]',
		accommodation        JSONB NOT NULL DEFAULT '[]',
		accommodation_types  TEXT[] NOT NULL DEFAULT '{}',
		check_in_date        TEXT,
		check_out_date       TEXT,
		check_in_time        TEXT,
		check_out_time       TEXT,
		selected_ground      TEXT,
		ground_capacity      INTEGER,
		ground_date          TEXT,
		total_cost           BIGINT NOT NULL DEFAULT 0,
		status               TEXT NOT NULL DEFAULT 'Pending',
		created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	// One active reservation per ground per date. The database, not the
	// advisory availability check, is the arbiter under concurrent submits.
	`CREATE UNIQUE INDEX IF NOT EXISTS reservations_ground_date_idx
		ON reservations (selected_ground, ground_date)
		WHERE selected_ground IS NOT NULL AND status <> 'Cancelled'`,

	`CREATE INDEX IF NOT EXISTS reservations_stay_idx
		ON reservations (check_in_date, check_out_date)
		WHERE check_in_date IS NOT NULL AND check_out_date IS NOT NULL`,

	`CREATE TABLE IF NOT EXISTS transactions (
		id                   UUID PRIMARY KEY,
		transaction_id       TEXT NOT NULL DEFAULT '',
		phone                TEXT NOT NULL DEFAULT '',
		amount               BIGINT NOT NULL DEFAULT 0,
		merchant_request_id  TEXT NOT NULL DEFAULT '',
		status               TEXT NOT NULL,
		failure_reason       TEXT,
		transaction_date     TIMESTAMPTZ NOT NULL,
		created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS transactions_merchant_request_idx
		ON transactions (merchant_request_id)`,
}

// EnsureSchema creates the tables and indexes the repositories expect
func EnsureSchema(db DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
