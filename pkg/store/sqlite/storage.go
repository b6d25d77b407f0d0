package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const ReportsSchema = `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		test_type TEXT NOT NULL,
		test_type_display TEXT NOT NULL,
		filename TEXT NOT NULL DEFAULT '',
		summary TEXT NOT NULL DEFAULT '',
		payload TEXT NOT NULL,
		liked INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);
`

const SettingsSchema = `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
`

var bootQueries = []string{
	ReportsSchema,
	SettingsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// the driver is not safe for concurrent writers on one file
	db.SetMaxOpenConns(1)

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return db, nil
}
