package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/travelmap-backend-go/internal/database"
	"github.com/jengzang/travelmap-backend-go/internal/models"
)

// AirportRepository caches the airport position index in sqlite so the
// build pipeline does not re-parse the upstream datasets on every run.
type AirportRepository struct {
	db *sql.DB
}

// NewAirportRepository creates a new airport repository and ensures its
// schema exists.
func NewAirportRepository(db *sql.DB) (*AirportRepository, error) {
	r := &AirportRepository{db: db}
	if err := r.initSchema(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AirportRepository) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS airports (
			iata TEXT PRIMARY KEY,
			lat REAL NOT NULL,
			lon REAL NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			country TEXT,
			source TEXT NOT NULL DEFAULT ''
		)
	`
	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create airports table: %w", err)
	}
	return nil
}

// Count returns the number of cached airports.
func (r *AirportRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM airports").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count airports: %w", err)
	}
	return n, nil
}

// Import bulk-inserts airports inside one transaction. Existing codes are
// kept: the first dataset to define a code wins, matching the upstream
// precedence (OurAirports first, OpenFlights fills gaps, patches last).
func (r *AirportRepository) Import(airports []models.Airport, source string) (int, error) {
	var inserted int
	err := database.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT OR IGNORE INTO airports (iata, lat, lon, name, country, source)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, a := range airports {
			res, err := stmt.Exec(a.IATA, a.Lat, a.Lon, a.Name, a.Country, source)
			if err != nil {
				return fmt.Errorf("failed to insert airport %s: %w", a.IATA, err)
			}
			if n, _ := res.RowsAffected(); n > 0 {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// Lookup resolves an IATA code to its cached airport, nil when unknown.
func (r *AirportRepository) Lookup(iata string) (*models.Airport, error) {
	a := &models.Airport{}
	err := r.db.QueryRow(
		"SELECT iata, lat, lon, name, country FROM airports WHERE iata = ?", iata,
	).Scan(&a.IATA, &a.Lat, &a.Lon, &a.Name, &a.Country)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up airport %s: %w", iata, err)
	}
	return a, nil
}
