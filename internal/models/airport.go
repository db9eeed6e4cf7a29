package models

import "database/sql"

// Airport is one entry of the IATA position index used by the build
// pipeline to geolocate airport codes found in raw trip exports.
type Airport struct {
	IATA    string         `json:"iata" db:"iata"`
	Lat     float64        `json:"lat" db:"lat"`
	Lon     float64        `json:"lon" db:"lon"`
	Name    string         `json:"name" db:"name"`
	Country sql.NullString `json:"country" db:"country"` // ISO code, unknown for some datasets
}
