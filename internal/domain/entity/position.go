package entity

// Position is a geographic coordinate pair in decimal degrees.
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is the result of a reverse geocoding lookup.
type Place struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// UnknownPlaceName is used for any field a reverse lookup could not resolve.
const UnknownPlaceName = "Unknown"

// UnknownPlace is returned when reverse geocoding fails entirely.
var UnknownPlace = Place{City: UnknownPlaceName, Country: UnknownPlaceName}
