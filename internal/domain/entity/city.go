package entity

import "strconv"

// City is a persisted city selection. Its ID is derived from the coordinates.
type City struct {
	ID      string  `json:"id"`
	Name    string  `json:"name" validate:"required"`
	Lat     float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon     float64 `json:"lon" validate:"gte=-180,lte=180"`
	Country string  `json:"country,omitempty"`
}

// CityID formats lat and lon as "<lat>-<lon>" using the shortest decimal
// form that round-trips, so 51.5074 stays "51.5074" and 10.0 becomes "10".
func CityID(lat, lon float64) string {
	return formatCoordinate(lat) + "-" + formatCoordinate(lon)
}

// NewCity builds a City with its canonical id.
func NewCity(name string, lat, lon float64, country string) City {
	return City{
		ID:      CityID(lat, lon),
		Name:    name,
		Lat:     lat,
		Lon:     lon,
		Country: country,
	}
}

func formatCoordinate(v float64) string {
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
