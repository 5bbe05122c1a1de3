package external

// IPLocationResponse represents the response from the IP geolocation API
type IPLocationResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city,omitempty"`
	Country string  `json:"countryCode,omitempty"`
}
