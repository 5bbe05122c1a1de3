package entity

import (
	"math"
	"testing"
)

func TestCityID(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     string
	}{
		{name: "london", lat: 51.5074, lon: -0.1278, want: "51.5074--0.1278"},
		{name: "whole degrees", lat: 10, lon: 20, want: "10-20"},
		{name: "negative zero", lat: math.Copysign(0, -1), lon: 0, want: "0-0"},
		{name: "tiny value stays decimal", lat: 0.0000001, lon: 1.5, want: "0.0000001-1.5"},
		{name: "southern hemisphere", lat: -33.8688, lon: 151.2093, want: "-33.8688-151.2093"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CityID(tt.lat, tt.lon); got != tt.want {
				t.Errorf("CityID(%v, %v) = %q, want %q", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestNewCity(t *testing.T) {
	city := NewCity("Paris", 48.8566, 2.3522, "FR")
	if city.ID != "48.8566-2.3522" || city.Name != "Paris" || city.Country != "FR" {
		t.Errorf("NewCity = %+v", city)
	}
}

func TestPlacementValid(t *testing.T) {
	if !PlacementBottomRight.Valid() || !Placement("center").Valid() {
		t.Error("known placements should be valid")
	}
	if Placement("bottom").Valid() || Placement("").Valid() {
		t.Error("unknown placements should be invalid")
	}
}
