// file: internal/geo/geo_test.go
// version: 1.0.0
// guid: 9d4b2a1c-6e8f-4a3b-b5c7-0f1e2d3c4b5a

package geo

import (
	"math"
	"testing"
)

func TestDistanceTo(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Location
		wantMeters float64
		tolerance  float64
	}{
		{
			name:       "same point",
			a:          Location{Lat: 52.52, Lon: 13.405},
			b:          Location{Lat: 52.52, Lon: 13.405},
			wantMeters: 0,
			tolerance:  0.001,
		},
		{
			name: "berlin to potsdam",
			a:    Location{Lat: 52.5200, Lon: 13.4050},
			b:    Location{Lat: 52.3906, Lon: 13.0645},
			// ~27.3 km, allow for the spherical approximation
			wantMeters: 27300,
			tolerance:  300,
		},
		{
			name:       "one degree of latitude",
			a:          Location{Lat: 0, Lon: 10},
			b:          Location{Lat: 1, Lon: 10},
			wantMeters: 111195,
			tolerance:  200,
		},
		{
			name:       "across the antimeridian",
			a:          Location{Lat: 0, Lon: 179.9},
			b:          Location{Lat: 0, Lon: -179.9},
			wantMeters: 22239,
			tolerance:  100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.DistanceTo(tt.b).Meters()
			if math.Abs(got-tt.wantMeters) > tt.tolerance {
				t.Errorf("DistanceTo() = %.1f m, want %.1f ± %.1f", got, tt.wantMeters, tt.tolerance)
			}
		})
	}
}

func TestDistanceTo_Symmetric(t *testing.T) {
	a := Location{Lat: 48.8566, Lon: 2.3522}
	b := Location{Lat: 51.5074, Lon: -0.1278}
	if ab, ba := a.DistanceTo(b), b.DistanceTo(a); math.Abs(ab.Meters()-ba.Meters()) > 0.001 {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestDistanceComparisons(t *testing.T) {
	if !Meters(10).LessThanOrEqual(Meters(10)) {
		t.Error("10 <= 10 should hold")
	}
	if Meters(11).LessThanOrEqual(Meters(10)) {
		t.Error("11 <= 10 should not hold")
	}
	if !Meters(11).GreaterThan(Meters(10)) {
		t.Error("11 > 10 should hold")
	}
}

func TestIsZero(t *testing.T) {
	if !(Location{}).IsZero() {
		t.Error("zero location should report IsZero")
	}
	if (Location{Lat: 0.0001, Lon: 0}).IsZero() {
		t.Error("non-zero latitude should not report IsZero")
	}
}
