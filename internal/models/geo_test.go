package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Coordinate
		wantErr bool
	}{
		{name: "valid", input: "18.5204,73.8567", want: Coordinate{Lat: 18.5204, Lng: 73.8567}},
		{name: "spaces", input: " 18.5 , -73.25 ", want: Coordinate{Lat: 18.5, Lng: -73.25}},
		{name: "missing lng", input: "18.5", wantErr: true},
		{name: "bad lat", input: "north,73.8", wantErr: true},
		{name: "bad lng", input: "18.5,east", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "18.520400,73.856700", Coordinate{Lat: 18.5204, Lng: 73.8567}.String())
}

func TestCoordinate_DistanceTo(t *testing.T) {
	// Один градус долготы на экваторе ≈ 111.19 км
	d := Coordinate{Lat: 0, Lng: 0}.DistanceTo(Coordinate{Lat: 0, Lng: 1})
	assert.InDelta(t, 111195, d, 100)

	assert.Zero(t, Coordinate{Lat: 18.5, Lng: 73.8}.DistanceTo(Coordinate{Lat: 18.5, Lng: 73.8}))
}

func TestGeometry_Length(t *testing.T) {
	g := Geometry{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 0, Lng: 2}}
	assert.InDelta(t, 2*111195, g.Length(), 200)
	assert.Zero(t, Geometry{}.Length())
}
