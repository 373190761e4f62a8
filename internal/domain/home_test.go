package domain

import "testing"

func TestResolveHome(t *testing.T) {
	tests := []struct {
		name      string
		long, lat string
		want      Coordinates
	}{
		{name: "override", long: "-120", lat: "47", want: Coordinates{Lon: -120, Lat: 47}},
		{name: "no params", want: Coordinates{Lon: -118.343, Lat: 46.0645}},
		{name: "zero falls back", long: "0", lat: "0", want: DefaultHome},
		{name: "garbage falls back", long: "abc", lat: "47", want: Coordinates{Lon: -118.343, Lat: 47}},
		{name: "only long", long: "-121.5", want: Coordinates{Lon: -121.5, Lat: 46.0645}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveHome(tt.long, tt.lat)
			if got != tt.want {
				t.Fatalf("ResolveHome(%q, %q) = %+v, want %+v", tt.long, tt.lat, got, tt.want)
			}
		})
	}
}
