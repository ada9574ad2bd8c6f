package geotrack

import (
	"math"

	"github.com/jftuga/geodist"
)

func distanceKm(a, b Point) float64 {
	_, km := geodist.HaversineDistance(
		geodist.Coord{Lat: a.Lat, Lon: a.Lon},
		geodist.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	return km
}

// SampleEvery reduces a raw track to points spaced roughly intervalKm apart.
// The first point is always part of the sample. Distance is accumulated
// between the last accepted point and each subsequent raw point; once the
// accumulator reaches the interval the current point is accepted and the
// accumulator resets.
func SampleEvery(points []Point, intervalKm float64) []Point {
	if len(points) == 0 {
		return nil
	}

	sampled := []Point{points[0]}
	lastAccepted := points[0]
	accumulated := 0.0

	for _, p := range points[1:] {
		accumulated += distanceKm(lastAccepted, p)

		if accumulated >= intervalKm {
			sampled = append(sampled, p)
			lastAccepted = p
			accumulated = 0.0
		}
	}

	return sampled
}

// DistanceMarkers walks the raw track summing distance between consecutive
// points and emits a marker whenever the total distance has grown by at
// least intervalKm since the previously emitted marker. The recorded
// kilometer value is the rounded total at the marker's position.
func DistanceMarkers(points []Point, intervalKm float64) []DistanceMarker {
	if len(points) == 0 {
		return nil
	}

	var markers []DistanceMarker
	total := 0.0
	last := points[0]

	for _, p := range points[1:] {
		total += distanceKm(last, p)

		if len(markers) == 0 || total-float64(markers[len(markers)-1].Km) >= intervalKm {
			markers = append(markers, DistanceMarker{
				LatLng: p,
				Km:     int(math.Round(total)),
			})
		}

		last = p
	}

	return markers
}
