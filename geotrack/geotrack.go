package geotrack

import "encoding/json"

// Point is a single trail coordinate in decimal degrees.
type Point struct {
	Lat, Lon float64
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}

// DistanceMarker labels a trail position with the rounded cumulative
// distance walked from the start of the track.
type DistanceMarker struct {
	LatLng Point `json:"latLng"`
	Km     int   `json:"km"`
}
