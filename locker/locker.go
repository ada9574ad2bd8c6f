// Package locker talks to a ShipX-compatible point locator API and collects
// the parcel lockers found near a trail.
package locker

// Location is the geographic position of a locker as reported by the
// provider.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Locker is a single parcel locker record returned by the locator API.
// Names are unique per provider and serve as the record identity.
type Locker struct {
	Name        string   `json:"name"`
	Description string   `json:"location_description,omitempty"`
	Location    Location `json:"location"`
}
