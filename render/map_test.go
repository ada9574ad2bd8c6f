package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/begraf/trailpost/geotrack"
	"gitlab.com/begraf/trailpost/locker"
)

func TestPayloadCenterIsMiddleRoutePoint(t *testing.T) {
	route := []geotrack.Point{
		{Lat: 52.1, Lon: 21.0},
		{Lat: 52.2, Lon: 21.1},
		{Lat: 52.3, Lon: 21.2},
	}

	payload := Payload(route, nil, nil)

	assert.Equal(t, route[1], payload["center"])
}

func TestPayloadEmptyRoute(t *testing.T) {
	payload := Payload(nil, nil, nil)

	assert.Equal(t, geotrack.Point{}, payload["center"])
	assert.Empty(t, payload["route"])
	assert.Empty(t, payload["lockers"])
}

func TestBuildMapContainsRouteAndMarkers(t *testing.T) {
	route := []geotrack.Point{
		{Lat: 52.1, Lon: 21.0},
		{Lat: 52.2, Lon: 21.1},
		{Lat: 52.3, Lon: 21.2},
	}
	lockers := []locker.Locker{
		{
			Name:        "WAW01M",
			Description: "Near the station",
			Location:    locker.Location{Latitude: 52.2, Longitude: 21.05},
		},
	}
	markers := []geotrack.DistanceMarker{
		{LatLng: geotrack.Point{Lat: 52.2, Lon: 21.1}, Km: 10},
	}

	html, err := BuildMap(route, lockers, markers)
	require.NoError(t, err)

	doc := string(html)
	assert.Contains(t, doc, "mountMap")
	assert.Contains(t, doc, "leaflet")
	assert.Contains(t, doc, `"center":[52.2,21.1]`)
	assert.Contains(t, doc, "WAW01M")
	assert.Contains(t, doc, "Near the station")
	assert.Contains(t, doc, `"km":10`)
}

func TestBuildMapEmptyRoute(t *testing.T) {
	html, err := BuildMap(nil, nil, nil)
	require.NoError(t, err)

	doc := string(html)
	assert.Contains(t, doc, `"route":null`)
	assert.Contains(t, doc, `"center":[0,0]`)
}
