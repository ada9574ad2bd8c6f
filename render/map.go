package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"gitlab.com/begraf/trailpost/geotrack"
	"gitlab.com/begraf/trailpost/locker"
)

type lockerMarker struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	LatLng      geotrack.Point `json:"latLng"`
}

// Payload is the JSON structure handed to the in-page map bootstrap. The
// center is the middle element of the route by index; an empty route falls
// back to the zero coordinate and draws no line.
func Payload(route []geotrack.Point, lockers []locker.Locker, markers []geotrack.DistanceMarker) map[string]any {
	center := geotrack.Point{}
	if len(route) > 0 {
		center = route[len(route)/2]
	}

	lockerMarkers := make([]lockerMarker, 0, len(lockers))
	for _, l := range lockers {
		lockerMarkers = append(lockerMarkers, lockerMarker{
			Name:        l.Name,
			Description: l.Description,
			LatLng:      geotrack.Point{Lat: l.Location.Latitude, Lon: l.Location.Longitude},
		})
	}

	return map[string]any{
		"center":  center,
		"route":   route,
		"lockers": lockerMarkers,
		"markers": markers,
	}
}

// BuildMap composes the Leaflet document for the route line, the locker pins
// and the distance labels and returns the standalone HTML page.
func BuildMap(route []geotrack.Point, lockers []locker.Locker, markers []geotrack.DistanceMarker) ([]byte, error) {
	payloadBytes, err := json.Marshal(Payload(route, lockers, markers))
	if err != nil {
		return nil, fmt.Errorf("could not serialize map payload: %w", err)
	}

	var mapHTML bytes.Buffer

	_, _ = mapHTML.WriteString(`<div class="gpx-map" id="map">`)

	_, _ = mapHTML.WriteString(fmt.Sprintf(`
	<script>
	(function () {
		const mapData = %s;
		let mapContainer = document.currentScript.parentElement;
		window.addEventListener('DOMContentLoaded', function() {
			mountMap(mapContainer, mapData);
		});
	})();
	</script>`,
		string(payloadBytes),
	))

	_, _ = mapHTML.WriteString("</div>")

	templates, err := ReadTemplates()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	err = templates.ExecuteTemplate(&buf, "map.html", map[string]interface{}{
		"Map": template.HTML(mapHTML.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("could not execute template: %w", err)
	}

	return buf.Bytes(), nil
}
