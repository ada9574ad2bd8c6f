package geotrack

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

func loadGPXTrack(trackFilePath string) (points []Point, err error) {
	gpxData, err := gpx.ParseFile(trackFilePath)
	if err != nil {
		return nil, fmt.Errorf("read GPX file: %w", err)
	}

	for _, track := range gpxData.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				points = append(points, Point{Lat: p.Latitude, Lon: p.Longitude})
			}
		}
	}

	return
}
