package geotrack

import (
	"bufio"
	"os"

	"github.com/adrianmo/go-nmea"
)

func loadNMEATrack(trackFilePath string) (points []Point, err error) {
	f, err := os.Open(trackFilePath)
	if err != nil {
		return
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		if scanner.Err() != nil {
			return nil, scanner.Err()
		}

		sentence, err := nmea.Parse(scanner.Text())
		if err != nil {
			return nil, err
		}

		if sentence.DataType() == nmea.TypeRMC {
			rmc := sentence.(nmea.RMC)
			// We're only interested in "ACTIVE" status messages.
			if rmc.Validity != "A" {
				continue
			}

			points = append(points, Point{
				Lat: rmc.Latitude,
				Lon: rmc.Longitude,
			})
		}
	}

	return
}
