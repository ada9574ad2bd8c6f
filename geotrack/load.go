package geotrack

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"gitlab.com/begraf/trailpost/config"
)

// LoadTrack reads a track recording and flattens it into a single ordered
// point sequence. The format is chosen by file extension.
func LoadTrack(trackFilePath string) (points []Point, err error) {
	ext := strings.ToLower(path.Ext(trackFilePath))
	if slices.Contains(config.GPXExtensions(), ext) {
		points, err = loadGPXTrack(trackFilePath)
	} else if slices.Contains(config.NMEAExtensions(), ext) {
		points, err = loadNMEATrack(trackFilePath)
	} else {
		return nil, fmt.Errorf("unknown track extension '%s'", ext)
	}

	if err != nil {
		return
	}

	return
}
