package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gitlab.com/begraf/trailpost/config"
	"gitlab.com/begraf/trailpost/filesystem"
	"gitlab.com/begraf/trailpost/geotrack"
	"gitlab.com/begraf/trailpost/locker"
	"gitlab.com/begraf/trailpost/render"
)

type pipelineResult struct {
	Route   []geotrack.Point
	Lockers []locker.Locker
	Markers []geotrack.DistanceMarker
	Report  locker.Report
	HTML    []byte
}

// runPipeline executes the full load → sample → fetch → dedupe → render
// sequence and returns all intermediate products. Fetch failures are
// per-point results inside the report; everything else is an error.
func runPipeline() (*pipelineResult, error) {
	token, err := locker.LoadToken(filesystem.Abs(config.TokenFile()))
	if err != nil {
		return nil, fmt.Errorf("load API token: %w", err)
	}

	trackFile := filesystem.Abs(config.TrackFile())
	points, err := geotrack.LoadTrack(trackFile)
	if err != nil {
		return nil, fmt.Errorf("load track '%s': %w", trackFile, err)
	}
	log.Info().Int("points", len(points)).Str("file", trackFile).Msg("track loaded")

	route := geotrack.SampleEvery(points, config.ChunkKm())
	log.Info().
		Int("points", len(route)).
		Float64("chunkKm", config.ChunkKm()).
		Msg("route sampled")

	client := locker.NewClient(config.APIBaseURL(), token, config.FetchDelay(), log.Logger)
	fetched, report := client.FetchAlongRoute(route, config.RadiusKm())
	if n := report.Failures(); n > 0 {
		log.Warn().Int("failed", n).Int("queried", len(route)).Msg("some locker queries failed")
	}

	lockers := locker.DedupeByName(fetched)
	log.Info().Int("fetched", len(fetched)).Int("unique", len(lockers)).Msg("lockers collected")

	markers := geotrack.DistanceMarkers(points, config.MarkerKm())

	html, err := render.BuildMap(route, lockers, markers)
	if err != nil {
		return nil, fmt.Errorf("render map: %w", err)
	}

	return &pipelineResult{
		Route:   route,
		Lockers: lockers,
		Markers: markers,
		Report:  report,
		HTML:    html,
	}, nil
}
