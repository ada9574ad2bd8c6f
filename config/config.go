package config

import (
	"time"

	"github.com/spf13/viper"
)

var (
	KeyTrackFile  = "track.file"
	KeyTokenFile  = "token.file"
	KeyChunkKm    = "sample.chunk-km"
	KeyMarkerKm   = "sample.marker-km"
	KeyRadiusKm   = "search.radius-km"
	KeyFetchDelay = "fetch.delay"
	KeyAPIBaseURL = "api.base-url"
	KeyOutputFile = "output.file"
	KeyServeAddr  = "serve.addr"
)

// SetDefaults installs the default pipeline settings. Called once during
// command initialization, before the config file is read.
func SetDefaults() {
	viper.SetDefault(KeyTrackFile, "trail.gpx")
	viper.SetDefault(KeyTokenFile, "inpost.token")
	viper.SetDefault(KeyChunkKm, 10.0)
	viper.SetDefault(KeyMarkerKm, 10.0)
	viper.SetDefault(KeyRadiusKm, 2.0)
	viper.SetDefault(KeyFetchDelay, 100*time.Millisecond)
	viper.SetDefault(KeyAPIBaseURL, "https://api-shipx-pl.easypack24.net")
	viper.SetDefault(KeyOutputFile, "output_map.html")
	viper.SetDefault(KeyServeAddr, ":8000")
}

func TrackFile() string {
	return viper.GetString(KeyTrackFile)
}

func TokenFile() string {
	return viper.GetString(KeyTokenFile)
}

// ChunkKm is the coarse sampling interval driving the API queries.
func ChunkKm() float64 {
	return viper.GetFloat64(KeyChunkKm)
}

// MarkerKm is the spacing of the on-map distance labels.
func MarkerKm() float64 {
	return viper.GetFloat64(KeyMarkerKm)
}

func RadiusKm() float64 {
	return viper.GetFloat64(KeyRadiusKm)
}

func FetchDelay() time.Duration {
	return viper.GetDuration(KeyFetchDelay)
}

func APIBaseURL() string {
	return viper.GetString(KeyAPIBaseURL)
}

func OutputFile() string {
	return viper.GetString(KeyOutputFile)
}

func ServeAddr() string {
	return viper.GetString(KeyServeAddr)
}

func GPXExtensions() []string {
	return []string{".gpx"}
}

func NMEAExtensions() []string {
	return []string{".nmea", ".log"}
}
