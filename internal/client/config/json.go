package config

import (
	"encoding/json"
	"os"

	"github.com/annakovaleva/blogview/internal/flagx"
	"github.com/annakovaleva/blogview/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "10s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StorageDSN     string         `json:"storage_dsn"`
	MirrorPath     string         `json:"mirror_path"`
	AuthLatency    timex.Duration `json:"auth_latency"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. Without either flag nothing is loaded. Read or
// unmarshal errors panic; the caller may recover if desired. Only fields
// present in the file override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StorageDSN != "" {
		cfg.StorageDSN = jc.StorageDSN
	}
	if jc.MirrorPath != "" {
		cfg.MirrorPath = jc.MirrorPath
	}
	if jc.AuthLatency.Duration > 0 {
		cfg.AuthLatency = jc.AuthLatency.Duration
	}
}
