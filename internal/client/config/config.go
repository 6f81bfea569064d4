package config

import "time"

// Config holds runtime settings for the blogview CLI.
//
// Fields:
//   - APIBaseURL: root of the remote post collection resource.
//   - RequestTimeout: HTTP client timeout (the only network bound there is).
//   - StorageDSN: sqlite DSN of the local client database.
//   - MirrorPath: file path of the externally mirrored session indicator.
//   - AuthLatency: fixed simulated delay for login/registration.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StorageDSN     string
	MirrorPath     string
	AuthLatency    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://jsonplaceholder.typicode.com"
	c.RequestTimeout = 10 * time.Second
	c.StorageDSN = "blogview.db"
	c.MirrorPath = "session-mirror.json"
	c.AuthLatency = 1 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
