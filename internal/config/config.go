package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration, sourced from the environment.
type Config struct {
	Port string

	// External service endpoints
	OverpassURL  string
	ElevationURL string
	WeatherURL   string
	DaylightURL  string
	PhotonURL    string
	NominatimURL string

	// External call timeouts
	OverpassTimeout  time.Duration
	ElevationTimeout time.Duration
	WeatherTimeout   time.Duration
	DaylightTimeout  time.Duration
	GeocodeTimeout   time.Duration

	// Bounded region cache (graphs held in memory)
	GraphCacheSize int

	// Per-IP rate limit
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load reads configuration from the environment, falling back to defaults
// that work against the public API instances.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", ":8080"),

		OverpassURL:  getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
		ElevationURL: getEnv("ELEVATION_URL", "https://api.open-elevation.com/api/v1/lookup"),
		WeatherURL:   getEnv("WEATHER_URL", "https://api.open-meteo.com/v1/forecast"),
		DaylightURL:  getEnv("DAYLIGHT_URL", "https://api.sunrise-sunset.org/json"),
		PhotonURL:    getEnv("PHOTON_URL", "https://photon.komoot.io/api/"),
		NominatimURL: getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),

		OverpassTimeout:  getEnvDuration("OVERPASS_TIMEOUT", 6*time.Second),
		ElevationTimeout: getEnvDuration("ELEVATION_TIMEOUT", 4*time.Second),
		WeatherTimeout:   getEnvDuration("WEATHER_TIMEOUT", 5*time.Second),
		DaylightTimeout:  getEnvDuration("DAYLIGHT_TIMEOUT", 5*time.Second),
		GeocodeTimeout:   getEnvDuration("GEOCODE_TIMEOUT", 4*time.Second),

		GraphCacheSize: getEnvInt("GRAPH_CACHE_SIZE", 32),

		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
