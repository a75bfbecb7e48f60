package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Mode string

const (
	ModeRemote   Mode = "remote"
	ModeFallback Mode = "fallback"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	SanityProjectID  string
	SanityDataset    string
	SanityAPIVersion string
	SanityToken      string
	SanityRPS        int

	StaticMode bool
	DataDir    string

	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:           env("APP_ENV", "prod"),
		HTTPAddr:         env("HTTP_ADDR", ":8080"),
		MetricsAddr:      env("METRICS_ADDR", ""),
		SanityProjectID:  env("SANITY_PROJECT_ID", ""),
		SanityDataset:    env("SANITY_DATASET", ""),
		SanityAPIVersion: env("SANITY_API_VERSION", "2024-01-05"),
		SanityToken:      env("SANITY_TOKEN", ""),
		SanityRPS:        atoi("SANITY_RPS", 5),
		StaticMode:       env("STATIC_MODE", "") == "true",
		DataDir:          env("DATA_DIR", "data"),
		RedisAddr:        env("REDIS_ADDR", "localhost:6379"),
		RedisPass:        env("REDIS_PASSWORD", ""),
		RedisDB:          atoi("REDIS_DB", 0),
		CacheTTL:         time.Duration(atoi("CACHE_TTL_SECONDS", 0)) * time.Second,
	}
	if c.Mode() == ModeRemote && c.SanityToken == "" {
		log.Warn().Msg("SANITY_TOKEN is empty; only public datasets will be readable")
	}
	return c
}

// Mode resolves the source mode once, at load time. Remote mode requires both
// a project id and a dataset; the static override always wins. The result is
// passed explicitly into every consumer and never re-evaluated per call.
func (c Config) Mode() Mode {
	if c.StaticMode || c.SanityProjectID == "" || c.SanityDataset == "" {
		return ModeFallback
	}
	return ModeRemote
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
