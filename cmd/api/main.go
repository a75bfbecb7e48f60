package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	server "atrium_site/internal/adapters/http_server"
	"atrium_site/internal/adapters/observability"
	redisad "atrium_site/internal/adapters/redis"
	"atrium_site/internal/adapters/sanity"
	"atrium_site/internal/adapters/staticdata"
	"atrium_site/internal/content"
	"atrium_site/internal/images"
	"atrium_site/internal/shared"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	mode := cfg.Mode()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, string(mode))

	observability.Serve()

	log.Info().Str("mode", string(mode)).Msg("content source resolved")

	// content source
	var svc *content.Service
	switch mode {
	case shared.ModeRemote:
		client, err := sanity.New(cfg.SanityProjectID, cfg.SanityDataset, cfg.SanityAPIVersion, cfg.SanityToken, cfg.SanityRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize sanity client")
		}
		svc = content.New(mode, client, nil)
	default:
		bundle := staticdata.Load(cfg.DataDir)
		log.Info().Str("dir", cfg.DataDir).Int("photos", len(bundle.Photos)).Msg("static bundle loaded")
		svc = content.New(mode, nil, staticdata.NewSynthesizer(bundle))
	}

	if cfg.CacheTTL > 0 {
		cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		svc = svc.WithCache(cache, cfg.CacheTTL)
		log.Info().Dur("ttl", cfg.CacheTTL).Msg("content cache enabled")
	}

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		C:   svc,
		Img: images.NewResolver(mode, cfg.SanityProjectID, cfg.SanityDataset),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
