package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quintle/quintle/internal/alert"
	"github.com/quintle/quintle/internal/config"
	"github.com/quintle/quintle/internal/httpserver"
	"github.com/quintle/quintle/internal/provider"
	"github.com/quintle/quintle/internal/round"
	"github.com/quintle/quintle/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load fallback word list")
	}

	client := provider.NewClient(cfg.WordEndpoint, cfg.WordTimeout)
	source := provider.NewSource(client, alert.LogNotifier{})
	rounds := round.NewManager(source)

	srv := httpserver.New(rounds, cfg)
	log.Info().
		Str("port", cfg.Port).
		Str("wordEndpoint", cfg.WordEndpoint).
		Int("fallbackWords", words.Count()).
		Msg("starting quintle")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
