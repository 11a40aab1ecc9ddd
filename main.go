package main

import (
	"fmt"
	stdlog "log"

	_ "github.com/joho/godotenv/autoload"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}
	logger, err := NewLogger(cfg)
	if err != nil {
		stdlog.Fatalf("init logger: %v", err)
	}
	zlog.Logger = logger

	conn := NewConnection(cfg.MongoURL, DialMongo(cfg.ConnectTimeout), cfg.ConnectTimeout, logger)
	conn.Start()

	r := NewRouter(conn, logger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().Msgf("Listening on http://localhost:%s", cfg.Port)
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
