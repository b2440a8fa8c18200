package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"fgmedic-cli/internal/api"
	"fgmedic-cli/internal/cli"
	"fgmedic-cli/internal/config"
	"fgmedic-cli/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	// the token source closes over the store, which itself needs the client
	// for login/register
	var st *session.Store
	client := api.New(cfg.APIURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		api.WithLogger(logger),
		api.WithTokenSource(func() string { return st.Token() }),
	)
	st = session.New(cfg.StateDir, client, logger)
	st.Restore()

	if err := cli.New(client, st, logger).Root().Execute(); err != nil {
		os.Exit(1)
	}
}
