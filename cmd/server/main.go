package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/srstalent/talentconnect/internal/buildinfo"
	"github.com/srstalent/talentconnect/internal/logging"
	"github.com/srstalent/talentconnect/internal/server"
	"github.com/srstalent/talentconnect/internal/server/config"
	"github.com/srstalent/talentconnect/internal/server/metrics"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	metrics.MustRegister()

	app, err := server.NewApp(cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
