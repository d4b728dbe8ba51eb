package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/srstalent/talentconnect/internal/buildinfo"
	"github.com/srstalent/talentconnect/internal/client/cli"
	"github.com/srstalent/talentconnect/internal/client/config"
	"github.com/srstalent/talentconnect/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := logging.NewSlogLogger(slog.New(handler))

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)

}
