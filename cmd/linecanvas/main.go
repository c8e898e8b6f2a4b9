package main

import (
	"log/slog"
	"os"

	"github.com/sqweek/dialog"

	"github.com/example/linecanvas/internal/app"
	"github.com/example/linecanvas/internal/config"
	"github.com/example/linecanvas/internal/logging"
)

func main() {
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := app.Run(); err != nil {
		logging.Logger().Error("linecanvas failed", "err", err)
		dialog.Message("%v", err).Title(config.WindowTitle).Error()
		os.Exit(1)
	}
}
