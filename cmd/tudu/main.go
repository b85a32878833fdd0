package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/idilsaglam/tudu/internal/cli"
	"github.com/idilsaglam/tudu/internal/config"
	"github.com/idilsaglam/tudu/internal/tui"
	"github.com/idilsaglam/tudu/internal/ui"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}

	// Logs go to stderr so the interactive session on stdout stays clean.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))
	ui.SetTheme(cfg.Theme)

	var code int
	switch cfg.UI {
	case config.UIList:
		code = tui.Run(cfg)
	default:
		code = cli.Run(cfg, os.Stdin, os.Stdout)
	}
	if code == 0 {
		fmt.Println("done")
	}
	os.Exit(code)
}
