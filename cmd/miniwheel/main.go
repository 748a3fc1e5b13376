package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/edward-ap/miniwheel/internal/config"
	"github.com/edward-ap/miniwheel/internal/wheelapp"
)

func main() {
	flags, err := config.ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(2)
	}
	wheelapp.SetTraceLogEnabled(flags.Trace)
	log := wheelapp.NewLogger(os.Stderr, flags.Trace)
	slog.SetDefault(log)

	app := wheelapp.NewApp(flags, log)
	app.Run()
}
