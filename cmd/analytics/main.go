package main

import (
	"context"
	"flag"
	"os"

	"github.com/Temutjin2k/taxi-analytics-system/config"
	_ "github.com/Temutjin2k/taxi-analytics-system/docs"
	"github.com/Temutjin2k/taxi-analytics-system/internal/app"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
)

var (
	helpFlag   = flag.Bool("help", false, "Show help message")
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()
	if *helpFlag {
		config.PrintHelp()
		return
	}

	ctx := context.Background()
	log := logger.InitLogger("", logger.LevelDebug)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to configure application", err)
		config.PrintHelp()
		return
	}

	// Printing configuration
	config.PrintConfig(cfg)

	log = logger.InitLogger(cfg.Server.ServiceName, cfg.Logging.Level)

	// Creating application
	application, err := app.NewApplication(ctx, *cfg, log)
	if err != nil {
		log.Error(ctx, "failed to init application", err)
		os.Exit(1)
	}

	// Running the apllication
	if err = application.Run(ctx); err != nil {
		log.Error(ctx, "failed to run application", err)
		os.Exit(1)
	}
}
