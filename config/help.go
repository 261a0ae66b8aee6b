package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
Taxi trip analytics service.

Usage:
  analytics [flags]

Flags:
  -config-path string   Path to the config yaml file (default "config.yaml")
  -help                 Show this message

Configuration is read from the yaml file, overridable with environment
variables (SERVER_PORT, STORAGE_MODE, DATABASE_*, RABBITMQ_*, INGEST_*).
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig prints the loaded configuration, without secrets.
func PrintConfig(cfg *Config) {
	fmt.Println("Configuration:")
	fmt.Printf("  server:    %s on port %s\n", cfg.Server.ServiceName, cfg.Server.Port)
	fmt.Printf("  storage:   %s\n", cfg.Storage.Mode)
	fmt.Printf("  database:  %s:%s/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)
	fmt.Printf("  rabbitmq:  enabled=%t %s:%s\n", cfg.RabbitMQ.Enabled, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)
	fmt.Printf("  ingest:    %d trips, seed %d\n", cfg.Ingest.TripCount, cfg.Ingest.Seed)
	fmt.Printf("  logging:   %s\n", cfg.Logging.Level)
}
