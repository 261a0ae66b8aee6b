package config

import (
	"fmt"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/pkg/configparser"
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Server   ServerConfig
		Storage  StorageConfig
		Database DatabaseConfig
		RabbitMQ RabbitMQConfig
		Ingest   IngestConfig
		Logging  LoggingConfig
	}

	ServerConfig struct {
		ServiceName string `env:"SERVER_SERVICE_NAME" default:"analytics-service"`
		Port        string `env:"SERVER_PORT" default:"3003"`
	}

	// StorageConfig selects where the record set lives. "memory" keeps the
	// dataset session-scoped; "postgres" persists it between restarts.
	StorageConfig struct {
		Mode string `env:"STORAGE_MODE" default:"memory"`
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"taxi_user"`
		Password string `env:"DATABASE_PASSWORD" default:"taxi_pass"`
		Database string `env:"DATABASE_DATABASE" default:"taxi_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"20"`         // максимум открытых соединений
		MinConns        int32         `env:"DATABASE_MINCONNS" default:"2"`          // минимум соединений в пуле
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" default:"30m"` // макс. "время жизни" соединения
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"`  // макс. "время простоя" соединения
	}

	RabbitMQConfig struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED" default:"false"`
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`
	}

	IngestConfig struct {
		TripCount     int           `env:"INGEST_TRIP_COUNT" default:"1000"`
		Seed          int64         `env:"INGEST_SEED" default:"42"`
		SourceTimeout time.Duration `env:"INGEST_SOURCE_TIMEOUT" default:"30s"`
	}

	LoggingConfig struct {
		Level string `env:"LOGGING_LEVEL" default:"DEBUG"`
	}
)

// PoolLimits exposes the pgx pool sizing.
func (c DatabaseConfig) PoolLimits() (int32, int32, time.Duration, time.Duration) {
	return c.MaxConns, c.MinConns, c.MaxConnLifetime, c.MaxConnIdleTime
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.User,
		c.Password,
		c.Host,
		c.Port,
	)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	return cfg, nil
}
