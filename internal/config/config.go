package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Channel is one entry of the ordered notification channel list. A user's
// notification preference is an index into that list.
type Channel struct {
	// ID selects the sender, one of None, Mail, PubSub or AMQP.
	ID string `yaml:"id"`
	// Name is a human readable label.
	Name string `yaml:"name"`
}

// DefaultChannels is used when the config file lists no channels. It keeps
// preference 0 silent and preference 1 on email.
var DefaultChannels = []Channel{{ID: "None", Name: "disabled"}, {ID: "Mail", Name: "email"}} //nolint: gochecknoglobals

// Config represents the application configuration structure.
// It contains settings for the environment, the ops HTTP server, the database
// connection, the scanner, the worker pool and notifications.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains the ops HTTP server configuration
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// JWTPublicKey is the PEM encoded RSA key bearer tokens are verified with
		JWTPublicKey string `env:"HTTP_JWT_PUBLIC_KEY" yaml:"jwtPublicKey"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"scanrunner" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Scanner configures the external scanner invocation
	Scanner struct {
		// Binary is the scanner executable, called with a profile path and a report path
		Binary string `env:"SCANNER_BINARY" env-default:"w3af_console" yaml:"binary"`
		// ReportsDir is the base directory run directories are created in
		ReportsDir string `env:"SCANNER_REPORTS_DIR" env-default:"/var/lib/scanrunner/reports" yaml:"reportsDir"`
		// ReportFile is the report file name inside a run directory
		ReportFile string `env:"SCANNER_REPORT_FILE" env-default:"report.xml" yaml:"reportFile"`
		// Timeout bounds a single scanner run, zero disables it
		Timeout time.Duration `env:"SCANNER_TIMEOUT" env-default:"0s" yaml:"timeout"`
	} `yaml:"scanner"`

	// Worker configures the queue workers
	Worker struct {
		// MaxWorkers is the number of scans run concurrently by one process
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"4" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// Notification configures how task owners are told a scan finished
	Notification struct {
		// Channels is the ordered channel list user preferences index into
		Channels []Channel `yaml:"channels"`
		// RatePerSecond throttles every sender, zero disables throttling
		RatePerSecond float64 `env:"NOTIFICATION_RATE_PER_SECOND" env-default:"0" yaml:"ratePerSecond"`

		Mail struct {
			Host     string `env:"NOTIFICATION_MAIL_HOST" yaml:"host"`
			Port     int    `env:"NOTIFICATION_MAIL_PORT" env-default:"25" yaml:"port"`
			Username string `env:"NOTIFICATION_MAIL_USERNAME" yaml:"username"`
			Password string `env:"NOTIFICATION_MAIL_PASSWORD" yaml:"password"`
			From     string `env:"NOTIFICATION_MAIL_FROM" env-default:"scanrunner@localhost" yaml:"from"`
		} `yaml:"mail"`

		PubSub struct {
			ProjectID string `env:"NOTIFICATION_PUBSUB_PROJECT_ID" yaml:"projectId"`
			Topic     string `env:"NOTIFICATION_PUBSUB_TOPIC" yaml:"topic"`
		} `yaml:"pubsub"`

		AMQP struct {
			URL      string `env:"NOTIFICATION_AMQP_URL" yaml:"url"`
			Exchange string `env:"NOTIFICATION_AMQP_EXCHANGE" yaml:"exchange"`
			Queue    string `env:"NOTIFICATION_AMQP_QUEUE" env-default:"scan-notifications" yaml:"queue"`
		} `yaml:"amqp"`
	} `yaml:"notification"`

	// JWT configures the jwt command
	JWT struct {
		// PrivateKey is the PEM encoded RSA key tokens are signed with
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if len(cfg.Notification.Channels) == 0 {
		cfg.Notification.Channels = append([]Channel(nil), DefaultChannels...)
	}
	if cfg.Worker.MaxWorkers < 1 {
		return nil, fmt.Errorf("worker.maxWorkers must be positive, got %d", cfg.Worker.MaxWorkers)
	}

	return &cfg, nil
}
