package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds settings shared by every binary.
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// DSN returns the postgres connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

type TemporalConfig struct {
	HostPort            string `mapstructure:"host_port"`
	Namespace           string `mapstructure:"namespace"`
	SettlementTaskQueue string `mapstructure:"settlement_task_queue"`
}

type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

type GatewayConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	MintTimeout time.Duration `mapstructure:"mint_timeout"`
}

type SweepConfig struct {
	Interval   time.Duration `mapstructure:"interval"`
	StuckAfter time.Duration `mapstructure:"stuck_after"`
	BatchSize  int           `mapstructure:"batch_size"`
	PoolSize   int           `mapstructure:"pool_size"`
}

type APIConfig struct {
	BaseConfig `mapstructure:",squash"`

	Server   ServerConfig   `mapstructure:"server"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Database DatabaseConfig `mapstructure:"database"`
	Temporal TemporalConfig `mapstructure:"temporal"`
}

type SettlementWorkerConfig struct {
	BaseConfig `mapstructure:",squash"`

	Database DatabaseConfig `mapstructure:"database"`
	Temporal TemporalConfig `mapstructure:"temporal"`
	NATS     NATSConfig     `mapstructure:"nats"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
}

type SweeperConfig struct {
	BaseConfig `mapstructure:",squash"`

	Database DatabaseConfig `mapstructure:"database"`
	Temporal TemporalConfig `mapstructure:"temporal"`
	Sweep    SweepConfig    `mapstructure:"sweep"`
}

// LoadAPIConfig loads configuration for the registry API server.
func LoadAPIConfig(configFile, envPath string) (*APIConfig, error) {
	v, err := configureViper("api", configFile, envPath)
	if err != nil {
		return nil, err
	}

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setTemporalDefaults(v)

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal api config: %w", err)
	}
	return &cfg, nil
}

// LoadSettlementWorkerConfig loads configuration for the settlement worker.
func LoadSettlementWorkerConfig(configFile, envPath string) (*SettlementWorkerConfig, error) {
	v, err := configureViper("worker-settlement", configFile, envPath)
	if err != nil {
		return nil, err
	}

	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setNATSDefaults(v)
	v.SetDefault("gateway.base_url", "http://localhost:9090")
	v.SetDefault("gateway.mint_timeout", 90*time.Second)

	var cfg SettlementWorkerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settlement worker config: %w", err)
	}
	return &cfg, nil
}

// LoadSweeperConfig loads configuration for the stuck-approval sweeper.
func LoadSweeperConfig(configFile, envPath string) (*SweeperConfig, error) {
	v, err := configureViper("sweeper", configFile, envPath)
	if err != nil {
		return nil, err
	}

	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	v.SetDefault("sweep.interval", 5*time.Minute)
	v.SetDefault("sweep.stuck_after", 10*time.Minute)
	v.SetDefault("sweep.batch_size", 50)
	v.SetDefault("sweep.pool_size", 4)

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sweeper config: %w", err)
	}
	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "cc_registry")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("database.conn_max_idle_time", 5*time.Minute)
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.settlement_task_queue", "cc-registry-settlement")
}

func setNATSDefaults(v *viper.Viper) {
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.stream_name", "CREDITS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", 2*time.Second)
	v.SetDefault("nats.connection_name", "cc-registry")
}

func configureViper(service, configFile, envPath string) (*viper.Viper, error) {
	loadEnv(service, envPath)

	v := viper.New()
	v.SetEnvPrefix("CC_REGISTRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindAllEnvVars(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(fmt.Sprintf("config.%s", service))
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file is optional. Env vars and defaults carry the rest.
	}

	return v, nil
}

// bindAllEnvVars binds every known key explicitly so that env vars work
// without a config file present. AutomaticEnv alone only resolves keys
// viper has already seen.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"auth.jwt_public_key",
		"auth.api_keys",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.name",
		"database.ssl_mode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		"temporal.host_port",
		"temporal.namespace",
		"temporal.settlement_task_queue",
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"gateway.base_url",
		"gateway.mint_timeout",
		"sweep.interval",
		"sweep.stuck_after",
		"sweep.batch_size",
		"sweep.pool_size",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv overlays .env files onto the process environment. Later files
// win so local overrides beat the shared defaults.
func loadEnv(service, envPath string) {
	if envPath == "" {
		envPath = "config"
	}
	candidates := []string{
		filepath.Join(envPath, ".env"),
		filepath.Join(envPath, ".env.local"),
		filepath.Join(envPath, fmt.Sprintf(".env.%s.local", service)),
	}
	for _, f := range candidates {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Overload(f)
	}
}

// ChdirRepoRoot walks up from the working directory until it finds go.mod,
// so relative config paths resolve the same way in tests and binaries.
// Best effort: outside a checkout, deployed binaries pass absolute paths
// and the working directory is left alone.
func ChdirRepoRoot() {
	dir, err := os.Getwd()
	for err == nil {
		if _, statErr := os.Stat(filepath.Join(dir, "go.mod")); statErr == nil {
			_ = os.Chdir(dir)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
