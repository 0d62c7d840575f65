package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is read once at startup. Values come from, in increasing priority:
// built-in defaults, the YAML file named by CONFIG_FILE, a .env file in the
// working directory and the process environment.
type Config struct {
	HTTPPort               string `yaml:"http_port"`
	DBHost                 string `yaml:"db_host"`
	DBPort                 string `yaml:"db_port"`
	DBUser                 string `yaml:"db_user"`
	DBPassword             string `yaml:"db_password"`
	DBName                 string `yaml:"db_name"`
	DBSslMode              string `yaml:"db_sslmode"`
	DBLockTimeoutMs        int    `yaml:"db_lock_timeout_ms"`
	KafkaHost              string `yaml:"kafka_host"`
	KafkaOrderChangedTopic string `yaml:"kafka_order_changed_topic"`
	OutboxBatchSize        int    `yaml:"outbox_batch_size"`
	LogLevel               string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		HTTPPort:               "8080",
		DBHost:                 "localhost",
		DBPort:                 "5432",
		DBUser:                 "postgres",
		DBName:                 "manufacturing",
		DBSslMode:              "disable",
		DBLockTimeoutMs:        3000,
		KafkaOrderChangedTopic: "manufacturing.order.changed",
		OutboxBatchSize:        100,
		LogLevel:               "info",
	}
}

// LoadConfig builds the Config. A missing .env file is not an error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	overrideString(&cfg.HTTPPort, "HTTP_PORT")
	overrideString(&cfg.DBHost, "DB_HOST")
	overrideString(&cfg.DBPort, "DB_PORT")
	overrideString(&cfg.DBUser, "DB_USER")
	overrideString(&cfg.DBPassword, "DB_PASSWORD")
	overrideString(&cfg.DBName, "DB_NAME")
	overrideString(&cfg.DBSslMode, "DB_SSLMODE")
	overrideString(&cfg.KafkaHost, "KAFKA_HOST")
	overrideString(&cfg.KafkaOrderChangedTopic, "KAFKA_ORDER_CHANGED_TOPIC")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")

	if err := errors.Join(
		overrideInt(&cfg.DBLockTimeoutMs, "DB_LOCK_TIMEOUT_MS"),
		overrideInt(&cfg.OutboxBatchSize, "OUTBOX_BATCH_SIZE"),
	); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KafkaHost, a comma separated list of host:port
// addresses. Blank entries are skipped.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, addr := range strings.Split(c.KafkaHost, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			brokers = append(brokers, addr)
		}
	}
	return brokers
}

func (c Config) LockTimeout() time.Duration {
	return time.Duration(c.DBLockTimeoutMs) * time.Millisecond
}

// SlogLevel parses LogLevel, falling back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func overrideString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
