package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// CRM stores order backend client settings.
type CRM struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Orders stores order listing and stats settings.
type Orders struct {
	PageSize int
	MaxPages int
	TopN     int
}

// Kafka stores message bus transport settings. Empty brokers disable the
// consumer and producer.
type Kafka struct {
	Brokers      []string
	UpdatesTopic string
	RendersTopic string
	GroupID      string
}

// Pprof stores profiling endpoint credentials for non-loopback clients.
// Empty credentials leave the endpoints loopback-only.
type Pprof struct {
	User string
	Pass string
}

// RateLimit stores webhook rate limiting settings.
type RateLimit struct {
	Limit  int
	Window time.Duration
}

// Config stores all service settings.
type Config struct {
	Port      int
	DB        DB
	CRM       CRM
	Orders    Orders
	Kafka     Kafka
	RateLimit RateLimit
	Pprof     Pprof
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		CRM:       DefaultCRM(),
		Orders:    DefaultOrders(),
		Kafka:     DefaultKafka(),
		RateLimit: DefaultRateLimit(),
	}

	cfg.Port = envInt("PORT", cfg.Port)

	cfg.DB.Host = envStr("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envStr("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envStr("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envStr("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envStr("POSTGRES_DB", cfg.DB.Name)

	cfg.CRM.BaseURL = envStr("CRM_BASE_URL", cfg.CRM.BaseURL)
	cfg.CRM.APIKey = envStr("CRM_API_KEY", cfg.CRM.APIKey)
	cfg.CRM.Timeout = envDuration("CRM_TIMEOUT", cfg.CRM.Timeout)
	cfg.CRM.MaxAttempts = envInt("CRM_MAX_ATTEMPTS", cfg.CRM.MaxAttempts)
	cfg.CRM.BaseDelay = envDuration("CRM_RETRY_BASE_DELAY", cfg.CRM.BaseDelay)
	cfg.CRM.MaxDelay = envDuration("CRM_RETRY_MAX_DELAY", cfg.CRM.MaxDelay)

	cfg.Orders.PageSize = envInt("ORDERS_PAGE_SIZE", cfg.Orders.PageSize)
	cfg.Orders.MaxPages = envInt("ORDERS_MAX_PAGES", cfg.Orders.MaxPages)
	cfg.Orders.TopN = envInt("STATS_TOP_N", cfg.Orders.TopN)

	if v := envStr("KAFKA_BROKERS", ""); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.UpdatesTopic = envStr("KAFKA_UPDATES_TOPIC", cfg.Kafka.UpdatesTopic)
	cfg.Kafka.RendersTopic = envStr("KAFKA_RENDERS_TOPIC", cfg.Kafka.RendersTopic)
	cfg.Kafka.GroupID = envStr("KAFKA_GROUP_ID", cfg.Kafka.GroupID)

	cfg.RateLimit.Limit = envInt("RATE_LIMIT", cfg.RateLimit.Limit)
	cfg.RateLimit.Window = envDuration("RATE_LIMIT_WINDOW", cfg.RateLimit.Window)

	cfg.Pprof.User = envStr("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = envStr("PPROF_PASSWORD", cfg.Pprof.Pass)

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.Parse()

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Orders.PageSize <= 0 || cfg.Orders.MaxPages <= 0 {
		return nil, fmt.Errorf("invalid orders paging: size=%d pages=%d",
			cfg.Orders.PageSize, cfg.Orders.MaxPages)
	}
	if cfg.Orders.TopN <= 0 {
		return nil, fmt.Errorf("invalid top-n: %d", cfg.Orders.TopN)
	}
	return cfg, nil
}

func envStr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(name string, def time.Duration) time.Duration {
	if v := os.Getenv(name); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
