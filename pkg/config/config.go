package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "restoops"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// KPI scope values. Reservations support windowed|all, orders windowed|month.
const (
	ScopeWindowed = "windowed"
	ScopeAll      = "all"
	ScopeMonth    = "month"
)

type Config struct {
	App      AppConfig
	Airtable AirtableConfig
	KPI      KPIConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.KPI.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RESTOOPS_APP_ENV" default:"dev"`
	Port         string `envconfig:"RESTOOPS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"RESTOOPS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RESTOOPS_LOG_WARN_STACK" default:"false"`
	Timezone     string `envconfig:"RESTOOPS_TIMEZONE" default:"America/Mexico_City"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// Location resolves the restaurant's timezone; date windows ("today") are
// anchored to local midnight there, not to server time.
func (a AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", a.Timezone, err)
	}
	return loc, nil
}

// AirtableConfig holds record-store credentials. APIKey is a secret and must
// never be logged.
type AirtableConfig struct {
	APIKey  string        `envconfig:"RESTOOPS_AIRTABLE_API_KEY" required:"true"`
	BaseID  string        `envconfig:"RESTOOPS_AIRTABLE_BASE_ID" required:"true"`
	BaseURL string        `envconfig:"RESTOOPS_AIRTABLE_BASE_URL" default:"https://api.airtable.com/v0"`
	Timeout time.Duration `envconfig:"RESTOOPS_AIRTABLE_TIMEOUT" default:"10s"`
}

// KPIConfig selects between the two aggregation rules observed in production
// for reservations and delivery orders.
type KPIConfig struct {
	ReservationsScope string `envconfig:"RESTOOPS_KPI_RESERVATIONS_SCOPE" default:"windowed"`
	OrdersScope       string `envconfig:"RESTOOPS_KPI_ORDERS_SCOPE" default:"windowed"`
}

func (k *KPIConfig) normalize() error {
	k.ReservationsScope = strings.ToLower(strings.TrimSpace(k.ReservationsScope))
	switch k.ReservationsScope {
	case ScopeWindowed, ScopeAll:
	default:
		return fmt.Errorf("reservations scope must be %q or %q, got %q", ScopeWindowed, ScopeAll, k.ReservationsScope)
	}

	k.OrdersScope = strings.ToLower(strings.TrimSpace(k.OrdersScope))
	switch k.OrdersScope {
	case ScopeWindowed, ScopeMonth:
	default:
		return fmt.Errorf("orders scope must be %q or %q, got %q", ScopeWindowed, ScopeMonth, k.OrdersScope)
	}
	return nil
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"RESTOOPS_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
