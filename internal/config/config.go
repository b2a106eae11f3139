package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	ExclusivityOneActivePerPair = "one-active-per-pair"
	ExclusivityOverlapOnly      = "overlap-only"
)

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret string
}

type AgreementsConfig struct {
	// ExclusivityRule controls the create-time duplicate check:
	// one-active-per-pair blocks a new agreement whenever the tenant already
	// has any record for the property; overlap-only leaves only the interval
	// check.
	ExclusivityRule string
	// IsolationLevel for the check-then-insert transaction, "serializable"
	// or "default".
	IsolationLevel string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Agreements  AgreementsConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           v.GetInt("HTTP_PORT"),
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Agreements: AgreementsConfig{
			ExclusivityRule: v.GetString("AGREEMENTS_EXCLUSIVITY_RULE"),
			IsolationLevel:  v.GetString("AGREEMENTS_ISOLATION_LEVEL"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Agreements.ExclusivityRule == "" {
		cfg.Agreements.ExclusivityRule = ExclusivityOneActivePerPair
	}
	if cfg.Agreements.IsolationLevel == "" {
		cfg.Agreements.IsolationLevel = "serializable"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	switch cfg.Agreements.ExclusivityRule {
	case ExclusivityOneActivePerPair, ExclusivityOverlapOnly:
	default:
		return fmt.Errorf("invalid AGREEMENTS_EXCLUSIVITY_RULE %q", cfg.Agreements.ExclusivityRule)
	}
	switch cfg.Agreements.IsolationLevel {
	case "serializable", "default":
	default:
		return fmt.Errorf("invalid AGREEMENTS_ISOLATION_LEVEL %q", cfg.Agreements.IsolationLevel)
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
