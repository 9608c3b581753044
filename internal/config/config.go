package config

import (
	"log"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"

	"github.com/brokerhq/commission-service/internal/domain"
)

type CommissionConfig struct {
	Env            string `yaml:"env"`
	MigrationsPath string `yaml:"migrations_path"`
	CommissionDB   `yaml:"commission_db"`
	LogConfig      `yaml:"log_config"`
	KafkaService   `yaml:"kafka-service"`
	MetricsServer  `yaml:"metrics_server"`
	Workers        `yaml:"workers"`
	Bonuses        `yaml:"bonuses"`
}

type CommissionDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MetricsServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Workers struct {
	ReminderIntervalMinutes int `yaml:"reminder_interval_minutes" env-default:"60"`
	ReminderWindowDays      int `yaml:"reminder_window_days" env-default:"30"`
	PayoutIntervalMinutes   int `yaml:"payout_interval_minutes" env-default:"60"`
}

type Bonuses struct {
	FlatBonusEnabled bool   `yaml:"flat_bonus_enabled"`
	FlatBonusRate    string `yaml:"flat_bonus_rate" env-default:"0"`

	KpiBonusEnabled bool   `yaml:"kpi_bonus_enabled"`
	KpiThreshold    string `yaml:"kpi_threshold" env-default:"0"`
	KpiBonusRate    string `yaml:"kpi_bonus_rate" env-default:"0"`

	CategoryBonusEnabled bool   `yaml:"category_bonus_enabled"`
	CategoryBonusRate    string `yaml:"category_bonus_rate" env-default:"0"`
	BonusCategories      string `yaml:"bonus_categories"`
}

func MustLoad() *CommissionConfig {
	configPath := os.Getenv("COMMISSION_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("COMMISSION_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg CommissionConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}

func mustDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("invalid decimal in config: %q: %v", raw, err)
	}
	return d
}

// RateConfig converts the raw bonus settings into the engine's value
// object. Rates travel as strings in YAML to keep exact precision.
func (c *CommissionConfig) RateConfig() domain.RateConfig {
	rateConfig := domain.RateConfig{
		FlatBonusEnabled:     c.Bonuses.FlatBonusEnabled,
		FlatBonusRate:        mustDecimal(c.Bonuses.FlatBonusRate),
		KpiBonusEnabled:      c.Bonuses.KpiBonusEnabled,
		KpiThreshold:         mustDecimal(c.Bonuses.KpiThreshold),
		KpiBonusRate:         mustDecimal(c.Bonuses.KpiBonusRate),
		CategoryBonusEnabled: c.Bonuses.CategoryBonusEnabled,
		CategoryBonusRate:    mustDecimal(c.Bonuses.CategoryBonusRate),
	}
	if c.Bonuses.BonusCategories != "" {
		for _, category := range strings.Split(c.Bonuses.BonusCategories, ",") {
			rateConfig.BonusCategories = append(rateConfig.BonusCategories, strings.TrimSpace(category))
		}
	}
	return rateConfig
}
