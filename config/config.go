package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Kafka      KafkaConfig      `yaml:"kafka"`
	Cache      CacheConfig      `yaml:"cache"`
	Worker     WorkerConfig     `yaml:"worker"`
	Validation ValidationConfig `yaml:"validation"`
	Auth       AuthConfig       `yaml:"auth"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	ReservationTopic   string   `yaml:"reservation_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type CacheConfig struct {
	ScheduleTTLSeconds int `yaml:"schedule_ttl_seconds"`
}

type WorkerConfig struct {
	PromotionSweepMinutes int    `yaml:"promotion_sweep_minutes"`
	HealthAddress         string `yaml:"health_address"`
}

// ValidationConfig holds the bands interactive input is checked against.
type ValidationConfig struct {
	MinYear         int `yaml:"min_year"`
	MaxYear         int `yaml:"max_year"`
	MinFlightNumber int `yaml:"min_flight_number"`
	MaxFlightNumber int `yaml:"max_flight_number"`
}

type AuthConfig struct {
	ManagerSecret string `yaml:"manager_secret"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
		},
		Cache:      CacheConfig{ScheduleTTLSeconds: 300},
		Worker:     WorkerConfig{PromotionSweepMinutes: 1, HealthAddress: ":8091"},
		Validation: ValidationConfig{MinYear: 2025, MaxYear: 2026, MinFlightNumber: 100, MaxFlightNumber: 120},
		Auth:       AuthConfig{ManagerSecret: "24601"},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
