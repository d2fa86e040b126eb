package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/raywall/pet-crud-service/pkg/envloader"
)

// ServiceConfig is the root configuration for the pet service.
//
// On Lambda everything comes from environment variables. The local
// server may additionally load a YAML file; environment variables are
// applied afterwards and win over file values.
type ServiceConfig struct {
	Service ServiceDetails `yaml:"service"`
	Table   TableConf      `yaml:"table"`
	Logging LoggingConf    `yaml:"logging"`
	Metrics MetricsConf    `yaml:"metrics"`
}

// ServiceDetails holds runtime metadata for the local HTTP server.
type ServiceDetails struct {
	Name string `yaml:"name" env:"SERVICE_NAME" envDefault:"pet-crud-service"`
	Port int    `yaml:"port" env:"PORT" envDefault:"8080"`
	// Timeout is kept as a string ("500ms", "2s") so it reads the same
	// from YAML and from the environment.
	Timeout string `yaml:"timeout" env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// GetTimeout parses the configured timeout, falling back to 30s.
func (s ServiceDetails) GetTimeout() time.Duration {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// TableConf describes the DynamoDB table backing the pet records.
type TableConf struct {
	Name    string `yaml:"name" env:"DYNAMODB_TABLE_NAME"`
	HashKey string `yaml:"hash_key" env:"DYNAMODB_HASH_KEY" envDefault:"id"`
	// Endpoint overrides the DynamoDB endpoint for DynamoDB Local.
	Endpoint string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT"`
}

type LoggingConf struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" envDefault:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" envDefault:"json"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool   `yaml:"enabled" env:"DD_ENABLED" envDefault:"false"`
	Addr      string `yaml:"addr" env:"DD_AGENT_HOST" envDefault:"127.0.0.1:8125"`
	Namespace string `yaml:"namespace" env:"DD_NAMESPACE" envDefault:"pet_service"`
}

// Load builds the configuration from the environment only.
func Load() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}
	if err := envloader.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration file and then applies the
// environment on top of it.
func LoadFile(path string) (*ServiceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &ServiceConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	// Environment wins over file values; defaults only fill the gaps.
	if err := envloader.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateTable checks the settings required to reach DynamoDB. Called
// by the entrypoints that actually open a table; the in-memory local
// server does not need one.
func (c *ServiceConfig) ValidateTable() error {
	if c.Table.Name == "" {
		return fmt.Errorf("config: table name is required (DYNAMODB_TABLE_NAME)")
	}
	if c.Table.HashKey == "" {
		return fmt.Errorf("config: table hash key is required")
	}
	return nil
}
