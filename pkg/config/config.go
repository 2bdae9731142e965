package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds both services' configuration. Each binary reads its own
// section; sharing one file keeps local multi-service setups simple.
type Config struct {
	Registry    RegistryConfig    `yaml:"registry"`
	StorageNode StorageNodeConfig `yaml:"storage_node"`
}

// RegistryConfig configures the metadata registry service.
type RegistryConfig struct {
	Port        string   `yaml:"port"`
	Database    string   `yaml:"database"`
	StorageURL  string   `yaml:"storage_url"`
	CallTimeout Duration `yaml:"call_timeout"`
}

// Duration decodes YAML values like "10s" into a time.Duration.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// StorageNodeConfig configures the storage node service.
type StorageNodeConfig struct {
	Port      string          `yaml:"port"`
	Database  string          `yaml:"database"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
}

// ArtifactsConfig selects the artifact backend: "local" (default) or "s3".
type ArtifactsConfig struct {
	Backend string   `yaml:"backend"`
	Path    string   `yaml:"path"`
	S3      S3Config `yaml:"s3"`
}

// S3Config configures the S3-compatible artifact backend.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// Load reads the YAML config file (CONFIG_PATH overrides the default
// location) and applies environment overrides on top. A missing or
// unreadable file falls back to defaults.
func Load() *Config {
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	config := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Printf("Failed to read config file, using defaults: %v", err)
	} else if err := yaml.Unmarshal(data, config); err != nil {
		log.Printf("Failed to parse config file, using defaults: %v", err)
		config = defaultConfig()
	}

	applyEnvOverrides(config)
	return config
}

func defaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			Port:        "3001",
			Database:    "./registry.db",
			StorageURL:  "http://localhost:3002",
			CallTimeout: Duration(10 * time.Second),
		},
		StorageNode: StorageNodeConfig{
			Port:     "3002",
			Database: "./storagenode.db",
			Artifacts: ArtifactsConfig{
				Backend: "local",
				Path:    "./artifacts",
				S3: S3Config{
					Region: "us-east-1",
				},
			},
		},
	}
}

func applyEnvOverrides(config *Config) {
	setFromEnv(&config.Registry.Port, "REGISTRY_PORT")
	setFromEnv(&config.Registry.Database, "REGISTRY_DATABASE")
	setFromEnv(&config.Registry.StorageURL, "STORAGE_NODE_URL")
	setFromEnv(&config.StorageNode.Port, "STORAGE_PORT")
	setFromEnv(&config.StorageNode.Database, "STORAGE_DATABASE")
	setFromEnv(&config.StorageNode.Artifacts.Backend, "ARTIFACTS_BACKEND")
	setFromEnv(&config.StorageNode.Artifacts.Path, "ARTIFACTS_PATH")
	setFromEnv(&config.StorageNode.Artifacts.S3.Endpoint, "ARTIFACTS_S3_ENDPOINT")
	setFromEnv(&config.StorageNode.Artifacts.S3.Region, "ARTIFACTS_S3_REGION")
	setFromEnv(&config.StorageNode.Artifacts.S3.Bucket, "ARTIFACTS_S3_BUCKET")
	setFromEnv(&config.StorageNode.Artifacts.S3.AccessKey, "ARTIFACTS_S3_ACCESS_KEY")
	setFromEnv(&config.StorageNode.Artifacts.S3.SecretKey, "ARTIFACTS_S3_SECRET_KEY")

	if v := os.Getenv("REGISTRY_CALL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.Registry.CallTimeout = Duration(d)
		} else {
			log.Printf("Ignoring invalid REGISTRY_CALL_TIMEOUT %q: %v", v, err)
		}
	}
}

func setFromEnv(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
