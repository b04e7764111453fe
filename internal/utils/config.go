package utils

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	PersistenceWriteThrough = "writethroughdisk"
	PersistenceNone         = "none"
)

// Config struct holds application configuration
type Config struct {
	Port        int    `yaml:"port" json:"port"`
	Persistence string `yaml:"persistence" json:"persistence"`
	DataDir     string `yaml:"data_dir" json:"data_dir"`
	MaxLists    int    `yaml:"max_lists" json:"max_lists"`
	Debug       bool   `yaml:"debug" json:"debug"`
	LogFile     string `yaml:"log_file" json:"log_file"`
}

var (
	configInstance *Config   // Singleton configInstance
	configOnce     sync.Once // Ensures thread-safe initialization
	configErr      error
)

// DefaultDataDir is where logs and the persistence log live unless configured.
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".linkedlists"
	}
	return filepath.Join(homeDir, ".linkedlists")
}

// LoadConfig initializes the singleton configInstance
func LoadConfig(filename string) (*Config, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfigFromFile(filename)
	})
	return configInstance, configErr
}

// loadConfigFromFile reads and parses the config file
func loadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return getDefaultConfig(), nil
		}
		return nil, errors.Wrap(err, "read config")
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML (or JSON) document and fills in defaults.
func ParseConfig(data []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	applyDefaults(config)
	return config, nil
}

// GetConfig returns the singleton config configInstance
func GetConfig() (*Config, error) {
	if configInstance == nil {
		return nil, errors.New("Config not initialized. Call LoadConfig() first")
	}
	return configInstance, nil
}

// getDefaultConfig returns default config values
func getDefaultConfig() *Config {
	return &Config{
		Port:        6380,
		Persistence: PersistenceWriteThrough,
		DataDir:     DefaultDataDir(),
		MaxLists:    1024,
	}
}

// applyDefaults ensures missing values get defaults
func applyDefaults(config *Config) {
	defaults := getDefaultConfig()
	if config.Port == 0 {
		config.Port = defaults.Port
	}
	if config.DataDir == "" {
		config.DataDir = defaults.DataDir
	}
	if config.MaxLists <= 0 {
		config.MaxLists = defaults.MaxLists
	}
	if config.Persistence != PersistenceWriteThrough && config.Persistence != PersistenceNone {
		config.Persistence = defaults.Persistence
	}
}

// PersistencePath is the location of the write-through command log.
func (c *Config) PersistencePath() string {
	return filepath.Join(c.DataDir, "commands.log")
}
