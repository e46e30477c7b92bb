package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config is the complete configuration of the floormark server.
type Config struct {
	Server struct {
		Port         string        `yaml:"port"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
	} `yaml:"server"`

	Storage struct {
		Directory string `yaml:"directory"`
		Filename  string `yaml:"filename"`
	} `yaml:"storage"`

	Store struct {
		Driver string `yaml:"driver"`
	} `yaml:"store"`

	Render struct {
		HalfWidth   int    `yaml:"half_width"`
		StrokeWidth int    `yaml:"stroke_width"`
		Color       string `yaml:"color"`
		Background  string `yaml:"background"`
	} `yaml:"render"`

	Tunnel struct {
		Enabled   bool   `yaml:"enabled"`
		Authtoken string `yaml:"authtoken"`
	} `yaml:"tunnel"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// DefaultConfig Configuration used when no config file is found.
func DefaultConfig() *Config {
	config := &Config{}
	config.Server.Port = "5000"
	config.Server.ReadTimeout = 5 * time.Second
	config.Server.WriteTimeout = 10 * time.Second
	config.Storage.Directory = "."
	config.Storage.Filename = "layout.png"
	config.Store.Driver = "memory"
	config.Render.HalfWidth = 10
	config.Render.StrokeWidth = 3
	config.Render.Color = "ff0000"
	config.Render.Background = "ffffff"
	config.Tunnel.Enabled = true
	config.Log.Level = "info"
	config.Log.Format = "text"
	return config
}

// NewConfig Read the YAML file at configPath on top of the defaults and apply the environment.
// An empty configPath yields the defaults.
func NewConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		file, err := os.Open(configPath)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		d := yaml.NewDecoder(file)
		if err := d.Decode(config); err != nil && err != io.EOF {
			return nil, fmt.Errorf("cannot parse config %s: %w", configPath, err)
		}
	}

	config.applyEnv()
	return config, nil
}

// LoadDotEnv Load a .env file into the environment, if there is one.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		log.Debug("No .env file found, using the process environment only")
		return nil
	}
	return err
}

// applyEnv Environment variables override values from the YAML file.
func (config *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port = port
	}
	if dir := os.Getenv("STORAGE_DIR"); dir != "" {
		config.Storage.Directory = dir
	}
	if driver := os.Getenv("MARK_STORE"); driver != "" {
		config.Store.Driver = driver
	}
	if token := os.Getenv("NGROK_AUTH_TOKEN"); token != "" {
		config.Tunnel.Authtoken = token
	}
}

// ImagePath Location of the stored floor plan.
func (config *Config) ImagePath() string {
	return filepath.Join(config.Storage.Directory, config.Storage.Filename)
}

// ValidateConfigPath Make sure the path is a regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a normal file", path)
	}
	return nil
}

// ResolveConfigPath Return the config file to use. An explicit path must exist,
// otherwise ./config.yaml and ~/.floormark/config.yaml are tried in that order.
// An empty string means that no config file was found.
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if err := ValidateConfigPath(explicit); err != nil {
			return "", err
		}
		return explicit, nil
	}

	candidates := []string{"config.yaml"}
	if home, err := homedir.Dir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".floormark", "config.yaml"))
	} else {
		log.Warn(fmt.Sprintf("Cannot find home directory: %s", err.Error()))
	}

	for _, candidate := range candidates {
		if ValidateConfigPath(candidate) == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// SetupLogging Configure logrus from the config. Debug mode always logs at debug level.
func SetupLogging(config *Config, debugMode bool) error {
	switch config.Log.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", config.Log.Format)
	}

	if debugMode {
		log.SetLevel(log.DebugLevel)
		return nil
	}
	level, err := log.ParseLevel(config.Log.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}
