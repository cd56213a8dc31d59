package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/tidwall/gjson"
)

// Scheme is the URI scheme prefix identifying the storage provider.
// A mounted volume belongs to this daemon iff its root URI carries this
// scheme and the configured account identifier.
const Scheme = "google-drive://"

// Config holds all configuration for drive-sync. It is loaded once at
// startup, passed by pointer into every component that needs it, and
// never mutated afterwards.
type Config struct {
	// LocalRoot is the watched directory tree whose contents are mirrored.
	LocalRoot string `env:"DRIVE_SYNC_LOCAL_ROOT"`

	// RemoteRoot is the directory prefix on the mounted drive that the
	// local tree mirrors into, relative to the volume root.
	RemoteRoot string `env:"DRIVE_SYNC_REMOTE_ROOT"`

	// AccountID identifies the drive account the target volume must
	// belong to, e.g. "user@example".
	AccountID string `env:"DRIVE_SYNC_ACCOUNT"`

	// MountTimeout bounds how long a sync attempt waits for the platform
	// to resolve an on-demand mount request.
	MountTimeout time.Duration `env:"DRIVE_SYNC_MOUNT_TIMEOUT" envDefault:"2m"`

	// Exclude holds glob patterns, relative to LocalRoot, that are never
	// synced. Empty by default: every regular file is mirrored.
	Exclude []string `env:"DRIVE_SYNC_EXCLUDE" envSeparator:","`

	// Environment controls log format.
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// DefaultConfigPath returns ~/.drive-sync/config.json, the JSON config
// file consulted for any required field the environment leaves empty.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}

	return filepath.Join(home, ".drive-sync", "config.json"), nil
}

// Load reads configuration from environment variables, falling back to
// the JSON config file for required fields not set in the environment.
// It first attempts to load a .env file if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configPath, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	return loadFrom(configPath)
}

func loadFrom(configPath string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.fillFromFile(configPath); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// fillFromFile fills required fields that are still empty from the JSON
// config file, keyed source_folder, destination_folder, and drive_user.
// A missing file is not an error here; validate reports the missing
// fields instead.
func (c *Config) fillFromFile(configPath string) error {
	if c.LocalRoot != "" && c.RemoteRoot != "" && c.AccountID != "" {
		return nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	if !gjson.ValidBytes(data) {
		return fmt.Errorf("config file %s is not valid JSON", configPath)
	}

	if c.LocalRoot == "" {
		c.LocalRoot = gjson.GetBytes(data, "source_folder").String()
	}

	if c.RemoteRoot == "" {
		c.RemoteRoot = gjson.GetBytes(data, "destination_folder").String()
	}

	if c.AccountID == "" {
		c.AccountID = gjson.GetBytes(data, "drive_user").String()
	}

	return nil
}

func (c *Config) validate() error {
	if c.LocalRoot == "" {
		return fmt.Errorf("local root is required: set DRIVE_SYNC_LOCAL_ROOT or source_folder in config.json")
	}

	if c.RemoteRoot == "" {
		return fmt.Errorf("remote root is required: set DRIVE_SYNC_REMOTE_ROOT or destination_folder in config.json")
	}

	if c.AccountID == "" {
		return fmt.Errorf("account is required: set DRIVE_SYNC_ACCOUNT or drive_user in config.json")
	}

	if c.MountTimeout <= 0 {
		return fmt.Errorf("mount timeout must be positive, got %s", c.MountTimeout)
	}

	return nil
}

// normalize resolves LocalRoot to an absolute path and strips separators
// from RemoteRoot. Downstream path mapping relies on both: relative-path
// computation needs an absolute local root, and remote URIs are built by
// joining the trimmed remote root onto the account URI.
func (c *Config) normalize() error {
	c.LocalRoot = expandUser(c.LocalRoot)
	c.RemoteRoot = expandUser(c.RemoteRoot)

	absRoot, err := filepath.Abs(c.LocalRoot)
	if err != nil {
		return fmt.Errorf("resolving local root to absolute path: %w", err)
	}

	c.LocalRoot = absRoot
	c.RemoteRoot = strings.Trim(filepath.ToSlash(c.RemoteRoot), "/")

	return nil
}

// expandUser replaces a leading "~" with the user's home directory, like
// the shell would. Paths without the prefix pass through unchanged.
func expandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
