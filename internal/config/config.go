package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/spf13/viper"
)

// DefaultAnchor is the first day of the first pay period used when none is
// configured.
const DefaultAnchor = "2025-08-10"

// Store kinds.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds paycal settings. Values come from ~/.paycal/config.json and
// can be overridden with PAYCAL_* environment variables.
type Config struct {
	Anchor         string   `mapstructure:"anchor"`
	Store          string   `mapstructure:"store"`
	StatusFile     string   `mapstructure:"status_file"`
	Database       string   `mapstructure:"database"`
	Addr           string   `mapstructure:"addr"`
	RateLimit      float64  `mapstructure:"rate_limit"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PaycalDir returns the global paycal directory.
func PaycalDir(homeDir string) string {
	return filepath.Join(homeDir, ".paycal")
}

// ConfigPath returns the path to config.json.
func ConfigPath(homeDir string) string {
	return filepath.Join(PaycalDir(homeDir), "config.json")
}

// Keys returns the settable configuration keys in sorted order.
func Keys() []string {
	keys := []string{"anchor", "store", "status_file", "database", "addr", "rate_limit", "allowed_origins"}
	sort.Strings(keys)
	return keys
}

func setDefaults(v *viper.Viper, homeDir string) {
	v.SetDefault("anchor", DefaultAnchor)
	v.SetDefault("store", StoreFile)
	v.SetDefault("status_file", filepath.Join(PaycalDir(homeDir), "statuses.json"))
	v.SetDefault("database", filepath.Join(PaycalDir(homeDir), "paycal.db"))
	v.SetDefault("addr", ":8080")
	v.SetDefault("rate_limit", 20)
	v.SetDefault("allowed_origins", []string{"http://localhost:5173", "http://localhost:8080"})
}

func newViper(homeDir string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(ConfigPath(homeDir))
	v.SetConfigType("json")
	v.SetEnvPrefix("PAYCAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, homeDir)
	return v
}

// readFile loads the config file into v. A missing file is not an error.
func readFile(v *viper.Viper, homeDir string) error {
	if _, err := os.Stat(ConfigPath(homeDir)); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", ConfigPath(homeDir), err)
	}
	return nil
}

// Load reads the configuration for homeDir and validates it.
func Load(homeDir string) (*Config, error) {
	v := newViper(homeDir)
	if err := readFile(v, homeDir); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the anchor, the store kind and the rate limit.
func (c *Config) Validate() error {
	if _, err := schedule.ParseAnchor(c.Anchor); err != nil {
		return err
	}
	switch c.Store {
	case StoreFile, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("unknown store %q (expected file, sqlite or memory)", c.Store)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative")
	}
	return nil
}

// AnchorDate returns the parsed anchor.
func (c *Config) AnchorDate() (time.Time, error) {
	return schedule.ParseAnchor(c.Anchor)
}

// Value returns the string form of a single key.
func (c *Config) Value(key string) (string, error) {
	switch key {
	case "anchor":
		return c.Anchor, nil
	case "store":
		return c.Store, nil
	case "status_file":
		return c.StatusFile, nil
	case "database":
		return c.Database, nil
	case "addr":
		return c.Addr, nil
	case "rate_limit":
		return strconv.FormatFloat(c.RateLimit, 'f', -1, 64), nil
	case "allowed_origins":
		return strings.Join(c.AllowedOrigins, ","), nil
	}
	return "", fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
}

// Set persists key=value in config.json after validating the resulting
// configuration. Environment overrides are not written back.
func Set(homeDir, key, value string) error {
	if _, err := (&Config{}).Value(key); err != nil {
		return err
	}

	// A file-only viper so env overrides don't leak into the written file.
	file := viper.New()
	file.SetConfigFile(ConfigPath(homeDir))
	file.SetConfigType("json")
	if err := readFile(file, homeDir); err != nil {
		return err
	}

	var typed any = value
	switch key {
	case "rate_limit":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid rate_limit %q: %w", value, err)
		}
		typed = f
	case "allowed_origins":
		typed = splitList(value)
	}
	file.Set(key, typed)

	// Validate the merged view before writing.
	merged := newViper(homeDir)
	for k, val := range file.AllSettings() {
		merged.Set(k, val)
	}
	var cfg Config
	if err := merged.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(PaycalDir(homeDir), 0755); err != nil {
		return err
	}
	return file.WriteConfigAs(ConfigPath(homeDir))
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
