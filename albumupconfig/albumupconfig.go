package albumupconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// maxChunkSize is the Google Photos API limit for a single batchCreate call.
const maxChunkSize = 50

// BackoffConfig tunes the retry policy applied to rate-limited API calls.
type BackoffConfig struct {
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
	// MaxElapsed bounds how long a single call keeps being retried. There is
	// no per-attempt cap.
	MaxElapsed time.Duration `mapstructure:"max_elapsed"`
}

// AlbumupConfig defines the configuration for Albumup. Every field has a
// usable default; the config file is optional.
type AlbumupConfig struct {
	CredentialsPath string `mapstructure:"credentials_path"`

	ChunkSize         int `mapstructure:"chunk_size"`
	RequestsPerSecond int `mapstructure:"requests_per_second"`
	Burst             int `mapstructure:"burst"`

	Backoff BackoffConfig `mapstructure:"backoff"`

	path string `mapstructure:"-"`
}

// ConfigPath returns the path the config was loaded from (or would have been
// loaded from, when no file exists). Token and cache files live next to it.
func (c *AlbumupConfig) ConfigPath() string {
	return c.path
}

// DefaultConfig returns the configuration used when no config file is
// present.
func DefaultConfig() AlbumupConfig {
	return AlbumupConfig{
		CredentialsPath:   "credentials.json",
		ChunkSize:         maxChunkSize,
		RequestsPerSecond: 5,
		Burst:             10,
		Backoff: BackoffConfig{
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     time.Minute,
			MaxElapsed:      5 * time.Minute,
		},
	}
}

func (c *AlbumupConfig) Validate() error {
	if c.CredentialsPath == "" {
		return fmt.Errorf("missing credentials_path (%s)", c.path)
	}
	if c.ChunkSize < 1 || c.ChunkSize > maxChunkSize {
		return fmt.Errorf("chunk_size must be between 1 and %d, got %d (%s)", maxChunkSize, c.ChunkSize, c.path)
	}
	if c.RequestsPerSecond < 1 {
		return fmt.Errorf("requests_per_second must be positive, got %d (%s)", c.RequestsPerSecond, c.path)
	}
	if c.Burst < 1 {
		return fmt.Errorf("burst must be positive, got %d (%s)", c.Burst, c.path)
	}
	if c.Backoff.InitialInterval <= 0 || c.Backoff.MaxInterval <= 0 || c.Backoff.MaxElapsed <= 0 {
		return fmt.Errorf("backoff intervals must be positive (%s)", c.path)
	}
	return nil
}

// getConfigPath determines where to look for the config file.
func getConfigPath(configPathFlag string) (string, error) {
	// Prefer user-specific config file path if specified.
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	// Fall back to user config dir.
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "albumup", "config.toml"), nil
	}
	return "", fmt.Errorf("unable to determine config file path")
}

// LoadConfig reads the config file, if any, on top of the defaults. A
// missing file is only an error when its path was given explicitly.
func LoadConfig(configPathFlag string) (AlbumupConfig, error) {
	path, err := getConfigPath(configPathFlag)
	if err != nil {
		return AlbumupConfig{}, err
	}

	config := DefaultConfig()
	config.path = path

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) && configPathFlag == "" {
			return config, nil
		}
		return AlbumupConfig{}, fmt.Errorf("error reading (%s): %w", path, err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return AlbumupConfig{}, fmt.Errorf("error unmarshaling (%s): %w", path, err)
	}
	config.path = path

	return config, nil
}
