package stocks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AppName names the application directory and is the figlet banner text.
const AppName = "stocks-overview"

// Config holds the two paths the application is constructed from. It is
// persisted as a TOML file with an [io] table, so a setup can be relocated by
// editing the file.
type Config struct {
	ConfigPath string // location of the config file itself.
	StocksFile string // location of the stocks CSV file.
}

// DefaultAppDir returns the per-user application directory.
func DefaultAppDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: could not resolve the user config directory: %v", ErrStorage, err)
	}
	return filepath.Join(base, AppName), nil
}

// DefaultConfig returns the config for a first run: config file and stocks
// file side by side in the default app directory.
func DefaultConfig() (Config, error) {
	dir, err := DefaultAppDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		ConfigPath: filepath.Join(dir, "stocks_overview.toml"),
		StocksFile: filepath.Join(dir, "stocks.csv"),
	}, nil
}

// LoadConfig reads a config file from the given path.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%w: could not read config %q: %v", ErrStorage, path, err)
	}
	c := Config{
		ConfigPath: v.GetString("io.config_path"),
		StocksFile: v.GetString("io.stocks_file"),
	}
	if c.ConfigPath == "" || c.StocksFile == "" {
		return Config{}, fmt.Errorf("%w: config %q must set io.config_path and io.stocks_file", ErrStorage, path)
	}
	return c, nil
}

// Write persists the config to its own ConfigPath, creating parent
// directories as needed.
func (c Config) Write() error {
	if err := os.MkdirAll(filepath.Dir(c.ConfigPath), 0755); err != nil {
		return fmt.Errorf("%w: could not create directory for %q: %v", ErrStorage, c.ConfigPath, err)
	}
	v := viper.New()
	v.SetConfigFile(c.ConfigPath)
	v.SetConfigType("toml")
	v.Set("io.config_path", c.ConfigPath)
	v.Set("io.stocks_file", c.StocksFile)
	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("%w: could not write config %q: %v", ErrStorage, c.ConfigPath, err)
	}
	return nil
}
