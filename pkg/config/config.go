// Package config loads the optional cncutil.toml configuration file.
//
// All settings have defaults matching the machine's standard conventions, so
// the tool runs without any configuration. A config file adjusts the offset
// rule or the API server address:
//
//	[offset]
//	threshold = 50.0
//	shift = 10.0
//
//	[server]
//	addr = ":8080"
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	cncerrors "github.com/adamValent/CNC-code-utility/pkg/errors"
	"github.com/adamValent/CNC-code-utility/pkg/gcode/transform"
)

// DefaultFile is the config filename looked up in the working directory when
// no explicit path is given.
const DefaultFile = "cncutil.toml"

// Config holds all tool configuration.
type Config struct {
	Offset Offset `toml:"offset"`
	Server Server `toml:"server"`
}

// Offset configures the conditional Y-offset rule.
type Offset struct {
	Threshold float64 `toml:"threshold"`
	Shift     float64 `toml:"shift"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Offset: Offset{
			Threshold: transform.DefaultRule.Threshold,
			Shift:     transform.DefaultRule.Shift,
		},
		Server: Server{Addr: ":8080"},
	}
}

// Rule converts the offset section into a transform rule.
func (c Config) Rule() transform.Rule {
	return transform.Rule{Threshold: c.Offset.Threshold, Shift: c.Offset.Shift}
}

// Load reads the config file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cncerrors.Wrap(cncerrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, cncerrors.Wrap(cncerrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, cncerrors.Wrap(cncerrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// Resolve loads the explicit path if given, otherwise DefaultFile from the
// working directory if present, otherwise the defaults.
func Resolve(explicit string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return Load(DefaultFile)
	}
	return Default(), nil
}
