// Package config loads projconv settings from the environment and an
// optional .env file.
package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"github.com/pebbe/projection"
)

// Environment variables read by Load.
//
// The two definitions are applied one after the other without a datum
// shift, so PROJCONV_GEOGRAPHIC and PROJCONV_PROJECTED must use the same
// datum. A +towgs84 or +nadgrids difference between them is ignored.
const (
	EnvGeographic = "PROJCONV_GEOGRAPHIC"
	EnvProjected  = "PROJCONV_PROJECTED"
	EnvLogLevel   = "PROJCONV_LOG_LEVEL"
	EnvPrecision  = "PROJCONV_PRECISION"
)

const (
	DefaultPrecision = 3
	maxPrecision     = 15
)

type Config struct {
	Geographic string  // PROJ string of the geographic frame
	Projected  string  // PROJ string of the world frame
	LogLevel   log.Lvl // gommon log level
	Precision  int     // decimals printed for meters; degrees get 6 more
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Geographic: projection.DefaultGeographicDefinition,
		Projected:  projection.DefaultProjectedDefinition,
		LogLevel:   log.INFO,
		Precision:  DefaultPrecision,
	}
}

// Load builds a Config from the process environment, then envFile, then the
// defaults, in that order of precedence. A missing envFile is not an error.
// The process environment is not modified.
func Load(envFile string) (Config, error) {
	fileEnv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileEnv = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, errors.Wrapf(err, "reading %s", envFile)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	cfg := Default()
	if v, ok := lookup(EnvGeographic); ok {
		cfg.Geographic = v
	}
	if v, ok := lookup(EnvProjected); ok {
		cfg.Projected = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		lvl, err := ParseLevel(v)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = lvl
	}
	if v, ok := lookup(EnvPrecision); ok {
		p, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, errors.Wrapf(err, "%s", EnvPrecision)
		}
		if p < 0 || p > maxPrecision {
			return Config{}, errors.Newf("%s must be between 0 and %d, got %d", EnvPrecision, maxPrecision, p)
		}
		cfg.Precision = p
	}
	return cfg, nil
}

// ParseLevel maps debug, info, warn, error and off to gommon log levels.
func ParseLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return 0, errors.Newf("unknown log level %q", s)
}
