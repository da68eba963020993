package config

import (
	"fmt"
	"strconv"
)

// Environment variables that override the configuration file.
const (
	EnvConfig    = "TAGPAGES_CONFIG"
	EnvPaginate  = "TAGPAGES_PAGINATE"
	EnvPerPage   = "TAGPAGES_PER_PAGE"
	EnvBasePath  = "TAGPAGES_BASE_PATH"
	EnvLayout    = "TAGPAGES_LAYOUT"
	EnvOutput    = "TAGPAGES_OUTPUT"
	EnvLogLevel  = "TAGPAGES_LOG_LEVEL"
	EnvLogFormat = "TAGPAGES_LOG_FORMAT"
	EnvLogFile   = "TAGPAGES_LOG_FILE"
	EnvLogCaller = "TAGPAGES_LOG_CALLER"
)

// LookupEnvFunc matches os.LookupEnv.
type LookupEnvFunc func(string) (string, bool)

// ResolvePath returns the config file to load: the flag value if set,
// otherwise TAGPAGES_CONFIG, otherwise "" (defaults only).
func ResolvePath(flagValue string, lookupEnv LookupEnvFunc) string {
	if flagValue != "" {
		return flagValue
	}
	if v, ok := lookupEnv(EnvConfig); ok {
		return v
	}
	return ""
}

// ApplyEnv overrides configuration values from environment variables.
// Values that do not parse are reported rather than silently ignored.
func (c *Config) ApplyEnv(lookupEnv LookupEnvFunc) error {
	if v, ok := lookupEnv(EnvPaginate); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s=%q: %w", EnvPaginate, v, err)
		}
		c.Tags.Paginate = b
	}
	if v, ok := lookupEnv(EnvPerPage); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s=%q: %w", EnvPerPage, v, err)
		}
		c.Tags.PerPage = n
	}
	if v, ok := lookupEnv(EnvLogCaller); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s=%q: %w", EnvLogCaller, v, err)
		}
		c.Logging.Caller = b
	}

	strs := []struct {
		key string
		dst *string
	}{
		{EnvBasePath, &c.Tags.BasePath},
		{EnvLayout, &c.Tags.Layout},
		{EnvOutput, &c.Output.DefaultFormat},
		{EnvLogLevel, &c.Logging.Level},
		{EnvLogFormat, &c.Logging.Format},
		{EnvLogFile, &c.Logging.File},
	}
	for _, s := range strs {
		if v, ok := lookupEnv(s.key); ok && v != "" {
			*s.dst = v
		}
	}
	return nil
}
