package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/tagpages/internal/logging"
	"github.com/rshade/tagpages/internal/pagination"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func envMap(vals map[string]string) LookupEnvFunc {
	return func(k string) (string, bool) {
		v, ok := vals[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Tags.Paginate)
	assert.Equal(t, pagination.DefaultPerPage, cfg.Tags.PerPage)
	assert.Equal(t, "tag", cfg.Tags.BasePath)
	assert.Equal(t, DefaultLayout, cfg.Tags.Layout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("EmptyPathUsesDefaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("PartialSectionKeepsDefaults", func(t *testing.T) {
		path := writeConfig(t, "tags:\n  paginate: true\n  per_page: 2\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.True(t, cfg.Tags.Paginate)
		assert.Equal(t, 2, cfg.Tags.PerPage)
		assert.Equal(t, "tag", cfg.Tags.BasePath)
		assert.Equal(t, DefaultLayout, cfg.Tags.Layout)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("UnknownKeysIgnored", func(t *testing.T) {
		path := writeConfig(t, "plugins:\n  x: 1\noutput:\n  default_format: yaml\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, FormatYAML, cfg.Output.DefaultFormat)
	})

	t.Run("CommentOnlyFile", func(t *testing.T) {
		path := writeConfig(t, "# nothing here\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := writeConfig(t, "tags: [\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("WrongTypeInSection", func(t *testing.T) {
		path := writeConfig(t, "tags:\n  per_page: lots\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying overlay section "tags"`)
	})
}

func TestShallowMergeYAML_NilTarget(t *testing.T) {
	assert.Error(t, ShallowMergeYAML(nil, "whatever.yaml"))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "paginate with zero per page",
			mutate:  func(c *Config) { c.Tags.Paginate = true; c.Tags.PerPage = 0 },
			wantErr: pagination.ErrInvalidConfiguration,
		},
		{
			name:    "paginate with negative per page",
			mutate:  func(c *Config) { c.Tags.Paginate = true; c.Tags.PerPage = -3 },
			wantErr: pagination.ErrInvalidConfiguration,
		},
		{
			name:   "zero per page without paginate",
			mutate: func(c *Config) { c.Tags.PerPage = 0 },
		},
		{
			name:    "bad output format",
			mutate:  func(c *Config) { c.Output.DefaultFormat = "xml" },
			wantErr: ErrInvalidOutputFormat,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvPaginate:  "true",
		EnvPerPage:   "7",
		EnvBasePath:  "blog/tags",
		EnvLayout:    "tag_page",
		EnvOutput:    "json",
		EnvLogLevel:  "debug",
		EnvLogFormat: "console",
		EnvLogFile:   "",
		EnvLogCaller: "true",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.Tags.Paginate)
	assert.Equal(t, 7, cfg.Tags.PerPage)
	assert.Equal(t, "blog/tags", cfg.Tags.BasePath)
	assert.Equal(t, "tag_page", cfg.Tags.Layout)
	assert.Equal(t, FormatJSON, cfg.Output.DefaultFormat)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Logging.File)
	assert.True(t, cfg.Logging.Caller)
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "paginate", env: map[string]string{EnvPaginate: "sometimes"}},
		{name: "per page", env: map[string]string{EnvPerPage: "two"}},
		{name: "log caller", env: map[string]string{EnvLogCaller: "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Default().ApplyEnv(envMap(tt.env)))
		})
	}
}

func TestResolvePath(t *testing.T) {
	env := envMap(map[string]string{EnvConfig: "/etc/tagpages.yaml"})
	assert.Equal(t, "flag.yaml", ResolvePath("flag.yaml", env))
	assert.Equal(t, "/etc/tagpages.yaml", ResolvePath("", env))
	assert.Empty(t, ResolvePath("", envMap(nil)))
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Format: "console"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, got.Output)
	assert.Equal(t, "warn", got.Level)

	lc.File = "/tmp/tagpages.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/tmp/tagpages.log", got.File)

	lc.Caller = true
	assert.True(t, lc.ToLoggingConfig().Caller)
}

func TestMarshal(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "per_page: 10")
	assert.Contains(t, string(data), "base_path: tag")
}
