package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/tagpages/internal/config"
	"github.com/rshade/tagpages/internal/logging"
	"github.com/rshade/tagpages/pkg/version"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// appState is shared by the root command and its subcommands for one invocation.
type appState struct {
	version    string
	configPath string
	lookupEnv  config.LookupEnvFunc
	cfg        *config.Config
	logResult  *logging.LogPathResult
	baseLogger zerolog.Logger
	logger     zerolog.Logger
}

// NewRootCmd creates the root Cobra command for the tagpages CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	state := &appState{version: ver, lookupEnv: lookupEnv, baseLogger: zerolog.Nop(), logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "tagpages",
		Short:         "Plan tag index pages for a static site",
		Long:          "tagpages groups tagged content items and lays out one index page, or a paginated set of pages, per tag.",
		Version:       displayVersion(ver),
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(state)
			if err != nil {
				return err
			}
			state.cfg = cfg

			result := setupLogging(cmd, state)
			state.logResult = &result
			cmd.SetContext(logging.ContextWithLogResult(cmd.Context(), state.logResult))
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&state.configPath, "config", "",
		fmt.Sprintf("config file (default from %s)", config.EnvConfig))
	cmd.AddCommand(newGenerateCmd(state), newTagsCmd(state), newConfigCmd(state))

	return cmd
}

// displayVersion marks builds that are not a tagged release.
func displayVersion(ver string) string {
	if version.IsRelease(ver) {
		return ver
	}
	return ver + " (development build)"
}

// loadConfig loads the config file and applies environment overrides.
func loadConfig(state *appState) (*config.Config, error) {
	path := config.ResolvePath(state.configPath, state.lookupEnv)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err = cfg.ApplyEnv(state.lookupEnv); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

const rootCmdExample = `  # One index page per tag
  tagpages generate --manifest items.yaml

  # Paginate every tag at 10 items per page and print JSON
  tagpages generate --manifest items.yaml --paginate --per-page 10 -o json

  # List tags and how many items carry each
  tagpages tags --manifest items.yaml

  # Check a configuration file
  tagpages config validate --config tagpages.yaml`

// newConfigCmd creates the config command group.
func newConfigCmd(state *appState) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration commands"}
	cmd.AddCommand(newConfigValidateCmd(state), newConfigShowCmd(state))
	return cmd
}
