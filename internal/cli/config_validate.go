package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newConfigValidateCmd creates the config validate command.
func newConfigValidateCmd(state *appState) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		Long: `Validates the effective configuration (file, then environment overrides).

This includes:
- tags.per_page must be positive when tags.paginate is true
- output.default_format must be table, json or yaml
- logging.level must be a known level`,
		Example: `  tagpages config validate --config tagpages.yaml
  tagpages config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := state.cfg
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			cmd.Println("Configuration is valid")

			if verbose {
				cmd.Println()
				cmd.Println("Configuration details:")
				cmd.Printf("  Paginate: %t\n", cfg.Tags.Paginate)
				cmd.Printf("  Per page: %d\n", cfg.Tags.PerPage)
				cmd.Printf("  Base path: %s\n", cfg.Tags.BasePath)
				cmd.Printf("  Layout: %s\n", cfg.Tags.Layout)
				cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the effective settings")

	return cmd
}

// newConfigShowCmd creates the config show command.
func newConfigShowCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := state.cfg.Marshal()
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
