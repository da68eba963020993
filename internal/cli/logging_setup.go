package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/tagpages/internal/logging"
	"github.com/rshade/tagpages/pkg/version"
)

// setupLogging builds the invocation logger from config and the --debug flag
// and stores it, with the caller's run ID or a new one, in the command context.
func setupLogging(cmd *cobra.Command, state *appState) logging.LogPathResult {
	loggingCfg := state.cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	state.baseLogger = result.Logger.Hook(logging.RunIDHook{})
	state.logger = logging.ComponentLogger(state.baseLogger, "cli")

	ctx := cmd.Context()
	ctx = logging.ContextWithRunID(ctx, logging.GetOrGenerateRunID(ctx))
	ctx = state.logger.WithContext(ctx)
	cmd.SetContext(ctx)

	state.logger.Debug().Ctx(ctx).
		Str("command", cmd.Name()).
		Str("version", state.version).
		Bool("release", version.IsRelease(state.version)).
		Msg("command started")

	return result
}
