package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/rshade/tagpages/internal/logging"
)

// Execute runs root with ctx and closes the invocation's log file afterwards,
// including when the command fails.
func Execute(ctx context.Context, root *cobra.Command) error {
	executed, err := root.ExecuteContextC(ctx)
	if executed == nil {
		return err
	}
	closeErr := logging.LogResultFromContext(executed.Context()).Close()
	return errors.Join(err, closeErr)
}
