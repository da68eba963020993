// Command tagpages plans the tag index pages of a static site.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rshade/tagpages/internal/cli"
	"github.com/rshade/tagpages/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	if err := cli.Execute(ctx, root); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
