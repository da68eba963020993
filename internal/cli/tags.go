package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/tagpages/internal/config"
	"github.com/rshade/tagpages/internal/content"
	"github.com/rshade/tagpages/internal/site"
	"github.com/rshade/tagpages/internal/tags"
)

// tagEntry is one row of the tags command output.
type tagEntry struct {
	Tag   string `json:"tag"   yaml:"tag"`
	Items int    `json:"items" yaml:"items"`
	URL   string `json:"url"   yaml:"url"`
}

// newTagsCmd creates the tags command.
func newTagsCmd(state *appState) *cobra.Command {
	var manifestPath, output string

	cmd := &cobra.Command{
		Use:     "tags",
		Short:   "List the distinct tags of a manifest",
		Example: `  tagpages tags --manifest items.yaml -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			format, err := resolveFormat(output, state.cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			manifest, err := content.LoadManifest(ctx, manifestPath)
			if err != nil {
				return err
			}

			groups := tags.GroupItems(manifest.Items)
			counts := tags.Counts(groups)
			entries := make([]tagEntry, 0, len(groups))
			for _, g := range groups {
				entries = append(entries, tagEntry{
					Tag:   g.Tag,
					Items: counts[g.Tag],
					URL:   site.PageURL(state.cfg.Tags.BasePath, g.Tag, ""),
				})
			}

			if format == config.FormatTable {
				return renderTagsTable(cmd.OutOrStdout(), entries)
			}
			return writeStructured(cmd.OutOrStdout(), format, entries)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "path to the item manifest (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or yaml")
	_ = cmd.MarkFlagRequired("manifest")

	return cmd
}

func renderTagsTable(w io.Writer, entries []tagEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No tags found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "TAG\tITEMS\tURL")
	fmt.Fprintln(tw, "---\t-----\t---")
	total := 0
	for _, e := range entries {
		total += e.Items
		fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Tag, e.Items, e.URL)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := printer.Fprintf(w, "\n%d tags, %d tagged item references\n", len(entries), total)
	return err
}
