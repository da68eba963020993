package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/tagpages/internal/config"
	"github.com/rshade/tagpages/internal/content"
	"github.com/rshade/tagpages/internal/generator"
	"github.com/rshade/tagpages/internal/logging"
	"github.com/rshade/tagpages/internal/site"
)

// generateFlags holds the flags of the generate command.
type generateFlags struct {
	manifest string
	paginate bool
	perPage  int
	basePath string
	layout   string
	output   string
}

// renderedPage is a descriptor plus its site output path, as printed by the CLI.
type renderedPage struct {
	generator.PageDescriptor `yaml:",inline"`

	OutputPath string `json:"output_path" yaml:"output_path"`
}

// generateResult is the structured output of the generate command.
type generateResult struct {
	Mode    generator.Mode    `json:"mode"    yaml:"mode"`
	Summary generator.Summary `json:"summary" yaml:"summary"`
	Pages   []renderedPage    `json:"pages"   yaml:"pages"`
}

// newGenerateCmd creates the generate command.
func newGenerateCmd(state *appState) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Lay out tag index pages for a manifest of items",
		Long: `Reads a YAML or JSON manifest of tagged items and prints one descriptor per tag
index page. With pagination enabled each tag is split into pages of --per-page items
linked to their neighbours; the first page is index.html and page n is page{n}.html.`,
		Example: `  tagpages generate --manifest items.yaml
  tagpages generate --manifest items.json --paginate --per-page 5 -o yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, state, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.manifest, "manifest", "m", "", "path to the item manifest (.yaml, .yml or .json)")
	cmd.Flags().BoolVar(&flags.paginate, "paginate", false, "split each tag across pages")
	cmd.Flags().IntVar(&flags.perPage, "per-page", 0, "items per page when paginating")
	cmd.Flags().StringVar(&flags.basePath, "base-path", "", "directory holding the tag folders")
	cmd.Flags().StringVar(&flags.layout, "layout", "", "layout identifier passed to the renderer")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format: table, json or yaml")
	_ = cmd.MarkFlagRequired("manifest")

	return cmd
}

// applyGenerateFlags overrides config values with explicitly set flags.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config, flags generateFlags) {
	if cmd.Flags().Changed("paginate") {
		cfg.Tags.Paginate = flags.paginate
	}
	if cmd.Flags().Changed("per-page") {
		cfg.Tags.PerPage = flags.perPage
	}
	if cmd.Flags().Changed("base-path") {
		cfg.Tags.BasePath = flags.basePath
	}
	if cmd.Flags().Changed("layout") {
		cfg.Tags.Layout = flags.layout
	}
}

func runGenerate(cmd *cobra.Command, state *appState, flags generateFlags) error {
	ctx := cmd.Context()

	cfg := state.cfg
	applyGenerateFlags(cmd, cfg, flags)
	if err := cfg.Tags.Validate(); err != nil {
		return err
	}

	format, err := resolveFormat(flags.output, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	manifest, err := content.LoadManifest(ctx, flags.manifest)
	if err != nil {
		return err
	}

	gen := generator.New(generator.Options{
		Paginate: cfg.Tags.Paginate,
		PerPage:  cfg.Tags.PerPage,
		Layout:   cfg.Tags.Layout,
	}, logging.ComponentLogger(state.baseLogger, "generator"))

	pages, err := gen.Generate(ctx, manifest.Items)
	if err != nil {
		return fmt.Errorf("generating tag pages: %w", err)
	}
	logging.FromContext(ctx).Debug().
		Ctx(ctx).
		Int("page_count", len(pages)).
		Str("format", format).
		Msg("rendering pages")

	result := generateResult{
		Mode:    gen.Options().Mode(),
		Summary: generator.Summarize(pages),
		Pages:   make([]renderedPage, 0, len(pages)),
	}
	for _, p := range pages {
		result.Pages = append(result.Pages, renderedPage{
			PageDescriptor: p,
			OutputPath:     site.PagePath(cfg.Tags.BasePath, p.Tag, p.Path),
		})
	}

	if format == config.FormatTable {
		return renderPagesTable(cmd.OutOrStdout(), result)
	}
	return writeStructured(cmd.OutOrStdout(), format, result)
}

// renderPagesTable prints one row per page followed by a summary line.
func renderPagesTable(w io.Writer, result generateResult) error {
	if len(result.Pages) == 0 {
		_, err := fmt.Fprintln(w, "No tags found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "TAG\tPAGE\tITEMS\tPREV\tNEXT\tOUTPUT")
	fmt.Fprintln(tw, "---\t----\t-----\t----\t----\t------")
	for _, p := range result.Pages {
		prev, next := "-", "-"
		if p.IsPaginated() {
			if p.Pagination.HasPrevious() {
				prev = *p.Pagination.PreviousPath
			}
			if p.Pagination.HasNext() {
				next = *p.Pagination.NextPath
			}
		}
		fmt.Fprintf(tw, "%s\t%d\t%d/%d\t%s\t%s\t%s\n",
			p.Tag, p.Page, len(p.Items), p.TotalItems, prev, next, p.OutputPath)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := printer.Fprintf(w, "\n%d pages for %d tags (%s mode)\n",
		result.Summary.Pages, result.Summary.Tags, result.Mode)
	return err
}
