package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tooldeck/internal/render"
	"tooldeck/internal/theme"
)

// ExportOptions
type ExportOptions struct {
	Output  string
	Theme   string
	Palette string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"Write the page to this file instead of stdout.")
	cmd.Flags().StringVar(&o.Theme, "theme", "",
		"Page theme, light or dark (default: the saved preference).")
	cmd.Flags().StringVar(&o.Palette, "palette", "",
		"Palette key (default: the saved preference).")
}

func addExport(topLevel *cobra.Command, ro *RootOptions) {
	fo := &FilterOptions{}
	eo := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the directory as a standalone HTML page",
		Example: `
tooldeck export > tools.html
tooldeck export -o tools.html --theme dark --palette emerald
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := ro.environment()
			if err != nil {
				return err
			}
			defer e.Close()

			opts, err := eo.pageOptions(e, fo)
			if err != nil {
				return err
			}
			page := render.NewHTMLTarget(opts)

			store, loadErr := loadFiltered(cmd, e, fo)
			if loadErr != nil {
				e.logger.Warn("export without catalog", zap.Error(loadErr))
				err = render.RenderFailure(page, failureMessage(loadErr))
			} else {
				err = render.Render(page, store.Visible())
			}
			if err != nil {
				return err
			}

			if eo.Output == "" {
				if _, err := page.WriteTo(cmd.OutOrStdout()); err != nil {
					return err
				}
				return loadErr
			}
			f, err := os.Create(eo.Output)
			if err != nil {
				return fmt.Errorf("create %s: %w", eo.Output, err)
			}
			if _, err := page.WriteTo(f); err != nil {
				f.Close()
				return fmt.Errorf("write %s: %w", eo.Output, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", eo.Output)
			return loadErr
		},
	}
	AddFilterArgs(cmd, fo)
	AddExportArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}

// pageOptions merges the flags over the saved preferences
func (o *ExportOptions) pageOptions(e *env, fo *FilterOptions) (render.PageOptions, error) {
	p := e.loadPrefs()

	mode := p.Theme
	if o.Theme != "" {
		parsed, ok := theme.ParseMode(o.Theme)
		if !ok {
			return render.PageOptions{}, fmt.Errorf("unknown theme %q (want light or dark)", o.Theme)
		}
		mode = parsed
	}

	palette := theme.Resolve(p.Palette)
	if o.Palette != "" {
		found, ok := theme.Lookup(o.Palette)
		if !ok {
			return render.PageOptions{}, fmt.Errorf("unknown palette %q", o.Palette)
		}
		palette = found
	}

	return render.PageOptions{
		Mode:       mode,
		Palette:    palette,
		SearchTerm: fo.Search,
		Category:   fo.Category,
	}, nil
}
