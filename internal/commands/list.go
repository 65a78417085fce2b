package commands

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"tooldeck/internal/directory"
	"tooldeck/internal/feed"
	"tooldeck/internal/render"
)

func addList(topLevel *cobra.Command, ro *RootOptions) {
	fo := &FilterOptions{}
	oo := &OutputOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the directory as a table",
		Example: `
tooldeck list
tooldeck list --search image
tooldeck list --category Writing --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := ro.environment()
			if err != nil {
				return oo.HandleError(cmd, err)
			}
			defer e.Close()

			store, err := loadFiltered(cmd, e, fo)
			if err != nil {
				if oo.JSON {
					return oo.HandleError(cmd, err)
				}
				if rerr := render.RenderFailure(render.NewTableTarget(cmd.OutOrStdout(), 0), failureMessage(err)); rerr != nil {
					return rerr
				}
				return err
			}

			if oo.JSON {
				items := render.Project(store.Visible()).Items
				if items == nil {
					items = []render.Item{}
				}
				b, err := json.MarshalIndent(items, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return err
			}
			return render.Render(render.NewTableTarget(cmd.OutOrStdout(), 0), store.Visible())
		},
	}
	AddFilterArgs(cmd, fo)
	AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

// loadFiltered fetches the catalog and applies the filter flags
func loadFiltered(cmd *cobra.Command, e *env, fo *FilterOptions) (*directory.Store, error) {
	store := e.newStore()
	if err := store.Load(cmd.Context()); err != nil {
		return nil, err
	}
	store.SetSearchTerm(fo.Search)
	store.SetCategory(fo.Category)
	return store, nil
}

// failureMessage is the visitor-facing text for a failed fetch
func failureMessage(err error) string {
	var fe *feed.FetchError
	if errors.As(err, &fe) {
		return fe.UserMessage()
	}
	return feed.FailureMessage
}
