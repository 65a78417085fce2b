package commands

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// RootOptions are the flags every command shares
type RootOptions struct {
	ConfigPath string
	FeedURL    string
	LogLevel   string
}

func AddRootArgs(cmd *cobra.Command, o *RootOptions) {
	cmd.PersistentFlags().StringVarP(&o.ConfigPath, "config", "c", "",
		"Path to the config file (default <user config dir>/tooldeck/config.toml).")
	cmd.PersistentFlags().StringVar(&o.FeedURL, "feed", "",
		"Override the catalog feed URL.")
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "",
		"Override the log level (debug, info, warn, error).")
}

// FilterOptions narrow the catalog the way the search box and category selector do
type FilterOptions struct {
	Search   string
	Category string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Only show tools whose name, description or category contains this text.")
	cmd.Flags().StringVar(&o.Category, "category", "",
		"Only show tools in this category (exact match).")
}

// OutputOptions selects how a command prints its result
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.JSON, "json", false,
		"Output as JSON.")
}

// HandleError prints err as a JSON object when JSON output was asked for
func (o *OutputOptions) HandleError(cmd *cobra.Command, err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	}
	return err
}
