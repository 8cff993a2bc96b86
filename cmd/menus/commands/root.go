package commands

import (
	"io"
	"log"

	"github.com/go-mclib/data/pkg/data/items"
	"github.com/go-mclib/menus/pkg/inventory"
	"github.com/go-mclib/menus/pkg/layout"
	"github.com/go-mclib/menus/pkg/session"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "menus",
	Short: "Preview paged container menus defined in YAML layouts",
	Long: `menus loads a container menu layout (pattern, decoration, slot iterator
and item list) and renders its pages, either once to the terminal or in an
interactive browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log session events")
	rootCmd.AddCommand(showCmd, browseCmd)
}

// openLayout loads path and opens it as a session on a fresh manager.
func openLayout(path string, logOut io.Writer) (*session.Session[*items.ItemStack], error) {
	l, err := layout.Load(path)
	if err != nil {
		return nil, err
	}
	m := session.NewManager(inventory.GridOption())
	m.Logger = log.New(io.Discard, "", 0)
	if verbose {
		m.Logger = log.New(logOut, "", log.LstdFlags)
	}
	return l.Open(m)
}
