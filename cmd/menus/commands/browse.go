package commands

import (
	"github.com/go-mclib/menus/pkg/inventory"
	"github.com/go-mclib/menus/pkg/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse <layout.yml>",
	Short: "Page through a layout interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openLayout(args[0], cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return tui.Run(s, inventory.Label)
	},
}
