package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/pnladl/internal/ui/tui"
)

func viewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "view <message>",
		Short: "Browse the passengers of a message in the terminal UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags.workspace)
			if err != nil {
				return err
			}

			path, err := resolveMessagePath(ws, args[0])
			if err != nil {
				return err
			}
			return tui.Run(tuiDeps(ws, flags, path))
		},
	}
}
