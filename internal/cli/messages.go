package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func messagesCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "messages",
		Short: "Manage messages in a workspace",
	}

	c.AddCommand(messagesListCmd(flags))
	return c
}

func messagesListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List messages",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(flags.workspace)
			if err != nil {
				return err
			}
			if !ws.found() {
				return fmt.Errorf("workspace not found (tip: run `pnladl init`)")
			}

			refs, err := ws.messages.ListMessages(ws.root)
			if err != nil {
				return err
			}

			if len(refs) == 0 {
				fmt.Println("(no messages found)")
				return nil
			}

			fmt.Printf("Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Printf("- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}
}
