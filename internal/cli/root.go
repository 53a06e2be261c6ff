package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pnladl/internal/infra/fsworkspace"
	"github.com/aalvaropc/pnladl/internal/infra/logger"
	"github.com/aalvaropc/pnladl/internal/infra/workspacefinder"
	"github.com/aalvaropc/pnladl/internal/ui/tui"
)

type rootFlags struct {
	debug     bool
	workspace string
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		reportLogPath(os.Stderr)
		_ = logger.Close()
		os.Exit(1)
	}
}

// reportLogPath points at the log file when a failed command wrote one.
func reportLogPath(w io.Writer) {
	if p := logger.Path(); p != "" {
		fmt.Fprintf(w, "details: %s\n", p)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "pnladl",
		Short:        "pnladl converts PNL/ADL passenger lists to and from structured flights",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// Logs go to the workspace only; without one they are discarded.
			root, err := resolveWorkspaceRoot(flags.workspace)
			if err != nil {
				return nil
			}
			if _, ok := workspacefinder.ConfigPath(root); !ok {
				return nil
			}
			cfg, err := workspacefinder.LoadConfig(root)
			if err != nil {
				return nil
			}
			cleanup, _ = logger.Setup(logger.Config{
				Dir:   resolveDir(root, cfg.Paths.LogsDir),
				Debug: flags.debug,
			})
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(flags.workspace)
			if err != nil {
				return err
			}
			return tui.Run(tuiDeps(ws, flags, ""))
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable verbose logging to <paths.logs_dir>/pnladl.log")
	cmd.PersistentFlags().StringVarP(&flags.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		parseCmd(flags),
		generateCmd(flags),
		validateCmd(flags),
		initCmd(),
		messagesCmd(flags),
		viewCmd(flags),
		versionCmd(),
	)
	return cmd
}

func tuiDeps(ws *workspaceCtx, flags *rootFlags, path string) tui.Deps {
	return tui.Deps{
		WorkspaceLocator:     workspacefinder.NewFinder(),
		WorkspaceInitializer: fsworkspace.NewInitializer(),
		Messages:             ws.messages,
		Decoder:              ws.decoder(0),
		Root:                 ws.root,
		Path:                 path,
		Logger:               logger.L(),
		LogPath:              logger.Path(),
		Debug:                flags.debug,
	}
}
