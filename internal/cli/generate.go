package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pnladl/internal/app/template"
	"github.com/aalvaropc/pnladl/internal/domain"
	"github.com/aalvaropc/pnladl/internal/infra/logger"
	"github.com/aalvaropc/pnladl/internal/pnl"
	"github.com/aalvaropc/pnladl/internal/usecase"
)

func generateCmd(flags *rootFlags) *cobra.Command {
	var out string
	var noSave bool

	c := &cobra.Command{
		Use:   "generate <flight.json|flight.yaml>",
		Short: "Encode a flight document as a PNL message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags.workspace)
			if err != nil {
				return err
			}

			path, err := resolveFlightPath(ws, args[0])
			if err != nil {
				return err
			}

			store := ws.store
			if noSave {
				store = nil
			}

			uc := usecase.NewGenerateMessage(ws.flights, pnl.NewEncoder(), store, usecase.WithLogger(logger.L()))
			res, execErr := uc.Execute(cmd.Context(), path)
			if execErr != nil && !isSaveError(execErr) {
				return execErr
			}

			if strings.TrimSpace(out) == "" {
				fmt.Fprint(cmd.OutOrStdout(), res.Content)
			} else {
				dst, err := renderOutPath(res.Flight, out)
				if err != nil {
					return err
				}
				if err := writeOutput(dst, res.Content); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", dst)
			}

			if res.ID != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "response %s saved\n", res.ID)
			}
			return execErr
		},
	}

	c.Flags().StringVarP(&out, "out", "o", "", "Write the message to a file; {{flight_number}}, {{route}}, {{flight_date}} are expanded")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the response under responses/")
	return c
}

// renderOutPath expands placeholders in the output path from the generated flight.
func renderOutPath(f domain.Flight, out string) (string, error) {
	if !strings.Contains(out, "{{") {
		return out, nil
	}
	return template.RenderString(out, template.FlightVars(f))
}

func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
