package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pnladl/internal/domain"
	"github.com/aalvaropc/pnladl/internal/infra/flightfile"
	"github.com/aalvaropc/pnladl/internal/infra/logger"
	"github.com/aalvaropc/pnladl/internal/usecase"
)

func validateCmd(flags *rootFlags) *cobra.Command {
	var year int

	c := &cobra.Command{
		Use:   "validate <message|flight>",
		Short: "Check a message or flight document against the flight rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags.workspace)
			if err != nil {
				return err
			}

			var flight domain.Flight
			if flightfile.IsFlightDocument(args[0]) {
				path, err := resolveFlightPath(ws, args[0])
				if err != nil {
					return err
				}
				if flight, err = ws.flights.LoadFlight(path); err != nil {
					return err
				}
			} else {
				path, err := resolveMessagePath(ws, args[0])
				if err != nil {
					return err
				}
				uc := usecase.NewParseMessage(ws.messages, ws.decoder(year), nil, usecase.WithLogger(logger.L()))
				if flight, _, err = uc.Execute(cmd.Context(), path); err != nil {
					return err
				}
			}

			uc := usecase.NewValidateFlight(usecase.WithLogger(logger.L()))
			err = uc.Execute(cmd.Context(), flight)
			printValidation(cmd.OutOrStdout(), err)
			return err
		},
	}

	c.Flags().IntVar(&year, "year", 0, "Reference year for DDMON flight dates (messages only)")
	return c
}

func printValidation(w io.Writer, err error) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		if err == nil {
			fmt.Fprintln(w, "OK")
		}
		return
	}
	for _, v := range ve.Violations {
		fmt.Fprintf(w, "✗ %s\n", v.String())
	}
}
