package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pnladl/internal/domain"
	"github.com/aalvaropc/pnladl/internal/infra/flightfile"
	"github.com/aalvaropc/pnladl/internal/infra/logger"
	"github.com/aalvaropc/pnladl/internal/usecase"
	"github.com/aalvaropc/pnladl/internal/usecase/query"
)

func parseCmd(flags *rootFlags) *cobra.Command {
	var format string
	var year int
	var noSave bool
	var extract []string

	c := &cobra.Command{
		Use:   "parse <message|->",
		Short: "Decode a PNL/ADL message into a flight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(flags.workspace)
			if err != nil {
				return err
			}

			rules, err := query.ParseRules(extract)
			if err != nil {
				return err
			}

			path, err := resolveMessagePath(ws, args[0])
			if err != nil {
				return err
			}

			store := ws.store
			if noSave {
				store = nil
			}

			uc := usecase.NewParseMessage(ws.messages, ws.decoder(year), store, usecase.WithLogger(logger.L()))
			flight, id, execErr := uc.Execute(cmd.Context(), path)
			if execErr != nil && !isSaveError(execErr) {
				return execErr
			}

			var results []domain.QueryResult
			var found domain.Vars
			if len(rules) > 0 {
				doc, err := flightfile.MarshalJSON(flight)
				if err != nil {
					return err
				}
				found, results = query.Apply(doc, rules)
			}

			if err := printParse(cmd.OutOrStdout(), flight, id, found, results, format); err != nil {
				return err
			}
			if execErr != nil {
				// Decoded but not saved.
				return execErr
			}

			if fails := countQueryFailures(results); fails > 0 {
				return fmt.Errorf("parse: %d extraction(s) failed", fails)
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|yaml")
	c.Flags().IntVar(&year, "year", 0, "Reference year for DDMON flight dates (default: config or current year)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the response under responses/")
	c.Flags().StringArrayVar(&extract, "extract", nil, "Extract a value with JSONPath, as name=$.expr (repeatable)")
	return c
}

func printParse(w io.Writer, f domain.Flight, id string, found domain.Vars, results []domain.QueryResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"response_id": id,
			"flight":      flightfile.FromFlight(f),
		}
		if len(results) > 0 {
			payload["extracted"] = found
		}
		return enc.Encode(payload)
	case "yaml":
		// Same document shape as flights/*.yaml, so the output feeds generate.
		doc, err := flightfile.MarshalYAML(f)
		if err != nil {
			return err
		}
		if _, err := w.Write(doc); err != nil {
			return err
		}
		printYAMLExtracts(w, found, results)
		return nil
	case "pretty", "":
		printPrettyFlight(w, f, id)
		printQueryResults(w, results)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml)", format)
	}
}

// printYAMLExtracts appends extracted values as YAML comments, keeping the
// document loadable.
func printYAMLExtracts(w io.Writer, found domain.Vars, results []domain.QueryResult) {
	for _, r := range results {
		if r.Success {
			fmt.Fprintf(w, "# %s: %s\n", r.Name, found[r.Name])
		} else {
			fmt.Fprintf(w, "# %s: %s\n", r.Name, r.Message)
		}
	}
}

func printPrettyFlight(w io.Writer, f domain.Flight, id string) {
	fmt.Fprintf(w, "Flight:     %s\n", f.FlightNumber)
	fmt.Fprintf(w, "Route:      %s\n", f.Route)
	fmt.Fprintf(w, "Date:       %s\n", f.FlightDate.Format("2006-01-02"))
	fmt.Fprintf(w, "Passengers: %d\n", f.PassengerCount)
	if id != "" {
		fmt.Fprintf(w, "Response:   %s\n", id)
	}
	fmt.Fprintln(w)

	for _, p := range f.Passengers {
		fmt.Fprintf(w, "- %s/%s %s\n", p.LastName, p.FirstName, p.PassengerType)
		if p.PNR != "" {
			fmt.Fprintf(w, "  pnr: %s\n", p.PNR)
		}
		if p.TourOperator != "" {
			fmt.Fprintf(w, "  tour operator: %s\n", p.TourOperator)
		}
		if p.ElectronicTicket != nil {
			fmt.Fprintf(w, "  ticket: %s (%s)\n", p.ElectronicTicket.Code, p.ElectronicTicket.Status)
		}
		for _, b := range p.Baggage {
			fmt.Fprintf(w, "  bag: %s %s", b.Type, b.Status)
			if b.Quantity > 0 {
				fmt.Fprintf(w, " x%d", b.Quantity)
			}
			if b.Weight != 0 || b.ExtraWeight != 0 {
				fmt.Fprintf(w, " %gkg (extra %gkg)", b.Weight, b.ExtraWeight)
			}
			fmt.Fprintln(w)
		}
		for _, r := range p.SpecialRequests {
			line := fmt.Sprintf("  %s %s", strings.ToLower(string(r.Kind)), r.Status)
			if r.SeatRequest != "" {
				line += " seat " + r.SeatRequest
			}
			fmt.Fprintln(w, line)
		}
	}
}

func printQueryResults(w io.Writer, results []domain.QueryResult) {
	if len(results) == 0 {
		return
	}
	ok, bad := countQueryPassFail(results)
	fmt.Fprintf(w, "\nextracts: %d ok / %d fail\n", ok, bad)
	for _, r := range results {
		mark := "✓"
		if !r.Success {
			mark = "✗"
		}
		fmt.Fprintf(w, "  %s %s — %s\n", mark, r.Name, r.Message)
	}
}

// isSaveError reports whether err came from the response store, in which case
// the use case result is still valid.
func isSaveError(err error) bool {
	var oe *domain.OpError
	return errors.Is(err, domain.ErrExecution) && errors.As(err, &oe) && strings.HasPrefix(oe.Op, "responsestore.")
}

func countQueryPassFail(in []domain.QueryResult) (ok int, bad int) {
	for _, r := range in {
		if r.Success {
			ok++
		} else {
			bad++
		}
	}
	return ok, bad
}

func countQueryFailures(in []domain.QueryResult) int {
	_, bad := countQueryPassFail(in)
	return bad
}
