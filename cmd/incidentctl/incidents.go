package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/apdreports/incident-reports/client/form"
)

var (
	searchNumber    string
	searchShift     string
	searchBeat      int
	searchNarrative string
	printOut        string
)

var incidentsCmd = &cobra.Command{
	Use:   "incidents",
	Short: "Work with incident reports",
}

var incidentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all incidents",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, sess := newClient()
		if !sess.LoggedIn() {
			return fmt.Errorf("not logged in")
		}
		incidents := api.GetIncidents(cmd.Context())
		return printJSON(incidents)
	},
}

var incidentsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch one incident with its victims, suspects and files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid incident id %q", args[0])
		}
		api, sess := newClient()
		if !sess.LoggedIn() {
			return fmt.Errorf("not logged in")
		}

		edit := form.NewEditSession(api)
		incident := edit.Begin(cmd.Context(), id)
		edit.Wait()

		return printJSON(map[string]interface{}{
			"incident": incident,
			"victims":  edit.Victims(),
			"suspects": edit.Suspects(),
			"files":    edit.Files(),
		})
	},
}

var incidentsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search incidents with sparse criteria",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, sess := newClient()
		if !sess.LoggedIn() {
			return fmt.Errorf("not logged in")
		}

		criteria := form.Criteria{
			IncidentNumber: searchNumber,
			Shift:          searchShift,
			Beat:           searchBeat,
			Narrative:      searchNarrative,
		}
		incidents := api.SearchIncidents(cmd.Context(), criteria.Params())
		return printJSON(incidents)
	},
}

var incidentsPrintCmd = &cobra.Command{
	Use:   "print <id>",
	Short: "Download the rendered report PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid incident id %q", args[0])
		}
		api, sess := newClient()
		if !sess.LoggedIn() {
			return fmt.Errorf("not logged in")
		}

		doc, ok := api.PrintIncident(cmd.Context(), id)
		if !ok {
			return fmt.Errorf("failed to fetch report for incident %d", id)
		}
		out := printOut
		if out == "" {
			out = fmt.Sprintf("incident-%d.pdf", id)
		}
		if err := os.WriteFile(out, doc, 0644); err != nil {
			return err
		}
		fmt.Println("wrote", out)
		return nil
	},
}

func init() {
	incidentsSearchCmd.Flags().StringVar(&searchNumber, "incident-number", "", "filter by incident number")
	incidentsSearchCmd.Flags().StringVar(&searchShift, "shift", "", "filter by shift")
	incidentsSearchCmd.Flags().IntVar(&searchBeat, "beat", 0, "filter by beat")
	incidentsSearchCmd.Flags().StringVar(&searchNarrative, "narrative", "", "filter by narrative text")
	incidentsPrintCmd.Flags().StringVar(&printOut, "out", "", "output file (default incident-<id>.pdf)")
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
