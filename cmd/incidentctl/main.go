package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apdreports/incident-reports/client"
	"github.com/apdreports/incident-reports/client/session"
)

var (
	baseURL     string
	sessionPath string
)

var rootCmd = &cobra.Command{
	Use:   "incidentctl",
	Short: "Command line client for the incident-reports API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		zap.ReplaceGlobals(logger)

		if baseURL == "" {
			baseURL = os.Getenv("API_BASE_URL")
		}
		if baseURL == "" {
			baseURL = "http://localhost:8080/api"
		}
		if sessionPath == "" {
			sessionPath = os.Getenv("SESSION_FILE")
		}
		if sessionPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			sessionPath = home + "/.incidentctl-session"
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.S().Sync()
	},
}

// newClient builds the API client over the file-backed session
func newClient() (*client.Client, *session.Manager) {
	sess := session.New(session.NewFileStore(sessionPath))
	return client.New(baseURL, sess), sess
}

func main() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (default $API_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session-file", "", "session file path (default $SESSION_FILE)")

	rootCmd.AddCommand(loginCmd, logoutCmd, incidentsCmd)
	incidentsCmd.AddCommand(incidentsListCmd, incidentsGetCmd, incidentsSearchCmd, incidentsPrintCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
