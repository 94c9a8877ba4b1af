// Package cli defines the taskpad command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/phrazzld/taskpad/internal/client"
	"github.com/phrazzld/taskpad/internal/config"
	"github.com/phrazzld/taskpad/internal/platform/logger"
	"github.com/phrazzld/taskpad/internal/tui"
	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// TaskAPI is the server API used by the commands.
type TaskAPI interface {
	tui.TaskClient
	Health(ctx context.Context) (*client.HealthStatus, error)
}

// API is the client used by every command. When nil, it is built from the
// client configuration before the command runs.
var API TaskAPI

// apiURL overrides the configured API_URL when set with --api-url.
var apiURL string

var rootCmd = &cobra.Command{
	Use:   "taskpad",
	Short: "Terminal client for the taskpad task server",
	Long: `taskpad talks to a taskpad API server.

Run without a subcommand to open the interactive task screen, or use the
subcommands to list, add and complete tasks from scripts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if API != nil || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.LoadClient()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		baseURL := cfg.APIURL
		if apiURL != "" {
			baseURL = apiURL
		}

		log := logger.SetupWithWriter(cfg.LogLevel, os.Stderr)
		API = client.New(baseURL, client.WithLogger(log))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return uiCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "taskpad %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API server base URL (overrides API_URL)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
