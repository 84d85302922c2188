package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PortellaAlly/bestprice/internal/api"
	"github.com/PortellaAlly/bestprice/internal/config"
	"github.com/PortellaAlly/bestprice/internal/logging"
	"github.com/PortellaAlly/bestprice/internal/tui"
)

// baseURL resolves the API endpoint: --api flag, then BESTPRICE_API_URL,
// then the config file.
func baseURL(cfg *config.Config) string {
	if flagAPI != "" {
		return flagAPI
	}
	return cfg.ResolveBaseURL()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The screen belongs to the TUI, so diagnostics go to a file.
	log, closeLog, err := logging.NewFile(cfg.Log.Level, config.LogPath())
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()

	client := api.New(baseURL(cfg), log)

	return tui.Run(tui.RunOpts{
		Client:       client,
		Log:          log,
		InitialQuery: flagQuery,
	})
}
