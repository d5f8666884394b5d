// Package cli implements the Marquee command line interface with cobra.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marquee-labs/marquee-cli/internal/adapters/driven/assethost"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driven/catalogapi"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driven/config/file"
	"github.com/marquee-labs/marquee-cli/internal/core/ports/driven"
	"github.com/marquee-labs/marquee-cli/internal/logger"
)

var (
	flagConfigDir string
	flagVerbose   bool

	// Wired by initServices before any subcommand runs. Tests may
	// substitute these directly.
	configStore *file.Store
	gateway     driven.CatalogGateway
	prober      driven.AssetProber
)

var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Discover a remote movie catalog from the terminal",
	Long: `Marquee browses and searches a remote movie catalog, showing only
titles whose cover image actually resolves on the asset host.

Running marquee without a subcommand launches the interactive TUI.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initServices,
	RunE:              runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.marquee)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging to stderr")
}

// initServices loads configuration and wires the driven adapters.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	store, err := file.NewStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = store

	cfg := store.Config()
	if gateway == nil {
		gateway = catalogapi.NewClient(cfg.CatalogURL, nil)
	}
	if prober == nil {
		prober = assethost.NewProber(cfg.AssetURL, nil)
	}

	logger.Debug("Config: catalog=%s assets=%s page_size=%d", cfg.CatalogURL, cfg.AssetURL, cfg.PageSize)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
