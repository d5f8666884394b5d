package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marquee-labs/marquee-cli/internal/adapters/driven/config/file"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/messages"
	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/services"
	"github.com/marquee-labs/marquee-cli/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive discovery TUI",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := configStore.Config()

	source := services.NewCatalogSource(gateway)
	verifier := services.NewAssetVerifier(prober)

	// Pipeline notifications arrive under the pipeline's mutex, so they
	// are routed through a buffered channel and forwarded to bubbletea
	// from a separate goroutine. On overflow the oldest snapshot is
	// dropped: only the latest state matters to the view.
	updates := make(chan domain.PipelineState, 16)
	pipeline := services.NewDiscoveryPipeline(source, verifier, services.DiscoveryConfig{
		Quiet:    cfg.Quiet(),
		PageSize: cfg.PageSize,
		Notify: func(state domain.PipelineState) {
			for {
				select {
				case updates <- state:
					return
				default:
					select {
					case <-updates:
					default:
					}
				}
			}
		},
	})
	defer pipeline.Close()

	app, err := tui.NewApp(&tui.Ports{Discovery: pipeline})
	if err != nil {
		return err
	}

	program := tea.NewProgram(app, tea.WithAltScreen())

	go func() {
		for state := range updates {
			program.Send(messages.PipelineUpdated{State: state})
		}
	}()

	watcher, err := file.Watch(configStore, func(cfg file.Config) {
		logger.Info("Config reloaded: page_size=%d", cfg.PageSize)
		program.Send(messages.ConfigReloaded{PageSize: cfg.PageSize})
	})
	if err != nil {
		logger.Warn("Config watcher unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
