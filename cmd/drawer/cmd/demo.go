package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/go-drift/drawer/internal/tui"
	"github.com/go-drift/drawer/pkg/drawer"
)

func init() {
	register(newDemoCommand)
}

func newDemoCommand(g *globals) *cobra.Command {
	var df drawerFlags
	c := &cobra.Command{
		Use:   "demo",
		Short: "Run an interactive drawer in the terminal",
		Long: `Run a drawer in the terminal. Terminal rows form the viewport: drag the
sheet with the mouse, click the backdrop or press esc to dismiss it, and use
the keys shown at the bottom to open, close and step between snap points.

With --verbose, logs go to ` + defaultLogFile + ` unless --log-file is set.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{fullscreenAnnotation: "true"},
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := df.config(c, g)
			if err != nil {
				return err
			}
			obs, stop, err := g.observer(c.Context())
			if err != nil {
				return err
			}
			defer stop()

			// The first WindowSizeMsg resizes the host to the terminal.
			host, err := tui.NewHost(cfg, 80, 24, drawer.WithObserver(obs))
			if err != nil {
				return err
			}
			defer host.Close()

			zones := zone.New()
			defer zones.Close()

			title := "drawer demo"
			if df.preset != "" {
				title = fmt.Sprintf("drawer demo · preset %s", df.preset)
			}
			m := tui.NewModel(host, zones, tui.WithTitle(title))
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(c.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run demo: %w", err)
			}
			return nil
		},
	}
	df.bind(c)
	df.defaultSnap = "0.3,0.6,1"
	return c
}
