package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// playCommand creates the play command for driving an overlay in the
// terminal.
func (c *CLI) playCommand() *cobra.Command {
	var scene sceneFlags

	cmd := &cobra.Command{
		Use:   "play [scene.toml]",
		Short: "Expand and collapse the overlay interactively",
		Long: `Play the overlay transitions in the terminal.

Keys:
  space  toggle the accessory button
  1-9    select the Nth shown action
  esc    collapse
  tab    select the next tab
  s      switch between compact and regular
  f      toggle the first scene flag
  q      quit

Clicking a cell taps the matching point of the container.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(cmd.Context(), sceneArg(args), scene)
		},
	}

	scene.register(cmd)
	return cmd
}

func (c *CLI) runPlay(ctx context.Context, path string, f sceneFlags) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadScene(path, f)
	if err != nil {
		return err
	}

	m := newPlayModel(cfg)
	logger.Debug("playing", "size_class", m.ctl.SizeClass(), "mode", m.ctl.Overlay().Mode(), "actions", len(cfg.Actions))

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	if m.last != "" {
		printSuccess("Last action: %s", m.last)
	}
	return nil
}
