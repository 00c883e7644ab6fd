package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tabbar/pkg/config"
	"github.com/matzehuels/tabbar/pkg/geom"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
	"github.com/matzehuels/tabbar/pkg/render"
)

// layoutCommand creates the layout command for inspecting item positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		scene  sceneFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "layout [scene.toml]",
		Short: "Print the collapsed and expanded position of every action",
		Long: `Print the collapsed and expanded position of every visible action.

Without a scene file the built-in phone scene is used. Positions are in
points with the origin at the top-left corner of the container.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), sceneArg(args), scene, asJSON)
		},
	}

	scene.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, w io.Writer, path string, f sceneFlags, asJSON bool) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadScene(path, f)
	if err != nil {
		return err
	}
	ctl := cfg.Controller(nil)
	ov := ctl.Overlay()
	l := ov.Layout()
	titles := visibleTitles(cfg)
	logger.Debug("layout", "mode", l.Mode, "size_class", l.Params.SizeClass, "visible", len(l.Slots))

	if asJSON {
		data, err := render.RenderJSON(l, render.WithJSONTitles(titles))
		if err != nil {
			return fmt.Errorf("encode layout: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	printKeyValue("mode", modeLabel(l.Mode, l.Params.SizeClass))
	printKeyValue("size class", l.Params.SizeClass.String())
	printKeyValue("anchor", fmtPoint(l.Params.Anchor))
	printKeyValue("actions", fmt.Sprintf("%d visible of %d", len(l.Slots), len(cfg.Actions)))
	printNewline()

	fmt.Fprintln(w, layoutTable(l, titles))

	if len(l.Slots) > 0 {
		printNewline()
		next := appName + " render"
		if path != "" {
			next += " " + path
		}
		printNextStep("Render", next)
	}
	return nil
}

// layoutTable renders one row per slot.
func layoutTable(l layout.Layout, titles []string) string {
	rows := make([][]string, 0, len(l.Slots))
	for _, s := range l.Slots {
		title := ""
		if s.Index < len(titles) {
			title = titles[s.Index]
		}
		angle := "-"
		if l.Mode.Kind == layout.KindArc {
			angle = fmt.Sprintf("%.1f°", s.Angle)
		}
		rows = append(rows, []string{fmt.Sprint(s.Index), title, fmtPoint(s.Collapsed), fmtPoint(s.Expanded), angle})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Action", "Collapsed", "Expanded", "Angle").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 0 || col == 4 {
				return StyleNumber
			}
			return StyleValue
		})
	return t.Render()
}

// visibleTitles returns the titles of the actions whose conditions hold.
func visibleTitles(cfg *config.Config) []string {
	var out []string
	for _, a := range cfg.Actions {
		if v := cfg.Flags.Visible(a.When); v == nil || v() {
			out = append(out, a.Title)
		}
	}
	return out
}

func fmtPoint(p geom.Point) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}
