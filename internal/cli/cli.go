package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tabbar/pkg/buildinfo"
	"github.com/matzehuels/tabbar/pkg/config"
	"github.com/matzehuels/tabbar/pkg/errors"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the binary name used in help and next-step hints.
	appName = "tabbar"

	// Output formats understood by the render command.
	formatSVG   = "svg"
	formatJSON  = "json"
	formatDOT   = "dot"
	formatGraph = "graph"
	formatPNG   = "png"
	formatPDF   = "pdf"
)

var validFormats = []string{formatSVG, formatJSON, formatDOT, formatGraph, formatPNG, formatPDF}

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The CLI logger is attached to every command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "tabbar lays out and animates adaptive tab bar action overlays",
		Long:         `tabbar computes where the actions of an adaptive tab bar overlay go in linear, grid and arc layouts, renders them as SVG, JSON or Graphviz, and plays the expand and collapse transitions in the terminal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Scene Loading
// =============================================================================

// sceneFlags are the overrides shared by every scene command.
type sceneFlags struct {
	mode      string
	sizeClass string
	count     int
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "layout mode: linear, arc, grid-centered[:N], grid-trailing[:N]")
	cmd.Flags().StringVarP(&f.sizeClass, "size-class", "s", "", "size class: compact, regular")
	cmd.Flags().IntVarP(&f.count, "count", "n", 0, "replace the scene actions with N numbered actions")
}

// loadScene reads the scene at path, or the built-in scene when path is
// empty, and applies f on top.
func loadScene(path string, f sceneFlags) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if f.sizeClass != "" {
		cfg.SizeClass = f.sizeClass
	}
	if f.mode != "" {
		cfg.Mode = f.mode
	}
	if f.count < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "count must not be negative, got %d", f.count)
	}
	if f.count > 0 {
		cfg.Actions = numberedActions(f.count)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func numberedActions(n int) []config.Action {
	out := make([]config.Action, n)
	for i := range out {
		out[i] = config.Action{Title: fmt.Sprintf("Action %d", i+1)}
	}
	return out
}

func sceneArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// =============================================================================
// Formats
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// validateFormats checks every format is supported.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !slices.Contains(validFormats, f) {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", f, strings.Join(validFormats, ", "))
		}
	}
	return nil
}

// modeLabel describes the overlay mode of a scene for output headers.
func modeLabel(m layout.Mode, sc layout.SizeClass) string {
	if m.Kind == layout.KindArc {
		return fmt.Sprintf("%s (radius %.0f)", m, layout.ArcRadius(sc))
	}
	return m.String()
}
