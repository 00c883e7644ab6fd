package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tabbar/pkg/errors"
	"github.com/matzehuels/tabbar/pkg/overlay"
	"github.com/matzehuels/tabbar/pkg/overlay/anim"
	"github.com/matzehuels/tabbar/pkg/render"
	"github.com/matzehuels/tabbar/pkg/tabbar"
)

const (
	stateExpanded  = "expanded"
	stateCollapsed = "collapsed"

	defaultOutput = "tabbar"
	defaultScale  = 2.0
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	scene   sceneFlags
	output  string   // base path, extension added per format
	formats []string // svg, json, dot, graph, png, pdf
	state   string   // expanded or collapsed
	frames  int      // sample the expand transition into N SVG frames
	guides  bool     // draw the anchor and layout targets
	scale   float64  // PNG scale factor
}

// renderCommand creates the render command for exporting scenes.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		output: defaultOutput,
		state:  stateExpanded,
		scale:  defaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Render a scene to SVG, JSON, DOT, PNG or PDF",
		Long: `Render a scene in its expanded or collapsed state.

Formats:
  svg    the tab bar and overlay
  json   the computed layout
  dot    the layout as a Graphviz neato source
  graph  the DOT source rendered by Graphviz (.graph.svg)
  png    the SVG converted with rsvg-convert
  pdf    the SVG converted with rsvg-convert

With --frames N the expand transition is sampled into N SVG frames
named <output>-000.svg, <output>-001.svg and so on.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), sceneArg(args), opts)
		},
	}

	opts.scene.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output base path")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output formats: "+strings.Join(validFormats, ", ")+" (comma-separated)")
	cmd.Flags().StringVar(&opts.state, "state", opts.state, "overlay state: expanded, collapsed")
	cmd.Flags().IntVar(&opts.frames, "frames", 0, "sample the expand transition into N SVG frames")
	cmd.Flags().BoolVar(&opts.guides, "guides", false, "draw the anchor and layout targets")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if opts.state != stateExpanded && opts.state != stateCollapsed {
		return errors.New(errors.ErrCodeInvalidInput, "invalid state: %s (must be %s or %s)", opts.state, stateExpanded, stateCollapsed)
	}
	if opts.frames < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "frames must not be negative, got %d", opts.frames)
	}

	cfg, err := loadScene(path, opts.scene)
	if err != nil {
		return err
	}

	if opts.frames > 0 {
		files, err := c.renderFrames(ctx, cfg.Controller, opts)
		if err != nil {
			return err
		}
		prog.done("frames written")
		printSuccess("Rendered %d frames", len(files))
		for _, f := range files {
			printFile(f)
		}
		return nil
	}

	ctl := cfg.Controller(nil)
	if opts.state == stateExpanded {
		if !ctl.HasAccessory() {
			printWarning("scene has no actions, rendering the collapsed bar")
		}
		ctl.ToggleAccessory()
	}
	logger.Debug("rendering", "phase", ctl.Overlay().Phase(), "formats", opts.formats)

	var files []string
	for _, format := range opts.formats {
		file, err := c.renderFormat(ctx, ctl, visibleTitles(cfg), format, opts)
		if err != nil {
			return err
		}
		files = append(files, file)
	}

	prog.done("render finished")
	printSuccess("Rendered %s", modeLabel(ctl.Overlay().Mode(), ctl.SizeClass()))
	for _, f := range files {
		printFile(f)
	}
	return nil
}

// renderFormat writes one artifact for the controller's current state and
// returns its path.
func (c *CLI) renderFormat(ctx context.Context, ctl *tabbar.Controller, titles []string, format string, opts renderOpts) (string, error) {
	scene := render.FromController(ctl)
	svgOpts := opts.svgOptions()

	var (
		data []byte
		err  error
		ext  = format
	)
	switch format {
	case formatSVG:
		data = render.RenderSVG(scene, svgOpts...)
	case formatJSON:
		data, err = render.RenderJSON(scene.Layout, render.WithJSONTitles(titles))
	case formatDOT:
		data = []byte(render.ToDOT(scene.Layout, render.DOTOptions{Titles: titles}))
	case formatGraph:
		ext = "graph.svg"
		data, err = withSpinner(ctx, "Running graphviz...", func() ([]byte, error) {
			return render.RenderDOT(ctx, render.ToDOT(scene.Layout, render.DOTOptions{Titles: titles}), formatSVG)
		})
	case formatPNG:
		data, err = withSpinner(ctx, "Converting to PNG...", func() ([]byte, error) {
			return render.RenderPNG(scene, render.WithPNGSVGOptions(svgOpts...), render.WithScale(opts.scale))
		})
	case formatPDF:
		data, err = withSpinner(ctx, "Converting to PDF...", func() ([]byte, error) {
			return render.RenderPDF(scene, svgOpts...)
		})
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", format)
	}
	if err != nil {
		return "", err
	}

	file := opts.output + "." + ext
	if err := writeFile(file, data); err != nil {
		return "", err
	}
	loggerFromContext(ctx).Debug("wrote", "format", format, "file", file, "bytes", len(data))
	return file, nil
}

// renderFrames samples the expand transition at evenly spaced points in
// time and writes one SVG per sample. The first frame is the collapsed
// state and the last is fully expanded.
func (c *CLI) renderFrames(ctx context.Context, build func(func(string), ...tabbar.Option) *tabbar.Controller, opts renderOpts) ([]string, error) {
	tl := anim.NewTimeline()
	ctl := build(nil, tabbar.WithOverlayOptions(overlay.WithAnimator(tl)))
	if !ctl.HasAccessory() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scene has no actions to animate")
	}
	ctl.ToggleAccessory()

	total := anim.ExpandFadeIn.Duration + anim.ExpandSpring.Duration
	var step time.Duration
	if opts.frames > 1 {
		step = total / time.Duration(opts.frames-1)
	}

	files := make([]string, 0, opts.frames)
	for i := 0; i < opts.frames; i++ {
		if err := ctx.Err(); err != nil {
			return files, err
		}
		if i == opts.frames-1 {
			tl.Finish()
		} else if i > 0 {
			tl.Advance(step)
		}

		file := fmt.Sprintf("%s-%03d.svg", opts.output, i)
		if err := writeFile(file, render.RenderSVG(render.FromController(ctl), opts.svgOptions()...)); err != nil {
			return files, err
		}
		files = append(files, file)
	}
	loggerFromContext(ctx).Debug("frames", "count", len(files), "step", step, "phase", ctl.Overlay().Phase())
	return files, nil
}

func (o renderOpts) svgOptions() []render.SVGOption {
	if o.guides {
		return []render.SVGOption{render.WithGuides()}
	}
	return nil
}

// withSpinner runs fn behind a spinner on stderr.
func withSpinner(ctx context.Context, msg string, fn func() ([]byte, error)) ([]byte, error) {
	s := newSpinner(ctx, os.Stderr, msg)
	s.Start()
	data, err := fn()
	if err != nil {
		s.StopWithError(msg + " failed")
		return nil, err
	}
	s.Stop()
	if s.Cancelled() {
		return nil, ctx.Err()
	}
	return data, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
