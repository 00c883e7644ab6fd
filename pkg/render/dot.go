package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tabbar/pkg/errors"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
)

// inchesPerPoint converts layout points to the inches neato reads from pos.
const inchesPerPoint = 1.0 / 72.0

// DOTOptions configures ToDOT.
type DOTOptions struct {
	// Titles labels item nodes in visible order. Missing titles fall back to
	// the slot index.
	Titles []string
}

// ToDOT converts a layout to a neato graph. The anchor and every expanded
// item are pinned at their layout positions, with an edge from the anchor
// to each item. The y axis is flipped since Graphviz grows upward.
func ToDOT(l layout.Layout, opts DOTOptions) string {
	h := l.Params.Bounds.MaxY()
	pos := func(x, y float64) string {
		return fmt.Sprintf("%.3f,%.3f!", x*inchesPerPoint, (h-y)*inchesPerPoint)
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  notranslate=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10, width=0.78, fixedsize=true];\n")
	fmt.Fprintf(&buf, "  label=%q;\n", l.Mode.String())
	buf.WriteString("\n")

	a := l.Params.Anchor
	fmt.Fprintf(&buf, "  anchor [label=\"+\", fillcolor=\"#007aff\", fontcolor=white, pos=%q];\n", pos(a.X, a.Y))
	for _, s := range l.Slots {
		label := fmt.Sprintf("%d", s.Index)
		if s.Index < len(opts.Titles) {
			label = opts.Titles[s.Index]
		}
		fmt.Fprintf(&buf, "  item%d [label=%q, pos=%q];\n", s.Index, label, pos(s.Expanded.X, s.Expanded.Y))
	}

	buf.WriteString("\n")
	for _, s := range l.Slots {
		fmt.Fprintf(&buf, "  anchor -- item%d [style=dashed];\n", s.Index)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOT renders a DOT graph with Graphviz. Format is "svg" or "png".
func RenderDOT(ctx context.Context, dot string, format string) ([]byte, error) {
	var gvFormat graphviz.Format
	switch format {
	case "svg":
		gvFormat = graphviz.SVG
	case "png":
		gvFormat = graphviz.PNG
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported graphviz format: %s", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
