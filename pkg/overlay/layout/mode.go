package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/tabbar/pkg/errors"
)

// SizeClass is the coarse horizontal size category of the container.
type SizeClass int

const (
	// Compact is a narrow container such as a phone in portrait.
	Compact SizeClass = iota
	// Regular is a wide container such as a tablet or desktop window.
	Regular
)

// String returns "compact" or "regular".
func (s SizeClass) String() string {
	if s == Compact {
		return "compact"
	}
	return "regular"
}

// ParseSizeClass parses "compact" or "regular" (case-insensitive).
func ParseSizeClass(s string) (SizeClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compact":
		return Compact, nil
	case "regular":
		return Regular, nil
	default:
		return Compact, errors.New(errors.ErrCodeInvalidSizeClass, "invalid size class: %q (must be 'compact' or 'regular')", s)
	}
}

// Kind identifies a layout mode variant.
type Kind int

const (
	KindLinear Kind = iota
	KindGridCentered
	KindGridTrailing
	KindArc
)

var kindNames = map[Kind]string{
	KindLinear:       "linear",
	KindGridCentered: "grid-centered",
	KindGridTrailing: "grid-trailing",
	KindArc:          "arc",
}

// String returns the kebab-case mode name.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Mode is the tagged union of supported layouts. MaxPerRow is only
// meaningful for the two grid kinds.
type Mode struct {
	Kind      Kind
	MaxPerRow int
}

// minPerRow is the smallest usable grid width; the horizontal spacing
// formula divides by MaxPerRow-1.
const minPerRow = 2

// Linear stacks items vertically above the anchor.
func Linear() Mode { return Mode{Kind: KindLinear} }

// GridCentered lays items out in rows of at most n, centered on the anchor.
func GridCentered(n int) Mode { return Mode{Kind: KindGridCentered, MaxPerRow: n}.Normalize() }

// GridTrailing lays items out in rows of at most n growing leftward.
func GridTrailing(n int) Mode { return Mode{Kind: KindGridTrailing, MaxPerRow: n}.Normalize() }

// Arc places items along an ellipse above the anchor.
func Arc() Mode { return Mode{Kind: KindArc} }

// IsGrid reports whether m is one of the grid kinds.
func (m Mode) IsGrid() bool {
	return m.Kind == KindGridCentered || m.Kind == KindGridTrailing
}

// Normalize clamps grid modes to MaxPerRow >= 2 and zeroes MaxPerRow for
// non-grid modes, so two equal layouts compare equal.
func (m Mode) Normalize() Mode {
	if !m.IsGrid() {
		m.MaxPerRow = 0
		return m
	}
	if m.MaxPerRow < minPerRow {
		m.MaxPerRow = minPerRow
	}
	return m
}

// String formats m the way [ParseMode] reads it, e.g. "grid-centered:3".
func (m Mode) String() string {
	if m.IsGrid() {
		return fmt.Sprintf("%s:%d", m.Kind, m.MaxPerRow)
	}
	return m.Kind.String()
}

// Default row widths used when a grid mode is given without a count. They
// match the compact (3 per row) and regular (2 per row) hosts.
const (
	DefaultCenteredPerRow = 3
	DefaultTrailingPerRow = 2
)

// ParseMode parses a mode string: "linear", "arc", "grid-centered[:N]" or
// "grid-trailing[:N]". Grid counts below 2 are rejected rather than clamped
// so configuration mistakes surface early.
func ParseMode(s string) (Mode, error) {
	name, count, hasCount := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")

	var m Mode
	switch name {
	case "linear":
		m = Mode{Kind: KindLinear}
	case "arc":
		m = Mode{Kind: KindArc}
	case "grid-centered", "grid":
		m = Mode{Kind: KindGridCentered, MaxPerRow: DefaultCenteredPerRow}
	case "grid-trailing":
		m = Mode{Kind: KindGridTrailing, MaxPerRow: DefaultTrailingPerRow}
	default:
		return Mode{}, errors.New(errors.ErrCodeInvalidMode, "unknown layout mode: %q", s)
	}

	if !hasCount {
		return m, nil
	}
	if !m.IsGrid() {
		return Mode{}, errors.New(errors.ErrCodeInvalidMode, "mode %q does not take a row size", name)
	}
	n, err := strconv.Atoi(count)
	if err != nil {
		return Mode{}, errors.Wrap(errors.ErrCodeInvalidMode, err, "invalid row size in %q", s)
	}
	if n < minPerRow {
		return Mode{}, errors.New(errors.ErrCodeInvalidMode, "row size must be at least %d, got %d", minPerRow, n)
	}
	m.MaxPerRow = n
	return m, nil
}
