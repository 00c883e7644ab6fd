package cli

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tabbar/pkg/config"
	"github.com/matzehuels/tabbar/pkg/geom"
	"github.com/matzehuels/tabbar/pkg/overlay"
	"github.com/matzehuels/tabbar/pkg/overlay/anim"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
	"github.com/matzehuels/tabbar/pkg/render"
	"github.com/matzehuels/tabbar/pkg/tabbar"
)

const (
	frameInterval = time.Second / 60
	statusLines   = 2
	minCols       = 20
	minRows       = 8
	fallbackCols  = 80
	fallbackRows  = 24
)

// Environments used when switching size class away from the scene's own.
var (
	compactBounds = geom.Rect{W: 390, H: 844}
	compactSafe   = 34.0
	regularBounds = geom.Rect{W: 1024, H: 768}
	regularSafe   = 20.0
)

// =============================================================================
// Key Map
// =============================================================================

type playKeys struct {
	Toggle   key.Binding
	Select   key.Binding
	Collapse key.Binding
	NextTab  key.Binding
	Size     key.Binding
	Flag     key.Binding
	Quit     key.Binding
}

func defaultPlayKeys() playKeys {
	return playKeys{
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Select:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "action")),
		Collapse: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "collapse")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Size:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "size class")),
		Flag:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flag")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k playKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Select, k.Collapse, k.NextTab, k.Size, k.Flag, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k playKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// =============================================================================
// playModel - Interactive overlay player
// =============================================================================

type tickMsg time.Time

// playModel drives a tab bar controller from keyboard and mouse input and
// advances its timeline at a fixed frame rate.
type playModel struct {
	cfg  *config.Config
	ctl  *tabbar.Controller
	tl   *anim.Timeline
	keys playKeys
	help help.Model

	width, height int
	last          string
}

func newPlayModel(cfg *config.Config) *playModel {
	m := &playModel{
		cfg:  cfg,
		tl:   anim.NewTimeline(),
		keys: defaultPlayKeys(),
		help: help.New(),
	}
	m.ctl = cfg.Controller(func(title string) { m.last = title },
		tabbar.WithOverlayOptions(overlay.WithAnimator(m.tl)))
	return m
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *playModel) Init() tea.Cmd { return tick() }

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.tl.Busy() {
			m.tl.Advance(frameInterval)
		}
		return m, tick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.ctl.Tap(m.canvas().pointOf(msg.X, msg.Y))
		}
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	ov := m.ctl.Overlay()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.ctl.ToggleAccessory()
	case key.Matches(msg, m.keys.Select):
		ov.TapItem(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Collapse):
		ov.Collapse(true)
	case key.Matches(msg, m.keys.NextTab):
		if n := len(m.ctl.Tabs()); n > 0 {
			m.ctl.SetSelectedIndex((m.ctl.SelectedIndex() + 1) % n)
		}
	case key.Matches(msg, m.keys.Size):
		m.switchSizeClass()
	case key.Matches(msg, m.keys.Flag):
		m.toggleFlag()
	}
	return nil
}

// switchSizeClass flips between compact and regular. The scene's own
// geometry is used for its own size class.
func (m *playModel) switchSizeClass() {
	sc := layout.Regular
	if m.ctl.SizeClass() == layout.Regular {
		sc = layout.Compact
	}
	bounds, safe := environmentFor(m.cfg, sc)
	m.ctl.Configure(sc, bounds, safe)
}

func environmentFor(cfg *config.Config, sc layout.SizeClass) (geom.Rect, float64) {
	switch {
	case sc == cfg.Environment():
		return cfg.Bounds(), cfg.SafeBottom
	case sc == layout.Compact:
		return compactBounds, compactSafe
	default:
		return regularBounds, regularSafe
	}
}

// toggleFlag flips the first flag in name order. An expanded overlay is
// repositioned so the change shows at once.
func (m *playModel) toggleFlag() {
	name, ok := m.firstFlag()
	if !ok {
		return
	}
	m.cfg.Flags.Toggle(name)
	if m.ctl.Overlay().Phase() == overlay.Expanded {
		m.ctl.Overlay().RepositionExpandedItems()
	}
}

func (m *playModel) firstFlag() (string, bool) {
	names := slices.Sorted(maps.Keys(m.cfg.Flags))
	if len(names) == 0 {
		return "", false
	}
	return names[0], true
}

func (m *playModel) View() string {
	var b strings.Builder
	b.WriteString(m.canvas().draw(render.FromController(m.ctl)))
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *playModel) status() string {
	ov := m.ctl.Overlay()
	parts := []string{
		StyleTitle.Render(ov.Phase().String()),
		StyleValue.Render(modeLabel(ov.Mode(), m.ctl.SizeClass())),
		StyleDim.Render(m.ctl.SizeClass().String()),
	}
	if tabs := m.ctl.Tabs(); m.ctl.SelectedIndex() < len(tabs) {
		parts = append(parts, StyleDim.Render("tab ")+StyleValue.Render(tabs[m.ctl.SelectedIndex()].Title))
	}
	if name, ok := m.firstFlag(); ok {
		parts = append(parts, StyleDim.Render(name+"=")+StyleNumber.Render(fmt.Sprint(m.cfg.Flags[name])))
	}
	if m.last != "" {
		parts = append(parts, StyleDim.Render("last ")+StyleWarning.Render(m.last))
	}
	return strings.Join(parts, StyleDim.Render("  ·  "))
}

func (m *playModel) canvas() *canvas {
	cols, rows := m.width, m.height-statusLines
	if m.width == 0 || m.height == 0 {
		cols, rows = fallbackCols, fallbackRows-statusLines
	}
	return newCanvas(max(cols, minCols), max(rows, minRows), m.ctl.Bounds())
}

// =============================================================================
// canvas - Character grid scaled to the container
// =============================================================================

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellShade
	cellBar
	cellTab
	cellTabSelected
	cellItem
	cellItemFaint
	cellBadge
	cellAccessory
)

var cellStyles = map[cellKind]lipgloss.Style{
	cellEmpty:       lipgloss.NewStyle(),
	cellShade:       lipgloss.NewStyle().Foreground(colorShade),
	cellBar:         StyleDim,
	cellTab:         lipgloss.NewStyle().Foreground(colorGray),
	cellTabSelected: StyleTitle,
	cellItem:        StyleValue.Bold(true),
	cellItemFaint:   StyleDim,
	cellBadge:       StyleWarning.Bold(true),
	cellAccessory:   StyleTitle,
}

type canvas struct {
	cols, rows int
	sx, sy     float64 // points per cell
	runes      [][]rune
	kinds      [][]cellKind
}

func newCanvas(cols, rows int, bounds geom.Rect) *canvas {
	c := &canvas{
		cols:  cols,
		rows:  rows,
		sx:    bounds.W / float64(cols),
		sy:    bounds.H / float64(rows),
		runes: make([][]rune, rows),
		kinds: make([][]cellKind, rows),
	}
	if c.sx <= 0 || c.sy <= 0 {
		c.sx, c.sy = 1, 1
	}
	for r := range c.runes {
		c.runes[r] = []rune(strings.Repeat(" ", cols))
		c.kinds[r] = make([]cellKind, cols)
	}
	return c
}

// pointOf returns the container point at the center of a cell.
func (c *canvas) pointOf(col, row int) geom.Point {
	return geom.Pt((float64(col)+0.5)*c.sx, (float64(row)+0.5)*c.sy)
}

func (c *canvas) cellOf(p geom.Point) (int, int) {
	return int(math.Floor(p.X / c.sx)), int(math.Floor(p.Y / c.sy))
}

func (c *canvas) set(col, row int, ch rune, k cellKind) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.runes[row][col] = ch
	c.kinds[row][col] = k
}

func (c *canvas) fill(r geom.Rect, ch rune, k cellKind) {
	c0, r0 := c.cellOf(geom.Pt(r.X, r.Y))
	c1 := int(math.Ceil(r.MaxX()/c.sx)) - 1
	r1 := int(math.Ceil(r.MaxY()/c.sy)) - 1
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			c.set(col, row, ch, k)
		}
	}
}

// text writes s centered on p.
func (c *canvas) text(p geom.Point, s string, k cellKind) {
	col, row := c.cellOf(p)
	rs := []rune(s)
	start := col - len(rs)/2
	for i, ch := range rs {
		c.set(start+i, row, ch, k)
	}
}

// draw paints s in the same order as the SVG renderer and returns the
// styled grid.
func (c *canvas) draw(s render.Scene) string {
	c.fill(s.Bar, ' ', cellBar)
	if s.SizeClass == layout.Compact {
		c.fill(geom.Rect{X: s.Bar.X, Y: s.Bar.Y, W: s.Bar.W, H: c.sy}, '─', cellBar)
	} else {
		c.fill(geom.Rect{X: s.Bar.MaxX() - c.sx, Y: s.Bar.Y, W: c.sx, H: s.Bar.H}, '│', cellBar)
	}
	for _, slot := range s.Slots {
		if slot.Placeholder() {
			continue
		}
		k := cellTab
		if slot.Index == s.Selected {
			k = cellTabSelected
		}
		label := slot.Tab.Title
		if slot.Tab.Badge != "" {
			label += "•" + slot.Tab.Badge
		}
		c.text(slot.Frame.Center(), label, k)
	}

	if s.Background > 0 {
		ch := '░'
		if s.Background >= 0.5 {
			ch = '▒'
		}
		c.fill(s.Bounds, ch, cellShade)
	}

	for _, it := range s.Items {
		if !it.Shown() {
			continue
		}
		k := cellItem
		if it.Alpha < 0.5 {
			k = cellItemFaint
		}
		label := "(" + it.Item.Title + ")"
		c.text(it.Center, label, k)
		if it.Item.IsNew {
			col, row := c.cellOf(it.Center)
			c.set(col+len([]rune(label))/2+1, row, '*', cellBadge)
		}
	}

	if s.HasAccessory {
		glyph := "[+]"
		if s.Glyph != 0 {
			glyph = "[×]"
		}
		c.text(s.Accessory.Center(), glyph, cellAccessory)
	}
	return c.String()
}

// String renders the grid, styling runs of equal kind together.
func (c *canvas) String() string {
	lines := make([]string, c.rows)
	for r := range c.rows {
		var b strings.Builder
		start := 0
		for col := 1; col <= c.cols; col++ {
			if col < c.cols && c.kinds[r][col] == c.kinds[r][start] {
				continue
			}
			b.WriteString(cellStyles[c.kinds[r][start]].Render(string(c.runes[r][start:col])))
			start = col
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}
