// Package config loads tab bar scenes from TOML.
//
// A scene describes the container, the tabs, the registered actions and a
// set of boolean flags that action visibility conditions read:
//
//	size_class = "compact"
//	width = 390
//	height = 844
//	safe_bottom = 34
//	mode = "arc"
//
//	[flags]
//	beta = true
//
//	[[tabs]]
//	title = "Home"
//
//	[[actions]]
//	title = "Scan"
//	new = true
//	when = "beta"
//
// Conditions are evaluated live against [Config.Flags], so toggling a flag
// changes which actions the next expansion shows.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tabbar/pkg/errors"
	"github.com/matzehuels/tabbar/pkg/geom"
	"github.com/matzehuels/tabbar/pkg/overlay"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
	"github.com/matzehuels/tabbar/pkg/tabbar"
)

// Config is a decoded scene.
type Config struct {
	SizeClass  string   `toml:"size_class"`
	Width      float64  `toml:"width"`
	Height     float64  `toml:"height"`
	SafeBottom float64  `toml:"safe_bottom"`
	Mode       string   `toml:"mode"`
	Flags      Flags    `toml:"flags"`
	Tabs       []Tab    `toml:"tabs"`
	Actions    []Action `toml:"actions"`
}

// Tab is a [[tabs]] entry.
type Tab struct {
	Title string `toml:"title"`
	Icon  string `toml:"icon"`
	Badge string `toml:"badge"`
}

// Action is an [[actions]] entry. When names a flag that must be set for
// the action to be visible; a leading "!" negates it.
type Action struct {
	Title string `toml:"title"`
	Icon  string `toml:"icon"`
	New   bool   `toml:"new"`
	When  string `toml:"when"`
}

// Flags are named booleans read by action conditions.
type Flags map[string]bool

// Visible returns the predicate for condition when. The predicate reads the
// map on every call. An empty condition yields nil, meaning always visible.
func (f Flags) Visible(when string) func() bool {
	if when == "" {
		return nil
	}
	if name, negated := cutNot(when); negated {
		return func() bool { return !f[name] }
	}
	return func() bool { return f[when] }
}

// Toggle flips the named flag and returns its new value.
func (f Flags) Toggle(name string) bool {
	f[name] = !f[name]
	return f[name]
}

func cutNot(s string) (string, bool) {
	if len(s) > 0 && s[0] == '!' {
		return s[1:], true
	}
	return s, false
}

// Default returns the built-in compact phone scene.
func Default() *Config {
	return &Config{
		SizeClass:  "compact",
		Width:      390,
		Height:     844,
		SafeBottom: 34,
		Flags:      Flags{"beta": true},
		Tabs: []Tab{
			{Title: "Home", Icon: "house"},
			{Title: "Search", Icon: "magnifyingglass"},
			{Title: "Inbox", Icon: "tray", Badge: "3"},
			{Title: "Profile", Icon: "person"},
		},
		Actions: []Action{
			{Title: "Scan", Icon: "camera"},
			{Title: "Send", Icon: "paperplane"},
			{Title: "Request", Icon: "arrow.down"},
			{Title: "Split", Icon: "divide", New: true, When: "beta"},
			{Title: "Legacy", Icon: "clock", When: "!beta"},
		},
	}
}

// Load reads and validates the scene at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates a TOML scene. Omitted container fields take
// their values from Default.
func Parse(data []byte) (*Config, error) {
	def := Default()
	cfg := &Config{
		SizeClass:  def.SizeClass,
		Width:      def.Width,
		Height:     def.Height,
		SafeBottom: def.SafeBottom,
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key: %s", keys[0])
	}
	if cfg.Flags == nil {
		cfg.Flags = Flags{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := layout.ParseSizeClass(c.SizeClass); err != nil {
		return err
	}
	if c.Mode != "" {
		if _, err := layout.ParseMode(c.Mode); err != nil {
			return err
		}
	}
	if err := errors.ValidateDimension("width", c.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", c.Height); err != nil {
		return err
	}
	if c.SafeBottom < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "safe_bottom must not be negative, got %g", c.SafeBottom)
	}
	for i, t := range c.Tabs {
		if err := errors.ValidateTitle(t.Title); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "tabs[%d]", i)
		}
	}
	for i, a := range c.Actions {
		if err := errors.ValidateTitle(a.Title); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "actions[%d]", i)
		}
		if err := errors.ValidateCondition(a.When); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "actions[%d]", i)
		}
	}
	return nil
}

// Environment returns the parsed size class. Call after Validate.
func (c *Config) Environment() layout.SizeClass {
	sc, _ := layout.ParseSizeClass(c.SizeClass)
	return sc
}

// Bounds returns the container rectangle.
func (c *Config) Bounds() geom.Rect {
	return geom.Rect{W: c.Width, H: c.Height}
}

// LayoutMode returns the configured mode and whether one was set.
func (c *Config) LayoutMode() (layout.Mode, bool) {
	if c.Mode == "" {
		return layout.Mode{}, false
	}
	m, err := layout.ParseMode(c.Mode)
	if err != nil {
		return layout.Mode{}, false
	}
	return m, true
}

// Items returns overlay items for the configured actions. onAction, if
// non-nil, is called with the action title when an item is tapped.
func (c *Config) Items(onAction func(title string)) []overlay.Item {
	items := make([]overlay.Item, len(c.Actions))
	for i, a := range c.Actions {
		item := overlay.Item{
			Title:   a.Title,
			Icon:    a.Icon,
			IsNew:   a.New,
			Visible: c.Flags.Visible(a.When),
		}
		if onAction != nil {
			title := a.Title
			item.Handler = func() { onAction(title) }
		}
		items[i] = item
	}
	return items
}

// Controller builds a configured tab bar controller for the scene. A
// configured mode overrides the overlay mode of the scene's size class.
func (c *Config) Controller(onAction func(title string), opts ...tabbar.Option) *tabbar.Controller {
	if m, ok := c.LayoutMode(); ok {
		if c.Environment() == layout.Compact {
			opts = append(opts, tabbar.WithCompactMode(m))
		} else {
			opts = append(opts, tabbar.WithRegularMode(m))
		}
	}

	tabs := make([]tabbar.Tab, len(c.Tabs))
	for i, t := range c.Tabs {
		tabs[i] = tabbar.Tab{Title: t.Title, Icon: t.Icon, Badge: t.Badge}
	}

	ctl := tabbar.New(tabs, opts...)
	for _, item := range c.Items(onAction) {
		ctl.AddAction(item)
	}
	ctl.Configure(c.Environment(), c.Bounds(), c.SafeBottom)
	return ctl
}
