package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tabbar/pkg/errors"
	"github.com/matzehuels/tabbar/pkg/overlay"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
)

const scene = `
size_class = "regular"
width = 1024
height = 768
safe_bottom = 20
mode = "grid-trailing:3"

[flags]
beta = false

[[tabs]]
title = "Home"
icon = "house"

[[tabs]]
title = "Inbox"
badge = "2"

[[actions]]
title = "Scan"
new = true

[[actions]]
title = "Split"
when = "beta"

[[actions]]
title = "Legacy"
when = "!beta"
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(scene))
	require.NoError(t, err)

	assert.Equal(t, layout.Regular, cfg.Environment())
	assert.Equal(t, 1024.0, cfg.Bounds().W)
	assert.Equal(t, 20.0, cfg.SafeBottom)
	require.Len(t, cfg.Tabs, 2)
	assert.Equal(t, "2", cfg.Tabs[1].Badge)
	require.Len(t, cfg.Actions, 3)
	assert.True(t, cfg.Actions[0].New)

	m, ok := cfg.LayoutMode()
	require.True(t, ok)
	assert.Equal(t, layout.GridTrailing(3), m)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`[[actions]]
title = "Scan"`))
	require.NoError(t, err)

	assert.Equal(t, layout.Compact, cfg.Environment())
	assert.Equal(t, 390.0, cfg.Width)
	assert.NotNil(t, cfg.Flags)
	_, ok := cfg.LayoutMode()
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code errors.Code
	}{
		{"bad toml", `width = `, errors.ErrCodeInvalidConfig},
		{"unknown key", `colour = "red"`, errors.ErrCodeInvalidConfig},
		{"bad size class", `size_class = "huge"`, errors.ErrCodeInvalidSizeClass},
		{"bad mode", `mode = "spiral"`, errors.ErrCodeInvalidMode},
		{"grid too narrow", `mode = "grid-centered:1"`, errors.ErrCodeInvalidMode},
		{"zero width", `width = 0`, errors.ErrCodeInvalidConfig},
		{"negative safe area", `safe_bottom = -1`, errors.ErrCodeInvalidConfig},
		{"empty action title", "[[actions]]\ntitle = \"\"", errors.ErrCodeInvalidConfig},
		{"bad condition", "[[actions]]\ntitle = \"A\"\nwhen = \"a b\"", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestLoad(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(scene), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Tabs, 2)
}

func TestFlagsAreLive(t *testing.T) {
	flags := Flags{"beta": false}
	on := flags.Visible("beta")
	off := flags.Visible("!beta")

	assert.Nil(t, flags.Visible(""))
	assert.False(t, on())
	assert.True(t, off())

	assert.True(t, flags.Toggle("beta"))
	assert.True(t, on())
	assert.False(t, off())
}

func TestControllerFollowsFlags(t *testing.T) {
	cfg, err := Parse([]byte(scene))
	require.NoError(t, err)

	var selected []string
	ctl := cfg.Controller(func(title string) { selected = append(selected, title) })
	ov := ctl.Overlay()

	assert.Equal(t, layout.GridTrailing(3), ov.Mode())
	assert.Equal(t, []string{"Scan", "Legacy"}, titles(ov.Visible()))

	cfg.Flags.Toggle("beta")
	assert.Equal(t, []string{"Scan", "Split"}, titles(ov.Visible()))

	ctl.ToggleAccessory()
	ov.TapItem(1)
	assert.Equal(t, []string{"Split"}, selected)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func titles(items []overlay.Item) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestExampleScenes(t *testing.T) {
	paths, err := filepath.Glob("../../examples/scenes/*.toml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			cfg, err := Load(path)
			require.NoError(t, err)
			assert.NotEmpty(t, cfg.Actions)
		})
	}
}
