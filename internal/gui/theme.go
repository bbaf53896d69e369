package gui

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"multidict/internal/config"
)

// appTheme derives the application look from configured attributes instead
// of package-level styling state. Everything it does not override falls
// through to the default theme.
type appTheme struct {
	base       fyne.Theme
	textSize   float32
	padding    float32
	background color.Color
}

// NewTheme builds the theme from the UI configuration.
func NewTheme(cfg config.UIConfig) fyne.Theme {
	background, ok := parseHexColor(cfg.Background)
	t := &appTheme{
		base:     theme.DefaultTheme(),
		textSize: cfg.TextSize,
		padding:  cfg.Padding,
	}
	if ok {
		t.background = background
	}
	return t
}

func (t *appTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground && t.background != nil {
		return t.background
	}
	return t.base.Color(name, variant)
}

func (t *appTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *appTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *appTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		if t.textSize > 0 {
			return t.textSize
		}
	case theme.SizeNamePadding:
		if t.padding > 0 {
			return t.padding
		}
	}
	return t.base.Size(name)
}

// parseHexColor decodes #rgb and #rrggbb notation.
func parseHexColor(s string) (color.Color, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return nil, false
	}
	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.NRGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xff,
	}, true
}
