// Package theme loads widget color palettes from YAML files.
//
// A theme file names styles per widget role; colors are ANSI names,
// 256-palette indexes or "#rrggbb" triples. Files are layered over a
// built-in default, so a theme only needs to mention the slots it
// changes.
package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/tessera/pkg/backend"
)

// StyleSpec describes one style slot of a theme file.
type StyleSpec struct {
	Foreground string `yaml:"fg"`
	Background string `yaml:"bg"`
	Bold       bool   `yaml:"bold"`
	Italic     bool   `yaml:"italic"`
	Underline  bool   `yaml:"underline"`
	Reverse    bool   `yaml:"reverse"`
	Dim        bool   `yaml:"dim"`
}

// Style compiles the spec into a backend style.
func (s StyleSpec) Style() (backend.Style, error) {
	fg, err := ParseColor(s.Foreground)
	if err != nil {
		return backend.Style{}, fmt.Errorf("fg: %w", err)
	}
	bg, err := ParseColor(s.Background)
	if err != nil {
		return backend.Style{}, fmt.Errorf("bg: %w", err)
	}
	return backend.DefaultStyle().
		Foreground(fg).
		Background(bg).
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline).
		Reverse(s.Reverse).
		Dim(s.Dim), nil
}

var namedColors = map[string]backend.Color{
	"default":       backend.ColorDefault,
	"black":         backend.ColorBlack,
	"red":           backend.ColorRed,
	"green":         backend.ColorGreen,
	"yellow":        backend.ColorYellow,
	"blue":          backend.ColorBlue,
	"magenta":       backend.ColorMagenta,
	"cyan":          backend.ColorCyan,
	"white":         backend.ColorWhite,
	"brightblack":   backend.ColorBrightBlack,
	"brightred":     backend.ColorBrightRed,
	"brightgreen":   backend.ColorBrightGreen,
	"brightyellow":  backend.ColorBrightYellow,
	"brightblue":    backend.ColorBrightBlue,
	"brightmagenta": backend.ColorBrightMagenta,
	"brightcyan":    backend.ColorBrightCyan,
	"brightwhite":   backend.ColorBrightWhite,
}

// ParseColor resolves a color name from a theme file. It understands
// the sixteen ANSI names, 256-palette indexes and "#rrggbb" hex
// triples; the empty string and "default" keep the terminal's own
// color.
func ParseColor(name string) (backend.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return backend.ColorDefault, nil
	}
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		if len(name) != 7 {
			return 0, fmt.Errorf("malformed hex color %q", name)
		}
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("malformed hex color %q", name)
		}
		return backend.ColorRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("palette index %d out of range", n)
		}
		return backend.Color256(uint8(n)), nil
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

// Theme maps widget roles to style specs.
type Theme struct {
	Text      StyleSpec `yaml:"text"`
	Accent    StyleSpec `yaml:"accent"`
	Selection StyleSpec `yaml:"selection"`
	Separator StyleSpec `yaml:"separator"`
	Prompt    StyleSpec `yaml:"prompt"`
	Status    StyleSpec `yaml:"status"`
}

// Palette is a compiled theme, ready to hand to widgets.
type Palette struct {
	Text      backend.Style
	Accent    backend.Style
	Selection backend.Style
	Separator backend.Style
	Prompt    backend.Style
	Status    backend.Style
}

// Compile resolves every slot of the theme. The first bad color aborts
// with an error naming its slot.
func (t Theme) Compile() (Palette, error) {
	var p Palette
	slots := []struct {
		name string
		spec StyleSpec
		out  *backend.Style
	}{
		{"text", t.Text, &p.Text},
		{"accent", t.Accent, &p.Accent},
		{"selection", t.Selection, &p.Selection},
		{"separator", t.Separator, &p.Separator},
		{"prompt", t.Prompt, &p.Prompt},
		{"status", t.Status, &p.Status},
	}
	for _, slot := range slots {
		st, err := slot.spec.Style()
		if err != nil {
			return Palette{}, fmt.Errorf("slot %s: %w", slot.name, err)
		}
		*slot.out = st
	}
	return p, nil
}

// Default returns the built-in true-color theme.
func Default() Theme {
	return Theme{
		Text:      StyleSpec{Foreground: "#c0caf5"},
		Accent:    StyleSpec{Foreground: "#7aa2f7", Bold: true},
		Selection: StyleSpec{Foreground: "#1a1b26", Background: "#7aa2f7"},
		Separator: StyleSpec{Foreground: "#3b4261"},
		Prompt:    StyleSpec{Foreground: "#9ece6a", Bold: true},
		Status:    StyleSpec{Foreground: "#e0af68"},
	}
}

// Default16 returns the ANSI fallback for terminals without true-color
// support.
func Default16() Theme {
	return Theme{
		Text:      StyleSpec{},
		Accent:    StyleSpec{Foreground: "blue", Bold: true},
		Selection: StyleSpec{Reverse: true},
		Separator: StyleSpec{Foreground: "brightblack"},
		Prompt:    StyleSpec{Foreground: "green", Bold: true},
		Status:    StyleSpec{Foreground: "yellow"},
	}
}

// Load reads the YAML theme at path layered over base: slots the file
// does not mention keep the base values.
func Load(path string, base Theme) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, fmt.Errorf("parsing theme: %w", err)
	}
	return base, nil
}
