// Package config loads the optional dividerdemo.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/dividers/pkg/graphics"
	"github.com/go-drift/dividers/pkg/theme"
	"github.com/go-drift/dividers/pkg/widgets"
)

// Config represents the optional dividerdemo.yaml configuration.
type Config struct {
	Mode    string       `yaml:"mode,omitempty"`     // "columns" or "rows"
	Dark    bool         `yaml:"dark,omitempty"`     // dark theme palette
	Step    float64      `yaml:"step,omitempty"`     // locate step in cells
	MinPane float64      `yaml:"min_pane,omitempty"` // smallest pane in cells
	Columns []float64    `yaml:"columns,omitempty"`  // boundary fractions in (0, 1)
	Split   float64      `yaml:"split,omitempty"`    // row split fraction
	Handle  HandleConfig `yaml:"handle"`
}

// HandleConfig overrides the handle colors per interaction status.
// Colors are SVG 1.1 names ("dodgerblue") or #RRGGBB hex.
type HandleConfig struct {
	Color      string `yaml:"color,omitempty"`
	HoverColor string `yaml:"hover_color,omitempty"`
	DragColor  string `yaml:"drag_color,omitempty"`
}

// LoadOptional reads the config at path if present. A missing file
// yields an empty config, not an error.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Theme returns the palette matching the configured brightness.
func (c *Config) Theme() *theme.ThemeData {
	if c.Dark {
		return theme.DefaultDarkTheme()
	}
	return theme.DefaultLightTheme()
}

// StyleFn builds the handle style resolver. With no color overrides it
// is exactly widgets.Primary; configured colors replace the scheme fill
// for their status while borders stay off.
func (c *Config) StyleFn() (widgets.StyleFn, error) {
	if c.Handle == (HandleConfig{}) {
		return widgets.Primary, nil
	}

	overrides := map[widgets.Status]string{
		widgets.StatusActive:  c.Handle.Color,
		widgets.StatusHovered: c.Handle.HoverColor,
		widgets.StatusDragged: c.Handle.DragColor,
	}
	colors := make(map[widgets.Status]graphics.Color, len(overrides))
	for status, name := range overrides {
		if name == "" {
			continue
		}
		color, err := ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("handle color for %s: %w", status, err)
		}
		colors[status] = color
	}

	return func(t *theme.ThemeData, status widgets.Status) widgets.DividerStyle {
		style := widgets.Primary(t, status)
		if color, ok := colors[status]; ok {
			style.Background = color
		}
		return style
	}, nil
}

// ParseColor resolves an SVG 1.1 color name or a #RRGGBB hex literal.
func ParseColor(s string) (graphics.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return 0, fmt.Errorf("hex color %q must be #RRGGBB", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("hex color %q: %w", s, err)
		}
		return graphics.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	if c, ok := colornames.Map[s]; ok {
		return graphics.RGB(c.R, c.G, c.B), nil
	}
	return 0, fmt.Errorf("unknown color name %q", s)
}
