package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// BoardSpec describes a table layout: the pieces in play and the token
// views representing them.
type BoardSpec struct {
	Name   string      `yaml:"name"`
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Pieces []PieceSpec `yaml:"pieces"`
}

type PieceSpec struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Sort   *float64    `yaml:"sort"` // nil means no ordering key
	Layer  string      `yaml:"layer"`
	Tokens []TokenSpec `yaml:"tokens"`
}

type TokenSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Color    string  `yaml:"color"`
	Rotation float64 `yaml:"rotation"` // degrees
	Disabled bool    `yaml:"disabled"`
}

// LoadSpec reads and unmarshals a YAML spec, preferring the on-disk
// copy over the embedded one.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadBoardSpec loads a board layout by file name.
func LoadBoardSpec(filename string) (*BoardSpec, error) {
	spec, err := LoadSpec[BoardSpec](filename)
	if err != nil {
		return nil, err
	}
	for i, p := range spec.Pieces {
		if p.ID == "" {
			return nil, fmt.Errorf("prefabs: %s: piece %d has no id", filename, i)
		}
	}
	return &spec, nil
}

// ParseColor parses a "#rrggbb" or "#rrggbbaa" hex color.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("prefabs: bad color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("prefabs: bad color %q: %w", s, err)
	}
	c := color.NRGBA{A: 0xff}
	if len(s) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}
