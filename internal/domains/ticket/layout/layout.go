// Package layout describes the printable receipt as data and renders it to PDF.
// Coordinates live in ticket.yaml, never in business code.
package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed ticket.yaml
var defaultLayout []byte

const (
	KindText  = "text"
	KindLine  = "line"
	KindTable = "table"
	KindBadge = "badge"
)

const (
	AlignLeft   = "L"
	AlignCenter = "C"
	AlignRight  = "R"
)

var ErrInvalidLayout = errors.New("invalid ticket layout")

type Color [3]int

type Page struct {
	Size        string `yaml:"size"`
	Orientation string `yaml:"orientation"`
	Unit        string `yaml:"unit"`
	Font        string `yaml:"font"`
}

type Column struct {
	Title string  `yaml:"title"`
	Width float64 `yaml:"width"`
	Value string  `yaml:"value"`
}

type Element struct {
	Kind         string   `yaml:"kind"`
	X            float64  `yaml:"x"`
	Y            float64  `yaml:"y"`
	X2           float64  `yaml:"x2"`
	Y2           float64  `yaml:"y2"`
	W            float64  `yaml:"w"`
	H            float64  `yaml:"h"`
	R            float64  `yaml:"r"`
	Width        float64  `yaml:"width"`
	Size         float64  `yaml:"size"`
	Style        string   `yaml:"style"`
	Align        string   `yaml:"align"`
	Color        string   `yaml:"color"`
	Border       string   `yaml:"border"`
	Fill         string   `yaml:"fill"`
	Text         string   `yaml:"text"`
	HeaderHeight float64  `yaml:"headerHeight"`
	RowHeight    float64  `yaml:"rowHeight"`
	Columns      []Column `yaml:"columns"`
}

type Layout struct {
	Page     Page              `yaml:"page"`
	Colors   map[string]Color  `yaml:"colors"`
	Labels   map[string]string `yaml:"labels"`
	Elements []Element         `yaml:"elements"`
}

var loadDefault = sync.OnceValues(func() (*Layout, error) {
	return Parse(defaultLayout)
})

// Default returns the embedded receipt layout.
func Default() (*Layout, error) {
	return loadDefault()
}

func Parse(data []byte) (*Layout, error) {
	var l Layout

	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}

	if err := l.validate(); err != nil {
		return nil, err
	}

	return &l, nil
}

// Label returns the label for key, or fallback when the layout has none.
func (l *Layout) Label(key, fallback string) string {
	if label, ok := l.Labels[key]; ok {
		return label
	}

	return fallback
}

func (l *Layout) validate() error {
	if l.Page.Size == "" || l.Page.Unit == "" {
		return fmt.Errorf("%w: page size and unit are required", ErrInvalidLayout)
	}

	if len(l.Elements) == 0 {
		return fmt.Errorf("%w: no elements", ErrInvalidLayout)
	}

	for i, el := range l.Elements {
		switch el.Kind {
		case KindText, KindLine, KindBadge:
		case KindTable:
			if len(el.Columns) == 0 || el.HeaderHeight <= 0 || el.RowHeight <= 0 {
				return fmt.Errorf("%w: table %d needs columns and row heights", ErrInvalidLayout, i)
			}
		default:
			return fmt.Errorf("%w: element %d has unknown kind %q", ErrInvalidLayout, i, el.Kind)
		}

		for _, name := range []string{el.Color, el.Border, el.Fill} {
			if _, ok := l.Colors[name]; name != "" && !ok {
				return fmt.Errorf("%w: element %d uses undefined color %q", ErrInvalidLayout, i, name)
			}
		}

		if el.Align != "" && !strings.Contains(AlignLeft+AlignCenter+AlignRight, el.Align) {
			return fmt.Errorf("%w: element %d has unknown alignment %q", ErrInvalidLayout, i, el.Align)
		}
	}

	return nil
}
