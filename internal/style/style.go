package style

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/panzermaps/compiler/internal/classify"
)

// PointStyle holds the rendering hints for a point class. Currently empty
// (spec §6.2: point styles carry no per-class fields beyond being present),
// kept as a struct rather than a set membership so future fields do not
// ripple through the loader.
type PointStyle struct{}

// LinearStyle holds a linear class's color and real-world stroke width.
type LinearStyle struct {
	Color  Color
	WidthM float32
}

// ArealStyle holds an areal class's fill color.
type ArealStyle struct {
	Color Color
}

// Phase is one entry of the areal draw-phase order: a set of classes drawn
// together before the next phase's classes (spec §4.7 "Phase sort").
type Phase struct {
	Classes map[classify.ArealClass]struct{}
}

// Styles is the fully parsed style configuration for one compiler run.
type Styles struct {
	BackgroundColor Color

	PointStyles  map[classify.PointClass]PointStyle
	LinearStyles map[classify.LinearClass]LinearStyle
	ArealStyles  map[classify.ArealClass]ArealStyle
	ArealPhases  []Phase
}

// jsonDoc mirrors the on-disk JSON shape (spec §6.2); fields are parsed
// loosely and validated/resolved by Load.
type jsonDoc struct {
	BackgroundColor string                     `json:"background_color"`
	PointStyles     map[string]json.RawMessage `json:"point_styles"`
	LinearStyles    map[string]struct {
		Color  string  `json:"color"`
		WidthM float32 `json:"width_m"`
	} `json:"linear_styles"`
	ArealStyles map[string]struct {
		Color string `json:"color"`
	} `json:"areal_styles"`
	ArealPhases []struct {
		Classes []string `json:"classes"`
	} `json:"areal_phases"`
}

// Load reads and parses the style file at path. Per-entry parse problems
// are not fatal and loading continues, mirroring styles.cpp's soft-failure
// behavior: an entry with an unknown class name is skipped, and an entry
// with a malformed color is kept with a zero color.
// A missing or structurally invalid file is the only fatal case.
func Load(path string) (Styles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Styles{}, fmt.Errorf("style: read %s: %w", path, err)
	}

	var doc jsonDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return Styles{}, fmt.Errorf("style: parse %s: %w", path, err)
	}

	result := Styles{
		PointStyles:  make(map[classify.PointClass]PointStyle),
		LinearStyles: make(map[classify.LinearClass]LinearStyle),
		ArealStyles:  make(map[classify.ArealClass]ArealStyle),
	}

	if doc.BackgroundColor != "" {
		if c, ok := ParseColor(doc.BackgroundColor); ok {
			result.BackgroundColor = c
		}
	}

	for name := range doc.PointStyles {
		class := classify.PointClassByName(name)
		if class == classify.PointNone {
			continue
		}
		if _, exists := result.PointStyles[class]; exists {
			continue
		}
		result.PointStyles[class] = PointStyle{}
	}

	for name, entry := range doc.LinearStyles {
		class := classify.LinearClassByName(name)
		if class == classify.LinearNone {
			continue
		}
		if _, exists := result.LinearStyles[class]; exists {
			continue
		}
		out := LinearStyle{WidthM: entry.WidthM}
		if entry.Color != "" {
			if c, ok := ParseColor(entry.Color); ok {
				out.Color = c
			}
		}
		result.LinearStyles[class] = out
	}

	for name, entry := range doc.ArealStyles {
		class := classify.ArealClassByName(name)
		if class == classify.ArealNone {
			continue
		}
		if _, exists := result.ArealStyles[class]; exists {
			continue
		}
		out := ArealStyle{}
		if entry.Color != "" {
			if c, ok := ParseColor(entry.Color); ok {
				out.Color = c
			}
		}
		result.ArealStyles[class] = out
	}

	for _, phaseJSON := range doc.ArealPhases {
		phase := Phase{Classes: make(map[classify.ArealClass]struct{})}
		for _, name := range phaseJSON.Classes {
			class := classify.ArealClassByName(name)
			if class != classify.ArealNone {
				phase.Classes[class] = struct{}{}
			}
		}
		result.ArealPhases = append(result.ArealPhases, phase)
	}

	return result, nil
}
