// Package palette computes the visual identity of each reported function: a
// color from a fixed rotating palette plus a brightness level. It is a pure
// transformation over engine output and performs no I/O.
package palette

import "github.com/kgerlich/Function-Highlighter/internal/engine"

// DefaultColors is the built-in highlight palette. Functions cycle through
// it by output index, so two functions intentionally share a color once the
// count exceeds the palette size.
var DefaultColors = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231",
	"#911eb4", "#46f0f0", "#f032e6", "#bcf60c", "#fabebe",
}

// Brightness levels; longer functions render dimmer so large bodies do not
// dominate the view.
const (
	BrightnessFull = 1.0
	BrightnessMid  = 0.7
	BrightnessLow  = 0.45

	midLineThreshold = 30
	lowLineThreshold = 100
)

// Decoration pairs a function record with its assigned visual identity.
type Decoration struct {
	Function   engine.FunctionInfo `json:"function"`
	Color      string              `json:"color"`
	Brightness float64             `json:"brightness"`
}

// Assign maps each record, in order, to a decoration using the given colors.
// Passing nil colors uses DefaultColors. The input slice is not mutated.
func Assign(functions []engine.FunctionInfo, colors []string) []Decoration {
	if len(colors) == 0 {
		colors = DefaultColors
	}

	decorations := make([]Decoration, 0, len(functions))
	for i, fn := range functions {
		decorations = append(decorations, Decoration{
			Function:   fn,
			Color:      colors[i%len(colors)],
			Brightness: brightnessFor(fn.LineCount),
		})
	}
	return decorations
}

func brightnessFor(lineCount int) float64 {
	switch {
	case lineCount >= lowLineThreshold:
		return BrightnessLow
	case lineCount >= midLineThreshold:
		return BrightnessMid
	default:
		return BrightnessFull
	}
}
