package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgerlich/Function-Highlighter/internal/engine"
)

func fns(n int) []engine.FunctionInfo {
	out := make([]engine.FunctionInfo, n)
	for i := range out {
		out[i] = engine.FunctionInfo{
			Name:      "fn",
			StartLine: i,
			EndLine:   i,
			LineCount: 1,
		}
	}
	return out
}

func TestAssign_RotatesByIndex(t *testing.T) {
	decorations := Assign(fns(3), nil)
	require.Len(t, decorations, 3)

	assert.Equal(t, DefaultColors[0], decorations[0].Color)
	assert.Equal(t, DefaultColors[1], decorations[1].Color)
	assert.Equal(t, DefaultColors[2], decorations[2].Color)
}

// Once the count exceeds the palette, colors repeat by design: the visual
// identity is index modulo palette size.
func TestAssign_WrapsAroundPalette(t *testing.T) {
	count := len(DefaultColors) + 2
	decorations := Assign(fns(count), nil)
	require.Len(t, decorations, count)

	assert.Equal(t, DefaultColors[0], decorations[len(DefaultColors)].Color)
	assert.Equal(t, DefaultColors[1], decorations[len(DefaultColors)+1].Color)
}

func TestAssign_CustomColors(t *testing.T) {
	colors := []string{"#000000", "#ffffff"}
	decorations := Assign(fns(3), colors)
	require.Len(t, decorations, 3)

	assert.Equal(t, "#000000", decorations[0].Color)
	assert.Equal(t, "#ffffff", decorations[1].Color)
	assert.Equal(t, "#000000", decorations[2].Color)
}

func TestAssign_Brightness(t *testing.T) {
	functions := []engine.FunctionInfo{
		{Name: "short", LineCount: 5},
		{Name: "medium", LineCount: 40},
		{Name: "long", LineCount: 150},
	}

	decorations := Assign(functions, nil)
	require.Len(t, decorations, 3)

	assert.Equal(t, BrightnessFull, decorations[0].Brightness)
	assert.Equal(t, BrightnessMid, decorations[1].Brightness)
	assert.Equal(t, BrightnessLow, decorations[2].Brightness)
}

func TestAssign_Empty(t *testing.T) {
	assert.Empty(t, Assign(nil, nil))
	assert.Empty(t, Assign([]engine.FunctionInfo{}, nil))
}
