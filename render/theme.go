package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-pong/parameter"
)

// Theme is the palette used for every frame
type Theme struct {
	Foreground  tcell.Color
	Background  tcell.Color
	PressedFill tcell.Color
	PressedText tcell.Color
	Net         tcell.Color
}

// DefaultTheme returns the monochrome palette
func DefaultTheme() Theme {
	t, _ := ParseTheme(parameter.DefaultForeground, parameter.DefaultBackground,
		parameter.DefaultPressedFill, parameter.DefaultPressedText)
	return t
}

// ParseTheme builds a theme from "#rrggbb" hex strings
// The net color is the midpoint of foreground and background
func ParseTheme(fg, bg, pressedFill, pressedText string) (Theme, error) {
	fgc, err := colorful.Hex(fg)
	if err != nil {
		return Theme{}, fmt.Errorf("foreground %q: %w", fg, err)
	}
	bgc, err := colorful.Hex(bg)
	if err != nil {
		return Theme{}, fmt.Errorf("background %q: %w", bg, err)
	}
	pf, err := colorful.Hex(pressedFill)
	if err != nil {
		return Theme{}, fmt.Errorf("pressed fill %q: %w", pressedFill, err)
	}
	pt, err := colorful.Hex(pressedText)
	if err != nil {
		return Theme{}, fmt.Errorf("pressed text %q: %w", pressedText, err)
	}

	return Theme{
		Foreground:  toTCell(fgc),
		Background:  toTCell(bgc),
		PressedFill: toTCell(pf),
		PressedText: toTCell(pt),
		Net:         toTCell(fgc.BlendRgb(bgc, 0.5)),
	}, nil
}

func toTCell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
