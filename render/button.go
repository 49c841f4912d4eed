package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/parameter"
)

// ButtonState is the visual state of a menu button
type ButtonState uint8

const (
	ButtonInactive ButtonState = iota
	ButtonActive               // hovered or focused
	ButtonPressing
)

func (s ButtonState) String() string {
	switch s {
	case ButtonActive:
		return "active"
	case ButtonPressing:
		return "pressing"
	default:
		return "inactive"
	}
}

// ButtonFrame returns the cells of a button centered on (x, y): the label extent
// plus the padding fraction of the screen on each side
func ButtonFrame(label string, x, y, size float64, width, height int) Rect {
	cols, rows := TextExtent(label, size, width, height)
	padX := max(int(math.Round(parameter.ButtonPadding*float64(width))), 1)
	padY := max(int(math.Round(parameter.ButtonPadding*float64(height))), 1)

	w := cols + 2*padX
	h := rows + 2*padY
	return Rect{
		X: int(math.Round(x*float64(width) - float64(w)/2)),
		Y: int(math.Round(y*float64(height) - float64(h)/2)),
		W: w,
		H: h,
	}
}

// DrawButton draws a framed label
// Inactive: outline on background; Active: solid foreground with inverted text;
// Pressing: outline around the pressed fill
func (r *Renderer) DrawButton(label string, x, y, size float64, state ButtonState) Rect {
	frame := ButtonFrame(label, x, y, size, r.width, r.height)
	t := r.theme

	r.FillRect(frame, t.Foreground)

	var fill, text tcell.Color
	switch state {
	case ButtonActive:
		fill, text = t.Foreground, t.Background
	case ButtonPressing:
		fill, text = t.PressedFill, t.PressedText
		r.FillRect(frame.Inset(1, 1), fill)
	default:
		fill, text = t.Background, t.Foreground
		r.FillRect(frame.Inset(1, 1), fill)
	}

	fx := float64(frame.X) + float64(frame.W)/2
	fy := float64(frame.Y) + float64(frame.H)/2
	r.drawLabelAt(label, fx, fy, size, AlignCenter, text, fill)

	return frame
}
