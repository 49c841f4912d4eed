// Package render draws pong frames onto a tcell screen.
// All positions are normalized: (0,0) is the top-left corner, (1,1) the
// bottom-right, independent of the terminal size.
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Align anchors text horizontally at its x coordinate
type Align uint8

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Rect is a cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside the rectangle
func (r Rect) Contains(col, row int) bool {
	return col >= r.X && col < r.X+r.W && row >= r.Y && row < r.Y+r.H
}

// Inset shrinks the rectangle by dx columns and dy rows per side
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: max(r.W-2*dx, 0), H: max(r.H-2*dy, 0)}
}

// Renderer maps normalized scene coordinates to terminal cells
type Renderer struct {
	screen tcell.Screen
	theme  Theme
	width  int
	height int
}

// NewRenderer creates a renderer over screen
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	r := &Renderer{screen: screen, theme: theme}
	r.width, r.height = screen.Size()
	return r
}

// Theme returns the active palette
func (r *Renderer) Theme() Theme {
	return r.theme
}

// Size returns the screen size in cells as of the last Begin
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Begin refreshes the screen size and clears to the background
func (r *Renderer) Begin() {
	r.width, r.height = r.screen.Size()
	r.screen.SetStyle(r.baseStyle())
	r.screen.Fill(' ', r.baseStyle())
}

// Sync repaints the whole terminal after a resize
func (r *Renderer) Sync() {
	r.screen.Sync()
	r.width, r.height = r.screen.Size()
}

// End flushes the frame
func (r *Renderer) End() {
	r.screen.Show()
}

// ToCell maps a normalized point to the cell containing it
func (r *Renderer) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x * float64(r.width))), int(math.Floor(y * float64(r.height)))
}

// NormRect maps a normalized box to the cells it covers, at least one cell each way
func (r *Renderer) NormRect(x0, y0, x1, y1 float64) Rect {
	c0 := int(math.Floor(x0 * float64(r.width)))
	r0 := int(math.Floor(y0 * float64(r.height)))
	c1 := int(math.Ceil(x1 * float64(r.width)))
	r1 := int(math.Ceil(y1 * float64(r.height)))
	return Rect{X: c0, Y: r0, W: max(c1-c0, 1), H: max(r1-r0, 1)}
}

// FillRect paints a rectangle with a solid color, clipped to the screen
func (r *Renderer) FillRect(rect Rect, color tcell.Color) {
	style := r.baseStyle().Background(color)
	for y := max(rect.Y, 0); y < min(rect.Y+rect.H, r.height); y++ {
		for x := max(rect.X, 0); x < min(rect.X+rect.W, r.width); x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText writes a single line anchored at normalized x on the row containing y
// Returns the cells covered
func (r *Renderer) DrawText(text string, x, y float64, align Align, style tcell.Style) Rect {
	col, row := r.ToCell(x, y)
	return r.drawTextCells(text, col, row, align, style)
}

func (r *Renderer) drawTextCells(text string, col, row int, align Align, style tcell.Style) Rect {
	width := runewidth.StringWidth(text)
	start := anchor(col, width, align)

	cx := start
	for _, ch := range text {
		if cx >= 0 && cx < r.width && row >= 0 && row < r.height {
			r.screen.SetContent(cx, row, ch, nil, style)
		}
		cx += runewidth.RuneWidth(ch)
	}
	return Rect{X: start, Y: row, W: width, H: 1}
}

func (r *Renderer) baseStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(r.theme.Foreground).Background(r.theme.Background)
}

// anchor returns the first column of a span of width cells aligned at col
func anchor(col, width int, align Align) int {
	switch align {
	case AlignLeft:
		return col
	case AlignRight:
		return col - width
	default:
		return col - width/2
	}
}
