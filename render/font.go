package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Block font: 3x5 pixels per glyph, rows top to bottom, bit 2 is the left column
const (
	glyphCols = 3
	glyphRows = 5
	glyphGap  = 1

	// Terminal cells are roughly twice as tall as wide
	cellAspect = 2
)

var glyphs = map[rune][glyphRows]uint8{
	' ': {0, 0, 0, 0, 0},
	'0': {7, 5, 5, 5, 7},
	'1': {2, 6, 2, 2, 7},
	'2': {7, 1, 7, 4, 7},
	'3': {7, 1, 7, 1, 7},
	'4': {5, 5, 7, 1, 1},
	'5': {7, 4, 7, 1, 7},
	'6': {7, 4, 7, 5, 7},
	'7': {7, 1, 1, 1, 1},
	'8': {7, 5, 7, 5, 7},
	'9': {7, 5, 7, 1, 7},
	'A': {2, 5, 7, 5, 5},
	'B': {6, 5, 6, 5, 6},
	'C': {7, 4, 4, 4, 7},
	'D': {6, 5, 5, 5, 6},
	'E': {7, 4, 6, 4, 7},
	'F': {7, 4, 6, 4, 4},
	'G': {7, 4, 5, 5, 7},
	'H': {5, 5, 7, 5, 5},
	'I': {7, 2, 2, 2, 7},
	'J': {1, 1, 1, 5, 7},
	'K': {5, 5, 6, 5, 5},
	'L': {4, 4, 4, 4, 7},
	'M': {5, 7, 7, 5, 5},
	'N': {6, 5, 5, 5, 5},
	'O': {7, 5, 5, 5, 7},
	'P': {7, 5, 7, 4, 4},
	'Q': {7, 5, 5, 7, 1},
	'R': {6, 5, 6, 5, 5},
	'S': {7, 4, 7, 1, 7},
	'T': {7, 2, 2, 2, 2},
	'U': {5, 5, 5, 5, 7},
	'V': {5, 5, 5, 5, 2},
	'W': {5, 5, 7, 7, 5},
	'X': {5, 5, 2, 5, 5},
	'Y': {5, 5, 2, 2, 2},
	'Z': {7, 1, 2, 4, 7},
}

// HasGlyphs reports whether every rune of text exists in the block font
func HasGlyphs(text string) bool {
	for _, ch := range text {
		if _, ok := glyphs[ch]; !ok {
			return false
		}
	}
	return true
}

// bigTextCols is the cell width of text at scale k
func bigTextCols(n, k int) int {
	if n == 0 {
		return 0
	}
	px := n*glyphCols + (n-1)*glyphGap
	return px * cellAspect * k
}

// BigTextScale returns the largest block-font scale that fits size (a fraction of
// the screen height) and the screen width; 0 means plain text
func BigTextScale(text string, size float64, width, height int) int {
	if !HasGlyphs(text) {
		return 0
	}
	n := len([]rune(text))
	k := int(math.Floor(size * float64(height) / glyphRows))
	for k >= 1 && bigTextCols(n, k) > width {
		k--
	}
	return max(k, 0)
}

// TextExtent returns the cells text occupies when drawn at size
func TextExtent(text string, size float64, width, height int) (cols, rows int) {
	k := BigTextScale(text, size, width, height)
	if k == 0 {
		return runewidth.StringWidth(text), 1
	}
	return bigTextCols(len([]rune(text)), k), glyphRows * k
}

// DrawBigText draws text in the block font centered vertically on y, falling
// back to a plain line when the screen is too small
func (r *Renderer) DrawBigText(text string, x, y, size float64, align Align, color tcell.Color) Rect {
	return r.drawLabel(text, x, y, size, align, color, r.theme.Background)
}

func (r *Renderer) drawLabel(text string, x, y, size float64, align Align, fg, bg tcell.Color) Rect {
	return r.drawLabelAt(text, x*float64(r.width), y*float64(r.height), size, align, fg, bg)
}

// drawLabelAt anchors text at fractional cell coordinates (fx, fy)
func (r *Renderer) drawLabelAt(text string, fx, fy, size float64, align Align, fg, bg tcell.Color) Rect {
	col := int(math.Floor(fx))
	k := BigTextScale(text, size, r.width, r.height)
	if k == 0 {
		style := tcell.StyleDefault.Foreground(fg).Background(bg)
		return r.drawTextCells(text, col, int(math.Floor(fy)), align, style)
	}

	cols, rows := TextExtent(text, size, r.width, r.height)
	start := anchor(col, cols, align)
	top := int(math.Round(fy - float64(rows)/2))

	pxW := cellAspect * k
	pxH := k
	gx := start
	for _, ch := range text {
		g := glyphs[ch]
		for gy := 0; gy < glyphRows; gy++ {
			for bit := 0; bit < glyphCols; bit++ {
				if g[gy]&(1<<(glyphCols-1-bit)) == 0 {
					continue
				}
				r.FillRect(Rect{X: gx + bit*pxW, Y: top + gy*pxH, W: pxW, H: pxH}, fg)
			}
		}
		gx += (glyphCols + glyphGap) * pxW
	}

	return Rect{X: start, Y: top, W: cols, H: rows}
}
