package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestButtonFrame(t *testing.T) {
	// 10 label cells, padding round(0.03*80)=2 columns and round(0.03*24)=1 row per side
	got := ButtonFrame("ONE PLAYER", 0.5, 0.6, 0.09, 80, 24)
	want := Rect{X: 33, Y: 13, W: 14, H: 3}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestButtonFrameMinimumPadding(t *testing.T) {
	got := ButtonFrame("AB", 0.5, 0.5, 0.09, 10, 10)
	if got.W != 4 || got.H != 3 {
		t.Errorf("Expected one cell of padding each side, got %+v", got)
	}
}

func TestDrawButtonStates(t *testing.T) {
	tests := []struct {
		state     ButtonState
		innerFill func(Theme) tcell.Color
		textFg    func(Theme) tcell.Color
	}{
		{ButtonInactive, func(t Theme) tcell.Color { return t.Background }, func(t Theme) tcell.Color { return t.Foreground }},
		{ButtonActive, func(t Theme) tcell.Color { return t.Foreground }, func(t Theme) tcell.Color { return t.Background }},
		{ButtonPressing, func(t Theme) tcell.Color { return t.PressedFill }, func(t Theme) tcell.Color { return t.PressedText }},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			r, screen := newTestRenderer(t, 80, 24)
			theme := r.Theme()

			frame := r.DrawButton("ONE PLAYER", 0.5, 0.6, 0.09, tt.state)
			r.End()

			// Border
			if bg := cellBg(screen, frame.X, frame.Y); bg != theme.Foreground {
				t.Errorf("Expected border painted, got %v", bg)
			}
			// Inner padding cell left of the label
			if bg := cellBg(screen, frame.X+1, frame.Y+1); bg != tt.innerFill(theme) {
				t.Errorf("Expected inner fill %v, got %v", tt.innerFill(theme), bg)
			}
			// First label cell
			ch, _, style, _ := screen.GetContent(frame.X+2, frame.Y+1)
			if ch != 'O' {
				t.Errorf("Expected label to start with 'O', got %q", ch)
			}
			fg, _, _ := style.Decompose()
			if fg != tt.textFg(theme) {
				t.Errorf("Expected label color %v, got %v", tt.textFg(theme), fg)
			}
		})
	}
}
