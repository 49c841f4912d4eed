package render

import (
	"strconv"

	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Components selects which parts of a match frame are drawn
type Components struct {
	Boards bool
	Scores bool
	Ball   bool
	Net    bool
}

// AllComponents draws the full match
var AllComponents = Components{Boards: true, Scores: true, Ball: true, Net: true}

// DrawMatch draws a match snapshot, back to front: net, scores, ball, boards
func (r *Renderer) DrawMatch(s game.Snapshot, c Components) {
	if c.Net {
		r.drawNet()
	}
	if c.Scores {
		r.drawScores(s.Paddles[game.SideLeft].Score, s.Paddles[game.SideRight].Score)
	}
	if c.Ball {
		r.drawBall(s.Ball.X, s.Ball.Y)
	}
	if c.Boards {
		r.drawBoard(parameter.PaddleLeftX, s.Paddles[game.SideLeft].Y)
		r.drawBoard(parameter.PaddleRightX, s.Paddles[game.SideRight].Y)
	}
}

// drawNet draws a dashed center line, one cell on every other row
func (r *Renderer) drawNet() {
	col, _ := r.ToCell(0.5, 0)
	for row := 0; row < r.height; row += 2 {
		r.FillRect(Rect{X: col, Y: row, W: 1, H: 1}, r.theme.Net)
	}
}

// drawScores right-aligns the left score against the left of center and
// left-aligns the right score after it
func (r *Renderer) drawScores(left, right int) {
	y := parameter.ScoreY + parameter.ScoreSize/2
	fg := r.theme.Foreground
	r.DrawBigText(strconv.Itoa(left), 0.5-parameter.ScoreOffsetX, y, parameter.ScoreSize, AlignRight, fg)
	r.DrawBigText(strconv.Itoa(right), 0.5+parameter.ScoreOffsetX, y, parameter.ScoreSize, AlignLeft, fg)
}

func (r *Renderer) drawBall(x, y float64) {
	half := parameter.BallWidth / 2
	r.FillRect(r.NormRect(x-half, y-half, x+half, y+half), r.theme.Foreground)
}

func (r *Renderer) drawBoard(x, y float64) {
	hw := parameter.BoardHalfWidth
	hh := parameter.BoardHeight / 2
	r.FillRect(r.NormRect(x-hw, y-hh, x+hw, y+hh), r.theme.Foreground)
}
