package parameter

// Screen layout in normalized coordinates
const (
	TitleY        = 0.3
	TitleSize     = 0.2
	WinTextY      = 0.3
	WinTextSize   = 0.11
	FirstButtonY  = 0.6
	SecondButtonY = 0.8
	ButtonSize    = 0.09

	// ButtonPadding is the frame padding around the label per side
	ButtonPadding = 0.03

	// ScoreSize is the big-glyph height of the scores
	ScoreSize = 0.13

	// ScoreOffsetX is the horizontal distance of each score from the center line
	ScoreOffsetX = 0.1

	// ScoreY is the top edge of the scores
	ScoreY = 0.1
)

// Labels
const (
	TitleText         = "PONG"
	OnePlayerText     = "ONE PLAYER"
	TwoPlayersText    = "TWO PLAYERS"
	PlayerOneWinsText = "P1 WINS"
	PlayerTwoWinsText = "P2 WINS"
	PlayAgainText     = "PLAY AGAIN"
	BackToMenuText    = "BACK TO MENU"
)

// Default theme
const (
	DefaultForeground  = "#ffffff"
	DefaultBackground  = "#000000"
	DefaultPressedFill = "#505050"
	DefaultPressedText = "#c8c8c8"
)
