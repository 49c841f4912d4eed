// Package ui is the presentation layer: title, game and end screens wired to
// the simulation, input bindings, audio and rendering.
package ui

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Screen identifies the active screen
type Screen uint8

const (
	ScreenTitle Screen = iota
	ScreenGame
	ScreenEnd
)

func (s Screen) String() string {
	switch s {
	case ScreenGame:
		return "game"
	case ScreenEnd:
		return "end"
	default:
		return "title"
	}
}

// AppConfig carries the app's collaborators
type AppConfig struct {
	Session  *game.Session
	Renderer *render.Renderer
	Keys     *input.KeyTable
	KeyHold  time.Duration
	KeyDelay time.Duration
	Sounds   Sounds
	Clock    engine.TimeProvider
	Logger   *slog.Logger
	Stats    *status.Registry
}

// App implements engine.Handler
type App struct {
	screen   Screen
	session  *game.Session
	renderer *render.Renderer
	keys     *input.KeyTable
	held     *input.KeyState
	mouse    input.MouseState
	sfx      Sounds
	clock    engine.TimeProvider
	logger   *slog.Logger

	title *Menu
	end   *Menu
	quit  bool

	stats *sessionStats
}

// sessionStats caches registry pointers used every frame
type sessionStats struct {
	frames, hits, points *atomic.Int64
	started, finished    *atomic.Int64
	lastPitch            *status.AtomicFloat
}

func newSessionStats(r *status.Registry) *sessionStats {
	return &sessionStats{
		frames:    r.Counters.Get(status.Frames),
		hits:      r.Counters.Get(status.Hits),
		points:    r.Counters.Get(status.Points),
		started:   r.Counters.Get(status.MatchesStarted),
		finished:  r.Counters.Get(status.MatchesFinished),
		lastPitch: r.Gauges.Get(status.LastHitPitch),
	}
}

// NewApp creates the app on the title screen
func NewApp(cfg AppConfig) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := cfg.Keys
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	stats := cfg.Stats
	if stats == nil {
		stats = status.NewRegistry()
	}
	hold := cfg.KeyHold
	if hold <= 0 {
		hold = parameter.DefaultKeyHold
	}
	delay := cfg.KeyDelay
	if delay <= 0 {
		delay = parameter.DefaultKeyDelay
	}

	return &App{
		screen:   ScreenTitle,
		session:  cfg.Session,
		renderer: cfg.Renderer,
		keys:     keys,
		held:     input.NewKeyState(delay, hold),
		sfx:      cfg.Sounds,
		clock:    cfg.Clock,
		logger:   logger,
		stats:    newSessionStats(stats),
		title: NewMenu(
			menuButton(parameter.OnePlayerText, parameter.FirstButtonY, ActionOnePlayer),
			menuButton(parameter.TwoPlayersText, parameter.SecondButtonY, ActionTwoPlayers),
		),
		end: NewMenu(
			menuButton(parameter.PlayAgainText, parameter.FirstButtonY, ActionPlayAgain),
			menuButton(parameter.BackToMenuText, parameter.SecondButtonY, ActionBackToMenu),
		),
	}
}

func menuButton(label string, y float64, a Action) Button {
	return Button{
		Label:  label,
		Pos:    vmath.Vec2{X: 0.5, Y: y},
		Size:   parameter.ButtonSize,
		Action: a,
	}
}

// Screen returns the active screen
func (a *App) Screen() Screen {
	return a.screen
}

// HandleEvent consumes one terminal event; false requests exit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.renderer.Sync()
	case *tcell.EventMouse:
		a.mouse.Update(ev)
	case *tcell.EventKey:
		a.handleKey(ev)
	}
	return !a.quit
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if a.screen == ScreenGame {
		a.handleGameKey(a.keys.Lookup(input.ContextGame, ev))
		return
	}

	menu := a.activeMenu()
	switch a.keys.Lookup(input.ContextMenu, ev) {
	case input.ActionQuit:
		a.quit = true
	case input.ActionMenuUp:
		menu.MoveFocus(-1)
	case input.ActionMenuDown:
		menu.MoveFocus(1)
	case input.ActionMenuSelect:
		menu.Select(a.sfx)
	case input.ActionOnePlayer:
		if a.screen == ScreenTitle {
			a.dispatch(ActionOnePlayer)
		}
	case input.ActionTwoPlayers:
		if a.screen == ScreenTitle {
			a.dispatch(ActionTwoPlayers)
		}
	case input.ActionBack:
		if a.screen == ScreenEnd {
			a.dispatch(ActionBackToMenu)
		}
	}
}

func (a *App) handleGameKey(action input.Action) {
	switch action {
	case input.ActionQuit:
		a.quit = true
	case input.ActionBack:
		a.logger.Info("match abandoned")
		a.dispatch(ActionBackToMenu)
	case input.ActionNone:
	default:
		// A reversal cancels the opposite hold at once
		a.held.Release(action.Opposite())
		a.held.Press(action, a.clock.Now())
	}
}

// Tick advances one frame; false requests exit
func (a *App) Tick(now time.Time) bool {
	switch a.screen {
	case ScreenGame:
		a.tickGame(now)
	case ScreenTitle, ScreenEnd:
		w, h := a.renderer.Size()
		if action, ok := a.activeMenu().Update(&a.mouse, w, h, a.sfx); ok {
			a.dispatch(action)
		}
	}
	a.mouse.EndFrame()
	return !a.quit
}

func (a *App) tickGame(now time.Time) {
	a.stats.frames.Add(1)
	for _, ev := range a.session.Update(a.held.PaddleInput(now)) {
		switch ev.Type {
		case game.EventHit:
			a.stats.hits.Add(1)
			a.stats.lastPitch.Set(ev.Pitch)
			a.sfx.PlayHit(ev.Pitch)
		case game.EventScore:
			a.stats.points.Add(1)
			a.logger.Debug("score", "side", ev.Side, "score", ev.Score)
		case game.EventMatchEnd:
			a.stats.finished.Add(1)
			a.logger.Info("match ended", "winner", ev.Side, "score", ev.Score)
			a.setScreen(ScreenEnd)
		}
	}
}

// dispatch performs a menu action
func (a *App) dispatch(action Action) {
	switch action {
	case ActionOnePlayer:
		a.startMatch(game.ModeVsAI)
	case ActionTwoPlayers:
		a.startMatch(game.ModeTwoPlayer)
	case ActionPlayAgain:
		if m := a.session.Restart(); m != nil {
			a.stats.started.Add(1)
			a.logger.Info("match restarted", "mode", m.Mode())
			a.setScreen(ScreenGame)
		}
	case ActionBackToMenu:
		a.session.Teardown()
		a.setScreen(ScreenTitle)
	}
}

func (a *App) startMatch(mode game.Mode) {
	a.session.Init(mode)
	a.stats.started.Add(1)
	a.logger.Info("match started", "mode", mode)
	a.setScreen(ScreenGame)
}

func (a *App) setScreen(s Screen) {
	a.screen = s
	a.held.Reset()
	a.title.Reset()
	a.end.Reset()
}

func (a *App) activeMenu() *Menu {
	if a.screen == ScreenEnd {
		return a.end
	}
	return a.title
}

// Draw renders the active screen
func (a *App) Draw() {
	r := a.renderer
	r.Begin()
	fg := r.Theme().Foreground

	switch a.screen {
	case ScreenTitle:
		r.DrawBigText(parameter.TitleText, 0.5, parameter.TitleY, parameter.TitleSize, render.AlignCenter, fg)
		a.title.Draw(r)

	case ScreenGame:
		if m := a.session.Match(); m != nil {
			r.DrawMatch(m.Snapshot(), render.AllComponents)
		}

	case ScreenEnd:
		r.DrawBigText(a.winText(), 0.5, parameter.WinTextY, parameter.WinTextSize, render.AlignCenter, fg)
		a.end.Draw(r)
	}

	r.End()
}

func (a *App) winText() string {
	if m := a.session.Match(); m != nil {
		if side, ok := m.Winner(); ok && side == game.SideRight {
			return parameter.PlayerTwoWinsText
		}
	}
	return parameter.PlayerOneWinsText
}
