// Package engine runs the fixed-rate frame loop that drives the game.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

// EventSource yields terminal events; tcell.Screen satisfies it
// PollEvent returns nil once the source is finalized
type EventSource interface {
	PollEvent() tcell.Event
}

// Handler receives events and frames on the loop goroutine
// Returning false from HandleEvent or Tick stops the loop
type Handler interface {
	HandleEvent(ev tcell.Event) bool
	Tick(now time.Time) bool
	Draw()
}

// Loop owns the frame ticker and the input poller
type Loop struct {
	source   EventSource
	handler  Handler
	clock    TimeProvider
	interval time.Duration
	logger   *slog.Logger
}

// NewLoop creates a loop ticking fps times per second; fps must be positive
func NewLoop(source EventSource, handler Handler, clock TimeProvider, fps int, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loop{
		source:   source,
		handler:  handler,
		clock:    clock,
		interval: time.Second / time.Duration(fps),
		logger:   logger,
	}
}

// Interval returns the frame period
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Run blocks until the handler asks to stop (nil) or ctx is done (ctx.Err())
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, parameter.EventChannelSize)
	pollDone := make(chan struct{})

	// Input polling interacts directly with the terminal
	core.Go(func() {
		defer close(pollDone)
		for {
			ev := l.source.PollEvent()
			// Clean exit on screen finalization
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Debug("loop started", "interval", l.interval)
	l.handler.Draw()

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop cancelled")
			return ctx.Err()

		case ev := <-events:
			if !l.handler.HandleEvent(ev) {
				l.logger.Debug("loop stopped by input")
				return nil
			}

		case <-pollDone:
			l.logger.Debug("event source closed")
			return l.drain(events)

		case <-ticker.C:
			if !l.handler.Tick(l.clock.Now()) {
				l.logger.Debug("loop stopped by tick")
				return nil
			}
			l.handler.Draw()
		}
	}
}

// drain delivers events buffered before the source closed
func (l *Loop) drain(events <-chan tcell.Event) error {
	for {
		select {
		case ev := <-events:
			if !l.handler.HandleEvent(ev) {
				return nil
			}
		default:
			return nil
		}
	}
}
