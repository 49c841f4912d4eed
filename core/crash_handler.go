// Package core holds process-wide crash handling shared by every goroutine
// that touches the terminal.
package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores the terminal; tcell.Screen satisfies it
type Finisher interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finisher
	crashLogger   *slog.Logger

	// Swapped in tests
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// RegisterTerminal sets the screen restored on crash
func RegisterTerminal(t Finisher) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashTerminal = t
}

// RegisterLogger sets the logger that records crashes
func RegisterLogger(l *slog.Logger) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashLogger = l
}

// HandleCrash is the unified panic handler that restores the terminal, prints
// the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	term, logger := crashTerminal, crashLogger
	crashTerminal = nil
	crashMu.Unlock()

	stack := debug.Stack()

	// Restore terminal to sane state before printing
	if term != nil {
		term.Fini()
	}

	if logger != nil {
		logger.Error("crash", "panic", fmt.Sprint(r), "stack", string(stack))
	}

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mVI-PONG CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", stack)

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword for anything that can crash while the terminal is raw
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
