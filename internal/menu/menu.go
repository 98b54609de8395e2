package menu

import (
	"cashregister/internal/console"
	"cashregister/internal/database"
	"fmt"
	"io"
	"time"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=State -linecomment -output=state_string.go

type State int

const (
	StateRunning  State = iota // running
	StateQuitting              // quitting
)

type Menu struct {
	DB         database.Database
	Input      inputReader
	Output     io.Writer
	Logger     logger
	Now        func() time.Time
	LastItemID int
	MaxRetries int
	DateLayout string

	state State
}

type inputReader interface {
	ReadInt() (int, error)
	ReadMenuChoice() (console.Choice, error)
}

type logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

func (m *Menu) State() State {
	return m.state
}

func (m *Menu) print(a ...any) {
	if _, err := fmt.Fprint(m.Output, a...); err != nil {
		m.Logger.Errorf("print: Error writing output, err: %v", err)
	}
}

func (m *Menu) printf(format string, a ...any) {
	if _, err := fmt.Fprintf(m.Output, format, a...); err != nil {
		m.Logger.Errorf("printf: Error writing output, err: %v", err)
	}
}

func (m *Menu) println(a ...any) {
	if _, err := fmt.Fprintln(m.Output, a...); err != nil {
		m.Logger.Errorf("println: Error writing output, err: %v", err)
	}
}

func (m *Menu) quit(reason string) {
	m.Logger.Infof("quit: Leaving menu loop, reason: %s", reason)
	m.state = StateQuitting
}
