package menu

import (
	"cashregister/internal/console"
	applog "cashregister/internal/logger"
	"github.com/pkg/errors"
	"time"
)

// Run drives the menu until the user quits or input runs out. It never returns an error:
// everything that goes wrong is reported on the output and either recovered or ends the loop.
func (m *Menu) Run() {
	if m.Logger == nil {
		m.Logger = applog.NewNop()
	}
	if m.Now == nil {
		m.Now = time.Now
	}
	if m.MaxRetries < 1 {
		m.MaxRetries = 1
	}
	hs := m.handlers()

	m.state = StateRunning
	m.Logger.Infof("Run: Starting menu loop, last item ID: %d", m.LastItemID)
	for m.state == StateRunning {
		m.printMenu()
		choice, err := m.readChoice()
		if err != nil {
			m.stop(err)
			continue
		}
		if choice.Quit {
			m.println("Goodbye!")
			m.quit("quit selected")
			continue
		}

		s := Selection(choice.Number)
		h, ok := hs[s]
		if !ok {
			m.Logger.Debugf("Run: Unknown selection: %d", choice.Number)
			m.println("Invalid selection.")
			continue
		}
		m.Logger.Debugf("Run: Selected %q", s)
		if err = h(); err != nil {
			if errors.Is(err, console.ErrInvalidInput) {
				m.Logger.Debugf("Run: Invalid input for %q, err: %v", s, err)
				m.println("Invalid input. Please enter a valid number.")
				continue
			}
			m.stop(err)
		}
	}
	m.Logger.Infof("Run: Menu loop %s, last item ID: %d, sales: %d", m.state, m.LastItemID, m.DB.Sales.Len())
}

func (m *Menu) printMenu() {
	for _, s := range selections {
		m.printf("%d. %s\n", s, s)
	}
	m.println("q. Quit")
	m.print("Your Selection: ")
}

// readChoice asks again on unparseable input until MaxRetries attempts are used.
func (m *Menu) readChoice() (console.Choice, error) {
	var err error
	for attempt := 1; attempt <= m.MaxRetries; attempt++ {
		var c console.Choice
		c, err = m.Input.ReadMenuChoice()
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, console.ErrInvalidInput) {
			return console.Choice{}, err
		}
		m.Logger.Debugf("readChoice: Attempt %d of %d failed, err: %v", attempt, m.MaxRetries, err)
		m.println("Invalid input. Please enter a number.")
		if attempt < m.MaxRetries {
			m.print("Your Selection: ")
		}
	}
	return console.Choice{}, err
}

func (m *Menu) stop(err error) {
	switch {
	case errors.Is(err, console.ErrEndOfInput):
		m.println("No input found. Exiting input prompt.")
		m.quit("end of input")
	case errors.Is(err, console.ErrInvalidInput):
		m.println("Too many invalid selections.")
		m.quit("invalid input")
	default:
		m.Logger.Errorf("stop: Unrecoverable console error, err: %+v", err)
		m.quit("console error")
	}
}
