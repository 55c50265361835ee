package menu

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrQuit is returned by a Prompter when the user ends the session without
// choosing Exit, e.g. by closing stdin or aborting a form.
var ErrQuit = errors.New("quit")

// Prompter collects user input for the menu loop
type Prompter interface {
	// Action asks for the next menu entry; dir is the current directory
	Action(dir string) (Action, error)

	// Input asks for one line of text. Prompters that can re-ask apply
	// validate before returning; others return the raw line.
	Input(prompt string, validate func(string) error) (string, error)

	// Pause waits for the user to acknowledge the last output
	Pause() error
}

// PrompterOptions selects and configures a Prompter
type PrompterOptions struct {
	// Plain forces the line based prompter even on a terminal
	Plain     bool
	AltScreen bool
}

// NewPrompter returns a HuhPrompter when in is a terminal and a LinePrompter
// otherwise.
func NewPrompter(in io.Reader, out io.Writer, opts PrompterOptions) Prompter {
	if !opts.Plain && isTerminal(in) {
		return NewHuhPrompter(in, out, opts.AltScreen)
	}
	return NewLinePrompter(in, out)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
