package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jakoblorz/go-fexplorer/internal/tui"
)

const pauseMessage = "Press Enter to continue..."

// LinePrompter reads line based answers, e.g. from a pipe or a dumb terminal
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a new LinePrompter
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *LinePrompter) Action(dir string) (Action, error) {
	fmt.Fprintln(p.out, RenderMenu())
	fmt.Fprint(p.out, tui.PromptStyle.Render("Enter choice: "))

	line, err := p.readLine()
	if err != nil {
		return ActionInvalid, err
	}
	return ParseAction(line), nil
}

func (p *LinePrompter) Input(prompt string, _ func(string) error) (string, error) {
	fmt.Fprint(p.out, prompt+": ")
	return p.readLine()
}

func (p *LinePrompter) Pause() error {
	fmt.Fprint(p.out, "\n"+pauseMessage)
	_, err := p.readLine()
	fmt.Fprintln(p.out)
	return err
}

// readLine returns the next line without its terminator. End of input
// before any byte was read yields ErrQuit.
func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrQuit
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
