package menu

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/jakoblorz/go-fexplorer/internal/tui"
	"github.com/jakoblorz/go-fexplorer/internal/tui/components"
)

// HuhPrompter asks for input with huh forms
type HuhPrompter struct {
	in        io.Reader
	out       io.Writer
	theme     *huh.Theme
	altScreen bool
}

// NewHuhPrompter creates a new HuhPrompter
func NewHuhPrompter(in io.Reader, out io.Writer, altScreen bool) *HuhPrompter {
	return &HuhPrompter{
		in:        in,
		out:       out,
		theme:     tui.NewHuhTheme(),
		altScreen: altScreen,
	}
}

func (p *HuhPrompter) programOptions() []tea.ProgramOption {
	if p.altScreen {
		return []tea.ProgramOption{tea.WithAltScreen()}
	}
	return nil
}

func (p *HuhPrompter) run(form *huh.Form) error {
	err := form.
		WithTheme(p.theme).
		WithShowHelp(true).
		WithInput(p.in).
		WithOutput(p.out).
		WithProgramOptions(p.programOptions()...).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrQuit
	}
	return err
}

func (p *HuhPrompter) Action(dir string) (Action, error) {
	choice := ActionList

	opts := make([]huh.Option[Action], 0, len(labels))
	for _, s := range sections {
		for _, a := range s.actions {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%2d. %s", int(a), a.Label()), a))
		}
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Filter.SetEnabled(true)
	keyMap.Select.Submit.SetKeys("enter")
	keyMap.Select.Submit.SetHelp("enter", "run")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Action]().
				Options(opts...).
				Height(len(opts) + 2).
				Value(&choice),
		).
			Title("File Explorer").
			Description("Current directory: " + dir),
	).WithKeyMap(keyMap)

	if err := p.run(form); err != nil {
		return ActionInvalid, err
	}
	return choice, nil
}

func (p *HuhPrompter) Input(prompt string, validate func(string) error) (string, error) {
	value := ""

	input := huh.NewInput().
		Title(prompt).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	if err := p.run(huh.NewForm(huh.NewGroup(input))); err != nil {
		return "", err
	}
	return value, nil
}

func (p *HuhPrompter) Pause() error {
	program := tea.NewProgram(
		components.NewPause(pauseMessage),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(components.PauseModel); ok && m.WantsQuit() {
		return ErrQuit
	}
	return nil
}
