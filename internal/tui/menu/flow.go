package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jakoblorz/go-fexplorer/internal/explorer"
	"github.com/jakoblorz/go-fexplorer/internal/models"
)

var errInvalidChoice = errors.New("invalid choice, please try again")

// Flow runs the interactive menu loop against one Session.
type Flow struct {
	session  *explorer.Session
	prompter Prompter
	out      io.Writer
	errOut   io.Writer
	logger   *slog.Logger
}

// NewFlow constructs a Flow. Results go to out, failures to errOut.
func NewFlow(session *explorer.Session, prompter Prompter, out, errOut io.Writer, logger *slog.Logger) *Flow {
	return &Flow{
		session:  session,
		prompter: prompter,
		out:      out,
		errOut:   errOut,
		logger:   logger,
	}
}

// Run shows the menu until the user exits or input ends. Failed commands
// are reported and the loop continues; only prompt I/O errors end it early.
func (f *Flow) Run() error {
	fmt.Fprintln(f.out, RenderBanner())

	for {
		action, err := f.prompter.Action(f.session.Dir())
		if err == nil && action == ActionExit {
			err = ErrQuit
		}
		if err == nil {
			err = f.Execute(action)
		}
		if err == nil {
			err = f.prompter.Pause()
		}

		if errors.Is(err, ErrQuit) {
			fmt.Fprintln(f.out, RenderGoodbye())
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
}

// Execute performs one menu action and prints its outcome.
func (f *Flow) Execute(action Action) error {
	f.logger.Debug("menu action", "action", action.Label(), "dir", f.session.Dir())

	switch action {
	case ActionList, ActionListDetailed:
		f.list(action == ActionListDetailed)
	case ActionChangeDirectory:
		return f.changeDirectory()
	case ActionShowPath:
		f.success("Current path: " + f.session.Dir())
	case ActionCreateDirectory:
		return f.createDirectory()
	case ActionCreateFile:
		return f.createFile()
	case ActionDelete:
		return f.delete()
	case ActionCopy:
		return f.copy()
	case ActionMove:
		return f.move()
	case ActionSearch:
		return f.search()
	case ActionInfo:
		return f.info()
	case ActionChmod:
		return f.chmod()
	default:
		f.fail(errInvalidChoice)
	}
	return nil
}

func (f *Flow) list(detailed bool) {
	entries, err := f.session.List(detailed)
	if err != nil {
		f.fail(err)
		return
	}

	if detailed {
		fmt.Fprintln(f.out, RenderDetailedListing(f.session.Dir(), entries))
	} else {
		fmt.Fprintln(f.out, RenderListing(f.session.Dir(), entries))
	}
}

func (f *Flow) changeDirectory() error {
	token, err := f.prompter.Input("Enter directory path (or .. for parent)", notEmpty)
	if err != nil {
		return err
	}

	path, err := f.session.ChangeDirectory(token)
	if err != nil {
		f.fail(err)
		return nil
	}
	f.success("Changed to: " + path)
	return nil
}

func (f *Flow) createDirectory() error {
	name, err := f.prompter.Input("Enter directory name", notEmpty)
	if err != nil {
		return err
	}

	if _, err := f.session.CreateDirectory(name); err != nil {
		f.fail(err)
		return nil
	}
	f.success("Directory created: " + name)
	return nil
}

func (f *Flow) createFile() error {
	name, err := f.prompter.Input("Enter file name", notEmpty)
	if err != nil {
		return err
	}

	if _, err := f.session.CreateFile(name); err != nil {
		f.fail(err)
		return nil
	}
	f.success("File created: " + name)
	return nil
}

func (f *Flow) delete() error {
	name, err := f.prompter.Input("Enter file/directory name", notEmpty)
	if err != nil {
		return err
	}

	kind, err := f.session.Delete(name)
	if err != nil {
		f.fail(err)
		return nil
	}
	if kind == models.KindDirectory {
		f.success("Directory deleted: " + name)
	} else {
		f.success("File deleted: " + name)
	}
	return nil
}

func (f *Flow) copy() error {
	src, dst, err := f.sourceAndDestination("Enter source file name", "Enter destination file name")
	if err != nil {
		return err
	}

	if err := f.session.Copy(src, dst); err != nil {
		f.fail(err)
		return nil
	}
	f.success(fmt.Sprintf("File copied: %s -> %s", src, dst))
	return nil
}

func (f *Flow) move() error {
	src, dst, err := f.sourceAndDestination("Enter source name", "Enter destination name")
	if err != nil {
		return err
	}

	if err := f.session.Move(src, dst); err != nil {
		f.fail(err)
		return nil
	}
	f.success(fmt.Sprintf("Moved/Renamed: %s -> %s", src, dst))
	return nil
}

func (f *Flow) sourceAndDestination(srcPrompt, dstPrompt string) (string, string, error) {
	src, err := f.prompter.Input(srcPrompt, notEmpty)
	if err != nil {
		return "", "", err
	}
	dst, err := f.prompter.Input(dstPrompt, notEmpty)
	if err != nil {
		return "", "", err
	}
	return src, dst, nil
}

func (f *Flow) search() error {
	pattern, err := f.prompter.Input("Enter search pattern", nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(f.out, RenderSearchStart(pattern, f.session.Dir()))
	result, err := f.session.Search(pattern)
	if err != nil {
		f.fail(err)
		return nil
	}
	fmt.Fprintln(f.out, RenderSearchResult(result))
	return nil
}

func (f *Flow) info() error {
	name, err := f.prompter.Input("Enter file/directory name", notEmpty)
	if err != nil {
		return err
	}

	entry, err := f.session.Info(name)
	if err != nil {
		f.fail(err)
		return nil
	}
	fmt.Fprintln(f.out, RenderInfo(entry))
	return nil
}

func (f *Flow) chmod() error {
	name, err := f.prompter.Input("Enter file/directory name", notEmpty)
	if err != nil {
		return err
	}
	perms, err := f.prompter.Input("Enter permissions (e.g., 755)", func(s string) error {
		_, err := models.ParsePermissions(s)
		return err
	})
	if err != nil {
		return err
	}

	if _, err := f.session.Chmod(name, perms); err != nil {
		f.fail(err)
		return nil
	}
	f.success(fmt.Sprintf("Permissions changed: %s -> %s", name, perms))
	return nil
}

func (f *Flow) success(msg string) {
	fmt.Fprintln(f.out, RenderSuccess(msg))
}

func (f *Flow) fail(err error) {
	f.logger.Debug("command failed", "error", err)
	fmt.Fprintln(f.errOut, RenderError(err))
}

func notEmpty(s string) error {
	if s == "" {
		return errors.New("value cannot be empty")
	}
	return nil
}
