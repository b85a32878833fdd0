// Package cli drives the interactive menu loop.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/idilsaglam/tudu/internal/config"
	"github.com/idilsaglam/tudu/internal/menu"
	"github.com/idilsaglam/tudu/internal/model"
	"github.com/idilsaglam/tudu/internal/store/jsonstore"
	"github.com/idilsaglam/tudu/internal/ui"
)

// Exit codes. Cancelled covers the reserved "0" input at any prompt.
const (
	ExitOK        = 0
	ExitCancelled = 1
	ExitError     = 1
)

const (
	optAdd      = "add a new todo"
	optComplete = "complete a todo"
	optExit     = "exit"
)

// Run repeats the load → menu → mutate → save cycle until the user
// exits. Input and output are injected so tests can script a session.
// The returned code is the process exit status.
func Run(cfg config.Config, in io.Reader, out io.Writer) int {
	todos, err := jsonstore.Load(cfg.FilePath)
	if err != nil {
		ui.Fail(out, "load: "+err.Error())
		return ExitError
	}

	m := menu.New(in, out)
	for {
		unfinished := todos.Unfinished()
		header(out, todos)

		opts := append(actionOptions(len(unfinished)), optExit)
		msg := fmt.Sprintf("You have %d incomplete todos in your todo list", len(unfinished))

		choice, err := m.Select(opts, msg)
		if err != nil {
			return finish(out, err)
		}

		switch opts[choice] {
		case optAdd:
			err = addTodo(m, &todos, out)
		case optComplete:
			err = completeTodo(m, todos, unfinished, out)
		default:
			return ExitOK
		}
		if err != nil {
			return finish(out, err)
		}

		if err := jsonstore.Save(cfg.FilePath, todos); err != nil {
			ui.Fail(out, "save: "+err.Error())
			return ExitError
		}
	}
}

// finish maps a prompt error to an exit code. Cancellation is the
// expected abort path and carries no message.
func finish(out io.Writer, err error) int {
	if errors.Is(err, menu.ErrCancelled) {
		return ExitCancelled
	}
	ui.Fail(out, err.Error())
	return ExitError
}

// actionOptions lists the selectable actions: adding is always
// possible, completing only when something is still unfinished.
func actionOptions(unfinished int) []string {
	if unfinished == 0 {
		return []string{optAdd}
	}
	return []string{optAdd, optComplete}
}

func addTodo(m *menu.Menu, todos *model.List, out io.Writer) error {
	text, err := m.Prompt("Enter todo: ")
	if err != nil {
		return err
	}
	t, err := model.New(text)
	if err != nil {
		// Recoverable: report and return to the menu.
		ui.Fail(out, err.Error())
		return nil
	}
	*todos = append(*todos, t)
	ui.OK(out, "Todo added")
	return nil
}

func completeTodo(m *menu.Menu, todos, unfinished model.List, out io.Writer) error {
	names := make([]string, len(unfinished))
	for i, t := range unfinished {
		names[i] = t.Text
	}
	choice, err := m.Select(names, "Pick a todo to mark as complete")
	if err != nil {
		return err
	}
	// The sub-menu only offers valid entries, so a miss here means the
	// collection changed underneath us; recover like any bad input.
	if err := todos.Complete(unfinished[choice].ID); err != nil {
		ui.Fail(out, err.Error())
		return nil
	}
	ui.OK(out, "Todo completed")
	return nil
}

// header shows live counts and progress above the menu.
func header(out io.Writer, todos model.List) {
	d, p := todos.Stats()
	t := ui.Current()
	ui.Panel(out, []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			ui.C(t.Title, "Todos"),
			ui.C(t.Success, "✔"), d,
			ui.C(t.Pending, "•"), p,
			ui.C(t.Accent, "Total"), len(todos),
		),
		ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)),
	})
}
