// Package viewer implements the interactive standings browser.
package viewer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/standings/internal/contract"
	"github.com/huangsam/standings/internal/logo"
	"github.com/huangsam/standings/internal/outwriter"
	"github.com/huangsam/standings/schema"
)

// State is everything the viewer shows: the current selection, the tables
// loaded for its (year, league) and the error of the last load, if any.
type State struct {
	Selection schema.Selection
	Reduced   schema.Table
	Full      schema.Table
	Err       error
}

// Table returns the loaded table of the selected view.
func (s State) Table() schema.Table {
	if s.Selection.View == schema.ReducedView {
		return s.Reduced
	}
	return s.Full
}

// RenderFunc draws a state. It is called after every command that changes what is shown.
type RenderFunc func(ctx context.Context, w io.Writer, st State) error

// Viewer holds the browse loop state.
type Viewer struct {
	loader contract.SnapshotLoader
	out    io.Writer
	render RenderFunc
	state  State
}

// New creates a Viewer starting at the configured selection.
func New(loader contract.SnapshotLoader, cfg *contract.Config, out io.Writer) *Viewer {
	return NewWithRenderer(loader, cfg.Selection(), out, TableRenderer(cfg))
}

// NewWithRenderer creates a Viewer with a custom render function.
func NewWithRenderer(loader contract.SnapshotLoader, sel schema.Selection, out io.Writer, render RenderFunc) *Viewer {
	return &Viewer{
		loader: loader,
		out:    out,
		render: render,
		state:  State{Selection: sel},
	}
}

// TableRenderer renders a state as the styled text table.
func TableRenderer(cfg *contract.Config) RenderFunc {
	return func(ctx context.Context, w io.Writer, st State) error {
		if st.Err != nil {
			_, err := fmt.Fprintf(w, "Cannot show %s %d: %v\n", st.Selection.League.DisplayName(), st.Selection.Year, st.Err)
			return err
		}
		logos := logo.NewRendererFromConfig(cfg, outwriter.GetMaxLogoWidth(cfg, st.Selection.View))
		return outwriter.WriteStandingsTable(ctx, w, st.Table(), st.Selection, cfg, logos)
	}
}

// State returns a copy of the current state.
func (v *Viewer) State() State {
	return v.state
}

// Run loads the initial selection and then executes one command per input line
// until quit, end of input or context cancellation.
func (v *Viewer) Run(ctx context.Context, in io.Reader) error {
	v.reload()
	if err := v.draw(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprint(v.out, "> ")
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(v.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			_, _ = fmt.Fprintf(v.out, "%v. Type 'help' for commands.\n", err)
			continue
		}
		quit, err := v.Apply(ctx, cmd)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Apply executes one command. A year or league change reloads the snapshot;
// a view change redraws the tables already loaded.
func (v *Viewer) Apply(ctx context.Context, cmd Command) (quit bool, err error) {
	sel := v.state.Selection

	switch cmd.Kind {
	case CmdQuit:
		return true, nil

	case CmdHelp:
		_, err := fmt.Fprint(v.out, helpText)
		return false, err

	case CmdNone:
		return false, nil

	case CmdYear:
		if cmd.Year == sel.Year {
			return false, nil
		}
		v.state.Selection.Year = cmd.Year
		v.reload()

	case CmdLeague:
		if cmd.League == sel.League {
			return false, nil
		}
		v.state.Selection.League = cmd.League
		v.reload()

	case CmdView:
		if cmd.View == sel.View {
			return false, nil
		}
		v.state.Selection.View = cmd.View

	case CmdToggle:
		if sel.View == schema.FullView {
			v.state.Selection.View = schema.ReducedView
		} else {
			v.state.Selection.View = schema.FullView
		}
	}
	return false, v.draw(ctx)
}

// reload replaces the loaded tables with the snapshot of the current selection.
// On failure both tables are cleared and the error is kept for display.
func (v *Viewer) reload() {
	reduced, full, err := v.loader.Load(v.state.Selection.Year, v.state.Selection.League)
	v.state.Reduced, v.state.Full, v.state.Err = reduced, full, err
}

func (v *Viewer) draw(ctx context.Context) error {
	return v.render(ctx, v.out, v.state)
}

var helpText = func() string {
	years := make([]string, len(schema.SupportedYears))
	for i, y := range schema.SupportedYears {
		years[i] = fmt.Sprint(y)
	}
	leagues := make([]string, len(schema.SupportedLeagues))
	for i, l := range schema.SupportedLeagues {
		leagues[i] = string(l)
	}
	return fmt.Sprintf(`Commands:
  year <%s>
  league <%s>
  view <reduced|full>
  toggle    switch between reduced and full
  help      show this help
  quit      leave the viewer
`, strings.Join(years, "|"), strings.Join(leagues, "|"))
}()
