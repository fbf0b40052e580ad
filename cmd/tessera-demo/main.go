// Command tessera-demo is a reference application for the toolkit: a
// task table and an activity log side by side, with a one-line prompt
// underneath.
//
// Keys:
//
//	Alt+arrows  move focus between panes
//	arrows      move within the focused pane
//	Enter       submit the prompt line ("quit" exits)
//	Ctrl+R      search prompt history
//	Ctrl+C      quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/odvcencio/tessera/internal/trace"
	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/backend/tcell"
	"github.com/odvcencio/tessera/pkg/container"
	"github.com/odvcencio/tessera/pkg/input"
	"github.com/odvcencio/tessera/pkg/screen"
	"github.com/odvcencio/tessera/pkg/terminal"
	"github.com/odvcencio/tessera/pkg/theme"
	"github.com/odvcencio/tessera/pkg/widget"
	"github.com/odvcencio/tessera/pkg/widgets"
)

var (
	themeFlag = flag.String("theme", "", "path to a YAML theme layered over the built-in palette")
	traceFlag = flag.String("trace", "", "write a JSONL session trace to this file")
)

const stepInterval = 600 * time.Millisecond

func main() {
	flag.Parse()
	if err := run(*themeFlag, *traceFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(themePath, tracePath string) error {
	if !isInteractiveTerminal() {
		return errors.New("tessera-demo needs an interactive terminal on stdin and stdout")
	}

	var tracer *trace.Tracer
	if tracePath != "" {
		var err error
		tracer, err = trace.New(tracePath)
		if err != nil {
			return err
		}
		defer tracer.Close()
	}
	_ = tracer.Emit("session", "start", map[string]any{"theme": themePath})
	defer func() { _ = tracer.Emit("session", "end", nil) }()

	base := theme.Default()
	if termenv.ColorProfile() != termenv.TrueColor {
		base = theme.Default16()
	}
	pal, err := loadPalette(themePath, base)
	if err != nil {
		return err
	}

	bk, err := tcell.New()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	scr := screen.New(bk)
	if err := scr.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer scr.Fini()

	d := &demo{
		scr:       scr,
		backend:   bk,
		tracer:    tracer,
		themePath: themePath,
		base:      base,
	}
	if err := d.buildUI(); err != nil {
		return err
	}
	d.applyPalette(pal)
	if tracer != nil {
		d.logf("trace session %s", tracer.SessionID())
	}

	if themePath != "" {
		watcher, err := d.watchTheme()
		if err != nil {
			d.logf("theme watch unavailable: %v", err)
			_ = tracer.Emit("theme", "watch unavailable", map[string]any{"error": err.Error()})
		} else {
			defer watcher.Close()
		}
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(stepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				_ = bk.PostEvent(terminal.RefreshEvent{})
			}
		}
	}()

	for !d.quit {
		if err := d.mgr.Render(scr); err != nil {
			if !container.IsKind(err, container.OutputFailure) {
				return err
			}
			_ = tracer.Emit("render", "frame dropped", map[string]any{"error": err.Error()})
		}
		ev := scr.PollEvent()
		if ev == nil {
			break
		}
		d.handle(ev)
	}
	return nil
}

func isInteractiveTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))
}

// loadPalette compiles the base theme, layered under the file at path
// when one is given.
func loadPalette(path string, base theme.Theme) (theme.Palette, error) {
	th := base
	if path != "" {
		var err error
		th, err = theme.Load(path, base)
		if err != nil {
			return theme.Palette{}, err
		}
	}
	return th.Compile()
}

const (
	taskPending = "pending"
	taskRunning = "running"
	taskDone    = "done"
)

type task struct {
	Name     string
	State    string
	Progress int
}

// pane adapts one widget and its key bindings to the container API and
// carries the default style its window is drawn with.
type pane struct {
	inner widget.Widget
	keys  input.Behavior
	style backend.Style
}

func (p *pane) Widget() widget.Widget { return p }

func (p *pane) HandleInput(in input.Input) bool {
	return p.keys != nil && p.keys.HandleInput(in)
}

func (p *pane) SpaceDemand() widget.Demand2D { return p.inner.SpaceDemand() }

func (p *pane) Draw(win screen.Window, hints widget.RenderingHints) {
	p.inner.Draw(win.WithDefaultStyle(p.style), hints)
}

type demo struct {
	scr     *screen.Screen
	backend backend.Backend
	mgr     *container.Manager[string]
	tracer  *trace.Tracer

	themePath  string
	base       theme.Theme
	themeDirty atomic.Bool
	pal        theme.Palette

	tasks    *widgets.Table[task]
	activity *widgets.LogViewer
	prompt   *widgets.PromptLine

	taskPane   *pane
	logPane    *pane
	promptPane *pane

	quitKeys  input.Behavior
	focusKeys input.Behavior

	tick int
	quit bool
}

func (d *demo) buildUI() error {
	d.tasks = widgets.NewTable[task](
		widgets.Column[task]{View: func(t *task) widget.Widget {
			return widgets.NewLineLabel(t.Name)
		}},
		widgets.Column[task]{View: func(t *task) widget.Widget {
			l := widgets.NewLineLabel(t.State)
			switch t.State {
			case taskRunning:
				l.SetStyle(d.pal.Status)
			case taskDone:
				l.SetStyle(d.pal.Accent)
			}
			return l
		}},
		widgets.Column[task]{View: func(t *task) widget.Widget {
			return widgets.NewLineLabel(fmt.Sprintf("%3d%%", t.Progress))
		}},
	)
	d.tasks.SetRows([]task{
		{Name: "resolve deps", State: taskRunning, Progress: 35},
		{Name: "compile core", State: taskPending},
		{Name: "link binary", State: taskPending},
		{Name: "run tests", State: taskPending},
		{Name: "package image", State: taskPending},
		{Name: "publish docs", State: taskPending},
	})
	d.tasks.SetScrollContext(1)
	d.activity = widgets.NewLogViewer()
	d.prompt = widgets.NewPromptLine("> ")

	d.taskPane = &pane{inner: d.tasks, keys: firstOf(
		input.NewNavigateBehavior(d.tasks),
		input.NewScrollBehavior(d.tasks).
			ToBeginningOn(terminal.Press(terminal.KeyHome)).
			ToEndOn(terminal.Press(terminal.KeyEnd)),
	)}
	d.logPane = &pane{inner: d.activity, keys: input.NewScrollBehavior(d.activity).
		BackwardsOn(terminal.Press(terminal.KeyPageUp), terminal.Press(terminal.KeyUp)).
		ForwardsOn(terminal.Press(terminal.KeyPageDown), terminal.Press(terminal.KeyDown)).
		ToEndOn(terminal.Press(terminal.KeyEnd)),
	}
	d.promptPane = &pane{inner: d.prompt, keys: firstOf(
		input.Bind(d.submit, terminal.Press(terminal.KeyEnter)),
		input.Bind(func() { d.prompt.SearchBackwards() }, terminal.Ctrl('r')),
		input.NewEditBehavior(d.prompt),
		input.NewScrollBehavior(d.prompt).
			BackwardsOn(terminal.Press(terminal.KeyPageUp), terminal.Press(terminal.KeyUp)).
			ForwardsOn(terminal.Press(terminal.KeyPageDown), terminal.Press(terminal.KeyDown)),
	)}

	d.mgr = container.NewManager[string]()
	d.mgr.SetSeparators(container.SeparatorsLines)
	if err := d.mgr.AddContainer("tasks", d.taskPane); err != nil {
		return err
	}
	if err := d.mgr.AddContainer("activity", d.logPane); err != nil {
		return err
	}
	if err := d.mgr.AddContainer("prompt", d.promptPane); err != nil {
		return err
	}
	layout := container.VSplit(
		container.Weighted[string](container.HSplit(
			container.Weighted[string](container.Leaf("tasks"), 1),
			container.Weighted[string](container.Leaf("activity"), 2),
		), 1),
		container.Weighted[string](container.Leaf("prompt"), 0),
	)
	if err := d.mgr.SetLayout(layout); err != nil {
		return err
	}
	if err := d.mgr.SetActive("prompt"); err != nil {
		return err
	}

	d.quitKeys = input.Bind(func() { d.quit = true }, terminal.Ctrl('c'), terminal.Ctrl('q'))
	d.focusKeys = input.NewNavigateBehavior(d.mgr.Navigator()).
		UpOn(altArrow(terminal.KeyUp)).
		DownOn(altArrow(terminal.KeyDown)).
		LeftOn(altArrow(terminal.KeyLeft)).
		RightOn(altArrow(terminal.KeyRight))
	return nil
}

func altArrow(k terminal.Key) terminal.Event {
	return terminal.KeyEvent{Key: k, Alt: true}
}

// firstOf folds behaviors into one, offering the input to each in order
// until one consumes it.
func firstOf(behaviors ...input.Behavior) input.Behavior {
	return input.BehaviorFunc(func(in input.Input) bool {
		for _, b := range behaviors {
			if b.HandleInput(in) {
				return true
			}
		}
		return false
	})
}

func (d *demo) applyPalette(pal theme.Palette) {
	d.pal = pal
	d.tasks.SetSelectionStyle(pal.Selection)
	d.mgr.SetSeparatorStyle(pal.Separator)
	d.taskPane.style = pal.Text
	d.logPane.style = pal.Text
	d.promptPane.style = pal.Prompt
}

func (d *demo) handle(ev terminal.Event) {
	switch ev.(type) {
	case terminal.RefreshEvent:
		if d.themeDirty.CompareAndSwap(true, false) {
			d.reloadTheme()
		} else {
			d.step()
		}
		return
	case terminal.ResizeEvent:
		d.backend.Sync()
		return
	}

	chain := input.Input{Event: ev}.
		Chain(d.quitKeys).
		Chain(d.focusKeys).
		Chain(input.BehaviorFunc(d.mgr.Dispatch)).
		AndThen(func(consumed bool) {
			_ = d.tracer.Emit("input", describe(ev), map[string]any{"consumed": consumed})
		})
	if _, ok := ev.(terminal.KeyEvent); ok {
		chain.IfNotConsumed(d.scr.Beep)
	}
}

// step advances the first unfinished task; once every task is done the
// whole queue resets to pending.
func (d *demo) step() {
	d.tick++
	rows := d.tasks.Rows()
	for i := range rows {
		t := &rows[i]
		if t.State == taskDone {
			continue
		}
		if t.State == taskPending {
			t.State = taskRunning
			d.logf("start %s", t.Name)
		}
		t.Progress += 9 + 3*(d.tick%4)
		if t.Progress >= 100 {
			t.Progress = 100
			t.State = taskDone
			d.logf("done %s", t.Name)
		}
		return
	}
	for i := range rows {
		rows[i].State = taskPending
		rows[i].Progress = 0
	}
	d.logf("queue drained, starting over")
}

func (d *demo) submit() {
	line := d.prompt.Finish()
	if line == "" {
		return
	}
	_ = d.tracer.Emit("prompt", line, nil)
	if line == "quit" || line == "exit" {
		d.quit = true
		return
	}
	d.logf("> %s", line)
}

func (d *demo) reloadTheme() {
	pal, err := loadPalette(d.themePath, d.base)
	if err != nil {
		d.logf("theme reload failed: %v", err)
		_ = d.tracer.Emit("theme", "reload failed", map[string]any{"error": err.Error()})
		return
	}
	d.applyPalette(pal)
	d.logf("theme reloaded")
	_ = d.tracer.Emit("theme", "reloaded", map[string]any{"path": d.themePath})
}

// watchTheme reloads the palette when the theme file changes. Editors
// replace files on save, so the watch covers the directory and filters
// by name to survive renames.
func (d *demo) watchTheme() (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(d.themePath)); err != nil {
		watcher.Close()
		return nil, err
	}
	target := filepath.Clean(d.themePath)
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				d.themeDirty.Store(true)
				_ = d.backend.PostEvent(terminal.RefreshEvent{})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				_ = d.tracer.Emit("theme", "watch error", map[string]any{"error": err.Error()})
			}
		}
	}()
	return watcher, nil
}

func (d *demo) logf(format string, args ...any) {
	fmt.Fprintf(d.activity, time.Now().Format("15:04:05 ")+format+"\n", args...)
}

func describe(ev terminal.Event) string {
	switch e := ev.(type) {
	case terminal.KeyEvent:
		if e.Key == terminal.KeyRune {
			return fmt.Sprintf("key %q alt=%t ctrl=%t", e.Rune, e.Alt, e.Ctrl)
		}
		return fmt.Sprintf("key #%d alt=%t ctrl=%t", e.Key, e.Alt, e.Ctrl)
	case terminal.PasteEvent:
		return fmt.Sprintf("paste %d bytes", len(e.Text))
	case terminal.MouseEvent:
		return fmt.Sprintf("mouse %d,%d", e.X, e.Y)
	default:
		return fmt.Sprintf("%T", ev)
	}
}
