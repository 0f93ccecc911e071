// Package app ties the terminal, decoder, editor, scrollback and
// command table together into a running console.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"parley/ansi"
	"parley/command"
	"parley/complete"
	"parley/config"
	"parley/input"
	"parley/lineedit"
	"parley/scrollback"
	"parley/theme"
)

// TTY is the terminal capability the app drives. term.Terminal
// implements it.
type TTY interface {
	input.ByteSource
	io.Writer
	Enter() error
	Leave() error
	Size() (cols, rows int, err error)
	SetIdleFunc(func())
}

// App is an interactive console session: a scrolling message log above
// a live prompt, feeding submitted lines to a command table.
//
// Everything runs on the goroutine that calls Run. The one concession
// to the outside world is NotifyResize, which may be called from a
// signal handler goroutine; it only sets a flag that the run loop
// picks up between key events.
type App struct {
	cfg       *config.Config
	tty       TTY
	logger    *slog.Logger
	decoder   *input.Decoder
	editor    *lineedit.Editor
	history   *lineedit.History
	log       *scrollback.Log
	renderer  *scrollback.Renderer
	table     *command.Table
	completer *complete.Resolver

	errorPrefix scrollback.Segment
	cols, rows  int
	running     bool
	resize      atomic.Bool

	// OnStartup runs once inside Run before the first key is read.
	OnStartup func()
	// OnExit is the shutdown hook, invoked exactly once when the run
	// loop ends.
	OnExit func()
	// OnPrint receives the plain text of every printed message.
	OnPrint func(string)
}

// New assembles a console over the given terminal. The built-in
// commands (help, exit/quit, alias) are registered before it returns.
func New(cfg *config.Config, tty TTY, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &App{
		cfg:     cfg,
		tty:     tty,
		logger:  logger,
		editor:  lineedit.New(),
		history: lineedit.NewHistory(cfg.Commands.HistoryCapacity),
		log:     scrollback.NewLog(cfg.Scrollback.Capacity),
		table:   command.NewTable(),
		errorPrefix: scrollback.NewSegment(
			cfg.Scrollback.ErrorPrefix,
			theme.Style(cfg.Scrollback.ErrorStyle),
		),
	}
	a.decoder = input.NewDecoder(tty)
	a.table.Abbrev = cfg.Commands.Abbreviations
	a.completer = complete.New(a.table)
	a.renderer = scrollback.NewRenderer(tty, scrollback.NewSegment(cfg.Prompt.Text, theme.Style(cfg.Prompt.Style)))
	if err := command.RegisterBuiltins(a.table, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Table exposes the command table for registering application
// commands.
func (a *App) Table() *command.Table {
	return a.table
}

// History exposes the submitted-command history.
func (a *App) History() *lineedit.History {
	return a.history
}

// Print appends an unstyled message to the log and redraws it.
func (a *App) Print(text string) {
	a.PrintStyled(scrollback.NewSegment(text, ""))
}

// Printf formats and prints an unstyled message.
func (a *App) Printf(format string, args ...any) {
	a.Print(fmt.Sprintf(format, args...))
}

// PrintStyled appends a message built from the given segments,
// prefixed with a timestamp when one is configured.
func (a *App) PrintStyled(segments ...scrollback.Segment) {
	var msg scrollback.Message
	if layout := a.cfg.Scrollback.TimestampFormat; layout != "" {
		msg = append(msg, scrollback.NewSegment(time.Now().Format(layout), ""))
	}
	msg = append(msg, segments...)
	a.log.Append(msg)
	if a.OnPrint != nil {
		a.OnPrint(msg.Plain())
	}
	a.renderLog()
}

// Error prints a message with the configured error prefix.
func (a *App) Error(text string) {
	a.PrintStyled(a.errorPrefix, scrollback.NewSegment(" "+text, ""))
}

// Println implements command.Host for the built-in commands.
func (a *App) Println(text string) {
	a.Print(text)
}

// SetPrompt replaces the prompt text and style and redraws the prompt
// row.
func (a *App) SetPrompt(text, style string) {
	a.renderer.SetPrompt(scrollback.NewSegment(text, theme.Style(style)))
	a.renderPrompt()
}

// Clear empties the log and wipes the screen.
func (a *App) Clear() {
	a.log.Clear()
	io.WriteString(a.tty, ansi.ClearScreen)
	a.renderPrompt()
}

// Stop ends the run loop after the current event is handled.
func (a *App) Stop() {
	a.running = false
}

// NotifyResize requests a re-render with fresh dimensions. Safe to
// call from another goroutine; the resize is applied between key
// events, never concurrently with a render.
func (a *App) NotifyResize() {
	a.resize.Store(true)
}

// HandleResize re-queries the terminal size and redraws everything.
func (a *App) HandleResize() {
	a.updateSize()
	io.WriteString(a.tty, ansi.ClearScreen)
	a.renderLog()
	a.renderPrompt()
}

// Run enters raw mode and processes key events until Stop is called,
// an interrupt arrives, or the input stream ends. The shutdown hook
// runs exactly once on the way out.
func (a *App) Run() error {
	if err := a.tty.Enter(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer a.tty.Leave()

	a.tty.SetIdleFunc(a.drainResize)
	a.updateSize()
	a.registerConfigAliases()
	a.running = true
	a.logger.Debug("console starting", "cols", a.cols, "rows", a.rows)
	if a.OnStartup != nil {
		a.OnStartup()
	}
	a.renderLog()

	for a.running {
		a.renderPrompt()
		key := a.decoder.Next()
		a.handleKey(key)
		a.drainResize()
	}

	a.logger.Debug("console stopping")
	if a.OnExit != nil {
		a.OnExit()
	}
	return nil
}

func (a *App) handleKey(key input.Key) {
	switch key.Type {
	case input.KeyRune:
		a.editor.Insert(byte(key.Rune))
	case input.KeyEnter:
		a.submit()
	case input.KeyTab:
		a.completeLine()
	case input.KeyBackspace:
		a.editor.DeleteBackward()
	case input.KeyDelete:
		a.editor.DeleteForward()
	case input.KeyLeft:
		a.editor.Left()
	case input.KeyRight:
		a.editor.Right()
	case input.KeyUp:
		a.history.RecallOlder(a.editor)
	case input.KeyDown:
		a.history.RecallNewer(a.editor)
	case input.KeyHome, input.KeyPageUp:
		a.editor.Home()
	case input.KeyEnd, input.KeyPageDown:
		a.editor.End()
	case input.KeyEscape:
		a.editor.Clear()
		a.history.Reset()
	case input.KeyInterrupt, input.KeyEndOfInput:
		a.Stop()
	case input.KeyControl, input.KeyUnrecognized, input.KeyIncomplete:
		// Non-fatal; ignored.
	}
}

// submit routes the current line and resets the prompt. Validation
// failures become log messages; the loop always returns to a cleared
// prompt.
func (a *App) submit() {
	line := a.editor.Text()
	a.history.Reset()
	a.editor.Clear()

	tokens, err := command.Tokenize(line)
	if err != nil {
		a.Error(err.Error())
		return
	}
	if len(tokens) == 0 {
		a.log.Append(scrollback.Message{})
		a.renderLog()
		return
	}
	a.history.Push(line)
	if err := a.table.Dispatch(tokens); err != nil {
		a.logger.Debug("dispatch failed", "line", line, "error", err.Error())
		a.Error(err.Error())
		if usage := command.UsageOf(err); usage != "" {
			a.Print("usage: " + usage)
		}
	}
}

func (a *App) completeLine() {
	action := a.completer.Complete(a.editor.Text())
	if action.Replace != "" {
		a.editor.Set(action.Replace)
	}
	for _, line := range action.Lines {
		a.Print(line)
	}
}

func (a *App) registerConfigAliases() {
	names := make([]string, 0, len(a.cfg.Commands.Aliases))
	for name := range a.cfg.Commands.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := a.table.Alias(name, a.cfg.Commands.Aliases[name]); err != nil {
			a.logger.Warn("config alias skipped", "alias", name, "error", err.Error())
		}
	}
}

func (a *App) drainResize() {
	if a.resize.Swap(false) {
		a.HandleResize()
	}
}

func (a *App) updateSize() {
	cols, rows, err := a.tty.Size()
	if err != nil {
		a.logger.Warn("size query failed", "error", err.Error())
		return
	}
	a.cols, a.rows = cols, rows
}

func (a *App) renderLog() {
	a.renderer.RenderLog(a.log, a.cols, a.rows)
}

func (a *App) renderPrompt() {
	a.renderer.RenderPrompt(a.editor.Text(), a.editor.Cursor(), a.cols, a.rows)
}
