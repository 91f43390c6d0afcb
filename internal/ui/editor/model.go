// Package editor is the terminal front-end of a sync editing session.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lrcsync/internal/editor"
	"github.com/llehouerou/lrcsync/internal/errmsg"
	"github.com/llehouerou/lrcsync/internal/keymap"
	"github.com/llehouerou/lrcsync/internal/lyrics"
	"github.com/llehouerou/lrcsync/internal/ui"
	"github.com/llehouerou/lrcsync/internal/ui/action"
	"github.com/llehouerou/lrcsync/internal/ui/confirm"
	"github.com/llehouerou/lrcsync/internal/ui/cursor"
	"github.com/llehouerou/lrcsync/internal/ui/textinput"
)

const (
	tickInterval = 100 * time.Millisecond
	seekStep     = 5 * time.Second
	opTimeout    = 5 * time.Second
)

// Player is the playback the editor drives: the session's Playback plus
// pause and length.
type Player interface {
	editor.Playback
	Toggle()
	Paused() bool
	Duration() time.Duration
}

// Options configures the editor model.
type Options struct {
	// DownloadDir receives .lrc files written with "w". Empty means cwd.
	DownloadDir string
	// ReadClipboard returns the text pasted with "v". Defaults to the
	// system clipboard.
	ReadClipboard func() (string, error)
	Logger        *slog.Logger
}

type promptKind int

const (
	promptNone promptKind = iota
	promptEdit
	promptImport
)

type tickMsg time.Time

// Model holds the editor view state around a session.
type Model struct {
	ui.Base
	session *editor.Session
	player  Player
	opts    Options
	log     *slog.Logger
	keys    *keymap.Resolver

	list     cursor.Cursor
	position time.Duration

	prompt     textinput.Model
	promptKind promptKind
	confirm    confirm.Model
	showHelp   bool

	status    string
	statusErr bool
	quitting  bool
}

// New creates the editor model. The session must use player as its Playback.
func New(session *editor.Session, player Player, opts Options) *Model {
	if opts.ReadClipboard == nil {
		opts.ReadClipboard = clipboard.ReadAll
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Model{
		session: session,
		player:  player,
		opts:    opts,
		log:     log,
		keys:    keymap.NewResolver(keymap.Editor),
		list:    cursor.New(ui.ScrollMargin),
		prompt:  textinput.New(),
		confirm: confirm.New(),
	}
}

// Init starts the position ticker.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Selected returns the index of the selected line.
func (m *Model) Selected() int { return m.list.Pos() }

// Status returns the last status message and whether it reports an error.
func (m *Model) Status() (string, bool) { return m.status, m.statusErr }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.list.EnsureVisible(m.session.Len(), m.listHeight())
		return m, nil
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.position = m.player.Position()
		return m, tick()
	case action.Msg:
		m.log.Debug("editor.action", "source", msg.Source, "type", msg.Action.ActionType())
		switch res := msg.Action.(type) {
		case textinput.Result:
			return m, m.handlePromptResult(res)
		case confirm.Result:
			m.confirm.Reset()
			if res.Confirmed {
				m.resetRemote()
			}
		}
		return m, nil
	case tea.KeyMsg:
		if m.promptKind != promptNone {
			var cmd tea.Cmd
			_, cmd = m.prompt.Update(msg)
			return m, cmd
		}
		if m.confirm.Active() {
			var cmd tea.Cmd
			_, cmd = m.confirm.Update(msg)
			return m, cmd
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m, m.handleKey(msg.String())
	}
	return m, nil
}

func (m *Model) listHeight() int {
	return max(1, m.Height()-ui.PanelOverhead)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(op errmsg.Op, err error) {
	m.status = errmsg.Format(op, err)
	m.statusErr = true
	m.log.Warn("editor.error", "op", string(op), "err", err)
}

// follow moves the selection to the session cursor.
func (m *Model) follow() {
	m.list.Jump(max(0, m.session.Cursor()), m.session.Len(), m.listHeight())
}

func (m *Model) handleKey(key string) tea.Cmd {
	if m.list.HandleKey(key, m.session.Len(), m.listHeight()) {
		return nil
	}

	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		m.quitting = true
		m.session.Close()
		return tea.Quit
	case keymap.ActionHelp:
		m.showHelp = true
	case keymap.ActionMark:
		if m.session.Mark() {
			m.follow()
			m.setStatus("")
		} else {
			m.setStatus("No line left to mark")
		}
	case keymap.ActionInsert:
		m.session.InsertLine()
		m.follow()
	case keymap.ActionRemove:
		if m.session.RemoveLine(m.list.Pos()) {
			m.list.ClampToBounds(m.session.Len())
			m.list.EnsureVisible(m.session.Len(), m.listHeight())
		}
	case keymap.ActionJump:
		if !m.session.Jump(m.list.Pos()) && m.session.Len() > 0 {
			m.setStatus("Line has no timestamp")
		}
	case keymap.ActionEdit:
		if line, ok := m.session.Line(m.list.Pos()); ok {
			m.openPrompt(promptEdit, "Edit line", line.Text, m.list.Pos())
		}
	case keymap.ActionImport:
		m.openPrompt(promptImport, "Import lyrics file", "", nil)
	case keymap.ActionPaste:
		m.paste()
	case keymap.ActionPlayPause:
		m.player.Toggle()
	case keymap.ActionSeekBack:
		m.player.SetPosition(max(0, m.player.Position()-seekStep))
	case keymap.ActionSeekForward:
		m.player.SetPosition(m.player.Position() + seekStep)
	case keymap.ActionRateUp:
		m.setStatus(fmt.Sprintf("Playback rate %gx", m.session.StepPlaybackRate(1)))
	case keymap.ActionRateDown:
		m.setStatus(fmt.Sprintf("Playback rate %gx", m.session.StepPlaybackRate(-1)))
	case keymap.ActionResetLocal:
		m.session.ResetLocal(nil)
		m.list.Jump(0, m.session.Len(), m.listHeight())
		m.setStatus("Back to the start")
	case keymap.ActionResetRemote:
		m.confirm.Show("Reset lyrics?", "Saved lyrics of this track will be deleted.", nil, m.Width(), m.Height())
	case keymap.ActionSave:
		m.save()
	case keymap.ActionDownload:
		m.download()
	}
	return nil
}

func (m *Model) openPrompt(kind promptKind, title, text string, ctx any) {
	m.promptKind = kind
	m.prompt.Start(title, text, ctx, m.Width(), m.Height())
}

func (m *Model) handlePromptResult(res textinput.Result) tea.Cmd {
	kind := m.promptKind
	m.promptKind = promptNone
	m.prompt.Reset()
	if res.Canceled {
		return nil
	}

	switch kind {
	case promptEdit:
		if i, ok := res.Context.(int); ok {
			m.session.ModifyLine(i, res.Text)
		}
	case promptImport:
		if res.Text == "" {
			return nil
		}
		path := expandHome(res.Text)
		if err := m.session.ImportFile(path); err != nil {
			m.status = errmsg.FormatWith(errmsg.OpImportFile, path, err)
			m.statusErr = true
			return nil
		}
		m.list.Jump(0, m.session.Len(), m.listHeight())
		m.setStatus(fmt.Sprintf("Imported %d lines", m.session.Len()))
	}
	return nil
}

func (m *Model) paste() {
	text, err := m.opts.ReadClipboard()
	if err != nil {
		m.setError(errmsg.OpLyricsPaste, err)
		return
	}
	m.session.PasteImport(text)
	m.list.Jump(0, m.session.Len(), m.listHeight())
	m.setStatus(fmt.Sprintf("Pasted %d lines", m.session.Len()))
}

func (m *Model) save() {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := m.session.Save(ctx)
	var untimed *editor.UntimedError
	if errors.As(err, &untimed) {
		m.list.Jump(untimed.Indices[0], m.session.Len(), m.listHeight())
	}
	if err != nil {
		m.setError(errmsg.OpLyricsSave, err)
		return
	}
	m.setStatus("Saved")
}

func (m *Model) resetRemote() {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := m.session.ResetRemote(ctx); err != nil {
		m.setError(errmsg.OpLyricsReset, err)
		return
	}
	m.list.Jump(0, m.session.Len(), m.listHeight())
	m.setStatus("Saved lyrics cleared")
}

func (m *Model) download() {
	path, err := m.session.Download(m.opts.DownloadDir)
	if err != nil {
		m.setError(errmsg.OpDownloadFile, err)
		return
	}
	m.setStatus("Wrote " + path)
}

// currentLine returns the index of the line under the playback position.
func (m *Model) currentLine() int {
	l := lyrics.Lyrics{Lines: m.session.Lines()}
	return l.LineAt(m.position)
}
