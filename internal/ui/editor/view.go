package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/lrcsync/internal/keymap"
	"github.com/llehouerou/lrcsync/internal/lyrics"
	"github.com/llehouerou/lrcsync/internal/ui/popup"
	"github.com/llehouerou/lrcsync/internal/ui/styles"
)

const untimedStamp = "--:--.--"

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderLines(),
		m.renderFooter(),
	)

	switch {
	case m.promptKind != promptNone:
		return popup.Overlay(view, popup.Box(m.prompt.View(), m.Width(), m.Height()), m.Width(), m.Height())
	case m.confirm.Active():
		return popup.Overlay(view, popup.Box(m.confirm.View(), m.Width(), m.Height()), m.Width(), m.Height())
	case m.showHelp:
		content := styles.T().S().Title.Render("Keys") + "\n\n" + keymap.Help(keymap.Editor)
		return popup.Overlay(view, popup.Box(content, m.Width(), m.Height()), m.Width(), m.Height())
	}
	return view
}

func (m *Model) renderHeader() string {
	t := styles.T()
	title := styles.ApplyBoldGradient("lrcsync", t.Primary, t.Secondary)
	return title + "\n" + t.S().Muted.Render(m.session.Track().String())
}

func (m *Model) renderLines() string {
	t := styles.T()
	s := t.S()
	innerWidth := max(10, m.Width()-2)
	height := m.listHeight()

	lines := m.session.Lines()
	current := m.currentLine()
	marked := m.session.Cursor()

	rows := make([]string, 0, height)
	if len(lines) == 0 {
		rows = append(rows, s.Subtle.Render("No lyrics. Press v to paste or o to import a file."))
	}

	start, end := m.list.VisibleRange(len(lines), height)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderLine(i, lines[i], i == current, i == marked, innerWidth))
	}
	for len(rows) < height {
		rows = append(rows, "")
	}

	return styles.PanelStyle(m.promptKind == promptNone && !m.showHelp).
		Width(innerWidth).
		Render(strings.Join(rows, "\n"))
}

func (m *Model) renderLine(i int, line lyrics.Line, current, marked bool, width int) string {
	s := styles.T().S()

	marker := "  "
	if marked {
		marker = "▶ "
	}

	stamp := s.Untimed.Render(untimedStamp)
	if line.Timed {
		stamp = s.Timestamp.Render(lyrics.FormatTime(line.Start))
	}

	textWidth := max(1, width-len(marker)-len(untimedStamp)-1)
	text := runewidth.Truncate(line.Text, textWidth, "…")
	textStyle := s.Base
	if current {
		textStyle = s.Current
	}

	row := marker + stamp + " " + textStyle.Render(text)
	if i == m.list.Pos() {
		if pad := width - lipgloss.Width(row); pad > 0 {
			row += strings.Repeat(" ", pad)
		}
		row = s.Selected.Render(row)
	}
	return row
}

func (m *Model) renderFooter() string {
	s := styles.T().S()

	state := "playing"
	if m.player.Paused() {
		state = "paused"
	}
	parts := []string{fmt.Sprintf("%s / %s", formatDuration(m.position), formatDuration(m.player.Duration())),
		state,
		fmt.Sprintf("%gx", m.player.PlaybackRate()),
		fmt.Sprintf("%d/%d marked", m.session.Cursor()+1, m.session.Len()),
	}
	info := s.Muted.Render(strings.Join(parts, " · "))

	status := s.Subtle.Render("? help · space mark · s save · q quit")
	if m.status != "" {
		if m.statusErr {
			status = s.Error.Render(m.status)
		} else {
			status = s.Success.Render(m.status)
		}
	}
	return info + "\n" + status
}

// formatDuration formats a duration as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", d/time.Minute, (d%time.Minute)/time.Second)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
