// Package keymap defines the editor key bindings.
package keymap

import "strings"

// Action represents a user-triggerable action.
type Action string

const (
	ActionNone Action = ""

	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Navigation is handled by the list cursor; listed for help only.
	ActionNavigate Action = "navigate"

	// Timing actions
	ActionMark   Action = "mark"
	ActionInsert Action = "insert"
	ActionRemove Action = "remove"
	ActionJump   Action = "jump"
	ActionEdit   Action = "edit"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionSeekBack    Action = "seek_back"
	ActionSeekForward Action = "seek_forward"
	ActionRateUp      Action = "rate_up"
	ActionRateDown    Action = "rate_down"

	// Lyrics actions
	ActionPaste       Action = "paste"
	ActionImport      Action = "import"
	ActionResetLocal  Action = "reset_local"
	ActionResetRemote Action = "reset_remote"
	ActionSave        Action = "save"
	ActionDownload    Action = "download"
)

// Binding maps keys to an action.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
}

// Editor contains the editor key bindings, in help order.
var Editor = []Binding{
	{[]string{" "}, ActionMark, "Mark next line at playback position"},
	{[]string{"enter"}, ActionJump, "Jump to selected line"},
	{[]string{"i"}, ActionInsert, "Insert line at playback position"},
	{[]string{"x", "delete"}, ActionRemove, "Remove selected line"},
	{[]string{"e"}, ActionEdit, "Edit selected line"},
	{[]string{"j", "k"}, ActionNavigate, "Move selection"},
	{[]string{"p"}, ActionPlayPause, "Pause/resume"},
	{[]string{"h", "left"}, ActionSeekBack, "Seek -5s"},
	{[]string{"l", "right"}, ActionSeekForward, "Seek +5s"},
	{[]string{"+", "="}, ActionRateUp, "Faster playback"},
	{[]string{"-"}, ActionRateDown, "Slower playback"},
	{[]string{"v"}, ActionPaste, "Paste lyrics from clipboard"},
	{[]string{"o"}, ActionImport, "Import lyrics file"},
	{[]string{"r"}, ActionResetLocal, "Back to the start"},
	{[]string{"R"}, ActionResetRemote, "Clear saved lyrics"},
	{[]string{"s"}, ActionSave, "Save"},
	{[]string{"w"}, ActionDownload, "Download .lrc file"},
	{[]string{"?"}, ActionHelp, "Show help"},
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit"},
}

// KeyName returns the display name of a key.
func KeyName(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

// Help renders bindings as aligned "keys  description" lines.
func Help(bindings []Binding) string {
	keys := make([]string, len(bindings))
	width := 0
	for i, b := range bindings {
		names := make([]string, len(b.Keys))
		for j, k := range b.Keys {
			names[j] = KeyName(k)
		}
		keys[i] = strings.Join(names, "/")
		width = max(width, len(keys[i]))
	}

	lines := make([]string, len(bindings))
	for i, b := range bindings {
		lines[i] = keys[i] + strings.Repeat(" ", width-len(keys[i])+2) + b.Description
	}
	return strings.Join(lines, "\n")
}
