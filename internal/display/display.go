// Package display renders engine output for the terminal: wrapping player-
// facing text to a fixed console width and composing the status line shown
// above the prompt, the way the teacher's engine.go wraps error messages
// with rosed immediately before writing them and internal/game/state.go
// builds its HELP text with rosed.InsertDefinitionsTable.
package display

import (
	"github.com/dekarrin/rosed"

	"greatunderground/internal/scoring"
	"greatunderground/internal/world"
)

// Width is the fixed console wrap width, matching the teacher's
// consoleOutputWidth in engine.go.
const Width = 80

// Wrap wraps msg to Width columns, the same treatment the teacher's
// RunUntilQuit gives every console message.
func Wrap(msg string) string {
	return rosed.Edit(msg).Wrap(Width).String()
}

// StatusLine renders the one-line room/score/moves banner shown above the
// prompt each turn, generalizing the teacher's bare room-name intro banner
// (engine.go's RunUntilQuit) into the ongoing per-turn status strip spec.md
// §6 describes.
func StatusLine(st *world.State, trophyCaseID string) string {
	room := st.Room()
	name := "Unknown"
	if room != nil {
		name = room.Name
	}
	total := scoring.Total(st, trophyCaseID)
	return rosed.Edit("").
		InsertDefinitionsTable(0, [][2]string{
			{name, "Score: " + itoa(total) + "  Moves: " + itoa(st.Moves)},
		}, Width).
		String()
}

// HelpTable renders a two-column command reference, grounded on the
// teacher's commandHelp usage in internal/game/state.go
// (rosed.Edit("").InsertDefinitionsTable(0, commandHelp, 80)).
func HelpTable(entries [][2]string) string {
	return rosed.Edit("").
		WithOptions(rosed.Options{ParagraphSeparator: "\n"}).
		InsertDefinitionsTable(0, entries, Width).
		Insert(0, "Some commands you can try:\n").
		String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
