package verbs

import (
	"sort"
	"strings"

	"greatunderground/internal/parser"
	"greatunderground/internal/scoring"
	"greatunderground/internal/world"
)

// handleScore implements SCORE: the point total and its rank title
// (spec.md §4.9).
func handleScore(ctx *Context, cmd parser.Command) (Result, error) {
	total := scoring.Total(ctx.State, ctx.TrophyCaseID)
	rank := scoring.Rank(total)
	deaths := ctx.State.Globals.Int(world.GDeaths)

	msg := "Your score is " + itoa(total) + " (total of " + itoa(scoring.WinThreshold) + " points), in " + rank + " class."
	if deaths > 0 {
		msg += "\nThis gives you a rank of " + rank + ", with " + itoa(deaths) + " death(s)."
	}
	return Result{Message: msg}, nil
}

// handleQuit implements QUIT: marks the context so the engine loop ends
// after this turn, matching the teacher's exitState signal in
// internal/game/state.go.
func handleQuit(ctx *Context, cmd parser.Command) (Result, error) {
	ctx.Quit = true
	return Result{Message: "Thanks for playing."}, nil
}

func handleVerbose(ctx *Context, cmd parser.Command) (Result, error) {
	ctx.Verbosity = Verbose
	return Result{Message: "Maximum verbosity."}, nil
}

func handleBrief(ctx *Context, cmd parser.Command) (Result, error) {
	ctx.Verbosity = Brief
	return Result{Message: "Brief descriptions."}, nil
}

func handleSuperbrief(ctx *Context, cmd parser.Command) (Result, error) {
	ctx.Verbosity = Superbrief
	return Result{Message: "Superbrief descriptions."}, nil
}

// handleDiagnose implements DIAGNOSE: a status summary, grounded on the
// teacher's own STATUS-style meta-verb.
func handleDiagnose(ctx *Context, cmd parser.Command) (Result, error) {
	player := ctx.State.Player()
	strength := player.Properties.IntOr(world.PropStrength, 0)
	deaths := ctx.State.Globals.Int(world.GDeaths)

	var b strings.Builder
	b.WriteString("You are in reasonably good shape")
	if strength > 0 {
		b.WriteString(", with a strength of ")
		b.WriteString(itoa(strength))
	}
	b.WriteString(".")
	if deaths > 0 {
		b.WriteString(" You have died ")
		b.WriteString(itoa(deaths))
		b.WriteString(" time(s).")
	}
	return Result{Message: b.String()}, nil
}

// handleExits implements EXITS: lists the current room's known egress
// points and directions.
func handleExits(ctx *Context, cmd parser.Command) (Result, error) {
	room := ctx.State.Room()
	if len(room.Exits) == 0 {
		return Result{Message: "You see no obvious exits."}, nil
	}

	dirs := make([]string, 0, len(room.Exits))
	for dir := range room.Exits {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = strings.ToLower(d)
	}
	return Result{Message: "Obvious exits: " + joinList(names) + "."}, nil
}

// CommandHelp lists the verbs a player can reasonably expect to try, shown
// by HELP. Grounded on the teacher's commandHelp table in
// internal/game/state.go, which feeds the same [][2]string shape to
// rosed.InsertDefinitionsTable; the actual table rendering lives in
// internal/display so this package never needs to import rosed directly.
var CommandHelp = [][2]string{
	{"GO <direction>", "move in a direction (N/S/E/W/UP/DOWN/etc)"},
	{"LOOK", "describe your surroundings"},
	{"EXAMINE <object>", "look closely at something"},
	{"TAKE <object>", "pick something up"},
	{"DROP <object>", "put something down"},
	{"PUT <object> IN <container>", "place an object into a container"},
	{"OPEN/CLOSE <object>", "open or close a container or door"},
	{"INVENTORY", "list what you're carrying"},
	{"ATTACK <actor> WITH <weapon>", "fight something"},
	{"GIVE <object> TO <actor>", "hand something to someone"},
	{"SCORE", "show your current score"},
	{"QUIT", "end the game"},
}

// handleHelp implements HELP: a plain-text command reference, printed by
// the engine like any other result. internal/display's rosed-backed
// HelpTable can render CommandHelp as a table, but the engine does not use
// it for HELP; building the text here keeps this package free of a
// display-layer dependency.
func handleHelp(ctx *Context, cmd parser.Command) (Result, error) {
	var b strings.Builder
	b.WriteString("Some commands you can try:\n")
	for i, h := range CommandHelp {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(h[0])
		b.WriteString(" - ")
		b.WriteString(h[1])
	}
	return Result{Message: b.String()}, nil
}

// saveLabel recovers the label argument from a SAVE/RESTORE command: these
// name a save slot, not a resolvable world object, so the label is whatever
// text the player typed rather than a parser.Command.DirectObject.
func saveLabel(cmd parser.Command) string {
	if cmd.RawDirect != "" {
		return cmd.RawDirect
	}
	if len(cmd.Modifiers) > 0 {
		return strings.Join(cmd.Modifiers, " ")
	}
	return "default"
}

// handleSave implements SAVE <label>: records the player's intent for the
// engine loop to act on, since internal/save cannot be imported here without
// an import cycle (it depends on this package's Context and Verbosity).
func handleSave(ctx *Context, cmd parser.Command) (Result, error) {
	ctx.SaveRequest = saveLabel(cmd)
	return Result{Message: "Saving."}, nil
}

// handleRestore implements RESTORE <label>, the mirror of handleSave.
func handleRestore(ctx *Context, cmd parser.Command) (Result, error) {
	ctx.RestoreRequest = saveLabel(cmd)
	return Result{Message: "Restoring."}, nil
}

// handleDebug is a developer escape hatch reserved for scenario scripting
// (spec.md's --testing mode); it currently just reports engine state rather
// than accepting sub-commands.
func handleDebug(ctx *Context, cmd parser.Command) (Result, error) {
	return Result{Message: "Current room: " + ctx.State.CurrentRoom}, nil
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
