// Package verbs is the dispatch table that turns a parsed parser.Command
// into world-state mutations and player-facing text, generalizing the
// teacher's switch-based State.Advance (internal/game/state.go) from a
// fixed per-verb case list into a registered handler table, per spec.md
// §4.4.
package verbs

import (
	"greatunderground/internal/actor"
	"greatunderground/internal/adverr"
	"greatunderground/internal/atmosphere"
	"greatunderground/internal/events"
	"greatunderground/internal/light"
	"greatunderground/internal/parser"
	"greatunderground/internal/world"
)

// Verbosity is the player's chosen description mode, per spec.md §6.
type Verbosity int

const (
	Brief Verbosity = iota
	Verbose
	Superbrief
)

// Result is a handler's report back to the engine loop: the text to show
// the player, whether world state changed (worth re-rendering a status
// line for), and whether this turn should skip the clock entirely.
type Result struct {
	Message   string
	Changed   bool
	ClockWait bool
}

// Handler executes one verb against ctx and the parsed command.
type Handler func(ctx *Context, cmd parser.Command) (Result, error)

// Context is the shared state every handler closes over: the world, the
// event system, the actor manager, OOPS/AGAIN feedback, and the ambient
// atmosphere generator, plus the small bits of session configuration
// (verbosity, the trophy case's object id, the room a dead player respawns
// into) that verbs need but world.State has no business owning.
type Context struct {
	State      *world.State
	Events     *events.System
	Actors     *actor.Manager
	Feedback   *parser.Feedback
	Atmosphere *atmosphere.Generator

	Verbosity    Verbosity
	TrophyCaseID string
	RespawnRoom  string

	// darkMoveStreak counts consecutive GO commands attempted in a dark
	// room without an intervening lit room, per spec.md §4.4's dark-room
	// movement policy.
	darkMoveStreak int

	// Quit is set by the QUIT handler; the engine loop checks it after
	// every turn.
	Quit bool

	// SaveRequest and RestoreRequest are set by the SAVE/RESTORE handlers
	// and cleared by the engine loop after it acts on them. verbs cannot
	// talk to internal/save directly (save imports verbs for its Context
	// and Verbosity types), so persistence is handled the same way the
	// teacher's engine.go special-cases QUIT: the handler just records
	// intent, and the engine loop performs the actual I/O.
	SaveRequest    string
	RestoreRequest string
}

// Table maps a canonical verb to its handler. Verbs not present here fall
// through Execute's default case.
var Table = map[string]Handler{
	"GO":         handleGo,
	"LOOK":       handleLook,
	"EXAMINE":    handleExamine,
	"READ":       handleExamine,
	"TAKE":       handleTake,
	"DROP":       handleDrop,
	"PUT":        handlePut,
	"OPEN":       handleOpen,
	"CLOSE":      handleClose,
	"MOVE":       handleMove,
	"INVENTORY":  handleInventory,
	"TURN":       handleTurn,
	"PUSH":       handlePush,
	"PULL":       handlePull,
	"WAVE":       handleWave,
	"SAY":        handleSay,
	"TIE":        handleTie,
	"PRAY":       handlePray,
	"WAIT":       handleWait,
	"ATTACK":     handleAttack,
	"KILL":       handleAttack,
	"GIVE":       handleGive,
	"SCORE":      handleScore,
	"QUIT":       handleQuit,
	"VERBOSE":    handleVerbose,
	"BRIEF":      handleBrief,
	"SUPERBRIEF": handleSuperbrief,
	"DIAGNOSE":   handleDiagnose,
	"EXITS":      handleExits,
	"HELP":       handleHelp,
	"DEBUG":      handleDebug,
	"SAVE":       handleSave,
	"RESTORE":    handleRestore,
}

// darkSafeExtra are verbs Execute lets through in the dark even though they
// are not in light.SafeInDark, because their own handlers implement the
// dark-room policy themselves instead of being blocked outright.
var darkSafeExtra = map[string]bool{
	"GO": true,
}

// Execute looks up cmd.Verb in Table and runs it, first applying the
// darkness gate spec.md §4.7 describes: in an unlit room, only a small
// whitelist of verbs may run; everything else yields the canonical
// darkness message.
func Execute(ctx *Context, cmd parser.Command) (Result, error) {
	if !light.CurrentRoomLit(ctx.State) && !light.SafeInDark(cmd.Verb) && !darkSafeExtra[cmd.Verb] {
		return Result{}, adverr.New(adverr.KindLight, "It is pitch black. You are likely to be eaten by a grue.")
	}

	handler, ok := Table[cmd.Verb]
	if !ok {
		return Result{}, adverr.Newf(adverr.KindParse, "I don't know how to %s.", verbLower(cmd.Verb))
	}
	return handler(ctx, cmd)
}

func verbLower(verb string) string {
	if verb == "" {
		return "do that"
	}
	out := make([]byte, len(verb))
	for i := 0; i < len(verb); i++ {
		c := verb[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
