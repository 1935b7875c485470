// Package greatunderground contains a CLI-driven engine for reading player
// commands and advancing the game until the player quits, generalizing the
// teacher's own top-level tunaq package (engine.go) from a single fixed
// Advance call to the full command/event/actor pipeline spec.md §4.4
// describes.
package greatunderground

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"greatunderground/internal/actor"
	"greatunderground/internal/adverr"
	"greatunderground/internal/atmosphere"
	"greatunderground/internal/display"
	"greatunderground/internal/events"
	"greatunderground/internal/input"
	"greatunderground/internal/parser"
	"greatunderground/internal/save"
	"greatunderground/internal/scoring"
	"greatunderground/internal/verbs"
	"greatunderground/internal/world"
	"greatunderground/internal/worlddata"
)

// TrophyCaseID is the object id of the trophy case treasure score is
// computed against, per spec.md §4.9. Fixed because the engine, not world
// data, owns the scoring policy.
const TrophyCaseID = "TROPHY-CASE"

// knownActors configures the fixed cast of named actors spec.md §4.5
// describes. Each entry is only registered if its ObjectID is actually
// present in the loaded world, so the same engine also runs against a
// smaller test fixture missing some or all of them.
var knownActors = struct {
	ThiefID, TrollID, CyclopsID string
	AxeID, LunchID, WaterID     string
}{
	ThiefID:   "THIEF",
	TrollID:   "TROLL",
	AxeID:     "AXE",
	CyclopsID: "CYCLOPS",
	LunchID:   "LUNCH",
	WaterID:   "WATER",
}

// Engine contains the things needed to run a game from an interactive shell
// attached to an input stream and an output stream.
type Engine struct {
	state    *world.State
	ctx      *verbs.Context
	events   *events.System
	actors   *actor.Manager
	feedback *parser.Feedback
	atmo     *atmosphere.Generator
	saves    *save.Store

	in          input.Reader
	out         *bufio.Writer
	forceDirect bool
	running     bool
}

const consoleOutputWidth = display.Width

// New creates a new engine ready to operate on the given input and output
// streams, loading world data from worldFilePath and seeding the world's
// RNG with seed. If savePath is non-empty, a save.Store is opened there so
// the SAVE/RESTORE verbs work; otherwise they fail with a clear message.
func New(inputStream io.Reader, outputStream io.Writer, worldFilePath string, forceDirectInput bool, seed int64, savePath string, testing bool) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	wd, err := worlddata.LoadResourceBundle(worldFilePath)
	if err != nil {
		return nil, err
	}
	st, err := wd.BuildState(seed)
	if err != nil {
		return nil, fmt.Errorf("building world state: %w", err)
	}
	st.Testing = testing

	eng := &Engine{
		state:       st,
		events:      events.New(),
		actors:      actor.NewManager(),
		feedback:    parser.NewFeedback(),
		atmo:        atmosphere.New(seed, nil),
		out:         bufio.NewWriter(outputStream),
		running:     false,
		forceDirect: forceDirectInput,
	}
	eng.atmo.SetSuppressed(testing)

	registerKnownActors(eng.actors, st)
	wireKnownExits(st)
	events.SyncLampInterrupt(eng.events, st)

	eng.ctx = &verbs.Context{
		State:        st,
		Events:       eng.events,
		Actors:       eng.actors,
		Feedback:     eng.feedback,
		Atmosphere:   eng.atmo,
		TrophyCaseID: TrophyCaseID,
		RespawnRoom:  wd.Start,
	}

	if savePath != "" {
		store, err := save.Open(savePath)
		if err != nil {
			return nil, fmt.Errorf("opening save store: %w", err)
		}
		eng.saves = store
	}

	useReadline := !forceDirectInput && inputStream == os.Stdin && outputStream == os.Stdout
	if useReadline {
		eng.in, err = input.NewInteractiveReader()
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

// registerKnownActors registers whichever of the fixed Zork cast are
// present in st, skipping any that aren't, so the engine also runs against
// a smaller test fixture.
func registerKnownActors(m *actor.Manager, st *world.State) {
	if st.Objects[knownActors.ThiefID] != nil {
		var wander []string
		for id := range st.Rooms {
			wander = append(wander, id)
		}
		m.Register(actor.NewThief(knownActors.ThiefID, st.RoomOf(knownActors.ThiefID), wander, 0.15))
	}
	if st.Objects[knownActors.TrollID] != nil {
		m.Register(actor.NewTroll(knownActors.TrollID, st.RoomOf(knownActors.TrollID), knownActors.AxeID))
	}
	if st.Objects[knownActors.CyclopsID] != nil {
		m.Register(actor.NewCyclops(
			knownActors.CyclopsID, st.RoomOf(knownActors.CyclopsID),
			knownActors.LunchID, knownActors.WaterID,
			8, "EAST", "LIVING-ROOM"))
	}
}

// wireKnownExits attaches the stateful exit conditions world data can't
// express declaratively: the Living Room/Cellar trap door, passable only
// while TRAP-DOOR carries the OPEN flag, and the Behind House/Kitchen
// window, passable only while WINDOW does. Mirrors registerKnownActors in
// being a no-op against a fixture missing the relevant object.
func wireKnownExits(st *world.State) {
	if trapdoor := st.Objects["TRAP-DOOR"]; trapdoor != nil {
		isOpen := func(*world.State) bool { return trapdoor.Flags.Has(world.Open) }

		if living := st.Rooms["LIVING-ROOM"]; living != nil {
			if e := living.Exits["DOWN"]; e != nil {
				e.Condition = isOpen
				if e.BlockedMessage == "" {
					e.BlockedMessage = "The trap door is closed."
				}
			}
		}
		if cellar := st.Rooms["CELLAR"]; cellar != nil {
			if e := cellar.Exits["UP"]; e != nil {
				e.Condition = isOpen
				if e.BlockedMessage == "" {
					e.BlockedMessage = "You can't go that way."
				}
			}
		}
	}

	if window := st.Objects["WINDOW"]; window != nil {
		isOpen := func(*world.State) bool { return window.Flags.Has(world.Open) }

		if behind := st.Rooms["BEHIND-HOUSE"]; behind != nil {
			if e := behind.Exits["IN"]; e != nil {
				e.Condition = isOpen
				if e.BlockedMessage == "" {
					e.BlockedMessage = "The window is closed."
				}
			}
		}
		if kitchen := st.Rooms["KITCHEN"]; kitchen != nil {
			if e := kitchen.Exits["OUT"]; e != nil {
				e.Condition = isOpen
				if e.BlockedMessage == "" {
					e.BlockedMessage = "The window is closed."
				}
			}
		}
	}
}

// Close releases all resources associated with the Engine.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running game engine")
	}
	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}
	if eng.saves != nil {
		return eng.saves.Close()
	}
	return nil
}

// RunUntilQuit begins reading commands from the streams and applying them
// to the game until QUIT is received or input runs out. startCommands, if
// non-empty, are run in order before the interactive loop begins (the
// teacher's --command flag).
func (eng *Engine) RunUntilQuit(startCommands []string) error {
	intro := "Welcome to the Great Underground Empire\n"
	if eng.forceDirect {
		intro += "(direct input mode)\n"
	}
	intro += "=========================================\n\n"
	intro += "You are in " + eng.roomName() + "\n"
	if err := eng.writeLine(intro); err != nil {
		return err
	}

	eng.running = true
	defer func() { eng.running = false }()

	for _, c := range startCommands {
		if c = strings.TrimSpace(c); c == "" {
			continue
		}
		if !eng.runOneLine(c) {
			break
		}
	}

	for eng.running {
		line, err := eng.in.ReadCommand()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("get user command: %w", err)
		}
		if !eng.runOneLine(line) {
			break
		}
	}

	return eng.writeLine("Goodbye\n")
}

// runOneLine processes a single command line, reports it, and returns
// whether the engine should keep running.
func (eng *Engine) runOneLine(line string) bool {
	resolved, err := parser.ResolveFeedbackLine(line, eng.feedback)
	if err != nil {
		eng.writeLine(display.Wrap(adverr.GameMessage(err)) + "\n")
		return true
	}

	vis := parser.VisibleFrom(eng.ctx.State, eng.feedback)

	cmd, err := parser.Parse(resolved, vis)
	if err != nil {
		offset := parser.UnknownWordOffset(resolved, vis)
		eng.feedback.RecordOutcome(resolved, err, offset)
		eng.writeLine(display.Wrap(adverr.GameMessage(err)) + "\n")
		return true
	}
	eng.feedback.UpdateReferent(cmd)

	res, err := verbs.Execute(eng.ctx, cmd)
	eng.feedback.RecordOutcome(resolved, err, -1)

	if err != nil {
		eng.writeLine(display.Wrap(adverr.GameMessage(err)) + "\n")
		if adverr.Is(err, adverr.KindGameEnd) {
			return eng.handleGameEnd()
		}
		return true
	}

	eng.handleSaveRestoreRequests()
	eng.runWorldTurn(res)

	return !eng.ctx.Quit
}

// runWorldTurn advances the clock after a successful verb, runs daemons/
// interrupts and actor turns, checks the cyclops' lethal wrath countdown,
// checks for a win, and reports res.Message plus a status line.
func (eng *Engine) runWorldTurn(res verbs.Result) {
	st := eng.ctx.State

	if !res.ClockWait {
		eng.events.ProcessTurn(st)
		eng.actors.RunTurn(st)
		eng.checkCyclopsWrath()
	}

	msg := res.Message
	if ambient := eng.atmo.Draw(""); ambient != "" {
		msg += "\n" + ambient
	}
	eng.writeLine(display.Wrap(msg) + "\n")

	total := scoring.Total(st, TrophyCaseID)
	if scoring.HasWon(total) && !st.Globals.Bool(world.GWonFlag) {
		st.Globals.SetBool(world.GWonFlag, true)
		eng.writeLine("\n*** You have won! ***\n" + display.StatusLine(st, TrophyCaseID) + "\n")
		return
	}

	if res.Changed {
		eng.writeLine(display.StatusLine(st, TrophyCaseID) + "\n")
	}
}

// checkCyclopsWrath applies the cyclops' lethal-wrath death, per the
// design noted on Cyclops.ExecuteTurn: a Normal-state cyclops whose wrath
// has bottomed out kills the player in the same turn it reaches zero, after
// which its wrath resets so it doesn't kill again every subsequent turn
// without a fresh grievance.
func (eng *Engine) checkCyclopsWrath() {
	b := eng.actors.ByID(knownActors.CyclopsID)
	if b == nil {
		return
	}
	c, ok := b.(*actor.Cyclops)
	if !ok || c.State() != actor.Normal || c.Wrath > 0 {
		return
	}
	if eng.ctx.State.RoomOf(c.ID()) != eng.ctx.State.CurrentRoom {
		return
	}

	scoring.ApplyDeathPenalty(eng.ctx.State)
	eng.ctx.State.CurrentRoom = eng.ctx.RespawnRoom
	c.Wrath = 8
	eng.writeLine(display.Wrap("The cyclops, enraged beyond endurance, crushes you where you stand.\n\nOh, you're dead.") + "\n")
}

// handleGameEnd prints the status line after a death and reports that play
// continues: the player has already been respawned by killPlayer, and no
// number of deaths ends the session.
func (eng *Engine) handleGameEnd() bool {
	eng.writeLine(display.StatusLine(eng.ctx.State, TrophyCaseID) + "\n")
	return true
}

// handleSaveRestoreRequests acts on a SAVE/RESTORE verb's recorded intent
// once a turn completes, the one place allowed to import internal/save.
func (eng *Engine) handleSaveRestoreRequests() {
	if label := eng.ctx.SaveRequest; label != "" {
		eng.ctx.SaveRequest = ""
		if eng.saves == nil {
			eng.writeLine("Saving is not available this session.\n")
		} else {
			snap := save.Capture(eng.ctx.State, eng.actors, eng.ctx)
			if err := eng.saves.Save(label, snap); err != nil {
				eng.writeLine("Could not save: " + err.Error() + "\n")
			} else {
				eng.writeLine("Saved as \"" + label + "\".\n")
			}
		}
	}

	if label := eng.ctx.RestoreRequest; label != "" {
		eng.ctx.RestoreRequest = ""
		if eng.saves == nil {
			eng.writeLine("Restoring is not available this session.\n")
		} else {
			snap, err := eng.saves.Load(label)
			if err != nil {
				eng.writeLine("Could not restore: " + err.Error() + "\n")
			} else if err := save.Restore(snap, eng.ctx.State, eng.actors, eng.ctx); err != nil {
				eng.writeLine("Could not restore: " + err.Error() + "\n")
			} else {
				eng.writeLine("Restored \"" + label + "\".\n")
			}
		}
	}
}

func (eng *Engine) roomName() string {
	if room := eng.ctx.State.Room(); room != nil {
		return room.Name
	}
	return "an unknown place"
}

func (eng *Engine) writeLine(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return eng.out.Flush()
}
