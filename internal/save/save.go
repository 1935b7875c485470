// Package save implements save-slot persistence: a rezi-encoded snapshot of
// mutable world state, stored in a sqlite table keyed by UUID and a
// user-chosen label, generalizing the teacher's session-persistence layer
// (server/dao/sqlite/sessions.go, sqlite.go's convertToDB_GameStatePtr/
// convertFromDB_GameStatePtr) from a multiplayer server's session table to
// a single-player CLI's local save-slot store.
package save

import (
	"database/sql"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"greatunderground/internal/actor"
	"greatunderground/internal/verbs"
	"greatunderground/internal/world"
)

// ObjectSnapshot captures the mutable portion of one world.Object: the
// identity fields (ID, location) live alongside the authored data in world
// data, but Location, Flags, and Properties all change during play and must
// round-trip through a save.
type ObjectSnapshot struct {
	ID       string
	Location string
	Flags    []string
	Contains []string
	IntProps map[int]int
	StrProps map[int]string
}

// allPropKeys enumerates world.PropKey's closed set, since Properties
// offers lookup-by-key but no iteration -- the same trade-off the teacher
// accepts in its own typed accessor style (internal/tqw's per-field
// conversion functions) rather than walking an open map.
var allPropKeys = []world.PropKey{
	world.PropCapacity,
	world.PropSize,
	world.PropStrength,
	world.PropGlowLevel,
	world.PropLongDescription,
	world.PropActionHandler,
	world.PropValue,
	world.PropTrophyValue,
	world.PropWeaponPower,
}

// ActorSnapshot captures one registered actor's runtime state, since
// actor.Behavior implementations (Thief/Troll/Cyclops) carry their own
// state machine position distinct from their backing Object's flags.
type ActorSnapshot struct {
	ID    string
	State int
}

// Snapshot is the complete serializable form of a play session: everything
// needed to reconstruct a world.State and verbs.Context without re-reading
// world data, the save-game analogue of the teacher's *game.State blob.
type Snapshot struct {
	CurrentRoom string
	Moves       int
	BaseScore   int

	GlobalInts  map[string]int
	GlobalBools map[string]bool
	GlobalSets  map[string][]string

	Objects []ObjectSnapshot
	Actors  []ActorSnapshot

	Verbosity   int
	RespawnRoom string
}

// Capture builds a Snapshot from the live world state, actor manager, and
// verb context, ready for rezi encoding.
func Capture(st *world.State, actors *actor.Manager, ctx *verbs.Context) Snapshot {
	snap := Snapshot{
		CurrentRoom: st.CurrentRoom,
		Moves:       st.Moves,
		BaseScore:   st.BaseScore,
		GlobalInts:  copyIntMap(st.Globals.Ints),
		GlobalBools: copyBoolMap(st.Globals.Bools),
		GlobalSets:  make(map[string][]string, len(st.Globals.Sets)),
		Verbosity:   int(ctx.Verbosity),
		RespawnRoom: ctx.RespawnRoom,
	}

	for name, set := range st.Globals.Sets {
		snap.GlobalSets[name] = set.Elements()
	}

	for id, obj := range st.Objects {
		os := ObjectSnapshot{
			ID:       id,
			Location: obj.Location,
			IntProps: map[int]int{},
			StrProps: map[int]string{},
			Contains: append([]string(nil), obj.Contains...),
		}
		for f := range obj.Flags {
			os.Flags = append(os.Flags, f.String())
		}
		for _, key := range allPropKeys {
			if v, ok := obj.Properties.Int(key); ok {
				os.IntProps[int(key)] = v
			}
			if v, ok := obj.Properties.Str(key); ok {
				os.StrProps[int(key)] = v
			}
		}
		snap.Objects = append(snap.Objects, os)
	}

	for _, a := range actors.All() {
		snap.Actors = append(snap.Actors, ActorSnapshot{ID: a.ID(), State: int(a.State())})
	}

	return snap
}

// Restore applies a Snapshot onto an already-loaded world.State (built
// fresh from the same world data the save was taken against), overwriting
// the mutable fields Capture recorded. Actor runtime states are restored via
// actor.SetState so transition side effects (the FIGHTING flag, etc.) stay
// consistent.
func Restore(snap Snapshot, st *world.State, actors *actor.Manager, ctx *verbs.Context) error {
	if _, ok := st.Rooms[snap.CurrentRoom]; !ok {
		return fmt.Errorf("save refers to unknown room %q", snap.CurrentRoom)
	}
	st.CurrentRoom = snap.CurrentRoom
	st.Moves = snap.Moves
	st.BaseScore = snap.BaseScore

	for k, v := range snap.GlobalInts {
		st.Globals.SetInt(k, v)
	}
	for k, v := range snap.GlobalBools {
		st.Globals.SetBool(k, v)
	}
	for k, vals := range snap.GlobalSets {
		set := st.Globals.Set(k)
		for _, v := range vals {
			set.Add(v)
		}
	}

	for _, os := range snap.Objects {
		obj, ok := st.Objects[os.ID]
		if !ok {
			continue
		}
		obj.Location = os.Location
		obj.Contains = append([]string(nil), os.Contains...)
		obj.Flags = world.FlagSet{}
		for _, name := range os.Flags {
			if f, ok := world.FlagByName(name); ok {
				obj.Flags.Set(f)
			}
		}
		for k, v := range os.IntProps {
			obj.Properties.SetInt(world.PropKey(k), v)
		}
		for k, v := range os.StrProps {
			obj.Properties.SetStr(world.PropKey(k), v)
		}
	}

	for _, as := range snap.Actors {
		if b := actors.ByID(as.ID); b != nil {
			actor.SetState(st, b, actor.State(as.State))
		}
	}

	ctx.Verbosity = verbs.Verbosity(snap.Verbosity)
	ctx.RespawnRoom = snap.RespawnRoom

	return nil
}

func copyIntMap(m map[string]int) map[string]int {
	cp := make(map[string]int, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

func copyBoolMap(m map[string]bool) map[string]bool {
	cp := make(map[string]bool, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// Store is a sqlite-backed table of save slots, generalizing the teacher's
// SessionsDB (server/dao/sqlite/sessions.go) from a server session table
// keyed by user/game IDs to a local save-slot table keyed by a
// user-chosen label.
type Store struct {
	db *sql.DB
}

// Open creates or opens the sqlite file at path and ensures the saves table
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open save store: %w", err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS saves (
		id TEXT NOT NULL PRIMARY KEY,
		label TEXT NOT NULL UNIQUE,
		state TEXT NOT NULL,
		created INTEGER NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("create saves table: %w", err)
	}
	return nil
}

// Close releases the underlying sqlite connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes snap under label, replacing any existing save with that
// label.
func (s *Store) Save(label string, snap Snapshot) error {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("generate save id: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(rezi.EncBinary(snap))

	_, err = s.db.Exec(
		`INSERT INTO saves (id, label, state, created) VALUES (?, ?, ?, ?)
		 ON CONFLICT(label) DO UPDATE SET state=excluded.state, created=excluded.created`,
		id.String(), label, encoded, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("write save %q: %w", label, err)
	}
	return nil
}

// Load reads the save stored under label.
func (s *Store) Load(label string) (Snapshot, error) {
	var encoded string
	err := s.db.QueryRow(`SELECT state FROM saves WHERE label = ?`, label).Scan(&encoded)
	if err != nil {
		return Snapshot{}, fmt.Errorf("no save named %q: %w", label, err)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Snapshot{}, fmt.Errorf("decode save %q: %w", label, err)
	}

	var snap Snapshot
	n, err := rezi.DecBinary(raw, &snap)
	if err != nil {
		return Snapshot{}, fmt.Errorf("rezi decode save %q: %w", label, err)
	}
	if n != len(raw) {
		return Snapshot{}, fmt.Errorf("save %q: decoded %d/%d bytes", label, n, len(raw))
	}
	return snap, nil
}

// List returns the labels of every save in the store, most recent first.
func (s *Store) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT label FROM saves ORDER BY created DESC`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("scan save label: %w", err)
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}
