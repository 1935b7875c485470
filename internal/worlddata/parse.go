package worlddata

import (
	"fmt"
	"strings"

	"greatunderground/internal/world"
)

// parseWorldData converts a raw topLevelWorldData into a validated WorldData,
// generalizing the teacher's parseWorldData (internal/tqw/parse.go): it
// builds the room/object maps, cross-validates every reference (exit
// destinations, object start locations, room globals), and reconstructs
// each room's Contains index from the objects that name it as their start
// location, since the TOML schema only records the object -> room direction.
func parseWorldData(tqw topLevelWorldData) (WorldData, error) {
	if len(tqw.Rooms) < 1 {
		return WorldData{}, fmt.Errorf("no room definitions were read")
	}

	wd := WorldData{
		Rooms:   make(map[string]*world.Room, len(tqw.Rooms)),
		Objects: make(map[string]*world.Object, len(tqw.Objects)),
	}

	for _, tr := range tqw.Rooms {
		room := tr.toGameRoom()
		if _, dup := wd.Rooms[room.ID]; dup {
			return WorldData{}, fmt.Errorf("room %q: defined more than once", room.ID)
		}
		wd.Rooms[room.ID] = room
	}

	start := strings.ToUpper(tqw.World.Start)
	if _, ok := wd.Rooms[start]; !ok {
		return WorldData{}, fmt.Errorf("world: start: no room with label %q exists", tqw.World.Start)
	}
	wd.Start = start

	for _, tr := range tqw.Rooms {
		room := wd.Rooms[strings.ToUpper(tr.Label)]
		for dir, exit := range room.Exits {
			if _, ok := wd.Rooms[exit.Dest]; !ok {
				return WorldData{}, fmt.Errorf("room %q: exit %s: no room with label %q exists", room.ID, dir, exit.Dest)
			}
		}
	}

	for _, to := range tqw.Objects {
		obj, err := to.toGameObject()
		if err != nil {
			return WorldData{}, err
		}
		if _, dup := wd.Objects[obj.ID]; dup {
			return WorldData{}, fmt.Errorf("object %q: defined more than once", obj.ID)
		}
		wd.Objects[obj.ID] = obj
	}

	for _, obj := range wd.Objects {
		switch obj.Location {
		case world.LocNowhere, world.LocPlayer, world.LocGlobal:
			// nowhere/player need no room indexing; a global object becomes
			// visible only to rooms that list it in their own globals, see
			// below.
		default:
			room, ok := wd.Rooms[obj.Location]
			if ok {
				room.Contains = append(room.Contains, obj.ID)
				continue
			}
			if _, ok := wd.Objects[obj.Location]; !ok {
				return WorldData{}, fmt.Errorf("object %q: start %q is neither a known room, object, PLAYER, nor GLOBAL", obj.ID, obj.Location)
			}
		}
	}

	for _, room := range wd.Rooms {
		for _, gid := range room.Globals {
			obj, ok := wd.Objects[gid]
			if !ok {
				return WorldData{}, fmt.Errorf("room %q: globals: no object with label %q exists", room.ID, gid)
			}
			if obj.Location != world.LocGlobal {
				return WorldData{}, fmt.Errorf("room %q: globals: object %q is not start = \"GLOBAL\"", room.ID, gid)
			}
		}
	}

	// objects nested inside another object need their parent's Contains
	// populated too, mirroring world.State.Move's containment bookkeeping.
	for _, obj := range wd.Objects {
		if parent, ok := wd.Objects[obj.Location]; ok {
			parent.Contains = append(parent.Contains, obj.ID)
		}
	}

	return wd, nil
}
