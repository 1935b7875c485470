package verbs

import (
	"strings"

	"greatunderground/internal/adverr"
	"greatunderground/internal/parser"
	"greatunderground/internal/world"
)

// handleLook implements the LOOK family of spec.md §4.4: room name, then a
// long or brief description depending on Verbosity and the room's visited
// bit, followed by a listing of visible contents.
func handleLook(ctx *Context, cmd parser.Command) (Result, error) {
	room := ctx.State.Room()

	showLong := !room.Visited || ctx.Verbosity == Verbose
	if ctx.Verbosity == Superbrief {
		showLong = false
	}

	var b strings.Builder
	b.WriteString(room.Name)
	if showLong {
		b.WriteString("\n")
		b.WriteString(room.Description)
	}

	if names := visibleObjectNames(ctx.State, room); len(names) > 0 {
		b.WriteString("\n\nYou can see ")
		b.WriteString(joinList(names))
		b.WriteString(" here.")
	}

	room.Visited = true
	return Result{Message: b.String(), Changed: true}, nil
}

// handleExamine implements EXAMINE/READ: shows an object's long description
// (PropLongDescription if set, else Description).
func handleExamine(ctx *Context, cmd parser.Command) (Result, error) {
	if cmd.DirectObject == "" {
		return Result{}, adverr.New(adverr.KindParse, "Examine what?")
	}
	obj := ctx.State.Object(cmd.DirectObject)
	if obj == nil {
		return Result{}, adverr.New(adverr.KindReferent, "You don't see that here.")
	}
	desc := obj.Properties.StrOr(world.PropLongDescription, obj.Description)
	if desc == "" {
		desc = "You see nothing special about the " + obj.Name + "."
	}
	return Result{Message: desc}, nil
}

// listingEntry pairs an object with its authoring-order index, so display
// order can fall back to insertion order for objects without one.
type listingEntry struct {
	obj   *world.Object
	order int
	index int
}

// visibleObjectNames returns the display names of objects directly in room,
// in display order (spec.md §4.4's "object listing order"): objects with a
// nonzero DisplayOrder sort by it, everything else falls back to authoring
// (insertion) order after them. Invisible objects and the player itself are
// never listed.
func visibleObjectNames(st *world.State, room *world.Room) []string {
	var entries []listingEntry
	for i, id := range room.Contains {
		obj := st.Objects[id]
		if obj == nil || obj.Flags.Has(world.Invisible) {
			continue
		}
		entries = append(entries, listingEntry{obj: obj, order: obj.DisplayOrder, index: i})
	}

	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if lessDisplayOrder(entries[j], entries[i]) {
				entries[i], entries[j] = entries[j], entries[i]
			}
		}
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.obj.ArticleName()
	}
	return names
}

func lessDisplayOrder(a, b listingEntry) bool {
	switch {
	case a.order != 0 && b.order != 0:
		return a.order < b.order
	case a.order != 0:
		return true
	case b.order != 0:
		return false
	default:
		return a.index < b.index
	}
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		last := items[len(items)-1]
		return strings.Join(items[:len(items)-1], ", ") + ", and " + last
	}
}
