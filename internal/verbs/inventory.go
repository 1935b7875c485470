package verbs

import (
	"greatunderground/internal/adverr"
	"greatunderground/internal/parser"
	"greatunderground/internal/scoring"
	"greatunderground/internal/world"
)

// inventorySizeUsed sums PropSize over everything the player currently
// carries.
func inventorySizeUsed(st *world.State) int {
	total := 0
	for _, id := range st.Inventory() {
		if obj := st.Objects[id]; obj != nil {
			total += obj.Properties.IntOr(world.PropSize, 1)
		}
	}
	return total
}

// handleTake implements TAKE's gates from spec.md §4.4: not already held,
// TAKEABLE or TRY-TAKE, and capacity. A TRY-TAKE object passes the gate
// like a TAKEABLE one; no custom take handler is consulted.
func handleTake(ctx *Context, cmd parser.Command) (Result, error) {
	if cmd.DirectObject == "" {
		return Result{}, adverr.New(adverr.KindParse, "Take what?")
	}
	obj := ctx.State.Object(cmd.DirectObject)
	if obj == nil {
		return Result{}, adverr.New(adverr.KindReferent, "You don't see that here.")
	}
	if obj.Location == world.LocPlayer {
		return Result{}, adverr.New(adverr.KindLogic, "You already have that.")
	}
	if !obj.Flags.Has(world.Takeable) && !obj.Flags.Has(world.TryTake) {
		return Result{}, adverr.Newf(adverr.KindAction, "You can't take the %s.", obj.Name)
	}

	capacity := ctx.State.Player().Properties.IntOr(world.PropCapacity, 100)
	size := obj.Properties.IntOr(world.PropSize, 1)
	if inventorySizeUsed(ctx.State)+size > capacity {
		return Result{}, adverr.New(adverr.KindAction, "Your load is too heavy for that.")
	}

	if err := ctx.State.Move(obj.ID, world.LocPlayer); err != nil {
		return Result{}, adverr.Wrap(adverr.KindLogic, err, "You can't take that.")
	}
	scoring.AwardFirstTake(ctx.State, obj.ID)
	return Result{Message: "Taken.", Changed: true}, nil
}

// handleDrop implements DROP: the item must be in inventory, and is placed
// in the current room.
func handleDrop(ctx *Context, cmd parser.Command) (Result, error) {
	if cmd.DirectObject == "" {
		return Result{}, adverr.New(adverr.KindParse, "Drop what?")
	}
	obj := ctx.State.Object(cmd.DirectObject)
	if obj == nil || obj.Location != world.LocPlayer {
		return Result{}, adverr.New(adverr.KindReferent, "You aren't carrying that.")
	}
	if err := ctx.State.Move(obj.ID, ctx.State.CurrentRoom); err != nil {
		return Result{}, adverr.Wrap(adverr.KindLogic, err, "You can't drop that.")
	}
	return Result{Message: "Dropped.", Changed: true}, nil
}

// handlePut implements "PUT X IN/ON Y": the item moves into an open
// container held in inventory or in the room.
func handlePut(ctx *Context, cmd parser.Command) (Result, error) {
	if cmd.DirectObject == "" {
		return Result{}, adverr.New(adverr.KindParse, "Put what?")
	}
	if cmd.IndirectObject == "" {
		return Result{}, adverr.New(adverr.KindParse, "Put it in/on what?")
	}
	item := ctx.State.Object(cmd.DirectObject)
	container := ctx.State.Object(cmd.IndirectObject)
	if item == nil || container == nil {
		return Result{}, adverr.New(adverr.KindReferent, "You don't see that here.")
	}
	if !container.Flags.Has(world.Container) {
		return Result{}, adverr.Newf(adverr.KindLogic, "You can't put things in the %s.", container.Name)
	}
	if container.Flags.Has(world.Openable) && !container.Flags.Has(world.Open) {
		return Result{}, adverr.Newf(adverr.KindLogic, "The %s is closed.", container.Name)
	}

	capacity := container.Properties.IntOr(world.PropCapacity, 0)
	if capacity > 0 {
		used := 0
		for _, id := range container.Contains {
			if o := ctx.State.Objects[id]; o != nil {
				used += o.Properties.IntOr(world.PropSize, 1)
			}
		}
		if used+item.Properties.IntOr(world.PropSize, 1) > capacity {
			return Result{}, adverr.Newf(adverr.KindAction, "The %s won't hold any more.", container.Name)
		}
	}

	if err := ctx.State.Move(item.ID, container.ID); err != nil {
		return Result{}, adverr.Wrap(adverr.KindLogic, err, "You can't do that.")
	}
	return Result{Message: "Done.", Changed: true}, nil
}

// handleOpen implements OPEN: requires OPENABLE, toggles OPEN on.
func handleOpen(ctx *Context, cmd parser.Command) (Result, error) {
	obj, err := requireOpenable(ctx, cmd.DirectObject)
	if err != nil {
		return Result{}, err
	}
	if obj.Flags.Has(world.Open) {
		return Result{}, adverr.Newf(adverr.KindLogic, "The %s is already open.", obj.Name)
	}
	obj.Flags.Set(world.Open)
	if res, err, ok := dispatchScriptedEffect(ctx, obj, "open"); ok {
		return res, err
	}
	return Result{Message: "Opened.", Changed: true}, nil
}

// handleClose implements CLOSE: requires OPENABLE, toggles OPEN off.
func handleClose(ctx *Context, cmd parser.Command) (Result, error) {
	obj, err := requireOpenable(ctx, cmd.DirectObject)
	if err != nil {
		return Result{}, err
	}
	if !obj.Flags.Has(world.Open) {
		return Result{}, adverr.Newf(adverr.KindLogic, "The %s is already closed.", obj.Name)
	}
	obj.Flags.Clear(world.Open)
	return Result{Message: "Closed.", Changed: true}, nil
}

func requireOpenable(ctx *Context, id string) (*world.Object, error) {
	if id == "" {
		return nil, adverr.New(adverr.KindParse, "Open/close what?")
	}
	obj := ctx.State.Object(id)
	if obj == nil {
		return nil, adverr.New(adverr.KindReferent, "You don't see that here.")
	}
	if !obj.Flags.Has(world.Openable) {
		return nil, adverr.Newf(adverr.KindLogic, "You can't open the %s.", obj.Name)
	}
	return obj, nil
}

// handleInventory implements INVENTORY: lists everything the player holds.
func handleInventory(ctx *Context, cmd parser.Command) (Result, error) {
	ids := ctx.State.Inventory()
	if len(ids) == 0 {
		return Result{Message: "You are empty-handed."}, nil
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if obj := ctx.State.Objects[id]; obj != nil {
			names = append(names, obj.ArticleName())
		}
	}
	return Result{Message: "You are carrying:\n" + joinList(names) + "."}, nil
}
