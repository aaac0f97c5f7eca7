// Package world provides the object arena, per-state cleanup scopes, overworld
// areas and the battle board.
package world

import (
	"errors"

	"github.com/jakecoffman/cp"

	"github.com/samdwyer/sotora/internal/appstate"
)

// ErrNoParent is returned when spawning a child of a missing object.
var ErrNoParent = errors.New("world: parent object not found")

// ID identifies an object. Zero is never a valid ID.
type ID uint64

// Kind tells the renderer and systems what an object is.
type Kind int

const (
	KindGround        Kind = iota // overworld ground plane
	KindPlayer                    // the controllable character
	KindCamera                    // follows its parent player
	KindNPC                       // talks when interacted with
	KindNameTag                   // label floating above its parent NPC
	KindBattleStarter             // starts a battle when interacted with
	KindBoardTile                 // one cell of the battle board
	KindText                      // dialog text line
	KindButton                    // one menu item
	KindPortrait                  // dialog speaker portrait
	KindHUD                       // area label, lives in the global scope
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindPlayer:
		return "player"
	case KindCamera:
		return "camera"
	case KindNPC:
		return "npc"
	case KindNameTag:
		return "name_tag"
	case KindBattleStarter:
		return "battle_starter"
	case KindBoardTile:
		return "board_tile"
	case KindText:
		return "text"
	case KindButton:
		return "button"
	case KindPortrait:
		return "portrait"
	case KindHUD:
		return "hud"
	default:
		return "unknown"
	}
}

// Object is anything placed in the world: scene props, UI nodes, NPCs.
type Object struct {
	ID     ID
	Kind   Kind
	Name   string
	Pos    cp.Vector
	Parent ID
	Glyph  rune
	Color  string
	// Payload is the interactable value carried by the object, if any.
	Payload any
}

type scopeKey struct {
	state  appstate.State
	global bool
}

// World owns every object. Objects can only be created through a scope, so
// each one is released in bulk when its owning state exits.
type World struct {
	nextID  ID
	objects map[ID]*Object
	owner   map[ID]scopeKey
	scopes  map[scopeKey][]ID
	order   []ID
}

// New creates an empty world.
func New() *World {
	return &World{
		objects: make(map[ID]*Object),
		owner:   make(map[ID]scopeKey),
		scopes:  make(map[scopeKey][]ID),
	}
}

// Scope is a spawn handle bound to one owner.
type Scope struct {
	w   *World
	key scopeKey
}

// Scope returns the spawn handle for objects owned by state s.
func (w *World) Scope(s appstate.State) Scope {
	return Scope{w: w, key: scopeKey{state: s}}
}

// Global returns the spawn handle for objects that live for the whole run.
func (w *World) Global() Scope {
	return Scope{w: w, key: scopeKey{global: true}}
}

// Spawn adds obj to the scope and returns its new ID.
func (s Scope) Spawn(obj Object) ID {
	return s.w.insert(s.key, obj)
}

// SpawnChild adds obj under parent. The child belongs to the parent's scope.
func (w *World) SpawnChild(parent ID, obj Object) (ID, error) {
	key, ok := w.owner[parent]
	if !ok {
		return 0, ErrNoParent
	}
	obj.Parent = parent
	return w.insert(key, obj), nil
}

func (w *World) insert(key scopeKey, obj Object) ID {
	w.nextID++
	obj.ID = w.nextID
	o := obj
	w.objects[o.ID] = &o
	w.owner[o.ID] = key
	w.scopes[key] = append(w.scopes[key], o.ID)
	w.order = append(w.order, o.ID)
	return o.ID
}

// Despawn removes every object owned by state s and returns how many
// were removed.
func (w *World) Despawn(s appstate.State) int {
	key := scopeKey{state: s}
	ids := w.scopes[key]
	if len(ids) == 0 {
		return 0
	}

	removed := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		delete(w.objects, id)
		delete(w.owner, id)
		removed[id] = struct{}{}
	}
	delete(w.scopes, key)

	kept := w.order[:0]
	for _, id := range w.order {
		if _, gone := removed[id]; !gone {
			kept = append(kept, id)
		}
	}
	w.order = kept

	return len(ids)
}

// Get returns the object with the given ID.
func (w *World) Get(id ID) (*Object, bool) {
	o, ok := w.objects[id]
	return o, ok
}

// Count returns the number of objects owned by state s.
func (w *World) Count(s appstate.State) int {
	return len(w.scopes[scopeKey{state: s}])
}

// GlobalCount returns the number of objects in the global scope.
func (w *World) GlobalCount() int {
	return len(w.scopes[scopeKey{global: true}])
}

// Len returns the total number of live objects.
func (w *World) Len() int {
	return len(w.objects)
}

// Each calls fn for every object in spawn order.
func (w *World) Each(fn func(*Object)) {
	for _, id := range w.order {
		fn(w.objects[id])
	}
}

// Query returns objects of the given kind in spawn order.
func (w *World) Query(kind Kind) []*Object {
	var out []*Object
	for _, id := range w.order {
		if o := w.objects[id]; o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

// Children returns the direct children of parent in spawn order.
func (w *World) Children(parent ID) []*Object {
	var out []*Object
	for _, id := range w.order {
		if o := w.objects[id]; o.Parent == parent {
			out = append(out, o)
		}
	}
	return out
}
