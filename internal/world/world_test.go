package world

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/sotora/internal/appstate"
)

func TestSpawnAssignsIncreasingIDs(t *testing.T) {
	w := New()
	s := w.Scope(appstate.Overworld)

	a := s.Spawn(Object{Kind: KindGround})
	b := s.Spawn(Object{Kind: KindPlayer})

	assert.NotZero(t, a)
	assert.Greater(t, uint64(b), uint64(a))

	obj, ok := w.Get(b)
	require.True(t, ok)
	assert.Equal(t, KindPlayer, obj.Kind)
	assert.Equal(t, b, obj.ID)
}

func TestDespawnOnlyRemovesOwnScope(t *testing.T) {
	w := New()
	w.Scope(appstate.Overworld).Spawn(Object{Kind: KindGround})
	w.Scope(appstate.Overworld).Spawn(Object{Kind: KindPlayer})
	w.Scope(appstate.Battle).Spawn(Object{Kind: KindBoardTile})
	w.Global().Spawn(Object{Kind: KindHUD})

	assert.Equal(t, 2, w.Despawn(appstate.Overworld))
	assert.Equal(t, 0, w.Count(appstate.Overworld))
	assert.Equal(t, 1, w.Count(appstate.Battle))
	assert.Equal(t, 1, w.GlobalCount())
	assert.Equal(t, 2, w.Len())

	assert.Equal(t, 0, w.Despawn(appstate.Overworld), "second despawn is a no-op")
}

func TestChildrenFollowParentScope(t *testing.T) {
	w := New()
	npc := w.Scope(appstate.Overworld).Spawn(Object{Kind: KindNPC, Name: "Ferris"})

	tag, err := w.SpawnChild(npc, Object{Kind: KindNameTag, Name: "Ferris"})
	require.NoError(t, err)

	children := w.Children(npc)
	require.Len(t, children, 1)
	assert.Equal(t, tag, children[0].ID)
	assert.Equal(t, 2, w.Count(appstate.Overworld))

	w.Despawn(appstate.Overworld)
	_, ok := w.Get(tag)
	assert.False(t, ok, "child must be removed with its parent's scope")
}

func TestSpawnChildOfMissingParent(t *testing.T) {
	w := New()
	_, err := w.SpawnChild(ID(42), Object{Kind: KindNameTag})
	assert.True(t, errors.Is(err, ErrNoParent))
	assert.Equal(t, 0, w.Len())
}

func TestNoLeaksAcrossCycles(t *testing.T) {
	w := New()
	for cycle := 0; cycle < 50; cycle++ {
		s := w.Scope(appstate.Overworld)
		spawned := 0
		for i := 0; i < cycle%7+1; i++ {
			parent := s.Spawn(Object{Kind: KindNPC})
			spawned++
			if i%2 == 0 {
				_, err := w.SpawnChild(parent, Object{Kind: KindNameTag})
				require.NoError(t, err)
				spawned++
			}
		}
		require.Equal(t, spawned, w.Despawn(appstate.Overworld))
		require.Equal(t, 0, w.Len())
	}
}

func TestQueryPreservesSpawnOrder(t *testing.T) {
	w := New()
	s := w.Scope(appstate.Overworld)
	first := s.Spawn(Object{Kind: KindNPC, Name: "a"})
	w.Scope(appstate.Battle).Spawn(Object{Kind: KindNPC, Name: "b"})
	third := s.Spawn(Object{Kind: KindNPC, Name: "c"})

	w.Despawn(appstate.Battle)

	npcs := w.Query(KindNPC)
	require.Len(t, npcs, 2)
	assert.Equal(t, first, npcs[0].ID)
	assert.Equal(t, third, npcs[1].ID)
}

func TestAreaContainsAndAreaAt(t *testing.T) {
	areas := []Area{
		{Name: "Meadow", X: -10, Y: -10, W: 10, H: 20},
		{Name: "Village", X: 0, Y: -10, W: 10, H: 20},
	}

	a, ok := AreaAt(areas, cp.Vector{X: -1, Y: 0})
	require.True(t, ok)
	assert.Equal(t, "Meadow", a.Name)

	a, ok = AreaAt(areas, cp.Vector{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, "Village", a.Name, "left/top edges are inclusive")

	_, ok = AreaAt(areas, cp.Vector{X: 10, Y: 0})
	assert.False(t, ok, "right edge is exclusive")

	assert.False(t, areas[0].Intersects(areas[1]))
	assert.Equal(t, cp.Vector{X: 5, Y: 0}, areas[1].Center())
}

func TestKindString(t *testing.T) {
	seen := map[string]Kind{}
	for k := KindGround; k <= KindHUD; k++ {
		name := k.String()
		assert.NotEqual(t, "unknown", name, "kind %d", int(k))
		if prev, dup := seen[name]; dup {
			t.Errorf("kinds %d and %d share name %q", int(prev), int(k), name)
		}
		seen[name] = k
	}
	assert.Equal(t, "battle_starter", KindBattleStarter.String())
	assert.Equal(t, "unknown", Kind(100).String())
}
