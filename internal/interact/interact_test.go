package interact

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/sotora/internal/appstate"
	"github.com/samdwyer/sotora/internal/dialog"
)

func scanner(candidates ...Candidate) *LinearScanner {
	return NewLinearScanner(func() []Candidate { return candidates })
}

type fakeStates struct {
	requests []appstate.State
}

func (f *fakeStates) Request(target appstate.State) {
	f.requests = append(f.requests, target)
}

func TestDetectWithinRadius(t *testing.T) {
	s := scanner(Candidate{Pos: cp.Vector{X: 0.5}, Payload: BattleStarter{}})

	_, ok := Detect[BattleStarter](s, []cp.Vector{{}}, true)
	assert.True(t, ok)
}

func TestDetectOutsideRadius(t *testing.T) {
	s := scanner(Candidate{Pos: cp.Vector{X: 2}, Payload: BattleStarter{}})

	_, ok := Detect[BattleStarter](s, []cp.Vector{{}}, true)
	assert.False(t, ok)

	// The radius itself is exclusive.
	s = scanner(Candidate{Pos: cp.Vector{X: ActivationRadius}, Payload: BattleStarter{}})
	_, ok = Detect[BattleStarter](s, []cp.Vector{{}}, true)
	assert.False(t, ok)
}

func TestDetectRequiresInteractEdge(t *testing.T) {
	s := scanner(Candidate{Pos: cp.Vector{}, Payload: BattleStarter{}})

	_, ok := Detect[BattleStarter](s, []cp.Vector{{}}, false)
	assert.False(t, ok)
}

func TestDetectNoPlayers(t *testing.T) {
	s := scanner(Candidate{Pos: cp.Vector{}, Payload: BattleStarter{}})

	_, ok := Detect[BattleStarter](s, nil, true)
	assert.False(t, ok)
}

func TestDetectFiltersByPayloadType(t *testing.T) {
	s := scanner(
		Candidate{Pos: cp.Vector{X: 0.1}, Payload: BattleStarter{}},
		Candidate{Pos: cp.Vector{X: 0.5}, Payload: DialogStarter{NPCName: "Ferris", Sprite: "ferris"}},
	)

	d, ok := Detect[DialogStarter](s, []cp.Vector{{}}, true)
	require.True(t, ok)
	assert.Equal(t, "Ferris", d.NPCName)
	assert.Equal(t, "ferris", d.Sprite)
}

func TestDetectNearestWins(t *testing.T) {
	s := scanner(
		Candidate{Pos: cp.Vector{X: 0.9}, Payload: DialogStarter{NPCName: "far"}},
		Candidate{Pos: cp.Vector{X: -0.2}, Payload: DialogStarter{NPCName: "near"}},
		Candidate{Pos: cp.Vector{Y: 0.5}, Payload: DialogStarter{NPCName: "middle"}},
	)

	d, ok := Detect[DialogStarter](s, []cp.Vector{{}}, true)
	require.True(t, ok)
	assert.Equal(t, "near", d.NPCName)
}

func TestDetectTieBreaksBySpawnOrder(t *testing.T) {
	s := scanner(
		Candidate{Pos: cp.Vector{X: 0.5}, Payload: DialogStarter{NPCName: "first"}},
		Candidate{Pos: cp.Vector{X: -0.5}, Payload: DialogStarter{NPCName: "second"}},
	)

	for i := 0; i < 10; i++ {
		d, ok := Detect[DialogStarter](s, []cp.Vector{{}}, true)
		require.True(t, ok)
		assert.Equal(t, "first", d.NPCName)
	}
}

func TestDetectUsesLastPlayer(t *testing.T) {
	s := scanner(Candidate{Pos: cp.Vector{X: 5}, Payload: BattleStarter{}})

	_, ok := Detect[BattleStarter](s, []cp.Vector{{X: 5}, {}}, true)
	assert.False(t, ok)

	_, ok = Detect[BattleStarter](s, []cp.Vector{{}, {X: 5}}, true)
	assert.True(t, ok)
}

func TestDetectAcceptsPointerPayloads(t *testing.T) {
	s := scanner(Candidate{Pos: cp.Vector{}, Payload: &DialogStarter{NPCName: "Ferris"}})

	d, ok := Detect[DialogStarter](s, []cp.Vector{{}}, true)
	require.True(t, ok)
	assert.Equal(t, "Ferris", d.NPCName)
}

func TestStartBattle(t *testing.T) {
	states := &fakeStates{}

	assert.False(t, StartBattle(BattleStarter{}, false, states))
	assert.Empty(t, states.requests)

	assert.True(t, StartBattle(BattleStarter{}, true, states))
	assert.Equal(t, []appstate.State{appstate.Battle}, states.requests)
}

func TestStartDialogStagesResource(t *testing.T) {
	states := &fakeStates{}
	store := dialog.NewStore()

	assert.False(t, StartDialog(DialogStarter{}, false, store, states))
	_, staged := store.Current()
	assert.False(t, staged)

	assert.True(t, StartDialog(DialogStarter{NPCName: "Ferris", Sprite: "ferris"}, true, store, states))
	r, staged := store.Current()
	require.True(t, staged)
	assert.Equal(t, dialog.Resource{NPCName: "Ferris", Sprite: "ferris"}, r)
	assert.Equal(t, []appstate.State{appstate.Dialog}, states.requests)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "battle", KindBattle.String())
	assert.Equal(t, "dialog", KindDialog.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
