package interact

import (
	"github.com/samdwyer/sotora/internal/appstate"
	"github.com/samdwyer/sotora/internal/dialog"
)

// Requester accepts state transition requests.
type Requester interface {
	Request(target appstate.State)
}

// Stager holds data handed to the next state.
type Stager interface {
	Stage(r dialog.Resource)
}

// StartBattle requests the Battle state when a BattleStarter was yielded.
func StartBattle(_ BattleStarter, ok bool, states Requester) bool {
	if !ok {
		return false
	}
	states.Request(appstate.Battle)
	return true
}

// StartDialog stages the NPC the player talked to and requests the Dialog
// state when a DialogStarter was yielded.
func StartDialog(p DialogStarter, ok bool, stager Stager, states Requester) bool {
	if !ok {
		return false
	}
	stager.Stage(dialog.Resource{
		NPCName: p.NPCName,
		Sprite:  p.Sprite,
	})
	states.Request(appstate.Dialog)
	return true
}
