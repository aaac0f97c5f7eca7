// Package interact implements proximity-triggered interactables: detecting
// when the player stands next to one and presses interact, and yielding its
// payload to a handler.
package interact

import (
	"github.com/jakecoffman/cp"
)

// ActivationRadius is the distance under which the player can interact.
const ActivationRadius = 1.0

// Kind identifies a payload type.
type Kind int

const (
	// KindBattle marks objects that start a battle.
	KindBattle Kind = iota
	// KindDialog marks objects that start a dialog.
	KindDialog
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindBattle:
		return "battle"
	case KindDialog:
		return "dialog"
	default:
		return "unknown"
	}
}

// Payload is the closed set of values an interactable can carry.
type Payload interface {
	BattleStarter | DialogStarter
	Kind() Kind
}

// BattleStarter starts a battle when interacted with.
type BattleStarter struct{}

// Kind implements Payload.
func (BattleStarter) Kind() Kind { return KindBattle }

// DialogStarter starts a conversation with an NPC.
type DialogStarter struct {
	NPCName string
	// Sprite references the portrait shown in the dialog screen.
	Sprite string
}

// Kind implements Payload.
func (DialogStarter) Kind() Kind { return KindDialog }

// Candidate is one positioned interactable.
type Candidate struct {
	Pos     cp.Vector
	Payload any
}

// Scanner finds the interactable of a kind nearest to a point.
type Scanner interface {
	// Nearest returns the closest candidate of kind strictly within radius
	// of from. Equal distances resolve to the earlier candidate.
	Nearest(from cp.Vector, radius float64, kind Kind) (Candidate, bool)
}

// LinearScanner checks every candidate on each query.
// O(players × interactables) per payload type and tick.
type LinearScanner struct {
	source func() []Candidate
}

// NewLinearScanner creates a scanner over the candidates returned by source.
func NewLinearScanner(source func() []Candidate) *LinearScanner {
	return &LinearScanner{source: source}
}

// Nearest implements Scanner.
func (s *LinearScanner) Nearest(from cp.Vector, radius float64, kind Kind) (Candidate, bool) {
	var (
		best     Candidate
		bestDist float64
		found    bool
	)
	for _, c := range s.source() {
		if kindOf(c.Payload) != kind {
			continue
		}
		d := from.Distance(c.Pos)
		if d >= radius {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

func kindOf(payload any) Kind {
	switch payload.(type) {
	case BattleStarter, *BattleStarter:
		return KindBattle
	case DialogStarter, *DialogStarter:
		return KindDialog
	default:
		return Kind(-1)
	}
}

// Detect yields the payload of type P nearest to the player when interact
// fired this tick and the player is within ActivationRadius of one.
// With several players the last one is used.
func Detect[P Payload](s Scanner, players []cp.Vector, interact bool) (P, bool) {
	var zero P
	if !interact || len(players) == 0 {
		return zero, false
	}

	player := players[len(players)-1]
	c, ok := s.Nearest(player, ActivationRadius, zero.Kind())
	if !ok {
		return zero, false
	}

	switch p := c.Payload.(type) {
	case P:
		return p, true
	case *P:
		if p != nil {
			return *p, true
		}
	}
	return zero, false
}
