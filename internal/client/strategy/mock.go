package strategy

import (
	"github.com/samunstein/coupgo/internal/client"
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/protocol"
)

// Mock is a fully scripted strategy for deterministic scenario tests:
// every challenge/block decision is a fixed flag, and the action itself
// comes from a caller-supplied function.
type Mock struct {
	Name string
	// Action picks what to do on take_turn; it must always return a legal
	// decision for the current state (tests own that responsibility).
	Action func(*client.State) protocol.Message
	// Challenge, Block and ChallengeBlock are blanket policies: always
	// challenge an action, always claim a block when eligible, always
	// challenge a block. Real players mix strategies; this one doesn't
	// need to.
	Challenge      bool
	Block          bool
	ChallengeBlock bool
}

func (m Mock) AskName(*client.State) string {
	if m.Name != "" {
		return m.Name
	}
	return "mock"
}

func (m Mock) TakeTurn(s *client.State) protocol.Message {
	if m.Action != nil {
		return m.Action(s)
	}
	return protocol.IncomeDecision{}
}

func (m Mock) ChooseCardToKill(s *client.State) engine.Card {
	return s.Cards[0]
}

func (m Mock) ChooseAmbassadorCards(s *client.State, pool []engine.Card) (engine.Card, engine.Card) {
	return pool[0], pool[1]
}

func (m Mock) YourActionIsChallenged(s *client.State, action engine.ActionKind, target, challenger int) protocol.Message {
	if hasCard(s, action.Info().RequiresCard) {
		return protocol.RevealCard{}
	}
	return protocol.Concede{}
}

func (m Mock) YourBlockIsChallenged(s *client.State, action engine.ActionKind, doer int, blockCard engine.Card, challenger int) protocol.Message {
	if hasCard(s, blockCard) {
		return protocol.RevealCard{}
	}
	return protocol.Concede{}
}

func (m Mock) DoYouBlock(s *client.State, action engine.ActionKind, doer int) protocol.Message {
	if !m.Block || len(action.Info().BlockedBy) == 0 {
		return protocol.NoBlock{}
	}
	return protocol.Block{Card: action.Info().BlockedBy[0]}
}

func (m Mock) DoYouChallengeAction(*client.State, engine.ActionKind, int, int) protocol.Message {
	if m.Challenge {
		return protocol.Challenge{}
	}
	return protocol.Allow{}
}

func (m Mock) DoYouChallengeBlock(*client.State, engine.ActionKind, int, int, engine.Card, int) protocol.Message {
	if m.ChallengeBlock {
		return protocol.Challenge{}
	}
	return protocol.Allow{}
}

func (Mock) DebugMessage(*client.State, string) {}
func (Mock) Shutdown(*client.State)             {}
func (Mock) ActionWasTaken(*client.State, engine.ActionKind, int, int) {}
func (Mock) ActionWasBlocked(*client.State, engine.ActionKind, int, int, engine.Card, int) {}
func (Mock) ActionWasChallenged(*client.State, engine.ActionKind, int, int, int, bool)     {}
func (Mock) BlockWasChallenged(*client.State, engine.ActionKind, int, int, engine.Card, int, int, bool) {
}
func (Mock) PlayerLostACard(*client.State, int, engine.Card) {}
func (Mock) APlayerIsDead(*client.State, int)                {}
func (Mock) RulesViolation(*client.State, int)               {}
func (Mock) MoneyChanged(*client.State, int, int)            {}

var _ client.Strategy = Mock{}
