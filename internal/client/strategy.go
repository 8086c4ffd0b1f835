package client

import (
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/protocol"
)

// Strategy is the full set of decisions and notifications a client
// implementation must handle, one method per prompt or state change the
// wire protocol can deliver.
type Strategy interface {
	AskName(s *State) string

	ChooseCardToKill(s *State) engine.Card
	ChooseAmbassadorCards(s *State, pool []engine.Card) (engine.Card, engine.Card)
	// TakeTurn and the five decision prompts below return a plain
	// protocol.Message rather than the narrower *Decision interface the
	// server expects: a well-behaved Strategy always returns the right
	// variant, but strategy.Random deliberately returns the wrong one
	// sometimes to exercise the server's rule enforcement wrapper, which
	// only a server-side type assertion (not Go's static typing) can
	// catch.
	TakeTurn(s *State) protocol.Message
	YourActionIsChallenged(s *State, action engine.ActionKind, target, challenger int) protocol.Message
	YourBlockIsChallenged(s *State, action engine.ActionKind, doer int, blockCard engine.Card, challenger int) protocol.Message
	DoYouBlock(s *State, action engine.ActionKind, doer int) protocol.Message
	DoYouChallengeAction(s *State, action engine.ActionKind, doer, target int) protocol.Message
	DoYouChallengeBlock(s *State, action engine.ActionKind, doer, target int, blockCard engine.Card, blocker int) protocol.Message

	DebugMessage(s *State, text string)
	Shutdown(s *State)
	ActionWasTaken(s *State, action engine.ActionKind, doer, target int)
	ActionWasBlocked(s *State, action engine.ActionKind, doer, target int, blockCard engine.Card, blocker int)
	ActionWasChallenged(s *State, action engine.ActionKind, doer, target, challenger int, success bool)
	BlockWasChallenged(s *State, action engine.ActionKind, doer, target int, blockCard engine.Card, blocker, challenger int, success bool)
	PlayerLostACard(s *State, player int, c engine.Card)
	APlayerIsDead(s *State, player int)
	RulesViolation(s *State, player int)
	MoneyChanged(s *State, player int, amount int)
}
