// Package strategy collects the bundled Strategy implementations: a
// deterministic simple bot, a console-driven human client, a configurable
// mock for scripted tests, and a randomized stress-test client.
package strategy

import (
	"github.com/samunstein/coupgo/internal/client"
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/protocol"
)

// Simple is a deterministic bot: income until it can afford Assassinate,
// then assassinate the first living opponent every turn (couping instead
// once forced to at 10+ coins); it reveals whenever it actually holds the
// challenged card, concedes otherwise, and blocks whenever it holds a
// blocking card.
type Simple struct{}

func firstAliveOpponent(s *client.State) int {
	best := -1
	for n, o := range s.Opponents {
		if o.CardsAmount > 0 && (best == -1 || n < best) {
			best = n
		}
	}
	return best
}

func (Simple) AskName(*client.State) string { return "simple" }

func (Simple) TakeTurn(s *client.State) protocol.Message {
	target := firstAliveOpponent(s)
	switch {
	case s.Money >= 10:
		return protocol.CoupDecision{TargetNum: target}
	case s.Money >= 3:
		return protocol.AssassinateDecision{TargetNum: target}
	default:
		return protocol.IncomeDecision{}
	}
}

func (Simple) ChooseCardToKill(s *client.State) engine.Card {
	return s.Cards[0]
}

func (Simple) ChooseAmbassadorCards(s *client.State, pool []engine.Card) (engine.Card, engine.Card) {
	return pool[0], pool[1]
}

func (Simple) YourActionIsChallenged(s *client.State, action engine.ActionKind, target, challenger int) protocol.Message {
	if hasCard(s, action.Info().RequiresCard) {
		return protocol.RevealCard{}
	}
	return protocol.Concede{}
}

func (Simple) YourBlockIsChallenged(s *client.State, action engine.ActionKind, doer int, blockCard engine.Card, challenger int) protocol.Message {
	if hasCard(s, blockCard) {
		return protocol.RevealCard{}
	}
	return protocol.Concede{}
}

func (Simple) DoYouBlock(s *client.State, action engine.ActionKind, doer int) protocol.Message {
	for _, c := range action.Info().BlockedBy {
		if hasCard(s, c) {
			return protocol.Block{Card: c}
		}
	}
	return protocol.NoBlock{}
}

func (Simple) DoYouChallengeAction(*client.State, engine.ActionKind, int, int) protocol.Message {
	return protocol.Allow{}
}

func (Simple) DoYouChallengeBlock(*client.State, engine.ActionKind, int, int, engine.Card, int) protocol.Message {
	return protocol.Allow{}
}

func (Simple) DebugMessage(*client.State, string)                                                  {}
func (Simple) Shutdown(*client.State)                                                               {}
func (Simple) ActionWasTaken(*client.State, engine.ActionKind, int, int)                             {}
func (Simple) ActionWasBlocked(*client.State, engine.ActionKind, int, int, engine.Card, int)         {}
func (Simple) ActionWasChallenged(*client.State, engine.ActionKind, int, int, int, bool)             {}
func (Simple) BlockWasChallenged(*client.State, engine.ActionKind, int, int, engine.Card, int, int, bool) {}
func (Simple) PlayerLostACard(*client.State, int, engine.Card)                                      {}
func (Simple) APlayerIsDead(*client.State, int)                                                      {}
func (Simple) RulesViolation(*client.State, int)                                                     {}
func (Simple) MoneyChanged(*client.State, int, int)                                                  {}

func hasCard(s *client.State, c engine.Card) bool {
	for _, held := range s.Cards {
		if held == c {
			return true
		}
	}
	return false
}

var _ client.Strategy = Simple{}
