package strategy

import (
	"math/rand"

	"github.com/samunstein/coupgo/internal/client"
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/protocol"
)

// Random picks a uniformly random legal move at every decision point, and
// occasionally answers with a message of the wrong kind entirely (a
// RevealCard where a Block was asked for, say) to drive the server's rule
// enforcement and emergency-kill paths in stress tests.
type Random struct {
	R *rand.Rand
	// WrongMessageProbability is the chance, at each decision prompt, that
	// the strategy answers with a structurally wrong kind of message
	// instead of a legal one.
	WrongMessageProbability float64
	// OnlyOneWrong forces a correct answer immediately after every wrong
	// one, so the strategy never burns two retries in a row. A server with
	// any tolerance at all must keep such a client alive for a whole game.
	OnlyOneWrong bool

	lastWasWrong bool
}

func (r *Random) rollWrong() bool {
	if r.lastWasWrong {
		r.lastWasWrong = false
		return false
	}
	if r.R.Float64() >= r.WrongMessageProbability {
		return false
	}
	if r.OnlyOneWrong {
		r.lastWasWrong = true
	}
	return true
}

func (r *Random) AskName(*client.State) string {
	return "random"
}

func (r *Random) aliveOpponents(s *client.State) []int {
	var nums []int
	for n, o := range s.Opponents {
		if o.CardsAmount > 0 {
			nums = append(nums, n)
		}
	}
	return nums
}

func (r *Random) randomTarget(s *client.State) int {
	opps := r.aliveOpponents(s)
	if len(opps) == 0 {
		return -1
	}
	return opps[r.R.Intn(len(opps))]
}

// wrongForDecision returns a response that satisfies protocol.Message but
// not the interface the prompt expects, e.g. a Challenge in place of a
// TakeTurn decision.
func (r *Random) wrongForDecision() protocol.Message {
	return protocol.Challenge{}
}

func (r *Random) wrongForRevealOrConcede() protocol.Message {
	return protocol.IncomeDecision{}
}

func (r *Random) wrongForBlock() protocol.Message {
	return protocol.RevealCard{}
}

func (r *Random) wrongForChallenge() protocol.Message {
	return protocol.NoBlock{}
}

func (r *Random) TakeTurn(s *client.State) protocol.Message {
	if r.rollWrong() {
		return r.wrongForDecision()
	}
	target := r.randomTarget(s)
	if target == -1 {
		return protocol.IncomeDecision{}
	}
	options := []engine.ActionKind{engine.Income, engine.ForeignAid, engine.Tax, engine.Steal, engine.Ambassadate}
	if s.Money >= 3 {
		options = append(options, engine.Assassinate)
	}
	if s.Money >= 7 {
		options = append(options, engine.Coup)
	}
	if s.Money >= 10 {
		options = []engine.ActionKind{engine.Coup}
	}
	switch options[r.R.Intn(len(options))] {
	case engine.Income:
		return protocol.IncomeDecision{}
	case engine.ForeignAid:
		return protocol.ForeignAidDecision{}
	case engine.Tax:
		return protocol.TaxDecision{}
	case engine.Ambassadate:
		return protocol.AmbassadateDecision{}
	case engine.Steal:
		return protocol.StealDecision{TargetNum: target}
	case engine.Assassinate:
		return protocol.AssassinateDecision{TargetNum: target}
	default:
		return protocol.CoupDecision{TargetNum: target}
	}
}

func (r *Random) ChooseCardToKill(s *client.State) engine.Card {
	return s.Cards[r.R.Intn(len(s.Cards))]
}

func (r *Random) ChooseAmbassadorCards(s *client.State, pool []engine.Card) (engine.Card, engine.Card) {
	i := r.R.Intn(len(pool))
	j := r.R.Intn(len(pool) - 1)
	if j >= i {
		j++
	}
	return pool[i], pool[j]
}

func revealIfHeld(s *client.State, c engine.Card) protocol.Message {
	if hasCard(s, c) {
		return protocol.RevealCard{}
	}
	return protocol.Concede{}
}

func (r *Random) YourActionIsChallenged(s *client.State, action engine.ActionKind, target, challenger int) protocol.Message {
	if r.rollWrong() {
		return r.wrongForRevealOrConcede()
	}
	return revealIfHeld(s, action.Info().RequiresCard)
}

func (r *Random) YourBlockIsChallenged(s *client.State, action engine.ActionKind, doer int, blockCard engine.Card, challenger int) protocol.Message {
	if r.rollWrong() {
		return r.wrongForRevealOrConcede()
	}
	return revealIfHeld(s, blockCard)
}

func (r *Random) DoYouBlock(s *client.State, action engine.ActionKind, doer int) protocol.Message {
	if r.rollWrong() {
		return r.wrongForBlock()
	}
	blockers := action.Info().BlockedBy
	if len(blockers) == 0 || r.R.Intn(2) == 0 {
		return protocol.NoBlock{}
	}
	return protocol.Block{Card: blockers[r.R.Intn(len(blockers))]}
}

func (r *Random) DoYouChallengeAction(*client.State, engine.ActionKind, int, int) protocol.Message {
	if r.rollWrong() {
		return r.wrongForChallenge()
	}
	if r.R.Intn(4) == 0 {
		return protocol.Challenge{}
	}
	return protocol.Allow{}
}

func (r *Random) DoYouChallengeBlock(*client.State, engine.ActionKind, int, int, engine.Card, int) protocol.Message {
	if r.rollWrong() {
		return r.wrongForChallenge()
	}
	if r.R.Intn(4) == 0 {
		return protocol.Challenge{}
	}
	return protocol.Allow{}
}

func (r *Random) DebugMessage(*client.State, string) {}
func (r *Random) Shutdown(*client.State)             {}
func (r *Random) ActionWasTaken(*client.State, engine.ActionKind, int, int) {}
func (r *Random) ActionWasBlocked(*client.State, engine.ActionKind, int, int, engine.Card, int) {}
func (r *Random) ActionWasChallenged(*client.State, engine.ActionKind, int, int, int, bool)     {}
func (r *Random) BlockWasChallenged(*client.State, engine.ActionKind, int, int, engine.Card, int, int, bool) {
}
func (r *Random) PlayerLostACard(*client.State, int, engine.Card) {}
func (r *Random) APlayerIsDead(*client.State, int)                {}
func (r *Random) RulesViolation(*client.State, int)               {}
func (r *Random) MoneyChanged(*client.State, int, int)            {}

var _ client.Strategy = &Random{}
