package resolve

import (
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/protocol"
)

func decodeChallenge(m protocol.Message) (protocol.ChallengeDecision, bool) {
	d, ok := m.(protocol.ChallengeDecision)
	return d, ok
}

func decodeRevealOrConcede(m protocol.Message) (protocol.RevealOrConcede, bool) {
	d, ok := m.(protocol.RevealOrConcede)
	return d, ok
}

// challengeOrder returns the alive opponents to poll in the order they are
// asked: target first (if any), the rest shuffled to remove positional
// bias.
func challengeOrder(b Broadcaster, actor, target *engine.Player) []*engine.Player {
	others := b.Game().OthersAliveExcept(actor)
	r := b.Rand()
	r.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
	if target == nil {
		return others
	}
	ordered := make([]*engine.Player, 0, len(others))
	ordered = append(ordered, target)
	for _, p := range others {
		if p != target {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

// runChallenges polls every eligible opponent for whether they challenge
// the actor's claimed card; the first challenger (if any) triggers reveal
// or concede resolution.
func runChallenges(b Broadcaster, actor, target *engine.Player, action engine.ActionKind) Outcome {
	tNum := targetNum(target)
	for _, opponent := range challengeOrder(b, actor, target) {
		conn := b.Connection(opponent)
		cfg := b.Config()
		resp, err := enforceRequest(b, conn, opponent, protocol.DoYouChallengeAction{Action: action, ActionDoer: actor.Number, Target: tNum},
			cfg.WrongMessageTolerance, decodeChallenge, func(protocol.ChallengeDecision) bool { return true })
		if target != nil && !target.Alive() {
			// The target was emergency-killed while someone deliberated.
			// The challenge window closes; the caller decides what a dead
			// target means for the rest of the action.
			return Applied
		}
		if err != nil {
			continue
		}
		if !resp.Challenges() {
			continue
		}
		b.Log().Debugf("player %d's %s is challenged by player %d", actor.Number, action, opponent.Number)
		return resolveChallenge(b, actor, opponent, action, tNum)
	}
	return Applied
}

// resolveChallenge asks the actor to reveal the claimed card or concede,
// then applies the win/loss consequences.
func resolveChallenge(b Broadcaster, actor, challenger *engine.Player, action engine.ActionKind, tNum int) Outcome {
	required := action.Info().RequiresCard
	conn := b.Connection(actor)
	cfg := b.Config()
	resp, err := enforceRequest(b, conn, actor, protocol.YourActionIsChallenged{Action: action, Target: tNum, Challenger: challenger.Number},
		cfg.WrongMessageTolerance, decodeRevealOrConcede, func(d protocol.RevealOrConcede) bool {
			return !d.Reveals() || actor.HasCard(required)
		})
	if err != nil {
		return ActorKilled
	}

	revealed := resp.Reveals()
	b.Log().Debugf("challenge of player %d's %s succeeded: %t", actor.Number, action, !revealed)
	if revealed {
		returnAndRedraw(b, actor, required)
		if !chooseAndKillACard(b, challenger) && challenger.Number == tNum {
			// The challenger was also the action's target and was
			// emergency-killed instead of paying for the failed challenge;
			// the challenge never resolved, so it is not logged and the
			// turn ends here.
			return Cancelled
		}
	} else {
		if !chooseAndKillACard(b, actor) {
			return ActorKilled
		}
	}
	// success reports whether the CHALLENGE succeeded: the actor could not
	// back their claim and conceded a card.
	b.SendAll(protocol.LogActionWasChallenged{
		Action: action, ActionDoer: actor.Number, Target: tNum,
		Challenger: challenger.Number, Success: !revealed,
	})
	if revealed {
		return Applied
	}
	return Cancelled
}

// returnAndRedraw performs the failed-challenge card cycle for p: the
// revealed card goes back into the deck, the deck is reshuffled, and p
// draws a replacement, with the private hand-change messages that keep
// p's client mirror accurate.
func returnAndRedraw(b Broadcaster, p *engine.Player, revealed engine.Card) {
	conn := b.Connection(p)
	p.RemoveCard(revealed)
	_ = conn.Send(protocol.RemoveCard{Card: revealed})
	engine.Return(&b.Game().Deck, revealed, b.Rand())
	drawn := engine.Draw(&b.Game().Deck)
	p.GiveCard(drawn)
	_ = conn.Send(protocol.AddCard{Card: drawn})
}
