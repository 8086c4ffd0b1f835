package resolve

import (
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/protocol"
)

func decodeAmbassadorResponse(m protocol.Message) (protocol.AmbassadorCardResponse, bool) {
	r, ok := m.(protocol.AmbassadorCardResponse)
	return r, ok
}

// giveMoney adjusts p's stake, telling p privately (change_money) and
// everyone publicly (money_changed). The public record is this server's
// answer to the money-visibility question: clients can track every stake
// without inferring it from action logs.
func giveMoney(b Broadcaster, p *engine.Player, amount int) {
	if amount == 0 {
		return
	}
	p.GiveMoney(amount)
	_ = b.Connection(p).Send(protocol.ChangeMoney{Amount: amount})
	b.SendAll(protocol.MoneyChanged{Player: p.Number, Amount: amount})
}

// applyEffect carries out the already-unblocked, already-unchallenged
// effect of one action. It reports false if the actor was emergency-killed
// mid-effect, which only Ambassadate's card-choice prompt can cause; the
// caller must then treat the turn as ended rather than completed.
func applyEffect(b Broadcaster, actor, target *engine.Player, decision protocol.ActionDecision) bool {
	switch decision.Action() {
	case engine.Income:
		giveMoney(b, actor, 1)
	case engine.ForeignAid:
		giveMoney(b, actor, 2)
	case engine.Tax:
		giveMoney(b, actor, 3)
	case engine.Steal:
		amount := target.Money
		if amount > 2 {
			amount = 2
		}
		giveMoney(b, target, -amount)
		giveMoney(b, actor, amount)
	case engine.Assassinate, engine.Coup:
		chooseAndKillACard(b, target)
	case engine.Ambassadate:
		return runAmbassadate(b, actor)
	}
	return true
}

// runAmbassadate draws two cards, then asks the actor which two cards (by
// multiplicity) out of their enlarged hand to return to the deck, keeping
// the rest. Drawing 2 and returning 2 works uniformly whether the actor
// currently holds one card or two. It reports false if the actor was
// emergency-killed instead of choosing, so the turn ends without the
// action being logged as taken.
func runAmbassadate(b Broadcaster, actor *engine.Player) bool {
	conn := b.Connection(actor)
	drawn := []engine.Card{engine.Draw(&b.Game().Deck), engine.Draw(&b.Game().Deck)}
	for _, c := range drawn {
		actor.GiveCard(c)
		_ = conn.Send(protocol.AddCard{Card: c})
	}

	cfg := b.Config()
	resp, err := enforceRequest(b, conn, actor, protocol.ChooseAmbassadorCards{}, cfg.WrongMessageTolerance,
		decodeAmbassadorResponse,
		func(r protocol.AmbassadorCardResponse) bool {
			return handHasMultiset(actor.Cards, r.Card1, r.Card2)
		},
	)
	if err != nil {
		// The actor was emergency-killed; their whole hand (including the
		// two drawn cards) was already revealed and discarded.
		return false
	}

	actor.RemoveCard(resp.Card1)
	actor.RemoveCard(resp.Card2)
	_ = conn.Send(protocol.RemoveCard{Card: resp.Card1})
	_ = conn.Send(protocol.RemoveCard{Card: resp.Card2})
	engine.Return(&b.Game().Deck, resp.Card1, b.Rand())
	engine.Return(&b.Game().Deck, resp.Card2, b.Rand())
	return true
}

// handHasMultiset reports whether hand contains both c1 and c2, honoring
// multiplicity when c1 == c2 (the actor must then hold two of that card).
func handHasMultiset(hand []engine.Card, c1, c2 engine.Card) bool {
	counts := map[engine.Card]int{}
	for _, c := range hand {
		counts[c]++
	}
	counts[c1]--
	counts[c2]--
	return counts[c1] >= 0 && counts[c2] >= 0
}
