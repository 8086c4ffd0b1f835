package resolve

import (
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/protocol"
)

func decodeBlockDecision(m protocol.Message) (protocol.BlockDecision, bool) {
	d, ok := m.(protocol.BlockDecision)
	return d, ok
}

// blockOrder returns who gets asked whether they block: only the target
// for a targeted action, or every other living player in random order for
// an untargeted blockable action (in practice, only ForeignAid).
func blockOrder(b Broadcaster, actor, target *engine.Player) []*engine.Player {
	if target != nil {
		return []*engine.Player{target}
	}
	others := b.Game().OthersAliveExcept(actor)
	r := b.Rand()
	r.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
	return others
}

// runBlocks polls eligible blockers in turn; the first one to claim a
// block triggers the block-challenge window.
func runBlocks(b Broadcaster, actor, target *engine.Player, action engine.ActionKind) Outcome {
	info := action.Info()
	tNum := targetNum(target)
	for _, blocker := range blockOrder(b, actor, target) {
		conn := b.Connection(blocker)
		cfg := b.Config()
		resp, err := enforceRequest(b, conn, blocker, protocol.DoYouBlock{Action: action, ActionDoer: actor.Number},
			cfg.WrongMessageTolerance, decodeBlockDecision, func(d protocol.BlockDecision) bool {
				card, blocks := d.Block()
				return !blocks || info.BlockedByCard(card)
			})
		if err != nil {
			continue
		}
		card, blocks := resp.Block()
		if !blocks {
			continue
		}
		b.Log().Debugf("player %d's %s is blocked by player %d claiming %s", actor.Number, action, blocker.Number, card)
		return resolveBlockChallenges(b, actor, blocker, action, card, tNum)
	}
	return Applied
}

// resolveBlockChallenges polls everyone alive except the blocker
// (including the actor) for whether they challenge the claimed block card;
// the first challenger triggers reveal-or-concede on the blocker.
func resolveBlockChallenges(b Broadcaster, actor, blocker *engine.Player, action engine.ActionKind, blockCard engine.Card, tNum int) Outcome {
	challengers := b.Game().OthersAliveExcept(blocker)
	r := b.Rand()
	r.Shuffle(len(challengers), func(i, j int) { challengers[i], challengers[j] = challengers[j], challengers[i] })

	for _, challenger := range challengers {
		conn := b.Connection(challenger)
		cfg := b.Config()
		resp, err := enforceRequest(b, conn, challenger,
			protocol.DoYouChallengeBlock{Action: action, ActionDoer: actor.Number, Target: tNum, BlockCard: blockCard, Blocker: blocker.Number},
			cfg.WrongMessageTolerance, decodeChallenge, func(protocol.ChallengeDecision) bool { return true })
		if !actor.Alive() {
			// The actor is among the polled challengers and may have been
			// emergency-killed by their own prompt; nothing of their turn
			// remains to resolve.
			return ActorKilled
		}
		if err != nil {
			continue
		}
		if !resp.Challenges() {
			continue
		}

		revealResp, err := enforceRequest(b, b.Connection(blocker), blocker,
			protocol.YourBlockIsChallenged{Action: action, ActionDoer: actor.Number, BlockCard: blockCard, Challenger: challenger.Number},
			cfg.WrongMessageTolerance, decodeRevealOrConcede, func(d protocol.RevealOrConcede) bool {
				return !d.Reveals() || blocker.HasCard(blockCard)
			})
		if err != nil {
			// The blocker was emergency-killed without standing behind the
			// block, so it collapses and the action proceeds.
			return Applied
		}

		revealed := revealResp.Reveals()
		b.Log().Debugf("challenge of player %d's %s block succeeded: %t", blocker.Number, blockCard, !revealed)
		if revealed {
			returnAndRedraw(b, blocker, blockCard)
			if !chooseAndKillACard(b, challenger) && challenger == actor {
				// The actor challenged the block and was emergency-killed
				// instead of paying for it; the blocker's redraw stands but
				// the challenge never resolved, so nothing more is logged.
				return ActorKilled
			}
		} else {
			chooseAndKillACard(b, blocker)
		}
		b.SendAll(protocol.LogBlockWasChallenged{
			Action: action, ActionDoer: actor.Number, Target: tNum, BlockCard: blockCard,
			Blocker: blocker.Number, Challenger: challenger.Number, Success: !revealed,
		})
		if revealed {
			// The block held up against the challenge and stops the action.
			b.SendAll(protocol.LogActionWasBlocked{
				Action: action, ActionDoer: actor.Number, Target: tNum, BlockCard: blockCard, Blocker: blocker.Number,
			})
			return Cancelled
		}
		// The challenge proved the block was bogus: it collapses and the
		// action proceeds.
		return Applied
	}

	b.SendAll(protocol.LogActionWasBlocked{
		Action: action, ActionDoer: actor.Number, Target: tNum, BlockCard: blockCard, Blocker: blocker.Number,
	})
	return Cancelled
}
