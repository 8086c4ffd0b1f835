package server

import (
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/enforce"
	"github.com/samunstein/coupgo/internal/protocol"
	"github.com/samunstein/coupgo/internal/resolve"
)

func decodeActionDecision(m protocol.Message) (protocol.ActionDecision, bool) {
	d, ok := m.(protocol.ActionDecision)
	return d, ok
}

// validActionDecision enforces the static action-legality rules:
// affordability, a live non-self target for targeted actions, and the
// forced-Coup-at-10-or-more-coins rule. It does not check challenges or
// blocks; those are resolve's job once the decision is accepted.
func (g *Game) validActionDecision(actor *engine.Player, d protocol.ActionDecision) bool {
	if actor.Money >= 10 && d.Action() != engine.Coup {
		return false
	}
	info := d.Action().Info()
	if actor.Money < info.Cost {
		return false
	}
	num, targeted := d.Target()
	if info.Targeted != targeted {
		return false
	}
	if info.Targeted {
		t := g.state.PlayerByNumber(num)
		if t == nil || t == actor || !t.Alive() {
			return false
		}
	}
	return true
}

// RunTurn prompts actor for one action and drives it to completion,
// called once per turn by Run.
func (g *Game) RunTurn(actor *engine.Player) {
	conn := g.Connection(actor)
	if conn == nil {
		return
	}
	g.log.Debugf("player %d taking turn", actor.Number)
	decision, err := enforce.Request(conn, actor, g.killer, protocol.TakeTurn{}, g.cfg.WrongMessageTolerance,
		decodeActionDecision, func(d protocol.ActionDecision) bool { return g.validActionDecision(actor, d) })
	if err != nil {
		return
	}
	g.log.Debugf("player %d attempting %s", actor.Number, decision.Action())
	resolve.RunAction(g, actor, decision)
}

// Run plays out the whole match: setup, then a round-robin turn loop that
// skips dead seats and re-queues the actor behind everyone else after
// their turn, until a single player remains.
func (g *Game) Run() {
	g.SetupPlayers()

	queue := append([]*engine.Player(nil), g.state.Players...)
	for {
		if winner, ok := g.state.Winner(); ok {
			g.SendAll(protocol.Shutdown{})
			g.log.Infof("game over: player %d (%s) wins", winner.Number, winner.Name)
			break
		}
		if len(queue) == 0 {
			g.log.Errorf("turn queue emptied with no winner determined")
			break
		}
		actor := queue[0]
		queue = queue[1:]
		if !actor.Alive() {
			continue
		}
		g.RunTurn(actor)
		if actor.Alive() {
			queue = append(queue, actor)
		}
	}
	g.Close()
}
