// Package resolve implements the per-turn action resolution state
// machine: take a proposed action, let opponents challenge it, collect
// the cost, let the target (or anyone, for untargeted blockable actions)
// block it, let a block itself be challenged, then apply the action's
// effect. Each phase reports an explicit Outcome instead of unwinding
// through panics, so a turn that ends early is ordinary control flow.
package resolve

import (
	"math/rand"

	"github.com/samunstein/coupgo/internal/config"
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/enforce"
	"github.com/samunstein/coupgo/internal/logx"
	"github.com/samunstein/coupgo/internal/netconn"
	"github.com/samunstein/coupgo/internal/protocol"
)

// Broadcaster is everything the resolution pipeline needs from the
// enclosing server, kept as an interface so this package never imports
// internal/server (which imports this one to drive a turn).
type Broadcaster interface {
	SendAll(m protocol.Message)
	Connection(p *engine.Player) netconn.Connection
	Killer() enforce.Killer
	Config() config.Game
	Rand() *rand.Rand
	Game() *engine.Game
	Log() *logx.Logger
}

// Outcome reports how a proposed action finished, so the turn loop knows
// whether to keep handling the actor's turn or move on.
type Outcome int

const (
	// Applied means the action's effect happened in full; from an
	// individual phase (challenge or block window), that the action may
	// proceed to the next phase.
	Applied Outcome = iota
	// Cancelled means the action stopped before it took effect: a
	// successful challenge or block, or a target that died mid-action.
	Cancelled
	// ActorKilled means the actor was emergency-killed mid-resolution
	// (a wrong-message or timeout during their own turn) and nothing
	// further should run for this turn.
	ActorKilled
)

// RunAction drives one proposed action end to end: challenge window, cost,
// block window, block-challenge window, and effect application. It is
// called once the turn loop has already collected which action the actor
// chose and, for targeted actions, which seat they targeted.
func RunAction(b Broadcaster, actor *engine.Player, decision protocol.ActionDecision) Outcome {
	info := decision.Action().Info()

	var target *engine.Player
	if info.Targeted {
		num, _ := decision.Target()
		target = b.Game().PlayerByNumber(num)
		if target == nil || !target.Alive() || target == actor {
			// The turn loop validates target legality before calling
			// RunAction; reaching here with a bad target is a defect in
			// the caller, not a player input problem, so treat it as a
			// no-op cancellation rather than panicking the game.
			return Cancelled
		}
	}

	if info.HasRequiresCard {
		if outcome := runChallenges(b, actor, target, decision.Action()); outcome != Applied {
			return outcome
		}
	}

	// The action survived the challenge window, so the cost is due now,
	// before any block resolves: a blocked Assassinate still costs 3.
	giveMoney(b, actor, -info.Cost)

	// The target may have been emergency-killed during the challenge
	// window; a dead player can't be asked to block.
	if len(info.BlockedBy) > 0 && (target == nil || target.Alive()) {
		if outcome := runBlocks(b, actor, target, decision.Action()); outcome != Applied {
			return outcome
		}
	}

	// Target evaporation: coins can still be stolen from a dead seat as a
	// natural effect of ordering, but every other targeted effect needs a
	// living target.
	if target != nil && !target.Alive() && decision.Action() != engine.Steal {
		return Cancelled
	}

	if !applyEffect(b, actor, target, decision) {
		return ActorKilled
	}
	b.SendAll(protocol.LogActionWasTaken{Action: decision.Action(), ActionDoer: actor.Number, Target: targetNum(target)})
	return Applied
}

// targetNum encodes the broadcast-log target field: the seat number, or -1
// for an untargeted action.
func targetNum(target *engine.Player) int {
	if target != nil {
		return target.Number
	}
	return -1
}

// enforceRequest wires enforce.Request to this package's Broadcaster,
// saving every call site from repeating the killer/tolerance plumbing.
func enforceRequest[R any](
	b Broadcaster,
	conn netconn.Connection,
	player *engine.Player,
	cmd protocol.Message,
	tolerance int,
	decode func(protocol.Message) (R, bool),
	validate func(R) bool,
) (R, error) {
	return enforce.Request(conn, player, b.Killer(), cmd, tolerance, decode, validate)
}
