package resolve

import (
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/enforce"
	"github.com/samunstein/coupgo/internal/protocol"
)

func decodeCard(m protocol.Message) (protocol.CardMessage, bool) {
	c, ok := m.(protocol.CardMessage)
	return c, ok
}

// chooseAndKillACard prompts player to pick one of their own cards to give
// up, removes it, and broadcasts the loss; it marks the player dead (and
// broadcasts that too) if the hand is now empty. It reports false if the
// player was emergency-killed instead of choosing, so callers whose turn
// phase cannot survive that player's removal can end it before logging
// the phase as resolved.
func chooseAndKillACard(b Broadcaster, player *engine.Player) bool {
	if !player.Alive() {
		return true
	}
	conn := b.Connection(player)
	cfg := b.Config()
	resp, err := enforce.Request(conn, player, b.Killer(), protocol.ChooseCardToKill{}, cfg.WrongMessageTolerance,
		decodeCard,
		func(c protocol.CardMessage) bool { return player.HasCard(c.Card) },
	)
	if err != nil {
		// EmergencyKill already stripped the player's hand and broadcast
		// their death.
		return false
	}
	killCard(b, player, resp.Card)
	return true
}

func killCard(b Broadcaster, player *engine.Player, c engine.Card) {
	if !player.RemoveCard(c) {
		return
	}
	b.Game().Dead = append(b.Game().Dead, c)
	_ = b.Connection(player).Send(protocol.RemoveCard{Card: c})
	b.SendAll(protocol.PlayerLostACard{Player: player.Number, Card: c})
	if !player.Alive() {
		b.SendAll(protocol.APlayerIsDead{Player: player.Number})
	}
}

// emergencyKillAndReveal is the default Killer implementation's card-side
// effect: every remaining card is revealed publicly, in hand order, and
// the player is marked dead, ahead of the rules_violation broadcast.
func emergencyKillAndReveal(b Broadcaster, player *engine.Player) {
	for _, c := range append([]engine.Card(nil), player.Cards...) {
		player.RemoveCard(c)
		b.Game().Dead = append(b.Game().Dead, c)
		// Best effort: the victim is typically unresponsive or gone, but a
		// merely rule-breaking client still gets its mirror updated.
		_ = b.Connection(player).Send(protocol.RemoveCard{Card: c})
		b.SendAll(protocol.PlayerLostACard{Player: player.Number, Card: c})
	}
	if !player.Alive() {
		b.SendAll(protocol.APlayerIsDead{Player: player.Number})
	}
}

// RealKiller adapts a Broadcaster into an enforce.Killer that performs the
// full emergency-kill side effects: reveal all remaining cards, mark the
// player dead, and broadcast why.
type RealKiller struct {
	B Broadcaster
}

func (k RealKiller) EmergencyKill(player *engine.Player, reason string) {
	k.B.Log().Errorf("emergency kill of player %d: %s", player.Number, reason)
	emergencyKillAndReveal(k.B, player)
	k.B.SendAll(protocol.RulesViolation{Player: player.Number})
}
