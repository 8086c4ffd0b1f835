package server

import (
	"github.com/samunstein/coupgo/internal/enforce"
	"github.com/samunstein/coupgo/internal/protocol"
)

func decodeName(m protocol.Message) (protocol.NameResponse, bool) {
	r, ok := m.(protocol.NameResponse)
	return r, ok
}

// SetupPlayers tells every seat its number, asks it for a name, then
// announces the full roster, starting hand and starting stake to each of
// them.
func (g *Game) SetupPlayers() {
	for _, p := range g.state.Players {
		conn := g.Connection(p)
		if conn == nil {
			continue
		}
		_ = conn.Send(protocol.SetPlayerNumber{Number: p.Number})
		resp, err := enforce.Request(conn, p, g.killer, protocol.AskName{}, g.cfg.WrongMessageTolerance,
			decodeName, func(protocol.NameResponse) bool { return true })
		if err != nil {
			continue
		}
		p.Name = resp.PlayerName
	}

	for _, p := range g.state.Players {
		conn := g.Connection(p)
		if conn == nil {
			continue
		}
		for _, c := range p.Cards {
			_ = conn.Send(protocol.AddCard{Card: c})
		}
		_ = conn.Send(protocol.ChangeMoney{Amount: p.Money})
		g.SendAll(protocol.MoneyChanged{Player: p.Number, Amount: p.Money})
		for _, other := range g.state.Players {
			if other == p {
				continue
			}
			_ = conn.Send(protocol.AddOpponent{Number: other.Number, PlayerName: other.Name})
		}
	}
}
