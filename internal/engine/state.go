package engine

import (
	"math/rand"

	"github.com/samunstein/coupgo/internal/config"
)

// Game holds the full authoritative state of one running match: the seated
// players in stable seat order, the draw deck and the discard pile. It has
// no notion of connections, turns in progress, or message history; those
// live in internal/resolve and internal/server, which drive this state
// rather than own it.
type Game struct {
	Players []*Player
	Deck    []Card
	// Dead is the public discard pile: every card permanently lost through
	// a card kill or an emergency kill, in reveal order. Deck, all hands
	// and Dead together always hold the initial deck's multiset.
	Dead []Card
	Rand *rand.Rand
}

// NewGame deals a fresh game for numPlayers seats, numbered
// 0..numPlayers-1 in the order the server accepted their connections;
// seat numbers are assigned once and never reused.
func NewGame(cfg config.Game, numPlayers int, r *rand.Rand) *Game {
	return NewGameWithDeck(cfg, numPlayers, NewDeck(cfg.EachCardInDeck, r), r)
}

// NewGameWithDeck is NewGame with a caller-supplied deck, dealt as-is
// without a further shuffle. Deterministic tests use it to force known
// opening hands.
func NewGameWithDeck(cfg config.Game, numPlayers int, deck []Card, r *rand.Rand) *Game {
	g := &Game{
		Deck: deck,
		Rand: r,
	}
	for n := 0; n < numPlayers; n++ {
		p := NewPlayer(n, cfg.StartMoney)
		for i := 0; i < cfg.StartCardsAmount; i++ {
			p.GiveCard(Draw(&g.Deck))
		}
		g.Players = append(g.Players, p)
	}
	return g
}

// PlayerByNumber returns the seat with the given number, or nil if out of
// range. Seat numbers never change and are never reused, so this is a
// stable lookup for the whole game.
func (g *Game) PlayerByNumber(n int) *Player {
	for _, p := range g.Players {
		if p.Number == n {
			return p
		}
	}
	return nil
}

// AlivePlayers returns every seat that still holds influence, in seat
// order.
func (g *Game) AlivePlayers() []*Player {
	alive := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	return alive
}

// OthersAliveExcept returns every alive seat other than exclude, in seat
// order. Used to build challenge/block polling order before randomizing it.
func (g *Game) OthersAliveExcept(exclude *Player) []*Player {
	others := make([]*Player, 0, len(g.Players))
	for _, p := range g.AlivePlayers() {
		if p != exclude {
			others = append(others, p)
		}
	}
	return others
}

// Winner returns the sole surviving player once exactly one remains, and
// false otherwise.
func (g *Game) Winner() (*Player, bool) {
	alive := g.AlivePlayers()
	if len(alive) == 1 {
		return alive[0], true
	}
	return nil, false
}
