// Package server orchestrates one running match: dealing and announcing
// the opening state, driving the turn loop, and broadcasting every event
// to the seated connections. It is the sole authority over game state;
// clients only ever learn what it broadcasts or sends them privately.
package server

import (
	"math/rand"

	"github.com/samunstein/coupgo/internal/config"
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/enforce"
	"github.com/samunstein/coupgo/internal/logx"
	"github.com/samunstein/coupgo/internal/netconn"
	"github.com/samunstein/coupgo/internal/protocol"
	"github.com/samunstein/coupgo/internal/resolve"
)

// Game ties the pure engine.Game state to the live connections and
// configuration needed to actually run a match over the network.
type Game struct {
	state  *engine.Game
	conns  map[int]netconn.Connection
	cfg    config.Game
	log    *logx.Logger
	killer enforce.Killer
}

// New builds a Game for the given connections, one per seat in the order
// they were accepted; a player's identity is its accept-order integer for
// the whole match. r seeds the deck shuffle and every later randomized
// polling order, so tests can pass a fixed-seed rand.Rand for determinism.
func New(cfg config.Game, conns []netconn.Connection, log *logx.Logger, r *rand.Rand) *Game {
	return NewWithDeck(cfg, conns, engine.NewDeck(cfg.EachCardInDeck, r), log, r)
}

// NewWithDeck is New with a caller-supplied deck, dealt as-is. Scenario
// tests use it to force known opening hands.
func NewWithDeck(cfg config.Game, conns []netconn.Connection, deck []engine.Card, log *logx.Logger, r *rand.Rand) *Game {
	g := &Game{
		state: engine.NewGameWithDeck(cfg, len(conns), deck, r),
		conns: make(map[int]netconn.Connection, len(conns)),
		cfg:   cfg,
		log:   log,
	}
	for i, c := range conns {
		c.SetDeadline(cfg.ReceiveDeadline)
		g.conns[i] = c
	}
	g.killer = enforce.ForConfig(cfg, resolve.RealKiller{B: g})
	return g
}

// resolve.Broadcaster implementation.

func (g *Game) SendAll(m protocol.Message) {
	for _, p := range g.state.Players {
		if conn, ok := g.conns[p.Number]; ok {
			if err := conn.Send(m); err != nil {
				g.log.Errorf("send to player %d failed: %v", p.Number, err)
			}
		}
	}
}

func (g *Game) Connection(p *engine.Player) netconn.Connection { return g.conns[p.Number] }
func (g *Game) Killer() enforce.Killer                         { return g.killer }
func (g *Game) Config() config.Game                            { return g.cfg }
func (g *Game) Rand() *rand.Rand                                { return g.state.Rand }
func (g *Game) Game() *engine.Game                              { return g.state }
func (g *Game) Log() *logx.Logger                               { return g.log }

// Close tears down every connection; Run calls it when the match ends.
func (g *Game) Close() {
	for _, conn := range g.conns {
		_ = conn.Close()
	}
}
