package server

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/samunstein/coupgo/internal/client"
	"github.com/samunstein/coupgo/internal/config"
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/logx"
	"github.com/samunstein/coupgo/internal/netconn"
	"github.com/samunstein/coupgo/internal/protocol"
)

// loopbackConn adapts a client.Runtime into a netconn.Connection the server
// drives synchronously, so a whole game runs on one goroutine without
// sockets. Every message round-trips through the real codec on the way in
// and the response does the same on the way out, exercising the wire
// format end to end.
type loopbackConn struct {
	rt      *client.Runtime
	pending []string
}

func newLoopback(strat client.Strategy) *loopbackConn {
	return &loopbackConn{rt: client.New(nil, strat, nil)}
}

var errNoResponse = errors.New("no response queued")

func (l *loopbackConn) Send(m protocol.Message) error {
	line := strings.TrimSuffix(protocol.Encode(m), config.RecordEnd)
	decoded, ok := protocol.Decode(line)
	if !ok {
		return fmt.Errorf("message %q does not survive the codec", m.Name())
	}
	resp, _ := l.rt.Handle(decoded)
	if resp != nil {
		l.pending = append(l.pending, strings.TrimSuffix(protocol.Encode(resp), config.RecordEnd))
	}
	return nil
}

// Receive pops the oldest queued response; an empty queue means the
// strategy had nothing to say to the last prompt, which the server
// experiences as a receive timeout.
func (l *loopbackConn) Receive() (string, error) {
	if len(l.pending) == 0 {
		return "", errNoResponse
	}
	line := l.pending[0]
	l.pending = l.pending[1:]
	return line, nil
}

func (l *loopbackConn) SendAndReceive(m protocol.Message) (string, error) {
	if err := l.Send(m); err != nil {
		return "", err
	}
	return l.Receive()
}

func (l *loopbackConn) SetDeadline(time.Duration) {}
func (l *loopbackConn) Close() error              { return nil }

// deadConn never answers, modeling a player that connected and then hung.
type deadConn struct{}

func (deadConn) Send(protocol.Message) error { return nil }
func (deadConn) Receive() (string, error)    { return "", errors.New("peer gone") }
func (deadConn) SendAndReceive(protocol.Message) (string, error) {
	return "", errors.New("peer gone")
}
func (deadConn) SetDeadline(time.Duration) {}
func (deadConn) Close() error              { return nil }

var (
	_ netconn.Connection = (*loopbackConn)(nil)
	_ netconn.Connection = deadConn{}
)

func testLogger() *logx.Logger { return logx.New("[server-test] ", false) }

func testRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

// newLoopbackGame seats one loopback client per strategy over the given
// deck. A nil deck means a normally shuffled one.
func newLoopbackGame(t *testing.T, cfg config.Game, deck []engine.Card, strats ...client.Strategy) *Game {
	t.Helper()
	conns := make([]netconn.Connection, len(strats))
	for i, s := range strats {
		conns[i] = newLoopback(s)
	}
	r := testRand()
	if deck == nil {
		return New(cfg, conns, testLogger(), r)
	}
	return NewWithDeck(cfg, conns, deck, testLogger(), r)
}

// stateMultiset folds the deck, every hand and the discard pile into one
// card count, the quantity the deck-conservation invariant says never
// changes.
func stateMultiset(g *engine.Game) map[engine.Card]int {
	m := map[engine.Card]int{}
	for _, c := range g.Deck {
		m[c]++
	}
	for _, p := range g.Players {
		for _, c := range p.Cards {
			m[c]++
		}
	}
	for _, c := range g.Dead {
		m[c]++
	}
	return m
}

func repeatCards(c engine.Card, n int) []engine.Card {
	deck := make([]engine.Card, n)
	for i := range deck {
		deck[i] = c
	}
	return deck
}
