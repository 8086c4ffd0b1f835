package server

import (
	"testing"

	"github.com/samunstein/coupgo/internal/client"
	"github.com/samunstein/coupgo/internal/client/strategy"
	"github.com/samunstein/coupgo/internal/config"
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/netconn"
	"github.com/samunstein/coupgo/internal/protocol"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Game {
	cfg := config.Default()
	cfg.CrashOnViolation = true
	return cfg
}

func firstAliveOpponent(s *client.State) int {
	best := -1
	for n, o := range s.Opponents {
		if o.CardsAmount > 0 && (best == -1 || n < best) {
			best = n
		}
	}
	return best
}

func incomeThenAssassinate(s *client.State) protocol.Message {
	if s.Money >= 3 {
		return protocol.AssassinateDecision{TargetNum: firstAliveOpponent(s)}
	}
	return protocol.IncomeDecision{}
}

func alwaysTax(*client.State) protocol.Message        { return protocol.TaxDecision{} }
func alwaysForeignAid(*client.State) protocol.Message { return protocol.ForeignAidDecision{} }

func TestQuietAssassinate(t *testing.T) {
	g := newLoopbackGame(t, testConfig(), nil,
		strategy.Mock{Action: incomeThenAssassinate},
		strategy.Mock{Action: incomeThenAssassinate},
	)
	g.SetupPlayers()
	p0, p1 := g.state.Players[0], g.state.Players[1]

	g.RunTurn(p0) // income: 2 -> 3
	g.RunTurn(p1) // income: 2 -> 3
	g.RunTurn(p0) // assassinate p1

	require.Equal(t, 0, p0.Money)
	require.Len(t, p0.Cards, 2)
	require.Len(t, p1.Cards, 1)
	require.True(t, p0.Alive())
	require.True(t, p1.Alive())
}

func TestCorrectChallengeOfAssassinate(t *testing.T) {
	// Everyone is dealt Contessas, so the actor cannot actually back an
	// Assassinate claim.
	g := newLoopbackGame(t, testConfig(), repeatCards(engine.Contessa, 4),
		strategy.Mock{Action: incomeThenAssassinate},
		strategy.Mock{Action: incomeThenAssassinate, Challenge: true},
	)
	p0, p1 := g.state.Players[0], g.state.Players[1]
	p0.Money = 3
	g.SetupPlayers()

	g.RunTurn(p0)

	// The challenge succeeded before the cost fell due.
	require.Equal(t, 3, p0.Money)
	require.Len(t, p0.Cards, 1)
	require.Len(t, p1.Cards, 2)
}

func TestWrongChallengeOfTax(t *testing.T) {
	g := newLoopbackGame(t, testConfig(), repeatCards(engine.Duke, 5),
		strategy.Mock{Action: alwaysTax},
		strategy.Mock{Action: alwaysTax, Challenge: true},
	)
	p0, p1 := g.state.Players[0], g.state.Players[1]
	g.SetupPlayers()
	before := stateMultiset(g.state)

	g.RunTurn(p0)

	require.Equal(t, 5, p0.Money)
	require.Len(t, p0.Cards, 2)
	require.Len(t, p1.Cards, 1)
	require.Len(t, g.state.Deck, 1)
	require.Equal(t, before, stateMultiset(g.state))
}

func TestBlockAssassinateWithContessa(t *testing.T) {
	g := newLoopbackGame(t, testConfig(), repeatCards(engine.Contessa, 5),
		strategy.Mock{Action: incomeThenAssassinate},
		strategy.Mock{Action: incomeThenAssassinate, Block: true},
	)
	p0, p1 := g.state.Players[0], g.state.Players[1]
	p0.Money = 3
	g.SetupPlayers()

	g.RunTurn(p0)

	// A successful block still costs the assassin their 3 coins.
	require.Equal(t, 0, p0.Money)
	require.Len(t, p1.Cards, 2)
}

func TestBlockChallengeFailsAgainstRealDuke(t *testing.T) {
	// Foreign aid, blocked with an actually-held Duke, challenged by the
	// actor: the block stands, the challenger pays a card, no coins move.
	g := newLoopbackGame(t, testConfig(), repeatCards(engine.Duke, 5),
		strategy.Mock{Action: alwaysForeignAid, ChallengeBlock: true},
		strategy.Mock{Action: alwaysForeignAid, Block: true},
	)
	p0, p1 := g.state.Players[0], g.state.Players[1]
	g.SetupPlayers()

	g.RunTurn(p0)

	require.Equal(t, 2, p0.Money)
	require.Len(t, p0.Cards, 1)
	require.Len(t, p1.Cards, 2)
}

func TestBlockChallengeSucceedsAgainstBluffedDuke(t *testing.T) {
	// Nobody holds a Duke, so the foreign-aid block is a bluff; the
	// challenge collapses it and the action goes through.
	g := newLoopbackGame(t, testConfig(), repeatCards(engine.Contessa, 5),
		strategy.Mock{Action: alwaysForeignAid, ChallengeBlock: true},
		strategy.Mock{Action: alwaysForeignAid, Block: true},
	)
	p0, p1 := g.state.Players[0], g.state.Players[1]
	g.SetupPlayers()

	g.RunTurn(p0)

	require.Equal(t, 4, p0.Money)
	require.Len(t, p0.Cards, 2)
	require.Len(t, p1.Cards, 1)
}

func TestForcedCoupViolationEmergencyKills(t *testing.T) {
	cfg := testConfig()
	cfg.CrashOnViolation = false
	g := newLoopbackGame(t, cfg, nil,
		strategy.Mock{Action: alwaysForeignAid},
		strategy.Mock{Action: alwaysForeignAid},
	)
	p0, p1 := g.state.Players[0], g.state.Players[1]
	p0.Money = 10
	initialHand := append([]engine.Card(nil), p0.Cards...)

	g.Run()

	require.False(t, p0.Alive())
	require.True(t, p1.Alive())
	// Emergency kill reveals the victim's remaining cards in hand order.
	require.Equal(t, initialHand, g.state.Dead)
	winner, ok := g.state.Winner()
	require.True(t, ok)
	require.Equal(t, p1, winner)
}

func TestForcedCoupViolationPanicsInCrashMode(t *testing.T) {
	g := newLoopbackGame(t, testConfig(), nil,
		strategy.Mock{Action: alwaysForeignAid},
		strategy.Mock{Action: alwaysForeignAid},
	)
	g.state.Players[0].Money = 10

	require.Panics(t, func() { g.Run() })
}

func TestUnresponsivePlayerIsKilledAtSetup(t *testing.T) {
	cfg := testConfig()
	cfg.CrashOnViolation = false
	conns := []netconn.Connection{deadConn{}, newLoopback(strategy.Mock{Action: alwaysForeignAid})}
	g := New(cfg, conns, testLogger(), testRand())

	g.Run()

	require.False(t, g.state.Players[0].Alive())
	winner, ok := g.state.Winner()
	require.True(t, ok)
	require.Equal(t, 1, winner.Number)
}

func TestAmbassadatePreservesHandAndDeckSizes(t *testing.T) {
	g := newLoopbackGame(t, testConfig(), nil,
		strategy.Mock{Action: func(*client.State) protocol.Message { return protocol.AmbassadateDecision{} }},
		strategy.Mock{Action: alwaysForeignAid},
	)
	p0 := g.state.Players[0]
	g.SetupPlayers()
	before := stateMultiset(g.state)
	deckSize := len(g.state.Deck)

	g.RunTurn(p0)

	require.Len(t, p0.Cards, 2)
	require.Len(t, g.state.Deck, deckSize)
	require.Equal(t, 2, p0.Money)
	require.Equal(t, before, stateMultiset(g.state))
}

// recordingMock counts the log broadcasts it receives, so tests can assert
// which resolution steps the server reported as completed.
type recordingMock struct {
	strategy.Mock
	taken            []engine.ActionKind
	actionChallenges int
	blockChallenges  int
}

func (r *recordingMock) ActionWasTaken(s *client.State, action engine.ActionKind, doer, target int) {
	r.taken = append(r.taken, action)
}

func (r *recordingMock) ActionWasChallenged(s *client.State, action engine.ActionKind, doer, target, challenger int, success bool) {
	r.actionChallenges++
}

func (r *recordingMock) BlockWasChallenged(s *client.State, action engine.ActionKind, doer, target int, blockCard engine.Card, blocker, challenger int, success bool) {
	r.blockChallenges++
}

func stealFirstOpponent(s *client.State) protocol.Message {
	return protocol.StealDecision{TargetNum: firstAliveOpponent(s)}
}

// badCardKiller always names a card it does not hold when told to give one
// up, so the card-kill prompt burns through the tolerance and gets it
// emergency-killed mid-resolution.
type badCardKiller struct {
	strategy.Mock
	card engine.Card
}

func (b *badCardKiller) ChooseCardToKill(*client.State) engine.Card { return b.card }

// badAmbassador never picks a returnable pair, dying mid-Ambassadate.
type badAmbassador struct {
	strategy.Mock
}

func (badAmbassador) ChooseAmbassadorCards(*client.State, []engine.Card) (engine.Card, engine.Card) {
	return engine.Assassin, engine.Assassin
}

func TestActorKilledMidAmbassadateIsNotLoggedAsTaken(t *testing.T) {
	cfg := testConfig()
	cfg.CrashOnViolation = false
	rec := &recordingMock{Mock: strategy.Mock{Action: alwaysForeignAid}}
	g := newLoopbackGame(t, cfg, repeatCards(engine.Contessa, 7),
		badAmbassador{Mock: strategy.Mock{Action: func(*client.State) protocol.Message { return protocol.AmbassadateDecision{} }}},
		rec,
	)
	p0, p1 := g.state.Players[0], g.state.Players[1]
	g.SetupPlayers()
	before := stateMultiset(g.state)

	g.RunTurn(p0)

	require.False(t, p0.Alive())
	// The drawn cards were in the actor's hand when the emergency kill
	// revealed it, so all four land in the discard pile.
	require.Len(t, g.state.Dead, 4)
	require.Empty(t, rec.taken)
	require.True(t, p1.Alive())
	require.Equal(t, before, stateMultiset(g.state))
}

func TestActorKilledAfterConcedingIsNotLoggedAsChallenged(t *testing.T) {
	cfg := testConfig()
	cfg.CrashOnViolation = false
	rec := &recordingMock{Mock: strategy.Mock{Action: alwaysForeignAid, Challenge: true}}
	g := newLoopbackGame(t, cfg, repeatCards(engine.Contessa, 5),
		&badCardKiller{Mock: strategy.Mock{Action: alwaysTax}, card: engine.Assassin},
		rec,
	)
	p0, p1 := g.state.Players[0], g.state.Players[1]
	g.SetupPlayers()

	g.RunTurn(p0)

	// The actor held no Duke, conceded the challenge, then failed to pick
	// a card to give up: the challenge never resolved.
	require.False(t, p0.Alive())
	require.Zero(t, rec.actionChallenges)
	require.Equal(t, 2, p1.Money)
	require.Len(t, p1.Cards, 2)
}

func TestActorKilledAfterBlockChallengeIsNotLoggedAsResolved(t *testing.T) {
	cfg := testConfig()
	cfg.CrashOnViolation = false
	rec := &recordingMock{Mock: strategy.Mock{Action: alwaysForeignAid, Block: true}}
	g := newLoopbackGame(t, cfg, repeatCards(engine.Duke, 5),
		&badCardKiller{Mock: strategy.Mock{Action: alwaysForeignAid, ChallengeBlock: true}, card: engine.Contessa},
		rec,
	)
	p0, p1 := g.state.Players[0], g.state.Players[1]
	g.SetupPlayers()

	g.RunTurn(p0)

	// The blocker revealed a real Duke; the actor then failed to pay for
	// the lost challenge and was removed, so neither the block challenge
	// nor the block itself is logged as resolved.
	require.False(t, p0.Alive())
	require.Zero(t, rec.blockChallenges)
	require.Len(t, p1.Cards, 2)
	require.Equal(t, 2, p0.Money)
}

func TestStealCapsAtTargetStake(t *testing.T) {
	cases := []struct {
		name                  string
		targetMoney           int
		wantActor, wantTarget int
	}{
		{"two or more coins", 2, 4, 0},
		{"single coin", 1, 3, 0},
		{"empty stake", 0, 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recordingMock{Mock: strategy.Mock{Action: stealFirstOpponent}}
			g := newLoopbackGame(t, testConfig(), nil,
				rec,
				strategy.Mock{Action: alwaysForeignAid},
			)
			p0, p1 := g.state.Players[0], g.state.Players[1]
			p1.Money = tc.targetMoney
			g.SetupPlayers()
			sum := p0.Money + p1.Money

			g.RunTurn(p0)

			require.Equal(t, tc.wantActor, p0.Money)
			require.Equal(t, tc.wantTarget, p1.Money)
			require.Equal(t, sum, p0.Money+p1.Money)
			// A zero-coin steal is still a completed action.
			require.Equal(t, []engine.ActionKind{engine.Steal}, rec.taken)
		})
	}
}
