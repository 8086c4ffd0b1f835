package server

import (
	"math/rand"
	"testing"

	"github.com/samunstein/coupgo/internal/client/strategy"
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/netconn"
	"github.com/stretchr/testify/require"
)

const randomGameRuns = 500

func runs(t *testing.T) int {
	if testing.Short() {
		return 25
	}
	return randomGameRuns
}

// playRandomGame runs one full match of random-strategy players turn by
// turn, asserting deck conservation at every turn boundary, and returns
// once a single player remains.
func playRandomGame(t *testing.T, players int, wrongProb float64, onlyOneWrong, crash bool, seed int64) {
	t.Helper()
	cfg := testConfig()
	cfg.CrashOnViolation = crash

	conns := make([]netconn.Connection, players)
	for i := range conns {
		conns[i] = newLoopback(&strategy.Random{
			R:                       rand.New(rand.NewSource(seed*31 + int64(i))),
			WrongMessageProbability: wrongProb,
			OnlyOneWrong:            onlyOneWrong,
		})
	}
	g := New(cfg, conns, testLogger(), rand.New(rand.NewSource(seed)))
	g.SetupPlayers()
	initial := stateMultiset(g.state)

	queue := append([]*engine.Player(nil), g.state.Players...)
	for turns := 0; ; turns++ {
		require.Less(t, turns, 10000, "game did not terminate")
		if _, done := g.state.Winner(); done {
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
		require.Equal(t, initial, stateMultiset(g.state), "deck conservation broken on turn %d", turns)
	}

	alive := g.state.AlivePlayers()
	require.Len(t, alive, 1)
}

func TestRandomGamesTerminateCleanly(t *testing.T) {
	// Well-behaved random players: any emergency kill would panic.
	for i := 0; i < runs(t); i++ {
		playRandomGame(t, 2, 0, false, true, int64(i))
	}
}

func TestRandomFourPlayerGames(t *testing.T) {
	for i := 0; i < runs(t); i++ {
		playRandomGame(t, 4, 0, false, true, int64(i))
	}
}

func TestMisbehavingClientsDoNotCrashTheGame(t *testing.T) {
	for i := 0; i < runs(t); i++ {
		playRandomGame(t, 2, 0.2, false, false, int64(i))
	}
}

func TestSingleViolationsStayUnderTolerance(t *testing.T) {
	// A client that never sends two wrong messages in a row must survive
	// the whole game, so crash-on-violation stays safe to enable.
	for i := 0; i < runs(t); i++ {
		playRandomGame(t, 2, 0.2, true, true, int64(i))
	}
}
