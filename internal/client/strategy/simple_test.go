package strategy

import (
	"testing"

	"github.com/samunstein/coupgo/internal/client"
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/protocol"
	"github.com/stretchr/testify/require"
)

func stateWith(money int, cards []engine.Card, opponents ...int) *client.State {
	s := &client.State{
		Number:    0,
		Money:     money,
		Cards:     cards,
		Opponents: map[int]*client.Opponent{},
	}
	for _, n := range opponents {
		s.Opponents[n] = &client.Opponent{Number: n, CardsAmount: 2}
	}
	return s
}

func TestSimpleTakeTurnProgression(t *testing.T) {
	s := stateWith(2, []engine.Card{engine.Duke, engine.Duke}, 1, 2)

	require.Equal(t, protocol.IncomeDecision{}, Simple{}.TakeTurn(s))

	s.Money = 3
	require.Equal(t, protocol.AssassinateDecision{TargetNum: 1}, Simple{}.TakeTurn(s))

	s.Money = 10
	require.Equal(t, protocol.CoupDecision{TargetNum: 1}, Simple{}.TakeTurn(s))
}

func TestSimpleTargetsFirstLivingOpponent(t *testing.T) {
	s := stateWith(3, []engine.Card{engine.Duke}, 1, 2)
	s.Opponents[1].CardsAmount = 0

	require.Equal(t, protocol.AssassinateDecision{TargetNum: 2}, Simple{}.TakeTurn(s))
}

func TestSimpleRevealsOnlyHeldCards(t *testing.T) {
	s := stateWith(2, []engine.Card{engine.Duke, engine.Contessa}, 1)

	require.Equal(t, protocol.RevealCard{}, Simple{}.YourActionIsChallenged(s, engine.Tax, -1, 1))
	require.Equal(t, protocol.Concede{}, Simple{}.YourActionIsChallenged(s, engine.Steal, -1, 1))
	require.Equal(t, protocol.RevealCard{}, Simple{}.YourBlockIsChallenged(s, engine.Assassinate, 1, engine.Contessa, 1))
	require.Equal(t, protocol.Concede{}, Simple{}.YourBlockIsChallenged(s, engine.Steal, 1, engine.Captain, 1))
}

func TestSimpleBlocksWithHeldCard(t *testing.T) {
	s := stateWith(2, []engine.Card{engine.Contessa, engine.Duke}, 1)

	require.Equal(t, protocol.Block{Card: engine.Contessa}, Simple{}.DoYouBlock(s, engine.Assassinate, 1))
	require.Equal(t, protocol.Block{Card: engine.Duke}, Simple{}.DoYouBlock(s, engine.ForeignAid, 1))
	require.Equal(t, protocol.NoBlock{}, Simple{}.DoYouBlock(s, engine.Steal, 1))
}

func TestMockPolicyFlags(t *testing.T) {
	s := stateWith(2, []engine.Card{engine.Duke}, 1)

	quiet := Mock{}
	require.Equal(t, protocol.Allow{}, quiet.DoYouChallengeAction(s, engine.Tax, 1, -1))
	require.Equal(t, protocol.NoBlock{}, quiet.DoYouBlock(s, engine.ForeignAid, 1))
	require.Equal(t, protocol.Allow{}, quiet.DoYouChallengeBlock(s, engine.ForeignAid, 1, -1, engine.Duke, 0))

	loud := Mock{Challenge: true, Block: true, ChallengeBlock: true}
	require.Equal(t, protocol.Challenge{}, loud.DoYouChallengeAction(s, engine.Tax, 1, -1))
	require.Equal(t, protocol.Block{Card: engine.Duke}, loud.DoYouBlock(s, engine.ForeignAid, 1))
	require.Equal(t, protocol.Challenge{}, loud.DoYouChallengeBlock(s, engine.ForeignAid, 1, -1, engine.Duke, 0))

	// Claiming a block against an unblockable action is never possible.
	require.Equal(t, protocol.NoBlock{}, loud.DoYouBlock(s, engine.Income, 1))
}

func TestMockScriptedAction(t *testing.T) {
	m := Mock{Action: func(*client.State) protocol.Message { return protocol.TaxDecision{} }}
	require.Equal(t, protocol.TaxDecision{}, m.TakeTurn(stateWith(2, nil, 1)))
}
