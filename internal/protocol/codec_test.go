package protocol

import (
	"strings"
	"testing"

	"github.com/samunstein/coupgo/internal/engine"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cases := []Message{
		DebugMsg{Text: "hello"},
		Shutdown{},
		AskName{},
		AddOpponent{Number: 1, PlayerName: "alice"},
		SetPlayerNumber{Number: 0},
		AddCard{Card: engine.Duke},
		ChangeMoney{Amount: -3},
		MoneyChanged{Player: 2, Amount: 7},
		PlayerLostACard{Player: 1, Card: engine.Contessa},
		APlayerIsDead{Player: 1},
		RulesViolation{Player: 0},
		YourActionIsChallenged{Action: engine.Assassinate, Target: 1, Challenger: 2},
		YourBlockIsChallenged{Action: engine.Steal, ActionDoer: 0, BlockCard: engine.Captain, Challenger: 2},
		DoYouChallengeBlock{Action: engine.Steal, ActionDoer: 0, Target: 1, BlockCard: engine.Ambassador, Blocker: 1},
		LogActionWasChallenged{Action: engine.Tax, ActionDoer: 0, Target: 0, Challenger: 1, Success: true},
		LogBlockWasChallenged{Action: engine.Assassinate, ActionDoer: 0, Target: 1, BlockCard: engine.Contessa, Blocker: 1, Challenger: 2, Success: false},
		NameResponse{PlayerName: "bob"},
		AssassinateDecision{TargetNum: 2},
		RevealCard{},
		Concede{},
		Challenge{},
		Allow{},
		Block{Card: engine.Duke},
		NoBlock{},
		CardMessage{Card: engine.Ambassador},
		AmbassadorCardResponse{Card1: engine.Duke, Card2: engine.Captain},
	}

	for _, want := range cases {
		line := Encode(want)
		require.True(t, strings.HasSuffix(line, "\n"))
		got, ok := Decode(strings.TrimSuffix(line, "\n"))
		require.True(t, ok, "decode failed for %q", line)
		require.Equal(t, want, got)
	}
}

func TestDecodeMalformedNeverOk(t *testing.T) {
	bad := []string{
		"",
		"not_a_real_command",
		"add_card;not_a_card",
		"add_opponent;not_an_int;name",
		"income_decision;unexpected_field",
	}
	for _, line := range bad {
		_, ok := Decode(line)
		require.False(t, ok, "expected decode failure for %q", line)
	}
}

func TestSanitizeFreeform(t *testing.T) {
	require.Equal(t, "a_b_c", SanitizeFreeform("a;b\nc"))
}

func TestSplitDiscardsEmptyLines(t *testing.T) {
	buf := Encode(Allow{}) + Encode(Challenge{})
	lines := Split(buf)
	require.Equal(t, []string{"allow", "challenge"}, lines)
}
