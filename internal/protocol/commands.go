package protocol

import (
	"strconv"

	"github.com/samunstein/coupgo/internal/engine"
)

// Server->Client commands, one struct per wire variant with positional
// fields.

type DebugMsg struct{ Text string }

func (m DebugMsg) Name() string     { return "debug_msg" }
func (m DebugMsg) Fields() []string { return []string{SanitizeFreeform(m.Text)} }

type Shutdown struct{}

func (m Shutdown) Name() string     { return "shutdown" }
func (m Shutdown) Fields() []string { return nil }

type AskName struct{}

func (m AskName) Name() string     { return "ask_name" }
func (m AskName) Fields() []string { return nil }

type AddOpponent struct {
	Number     int
	PlayerName string
}

func (m AddOpponent) Name() string { return "add_opponent" }
func (m AddOpponent) Fields() []string {
	return []string{strconv.Itoa(m.Number), SanitizeFreeform(m.PlayerName)}
}

type SetPlayerNumber struct{ Number int }

func (m SetPlayerNumber) Name() string     { return "set_player_number" }
func (m SetPlayerNumber) Fields() []string { return []string{strconv.Itoa(m.Number)} }

// NewGame resets a client's mirrored state. The single-match server never
// emits it, but a rematch-capable one could without a wire change.
type NewGame struct{}

func (m NewGame) Name() string     { return "new_game" }
func (m NewGame) Fields() []string { return nil }

type AddCard struct{ Card engine.Card }

func (m AddCard) Name() string     { return "add_card" }
func (m AddCard) Fields() []string { return []string{m.Card.String()} }

type RemoveCard struct{ Card engine.Card }

func (m RemoveCard) Name() string     { return "remove_card" }
func (m RemoveCard) Fields() []string { return []string{m.Card.String()} }

type ChangeMoney struct{ Amount int }

func (m ChangeMoney) Name() string     { return "change_money" }
func (m ChangeMoney) Fields() []string { return []string{strconv.Itoa(m.Amount)} }

// MoneyChanged is the public companion of ChangeMoney, sent to everyone
// rather than just the affected player, so clients can track every stake
// without reconstructing it from action logs.
type MoneyChanged struct {
	Player int
	Amount int
}

func (m MoneyChanged) Name() string { return "money_changed" }
func (m MoneyChanged) Fields() []string {
	return []string{strconv.Itoa(m.Player), strconv.Itoa(m.Amount)}
}

type PlayerLostACard struct {
	Player int
	Card   engine.Card
}

func (m PlayerLostACard) Name() string { return "player_lost_a_card" }
func (m PlayerLostACard) Fields() []string {
	return []string{strconv.Itoa(m.Player), m.Card.String()}
}

type APlayerIsDead struct{ Player int }

func (m APlayerIsDead) Name() string     { return "a_player_is_dead" }
func (m APlayerIsDead) Fields() []string { return []string{strconv.Itoa(m.Player)} }

type RulesViolation struct{ Player int }

func (m RulesViolation) Name() string     { return "rules_violation" }
func (m RulesViolation) Fields() []string { return []string{strconv.Itoa(m.Player)} }

type ChooseCardToKill struct{}

func (m ChooseCardToKill) Name() string     { return "choose_card_to_kill" }
func (m ChooseCardToKill) Fields() []string { return nil }

type ChooseAmbassadorCards struct{}

func (m ChooseAmbassadorCards) Name() string     { return "choose_ambassador_cards" }
func (m ChooseAmbassadorCards) Fields() []string { return nil }

type TakeTurn struct{}

func (m TakeTurn) Name() string     { return "take_turn" }
func (m TakeTurn) Fields() []string { return nil }

type YourActionIsChallenged struct {
	Action     engine.ActionKind
	Target     int
	Challenger int
}

func (m YourActionIsChallenged) Name() string { return "your_action_is_challenged" }
func (m YourActionIsChallenged) Fields() []string {
	return []string{m.Action.String(), strconv.Itoa(m.Target), strconv.Itoa(m.Challenger)}
}

type YourBlockIsChallenged struct {
	Action     engine.ActionKind
	ActionDoer int
	BlockCard  engine.Card
	Challenger int
}

func (m YourBlockIsChallenged) Name() string { return "your_block_is_challenged" }
func (m YourBlockIsChallenged) Fields() []string {
	return []string{m.Action.String(), strconv.Itoa(m.ActionDoer), m.BlockCard.String(), strconv.Itoa(m.Challenger)}
}

type DoYouBlock struct {
	Action     engine.ActionKind
	ActionDoer int
}

func (m DoYouBlock) Name() string { return "do_you_block" }
func (m DoYouBlock) Fields() []string {
	return []string{m.Action.String(), strconv.Itoa(m.ActionDoer)}
}

type DoYouChallengeAction struct {
	Action     engine.ActionKind
	ActionDoer int
	Target     int
}

func (m DoYouChallengeAction) Name() string { return "do_you_challenge_action" }
func (m DoYouChallengeAction) Fields() []string {
	return []string{m.Action.String(), strconv.Itoa(m.ActionDoer), strconv.Itoa(m.Target)}
}

type DoYouChallengeBlock struct {
	Action     engine.ActionKind
	ActionDoer int
	Target     int
	BlockCard  engine.Card
	Blocker    int
}

func (m DoYouChallengeBlock) Name() string { return "do_you_challenge_block" }
func (m DoYouChallengeBlock) Fields() []string {
	return []string{
		m.Action.String(), strconv.Itoa(m.ActionDoer), strconv.Itoa(m.Target),
		m.BlockCard.String(), strconv.Itoa(m.Blocker),
	}
}

type LogActionWasTaken struct {
	Action     engine.ActionKind
	ActionDoer int
	Target     int
}

func (m LogActionWasTaken) Name() string { return "log_action_was_taken" }
func (m LogActionWasTaken) Fields() []string {
	return []string{m.Action.String(), strconv.Itoa(m.ActionDoer), strconv.Itoa(m.Target)}
}

type LogActionWasBlocked struct {
	Action     engine.ActionKind
	ActionDoer int
	Target     int
	BlockCard  engine.Card
	Blocker    int
}

func (m LogActionWasBlocked) Name() string { return "log_action_was_blocked" }
func (m LogActionWasBlocked) Fields() []string {
	return []string{
		m.Action.String(), strconv.Itoa(m.ActionDoer), strconv.Itoa(m.Target),
		m.BlockCard.String(), strconv.Itoa(m.Blocker),
	}
}

type LogActionWasChallenged struct {
	Action     engine.ActionKind
	ActionDoer int
	Target     int
	Challenger int
	Success    bool
}

func (m LogActionWasChallenged) Name() string { return "log_action_was_challenged" }
func (m LogActionWasChallenged) Fields() []string {
	return []string{
		m.Action.String(), strconv.Itoa(m.ActionDoer), strconv.Itoa(m.Target),
		strconv.Itoa(m.Challenger), formatBool(m.Success),
	}
}

type LogBlockWasChallenged struct {
	Action     engine.ActionKind
	ActionDoer int
	Target     int
	BlockCard  engine.Card
	Blocker    int
	Challenger int
	Success    bool
}

func (m LogBlockWasChallenged) Name() string { return "log_block_was_challenged" }
func (m LogBlockWasChallenged) Fields() []string {
	return []string{
		m.Action.String(), strconv.Itoa(m.ActionDoer), strconv.Itoa(m.Target),
		m.BlockCard.String(), strconv.Itoa(m.Blocker),
		strconv.Itoa(m.Challenger), formatBool(m.Success),
	}
}
