package protocol

import (
	"strconv"
	"strings"

	"github.com/samunstein/coupgo/internal/config"
)

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "True":
		return true, true
	case "False":
		return false, true
	default:
		return false, false
	}
}

// SanitizeFreeform replaces FIELD_SEP and RECORD_END inside a client- or
// server-supplied free string with CONTROL_REPLACE before it is put on the
// wire, so a hostile player name or debug string can never forge a field
// boundary.
func SanitizeFreeform(s string) string {
	s = strings.ReplaceAll(s, config.FieldSep, config.ControlReplace)
	s = strings.ReplaceAll(s, config.RecordEnd, config.ControlReplace)
	return s
}

// Encode renders one message as a single wire line, including its
// terminating RECORD_END.
func Encode(m Message) string {
	parts := append([]string{m.Name()}, m.Fields()...)
	return strings.Join(parts, config.FieldSep) + config.RecordEnd
}

// decoder builds a Message from a variant's field list. It returns false if
// the field count or shape doesn't match, which Decode surfaces as an
// overall decode failure rather than a partially-populated message.
type decoder func(fields []string) (Message, bool)

var registry = map[string]decoder{
	"debug_msg":                 decodeDebugMsg,
	"shutdown":                  fixed(Shutdown{}),
	"ask_name":                  fixed(AskName{}),
	"add_opponent":              decodeAddOpponent,
	"set_player_number":         decodeSetPlayerNumber,
	"new_game":                  fixed(NewGame{}),
	"add_card":                  decodeAddCard,
	"remove_card":               decodeRemoveCard,
	"change_money":              decodeChangeMoney,
	"money_changed":             decodeMoneyChanged,
	"player_lost_a_card":        decodePlayerLostACard,
	"a_player_is_dead":          decodeAPlayerIsDead,
	"rules_violation":           decodeRulesViolation,
	"choose_card_to_kill":       fixed(ChooseCardToKill{}),
	"choose_ambassador_cards":   fixed(ChooseAmbassadorCards{}),
	"take_turn":                 fixed(TakeTurn{}),
	"your_action_is_challenged": decodeYourActionIsChallenged,
	"your_block_is_challenged":  decodeYourBlockIsChallenged,
	"do_you_block":              decodeDoYouBlock,
	"do_you_challenge_action":   decodeDoYouChallengeAction,
	"do_you_challenge_block":    decodeDoYouChallengeBlock,
	"log_action_was_taken":      decodeLogActionWasTaken,
	"log_action_was_blocked":    decodeLogActionWasBlocked,
	"log_action_was_challenged": decodeLogActionWasChallenged,
	"log_block_was_challenged":  decodeLogBlockWasChallenged,

	"name_response":           decodeNameResponse,
	"income_decision":         fixed(IncomeDecision{}),
	"foreign_aid_decision":    fixed(ForeignAidDecision{}),
	"tax_decision":            fixed(TaxDecision{}),
	"ambassadate_decision":    fixed(AmbassadateDecision{}),
	"assassinate_decision":    decodeAssassinateDecision,
	"steal_decision":          decodeStealDecision,
	"coup_decision":           decodeCoupDecision,
	"reveal_card":             fixed(RevealCard{}),
	"concede":                 fixed(Concede{}),
	"challenge":               fixed(Challenge{}),
	"allow":                   fixed(Allow{}),
	"block":                   decodeBlock,
	"no_block":                fixed(NoBlock{}),
	"card_message":            decodeCardMessage,
	"ambassador_card_message": decodeAmbassadorCardResponse,
}

func fixed(m Message) decoder {
	return func(fields []string) (Message, bool) {
		if len(fields) != 0 {
			return nil, false
		}
		return m, true
	}
}

// Decode parses one RECORD_END-stripped wire line into a Message. It never
// panics: any malformed or unrecognized line yields ok=false, and the
// caller decides what a garbage line means (for the server, a rule
// violation by the sender).
func Decode(line string) (Message, bool) {
	parts := strings.Split(line, config.FieldSep)
	if len(parts) == 0 || parts[0] == "" {
		return nil, false
	}
	dec, ok := registry[parts[0]]
	if !ok {
		return nil, false
	}
	return dec(parts[1:])
}

// Split breaks a buffered read into individual RECORD_END-terminated lines,
// discarding a trailing empty segment (the common case where buf already
// ends in RECORD_END) and any fully-empty lines a stray RECORD_END run
// would otherwise produce.
func Split(buf string) []string {
	raw := strings.Split(buf, config.RecordEnd)
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
