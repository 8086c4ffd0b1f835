package protocol

import (
	"strconv"

	"github.com/samunstein/coupgo/internal/engine"
)

// Client->Server responses, one struct per wire variant with positional
// fields.

type NameResponse struct{ PlayerName string }

func (m NameResponse) Name() string     { return "name_response" }
func (m NameResponse) Fields() []string { return []string{SanitizeFreeform(m.PlayerName)} }

// non-targeted action decisions

type IncomeDecision struct{}

func (m IncomeDecision) Name() string              { return "income_decision" }
func (m IncomeDecision) Fields() []string          { return nil }
func (m IncomeDecision) Action() engine.ActionKind { return engine.Income }
func (m IncomeDecision) Target() (int, bool)       { return 0, false }

type ForeignAidDecision struct{}

func (m ForeignAidDecision) Name() string              { return "foreign_aid_decision" }
func (m ForeignAidDecision) Fields() []string          { return nil }
func (m ForeignAidDecision) Action() engine.ActionKind { return engine.ForeignAid }
func (m ForeignAidDecision) Target() (int, bool)       { return 0, false }

type TaxDecision struct{}

func (m TaxDecision) Name() string              { return "tax_decision" }
func (m TaxDecision) Fields() []string          { return nil }
func (m TaxDecision) Action() engine.ActionKind { return engine.Tax }
func (m TaxDecision) Target() (int, bool)       { return 0, false }

type AmbassadateDecision struct{}

func (m AmbassadateDecision) Name() string              { return "ambassadate_decision" }
func (m AmbassadateDecision) Fields() []string          { return nil }
func (m AmbassadateDecision) Action() engine.ActionKind { return engine.Ambassadate }
func (m AmbassadateDecision) Target() (int, bool)       { return 0, false }

// targeted action decisions

type AssassinateDecision struct{ TargetNum int }

func (m AssassinateDecision) Name() string              { return "assassinate_decision" }
func (m AssassinateDecision) Fields() []string          { return []string{strconv.Itoa(m.TargetNum)} }
func (m AssassinateDecision) Action() engine.ActionKind { return engine.Assassinate }
func (m AssassinateDecision) Target() (int, bool)       { return m.TargetNum, true }

type StealDecision struct{ TargetNum int }

func (m StealDecision) Name() string              { return "steal_decision" }
func (m StealDecision) Fields() []string          { return []string{strconv.Itoa(m.TargetNum)} }
func (m StealDecision) Action() engine.ActionKind { return engine.Steal }
func (m StealDecision) Target() (int, bool)       { return m.TargetNum, true }

type CoupDecision struct{ TargetNum int }

func (m CoupDecision) Name() string              { return "coup_decision" }
func (m CoupDecision) Fields() []string          { return []string{strconv.Itoa(m.TargetNum)} }
func (m CoupDecision) Action() engine.ActionKind { return engine.Coup }
func (m CoupDecision) Target() (int, bool)       { return m.TargetNum, true }

// reveal-or-concede, answering a challenge directed at the responder

type RevealCard struct{}

func (m RevealCard) Name() string     { return "reveal_card" }
func (m RevealCard) Fields() []string { return nil }
func (m RevealCard) Reveals() bool    { return true }

type Concede struct{}

func (m Concede) Name() string     { return "concede" }
func (m Concede) Fields() []string { return nil }
func (m Concede) Reveals() bool    { return false }

// challenge-or-allow, answering "do you challenge"

type Challenge struct{}

func (m Challenge) Name() string     { return "challenge" }
func (m Challenge) Fields() []string { return nil }
func (m Challenge) Challenges() bool { return true }

type Allow struct{}

func (m Allow) Name() string     { return "allow" }
func (m Allow) Fields() []string { return nil }
func (m Allow) Challenges() bool { return false }

// block-or-no_block, answering "do you block"

type Block struct{ Card engine.Card }

func (m Block) Name() string               { return "block" }
func (m Block) Fields() []string           { return []string{m.Card.String()} }
func (m Block) Block() (engine.Card, bool) { return m.Card, true }

type NoBlock struct{}

func (m NoBlock) Name() string               { return "no_block" }
func (m NoBlock) Fields() []string           { return nil }
func (m NoBlock) Block() (engine.Card, bool) { return 0, false }

// card-choice responses

type CardMessage struct{ Card engine.Card }

func (m CardMessage) Name() string     { return "card_message" }
func (m CardMessage) Fields() []string { return []string{m.Card.String()} }

type AmbassadorCardResponse struct {
	Card1 engine.Card
	Card2 engine.Card
}

func (m AmbassadorCardResponse) Name() string { return "ambassador_card_message" }
func (m AmbassadorCardResponse) Fields() []string {
	return []string{m.Card1.String(), m.Card2.String()}
}
