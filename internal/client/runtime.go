package client

import (
	"github.com/samunstein/coupgo/internal/config"
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/logx"
	"github.com/samunstein/coupgo/internal/netconn"
	"github.com/samunstein/coupgo/internal/protocol"
)

// Runtime drives one connection's receive/dispatch loop for the lifetime
// of a match: receive a line, decode it, hand it to the strategy, send
// back whatever response (if any) the strategy produced.
type Runtime struct {
	Conn     netconn.Connection
	Strategy Strategy
	Log      *logx.Logger
	state    *State
}

// New builds a Runtime ready to Run.
func New(conn netconn.Connection, strat Strategy, log *logx.Logger) *Runtime {
	return &Runtime{Conn: conn, Strategy: strat, Log: log, state: newState()}
}

// Run blocks until the server sends Shutdown or the connection errors.
func (r *Runtime) Run() error {
	for {
		line, err := r.Conn.Receive()
		if err != nil {
			return err
		}
		if r.Log != nil {
			r.Log.Debugf("recv %q", line)
		}
		msg, ok := protocol.Decode(line)
		if !ok {
			if r.Log != nil {
				r.Log.Errorf("unparseable line from server: %q", line)
			}
			continue
		}

		resp, shutdown := r.Handle(msg)
		if resp != nil {
			if err := r.Conn.Send(resp); err != nil {
				return err
			}
		}
		if shutdown {
			return nil
		}
	}
}

// State exposes the mirrored public state, mainly for tests that want to
// assert on what a Runtime has learned.
func (r *Runtime) State() *State { return r.state }

// Handle dispatches one already-decoded server command to the strategy and
// returns the response to send back, if the command calls for one. Run uses
// it for every received line; tests and in-process loopback harnesses can
// call it directly.
func (r *Runtime) Handle(msg protocol.Message) (resp protocol.Message, shutdown bool) {
	s := r.state
	strat := r.Strategy
	switch m := msg.(type) {
	case protocol.DebugMsg:
		strat.DebugMessage(s, m.Text)
	case protocol.Shutdown:
		strat.Shutdown(s)
		return nil, true
	case protocol.AskName:
		name := strat.AskName(s)
		s.Name = name
		return protocol.NameResponse{PlayerName: name}, false
	case protocol.AddOpponent:
		o := s.opponent(m.Number)
		o.Name = m.PlayerName
		o.CardsAmount = config.StartCardsAmount
	case protocol.SetPlayerNumber:
		s.Number = m.Number
	case protocol.NewGame:
		*s = *newState()
	case protocol.AddCard:
		s.Cards = append(s.Cards, m.Card)
	case protocol.RemoveCard:
		removeOne(&s.Cards, m.Card)
	case protocol.ChangeMoney:
		s.Money += m.Amount
	case protocol.MoneyChanged:
		if m.Player == s.Number {
			break
		}
		o := s.opponent(m.Player)
		o.Money += m.Amount
		strat.MoneyChanged(s, m.Player, m.Amount)
	case protocol.PlayerLostACard:
		if m.Player != s.Number {
			o := s.opponent(m.Player)
			o.DeadCards = append(o.DeadCards, m.Card)
			if o.CardsAmount > 0 {
				o.CardsAmount--
			}
		}
		strat.PlayerLostACard(s, m.Player, m.Card)
	case protocol.APlayerIsDead:
		strat.APlayerIsDead(s, m.Player)
	case protocol.RulesViolation:
		strat.RulesViolation(s, m.Player)
	case protocol.ChooseCardToKill:
		return protocol.CardMessage{Card: strat.ChooseCardToKill(s)}, false
	case protocol.ChooseAmbassadorCards:
		c1, c2 := strat.ChooseAmbassadorCards(s, s.Cards)
		return protocol.AmbassadorCardResponse{Card1: c1, Card2: c2}, false
	case protocol.TakeTurn:
		return strat.TakeTurn(s), false
	case protocol.YourActionIsChallenged:
		return strat.YourActionIsChallenged(s, m.Action, m.Target, m.Challenger), false
	case protocol.YourBlockIsChallenged:
		return strat.YourBlockIsChallenged(s, m.Action, m.ActionDoer, m.BlockCard, m.Challenger), false
	case protocol.DoYouBlock:
		return strat.DoYouBlock(s, m.Action, m.ActionDoer), false
	case protocol.DoYouChallengeAction:
		return strat.DoYouChallengeAction(s, m.Action, m.ActionDoer, m.Target), false
	case protocol.DoYouChallengeBlock:
		return strat.DoYouChallengeBlock(s, m.Action, m.ActionDoer, m.Target, m.BlockCard, m.Blocker), false
	case protocol.LogActionWasTaken:
		strat.ActionWasTaken(s, m.Action, m.ActionDoer, m.Target)
	case protocol.LogActionWasBlocked:
		strat.ActionWasBlocked(s, m.Action, m.ActionDoer, m.Target, m.BlockCard, m.Blocker)
	case protocol.LogActionWasChallenged:
		strat.ActionWasChallenged(s, m.Action, m.ActionDoer, m.Target, m.Challenger, m.Success)
	case protocol.LogBlockWasChallenged:
		strat.BlockWasChallenged(s, m.Action, m.ActionDoer, m.Target, m.BlockCard, m.Blocker, m.Challenger, m.Success)
	}
	return nil, false
}

// removeOne drops the first occurrence of c from *cards, mirroring
// engine.Player.RemoveCard but on the client's own mirrored hand.
func removeOne(cards *[]engine.Card, c engine.Card) {
	for i, held := range *cards {
		if held == c {
			*cards = append((*cards)[:i], (*cards)[i+1:]...)
			return
		}
	}
}
