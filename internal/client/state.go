// Package client implements the client-side runtime: a single-threaded
// receive -> decode -> dispatch-to-strategy -> encode-response loop, plus
// a mirrored read-only view of public game state for strategies to reason
// about.
package client

import "github.com/samunstein/coupgo/internal/engine"

// Opponent mirrors what this client can know about one other seat: their
// name, money, how many face-down cards they still hold, and which of
// their cards have been publicly revealed and lost.
type Opponent struct {
	Number      int
	Name        string
	Money       int
	CardsAmount int
	DeadCards   []engine.Card
}

// State is the read-only snapshot a Strategy consults when deciding what
// to do; the Runtime is the only thing that mutates it.
type State struct {
	Number    int
	Name      string
	Money     int
	Cards     []engine.Card
	Opponents map[int]*Opponent
}

func newState() *State {
	return &State{Opponents: make(map[int]*Opponent)}
}

func (s *State) opponent(number int) *Opponent {
	o, ok := s.Opponents[number]
	if !ok {
		o = &Opponent{Number: number}
		s.Opponents[number] = o
	}
	return o
}
