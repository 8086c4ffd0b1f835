// Package protocol implements the line-oriented wire codec: every message
// is `name[FIELD_SEP field]*RECORD_END`, decoded through a closed, static
// {name -> decoder} table. Adding a message variant means one struct, one
// decoder, and one registry entry.
package protocol

import "github.com/samunstein/coupgo/internal/engine"

// Message is the wire representation shared by every command and response.
// Name identifies the variant; Fields returns its positional,
// already-string-encoded arguments.
type Message interface {
	Name() string
	Fields() []string
}

// ActionDecision is the sub-union of responses to TakeTurn, one variant per
// action kind.
type ActionDecision interface {
	Message
	Action() engine.ActionKind
	// Target reports the chosen target seat number; ok is false for a
	// non-targeted action.
	Target() (num int, ok bool)
}

// ChallengeDecision answers "do you challenge this action/block".
type ChallengeDecision interface {
	Message
	Challenges() bool
}

// RevealOrConcede answers a challenge directed at the responder themself.
type RevealOrConcede interface {
	Message
	Reveals() bool
}

// BlockDecision answers "do you block this action".
type BlockDecision interface {
	Message
	// Block reports the claimed blocking card and true, or false if the
	// player declined to block.
	Block() (card engine.Card, blocks bool)
}
