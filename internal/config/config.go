// Package config holds the runtime constants shared by the server and
// client binaries.
package config

import "time"

const (
	// Host and Port are the servermain defaults; both binaries also accept
	// -host/-port flags that override these.
	Host = "localhost"
	Port = 9281

	// PlayerAmount is the default number of connections servermain waits
	// for before starting the game.
	PlayerAmount = 2

	// FieldSep separates fields within one wire message.
	FieldSep = ";"
	// RecordEnd terminates one wire message.
	RecordEnd = "\n"
	// ControlReplace is substituted for FieldSep/RecordEnd inside any
	// free-form string a client sends (player names, debug text) before
	// the string is put on the wire.
	ControlReplace = "_"

	// EachCardInDeck is how many copies of each of the five card kinds the
	// deck starts with.
	EachCardInDeck = 3
	// StartMoney is the coin count each player begins the game with.
	StartMoney = 2
	// StartCardsAmount is the number of cards dealt to each player at setup.
	StartCardsAmount = 2

	// WrongMessageTolerance bounds how many malformed/invalid responses the
	// rule enforcement wrapper accepts from one player before emergency-
	// killing them.
	WrongMessageTolerance = 5

	// ReceiveDeadline is the default per-receive soft deadline.
	ReceiveDeadline = 10 * time.Second

	// Debug gates verbose logging; flipped on by the -debug flag on either
	// binary.
	Debug = false
)

// Game bundles the tunables a running Game needs. Binaries build one from
// flags; tests build one by hand with whatever they want to exercise.
type Game struct {
	EachCardInDeck        int
	StartMoney            int
	StartCardsAmount      int
	WrongMessageTolerance int
	ReceiveDeadline       time.Duration
	Debug                 bool
	// CrashOnViolation turns emergency-kill into a panic; used only by
	// test/CI builds.
	CrashOnViolation bool
}

// Default returns the configuration servermain uses absent any overrides.
func Default() Game {
	return Game{
		EachCardInDeck:        EachCardInDeck,
		StartMoney:            StartMoney,
		StartCardsAmount:      StartCardsAmount,
		WrongMessageTolerance: WrongMessageTolerance,
		ReceiveDeadline:       ReceiveDeadline,
		Debug:                 Debug,
		CrashOnViolation:      false,
	}
}
