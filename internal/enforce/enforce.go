// Package enforce implements the bounded-retry rule enforcement wrapper:
// ask a player for a response, validate it semantically, retry a bounded
// number of times on a malformed or illegal answer, and forcibly remove
// the player from the game on exhaustion or on a hard receive error
// (timeout or disconnect).
package enforce

import (
	"errors"

	"github.com/samunstein/coupgo/internal/config"
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/netconn"
	"github.com/samunstein/coupgo/internal/protocol"
)

// ErrKilled is returned by Request when the player was emergency-killed
// instead of producing a valid response.
var ErrKilled = errors.New("enforce: player emergency-killed")

// Killer performs the side effects of an emergency kill: reveal the
// player's remaining cards, mark them dead, and tell everyone why. The
// server package implements this, since it alone owns broadcast and the
// alive-player bookkeeping; enforce only decides *when* to call it.
type Killer interface {
	EmergencyKill(player *engine.Player, reason string)
}

// crashingKiller panics instead of killing, for the crash-on-violation
// test mode.
type crashingKiller struct{}

func (crashingKiller) EmergencyKill(player *engine.Player, reason string) {
	panic("enforce: rules violation by player " + player.Name + ": " + reason)
}

// ForConfig returns the Killer appropriate for cfg: the real broadcasting killer
// in production, or a panicking one when CrashOnViolation is set (used by
// deterministic tests that want a violation to fail loudly rather than
// silently end the game).
func ForConfig(cfg config.Game, real Killer) Killer {
	if cfg.CrashOnViolation {
		return crashingKiller{}
	}
	return real
}

// Request sends cmd to player over conn and waits for a response, decoding
// each received line with decode and accepting it only if validate
// approves. A line that fails to decode or fails validation counts against
// tolerance; the player gets a debug_msg naming the rejected prompt and
// cmd is re-sent as a re-prompt before each retry. A hard receive error
// (timeout, disconnect) emergency-kills immediately without spending
// retries, since the player isn't answering at all.
func Request[R any](
	conn netconn.Connection,
	player *engine.Player,
	kill Killer,
	cmd protocol.Message,
	tolerance int,
	decode func(protocol.Message) (R, bool),
	validate func(R) bool,
) (R, error) {
	var zero R
	if err := conn.Send(cmd); err != nil {
		kill.EmergencyKill(player, "disconnected: "+err.Error())
		return zero, ErrKilled
	}

	wrong := 0
	for {
		line, err := conn.Receive()
		if err != nil {
			kill.EmergencyKill(player, "no response: "+err.Error())
			return zero, ErrKilled
		}

		msg, ok := protocol.Decode(line)
		if ok {
			if typed, ok := decode(msg); ok && validate(typed) {
				return typed, nil
			}
		}

		wrong++
		if wrong >= tolerance {
			kill.EmergencyKill(player, "exceeded wrong-message tolerance")
			return zero, ErrKilled
		}
		_ = conn.Send(protocol.DebugMsg{Text: "invalid or illegal response to " + cmd.Name()})
		if err := conn.Send(cmd); err != nil {
			kill.EmergencyKill(player, "disconnected: "+err.Error())
			return zero, ErrKilled
		}
	}
}
