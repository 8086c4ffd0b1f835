package protocol

import "github.com/samunstein/coupgo/internal/engine"

func decodeDebugMsg(f []string) (Message, bool) {
	if len(f) != 1 {
		return nil, false
	}
	return DebugMsg{Text: f[0]}, true
}

func decodeAddOpponent(f []string) (Message, bool) {
	if len(f) != 2 {
		return nil, false
	}
	n, ok := atoi(f[0])
	if !ok {
		return nil, false
	}
	return AddOpponent{Number: n, PlayerName: f[1]}, true
}

func decodeSetPlayerNumber(f []string) (Message, bool) {
	if len(f) != 1 {
		return nil, false
	}
	n, ok := atoi(f[0])
	if !ok {
		return nil, false
	}
	return SetPlayerNumber{Number: n}, true
}

func decodeAddCard(f []string) (Message, bool) {
	if len(f) != 1 {
		return nil, false
	}
	c, ok := engine.ParseCard(f[0])
	if !ok {
		return nil, false
	}
	return AddCard{Card: c}, true
}

func decodeRemoveCard(f []string) (Message, bool) {
	if len(f) != 1 {
		return nil, false
	}
	c, ok := engine.ParseCard(f[0])
	if !ok {
		return nil, false
	}
	return RemoveCard{Card: c}, true
}

func decodeChangeMoney(f []string) (Message, bool) {
	if len(f) != 1 {
		return nil, false
	}
	n, ok := atoi(f[0])
	if !ok {
		return nil, false
	}
	return ChangeMoney{Amount: n}, true
}

func decodeMoneyChanged(f []string) (Message, bool) {
	if len(f) != 2 {
		return nil, false
	}
	player, ok := atoi(f[0])
	if !ok {
		return nil, false
	}
	amount, ok := atoi(f[1])
	if !ok {
		return nil, false
	}
	return MoneyChanged{Player: player, Amount: amount}, true
}

func decodePlayerLostACard(f []string) (Message, bool) {
	if len(f) != 2 {
		return nil, false
	}
	player, ok := atoi(f[0])
	if !ok {
		return nil, false
	}
	c, ok := engine.ParseCard(f[1])
	if !ok {
		return nil, false
	}
	return PlayerLostACard{Player: player, Card: c}, true
}

func decodeAPlayerIsDead(f []string) (Message, bool) {
	if len(f) != 1 {
		return nil, false
	}
	n, ok := atoi(f[0])
	if !ok {
		return nil, false
	}
	return APlayerIsDead{Player: n}, true
}

func decodeRulesViolation(f []string) (Message, bool) {
	if len(f) != 1 {
		return nil, false
	}
	n, ok := atoi(f[0])
	if !ok {
		return nil, false
	}
	return RulesViolation{Player: n}, true
}

func decodeYourActionIsChallenged(f []string) (Message, bool) {
	if len(f) != 3 {
		return nil, false
	}
	a, ok := engine.ParseActionKind(f[0])
	if !ok {
		return nil, false
	}
	target, ok := atoi(f[1])
	if !ok {
		return nil, false
	}
	challenger, ok := atoi(f[2])
	if !ok {
		return nil, false
	}
	return YourActionIsChallenged{Action: a, Target: target, Challenger: challenger}, true
}

func decodeYourBlockIsChallenged(f []string) (Message, bool) {
	if len(f) != 4 {
		return nil, false
	}
	a, ok := engine.ParseActionKind(f[0])
	if !ok {
		return nil, false
	}
	doer, ok := atoi(f[1])
	if !ok {
		return nil, false
	}
	card, ok := engine.ParseCard(f[2])
	if !ok {
		return nil, false
	}
	challenger, ok := atoi(f[3])
	if !ok {
		return nil, false
	}
	return YourBlockIsChallenged{Action: a, ActionDoer: doer, BlockCard: card, Challenger: challenger}, true
}

func decodeDoYouBlock(f []string) (Message, bool) {
	if len(f) != 2 {
		return nil, false
	}
	a, ok := engine.ParseActionKind(f[0])
	if !ok {
		return nil, false
	}
	doer, ok := atoi(f[1])
	if !ok {
		return nil, false
	}
	return DoYouBlock{Action: a, ActionDoer: doer}, true
}

func decodeDoYouChallengeAction(f []string) (Message, bool) {
	if len(f) != 3 {
		return nil, false
	}
	a, ok := engine.ParseActionKind(f[0])
	if !ok {
		return nil, false
	}
	doer, ok := atoi(f[1])
	if !ok {
		return nil, false
	}
	target, ok := atoi(f[2])
	if !ok {
		return nil, false
	}
	return DoYouChallengeAction{Action: a, ActionDoer: doer, Target: target}, true
}

func decodeDoYouChallengeBlock(f []string) (Message, bool) {
	if len(f) != 5 {
		return nil, false
	}
	a, ok := engine.ParseActionKind(f[0])
	if !ok {
		return nil, false
	}
	doer, ok := atoi(f[1])
	if !ok {
		return nil, false
	}
	target, ok := atoi(f[2])
	if !ok {
		return nil, false
	}
	card, ok := engine.ParseCard(f[3])
	if !ok {
		return nil, false
	}
	blocker, ok := atoi(f[4])
	if !ok {
		return nil, false
	}
	return DoYouChallengeBlock{Action: a, ActionDoer: doer, Target: target, BlockCard: card, Blocker: blocker}, true
}

func decodeLogActionWasTaken(f []string) (Message, bool) {
	if len(f) != 3 {
		return nil, false
	}
	a, ok := engine.ParseActionKind(f[0])
	if !ok {
		return nil, false
	}
	doer, ok := atoi(f[1])
	if !ok {
		return nil, false
	}
	target, ok := atoi(f[2])
	if !ok {
		return nil, false
	}
	return LogActionWasTaken{Action: a, ActionDoer: doer, Target: target}, true
}

func decodeLogActionWasBlocked(f []string) (Message, bool) {
	if len(f) != 5 {
		return nil, false
	}
	a, ok := engine.ParseActionKind(f[0])
	if !ok {
		return nil, false
	}
	doer, ok := atoi(f[1])
	if !ok {
		return nil, false
	}
	target, ok := atoi(f[2])
	if !ok {
		return nil, false
	}
	card, ok := engine.ParseCard(f[3])
	if !ok {
		return nil, false
	}
	blocker, ok := atoi(f[4])
	if !ok {
		return nil, false
	}
	return LogActionWasBlocked{Action: a, ActionDoer: doer, Target: target, BlockCard: card, Blocker: blocker}, true
}

func decodeLogActionWasChallenged(f []string) (Message, bool) {
	if len(f) != 5 {
		return nil, false
	}
	a, ok := engine.ParseActionKind(f[0])
	if !ok {
		return nil, false
	}
	doer, ok := atoi(f[1])
	if !ok {
		return nil, false
	}
	target, ok := atoi(f[2])
	if !ok {
		return nil, false
	}
	challenger, ok := atoi(f[3])
	if !ok {
		return nil, false
	}
	success, ok := parseBool(f[4])
	if !ok {
		return nil, false
	}
	return LogActionWasChallenged{Action: a, ActionDoer: doer, Target: target, Challenger: challenger, Success: success}, true
}

func decodeLogBlockWasChallenged(f []string) (Message, bool) {
	if len(f) != 7 {
		return nil, false
	}
	a, ok := engine.ParseActionKind(f[0])
	if !ok {
		return nil, false
	}
	doer, ok := atoi(f[1])
	if !ok {
		return nil, false
	}
	target, ok := atoi(f[2])
	if !ok {
		return nil, false
	}
	card, ok := engine.ParseCard(f[3])
	if !ok {
		return nil, false
	}
	blocker, ok := atoi(f[4])
	if !ok {
		return nil, false
	}
	challenger, ok := atoi(f[5])
	if !ok {
		return nil, false
	}
	success, ok := parseBool(f[6])
	if !ok {
		return nil, false
	}
	return LogBlockWasChallenged{
		Action: a, ActionDoer: doer, Target: target, BlockCard: card,
		Blocker: blocker, Challenger: challenger, Success: success,
	}, true
}

func decodeNameResponse(f []string) (Message, bool) {
	if len(f) != 1 {
		return nil, false
	}
	return NameResponse{PlayerName: f[0]}, true
}

func decodeAssassinateDecision(f []string) (Message, bool) {
	if len(f) != 1 {
		return nil, false
	}
	n, ok := atoi(f[0])
	if !ok {
		return nil, false
	}
	return AssassinateDecision{TargetNum: n}, true
}

func decodeStealDecision(f []string) (Message, bool) {
	if len(f) != 1 {
		return nil, false
	}
	n, ok := atoi(f[0])
	if !ok {
		return nil, false
	}
	return StealDecision{TargetNum: n}, true
}

func decodeCoupDecision(f []string) (Message, bool) {
	if len(f) != 1 {
		return nil, false
	}
	n, ok := atoi(f[0])
	if !ok {
		return nil, false
	}
	return CoupDecision{TargetNum: n}, true
}

func decodeBlock(f []string) (Message, bool) {
	if len(f) != 1 {
		return nil, false
	}
	c, ok := engine.ParseCard(f[0])
	if !ok {
		return nil, false
	}
	return Block{Card: c}, true
}

func decodeCardMessage(f []string) (Message, bool) {
	if len(f) != 1 {
		return nil, false
	}
	c, ok := engine.ParseCard(f[0])
	if !ok {
		return nil, false
	}
	return CardMessage{Card: c}, true
}

func decodeAmbassadorCardResponse(f []string) (Message, bool) {
	if len(f) != 2 {
		return nil, false
	}
	c1, ok := engine.ParseCard(f[0])
	if !ok {
		return nil, false
	}
	c2, ok := engine.ParseCard(f[1])
	if !ok {
		return nil, false
	}
	return AmbassadorCardResponse{Card1: c1, Card2: c2}, true
}
