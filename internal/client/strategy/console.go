package strategy

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samunstein/coupgo/internal/client"
	"github.com/samunstein/coupgo/internal/engine"
	"github.com/samunstein/coupgo/internal/protocol"
)

// Console is a human-driven strategy: every decision is printed to stdout
// as a prompt and read back from stdin as a line of text. It never bluffs
// or validates beyond basic parsing; the server's rule enforcement is the
// backstop for anything a human types wrong.
type Console struct {
	in  *bufio.Reader
	out *os.File
}

// NewConsole builds a Console reading from stdin and writing to stdout.
func NewConsole() *Console {
	return &Console{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) readLine() string {
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (c *Console) AskName(*client.State) string {
	c.printf("Enter your name: ")
	return c.readLine()
}

func (c *Console) describeState(s *client.State) {
	c.printf("You are player %d (%s), %d coins, cards: %v\n", s.Number, s.Name, s.Money, s.Cards)
	for _, o := range s.Opponents {
		c.printf("  opponent %d (%s): %d coins, %d cards\n", o.Number, o.Name, o.Money, o.CardsAmount)
	}
}

func (c *Console) readInt(prompt string) int {
	c.printf("%s", prompt)
	n, err := strconv.Atoi(c.readLine())
	if err != nil {
		return -1
	}
	return n
}

func (c *Console) readCard(prompt string) engine.Card {
	c.printf("%s", prompt)
	card, ok := engine.ParseCard(strings.ToLower(c.readLine()))
	if !ok {
		return engine.Duke
	}
	return card
}

func (c *Console) readYesNo(prompt string) bool {
	c.printf("%s (y/n): ", prompt)
	ans := strings.ToLower(c.readLine())
	return ans == "y" || ans == "yes"
}

func (c *Console) TakeTurn(s *client.State) protocol.Message {
	c.describeState(s)
	c.printf("Choose an action [income, foreign_aid, tax, steal, assassinate, coup, ambassadate]: ")
	action := strings.ToLower(c.readLine())
	switch action {
	case "income":
		return protocol.IncomeDecision{}
	case "foreign_aid":
		return protocol.ForeignAidDecision{}
	case "tax":
		return protocol.TaxDecision{}
	case "ambassadate":
		return protocol.AmbassadateDecision{}
	case "steal":
		return protocol.StealDecision{TargetNum: c.readInt("Target player number: ")}
	case "assassinate":
		return protocol.AssassinateDecision{TargetNum: c.readInt("Target player number: ")}
	case "coup":
		return protocol.CoupDecision{TargetNum: c.readInt("Target player number: ")}
	default:
		c.printf("unrecognized action %q, defaulting to income\n", action)
		return protocol.IncomeDecision{}
	}
}

func (c *Console) ChooseCardToKill(s *client.State) engine.Card {
	c.printf("You must give up a card. Your cards: %v\n", s.Cards)
	return c.readCard("Which card do you give up? ")
}

func (c *Console) ChooseAmbassadorCards(s *client.State, pool []engine.Card) (engine.Card, engine.Card) {
	c.printf("Your candidate cards: %v\n", pool)
	c1 := c.readCard("First card to return: ")
	c2 := c.readCard("Second card to return: ")
	return c1, c2
}

func (c *Console) YourActionIsChallenged(s *client.State, action engine.ActionKind, target, challenger int) protocol.Message {
	c.printf("Player %d challenges your %s. ", challenger, action)
	if c.readYesNo("Reveal your card") {
		return protocol.RevealCard{}
	}
	return protocol.Concede{}
}

func (c *Console) YourBlockIsChallenged(s *client.State, action engine.ActionKind, doer int, blockCard engine.Card, challenger int) protocol.Message {
	c.printf("Player %d challenges your %s block. ", challenger, blockCard)
	if c.readYesNo("Reveal your card") {
		return protocol.RevealCard{}
	}
	return protocol.Concede{}
}

func (c *Console) DoYouBlock(s *client.State, action engine.ActionKind, doer int) protocol.Message {
	blockers := action.Info().BlockedBy
	if len(blockers) == 0 {
		return protocol.NoBlock{}
	}
	if !c.readYesNo(fmt.Sprintf("Player %d used %s. Block it", doer, action)) {
		return protocol.NoBlock{}
	}
	c.printf("Claim which card? %v\n", blockers)
	return protocol.Block{Card: c.readCard("Card: ")}
}

func (c *Console) DoYouChallengeAction(s *client.State, action engine.ActionKind, doer, target int) protocol.Message {
	if c.readYesNo(fmt.Sprintf("Player %d claims %s. Challenge it", doer, action)) {
		return protocol.Challenge{}
	}
	return protocol.Allow{}
}

func (c *Console) DoYouChallengeBlock(s *client.State, action engine.ActionKind, doer, target int, blockCard engine.Card, blocker int) protocol.Message {
	if c.readYesNo(fmt.Sprintf("Player %d blocks with claimed %s. Challenge it", blocker, blockCard)) {
		return protocol.Challenge{}
	}
	return protocol.Allow{}
}

func (c *Console) DebugMessage(s *client.State, text string) {
	c.printf("[debug] %s\n", text)
}

func (c *Console) Shutdown(*client.State) {
	c.printf("Game over.\n")
}

func (c *Console) ActionWasTaken(s *client.State, action engine.ActionKind, doer, target int) {
	if target >= 0 {
		c.printf("Player %d used %s on player %d\n", doer, action, target)
	} else {
		c.printf("Player %d used %s\n", doer, action)
	}
}

func (c *Console) ActionWasBlocked(s *client.State, action engine.ActionKind, doer, target int, blockCard engine.Card, blocker int) {
	c.printf("Player %d blocked player %d's %s with %s\n", blocker, doer, action, blockCard)
}

func (c *Console) ActionWasChallenged(s *client.State, action engine.ActionKind, doer, target, challenger int, success bool) {
	c.printf("Player %d challenged player %d's %s: challenge %s\n", challenger, doer, action, outcome(success))
}

func (c *Console) BlockWasChallenged(s *client.State, action engine.ActionKind, doer, target int, blockCard engine.Card, blocker, challenger int, success bool) {
	c.printf("Player %d challenged player %d's %s block: challenge %s\n", challenger, blocker, blockCard, outcome(success))
}

func outcome(success bool) string {
	if success {
		return "succeeded"
	}
	return "failed"
}

func (c *Console) PlayerLostACard(s *client.State, player int, card engine.Card) {
	c.printf("Player %d lost a %s\n", player, card)
}

func (c *Console) APlayerIsDead(s *client.State, player int) {
	c.printf("Player %d is out of the game\n", player)
}

func (c *Console) RulesViolation(s *client.State, player int) {
	c.printf("Player %d was removed for a rules violation\n", player)
}

func (c *Console) MoneyChanged(s *client.State, player int, amount int) {
	c.printf("Player %d's coins changed by %d\n", player, amount)
}

var _ client.Strategy = &Console{}
