// Command coupclient connects to a running coupserver and plays one match
// using a chosen strategy: "simple" (a deterministic bot), "console" (a
// human at the keyboard), or "random" (a stress-test bot that sometimes
// sends deliberately wrong responses).
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/samunstein/coupgo/internal/client"
	"github.com/samunstein/coupgo/internal/client/strategy"
	"github.com/samunstein/coupgo/internal/config"
	"github.com/samunstein/coupgo/internal/logx"
	"github.com/samunstein/coupgo/internal/netconn"
)

func main() {
	host := flag.String("host", config.Host, "server address")
	port := flag.Int("port", config.Port, "server port")
	kind := flag.String("strategy", "simple", "strategy to play with: simple, console, random")
	debug := flag.Bool("debug", config.Debug, "enable verbose logging")
	wrongProb := flag.Float64("wrong-message-probability", 0, "random strategy: chance of sending a deliberately wrong response")
	onlyOneWrong := flag.Bool("only-one-wrong", false, "random strategy: never send two wrong responses in a row")
	flag.Parse()

	log := logx.New("[coupclient] ", *debug)

	addr := fmt.Sprintf("%s:%d", *host, *port)
	conn, err := netconn.Dial(addr)
	if err != nil {
		log.Errorf("dial %s: %v", addr, err)
		os.Exit(1)
	}

	var strat client.Strategy
	switch *kind {
	case "simple":
		strat = strategy.Simple{}
	case "console":
		strat = strategy.NewConsole()
	case "random":
		strat = &strategy.Random{
			R:                       rand.New(rand.NewSource(time.Now().UnixNano())),
			WrongMessageProbability: *wrongProb,
			OnlyOneWrong:            *onlyOneWrong,
		}
	default:
		log.Errorf("unknown strategy %q", *kind)
		os.Exit(1)
	}

	rt := client.New(conn, strat, log)
	if err := rt.Run(); err != nil {
		log.Errorf("connection closed: %v", err)
		os.Exit(1)
	}
}
