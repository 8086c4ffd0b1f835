// Command coupserver runs one Coup match: it listens on -host:-port,
// waits for -players connections, then plays the game to completion and
// exits.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net"
	"os"
	"time"

	"github.com/samunstein/coupgo/internal/config"
	"github.com/samunstein/coupgo/internal/logx"
	"github.com/samunstein/coupgo/internal/netconn"
	"github.com/samunstein/coupgo/internal/server"
)

func main() {
	host := flag.String("host", config.Host, "address to listen on")
	port := flag.Int("port", config.Port, "port to listen on")
	players := flag.Int("players", config.PlayerAmount, "number of players to wait for before starting")
	debug := flag.Bool("debug", config.Debug, "enable verbose logging")
	crashOnViolation := flag.Bool("crash-on-violation", false, "panic instead of emergency-killing a player on a rules violation")
	flag.Parse()

	log := logx.New("[coupserver] ", *debug)

	addr := fmt.Sprintf("%s:%d", *host, *port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Errorf("listen on %s: %v", addr, err)
		os.Exit(1)
	}
	defer ln.Close()
	log.Infof("listening on %s, waiting for %d players", addr, *players)

	conns := make([]netconn.Connection, 0, *players)
	for len(conns) < *players {
		c, err := ln.Accept()
		if err != nil {
			log.Errorf("accept: %v", err)
			os.Exit(1)
		}
		tc := netconn.NewTCPConn(c)
		conns = append(conns, tc)
		log.Infof("player %d connected from %s (session %s)", len(conns)-1, c.RemoteAddr(), tc.SessionID)
	}

	cfg := config.Default()
	cfg.Debug = *debug
	cfg.CrashOnViolation = *crashOnViolation

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := server.New(cfg, conns, log, r)
	g.Run()
}
