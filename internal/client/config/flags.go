package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a host:port   server address
//	-s path        session database
//	-i seconds     online check interval
//	-t duration    per-request timeout, e.g. 5s
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-i", "-t"})

	fs := flag.NewFlagSet("accountkeeper", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "server address")
	fs.StringVar(&cfg.SessionDB, "s", cfg.SessionDB, "session database file")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval/time.Second), "online check interval, seconds")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	if *interval <= 0 {
		panic("online check interval must be positive")
	}
	cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
}
