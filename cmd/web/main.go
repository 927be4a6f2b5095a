// Command web serves the Blood & Emergency Help site.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/louisbranch/emergencyhelp/internal/cmd/web"
)

func main() {
	log.SetPrefix("[WEB] ")
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, args)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return webcmd.Run(ctx, cfg)
}
