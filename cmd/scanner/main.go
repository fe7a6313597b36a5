package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	scannercmd "github.com/louisbranch/rollcall/internal/cmd/scanner"
	"github.com/louisbranch/rollcall/internal/platform/config"
)

func main() {
	log.SetPrefix("[SCANNER] ")
	if err := config.LoadDotenv(); err != nil {
		log.Fatalf("load env: %v", err)
	}

	cfg, err := scannercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := scannercmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("run scanner: %v", err)
	}
}
