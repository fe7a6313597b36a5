package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/louisbranch/rollcall/internal/cmd/rosterimport"
	"github.com/louisbranch/rollcall/internal/platform/config"
)

func main() {
	log.SetPrefix("[ROSTER-IMPORT] ")
	if err := config.LoadDotenv(); err != nil {
		config.Exitf("Error: %v", err)
	}

	cfg, err := rosterimport.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := rosterimport.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
