package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/CamiMaidana/FamilyMed/internal/api"
	"github.com/CamiMaidana/FamilyMed/internal/config"
	"github.com/CamiMaidana/FamilyMed/internal/logger"
	"github.com/CamiMaidana/FamilyMed/internal/session"
)

func main() {
	serverFlag := flag.String("server", "", "Override API base URL (e.g. https://api.example.com)")
	flag.Parse()

	cfg := config.Load()
	if *serverFlag != "" {
		cfg.API.BaseURL = strings.TrimRight(*serverFlag, "/")
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "familymed-client")
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// The session credential lives here and nowhere else: volatile, gone when
	// the process exits.
	sessions := session.NewMemoryStore()
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, sessions, log.Named("api"))

	app := newApp(client, sessions, log)
	if err := app.run(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
