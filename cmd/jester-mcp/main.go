package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/five82/jester/internal/app"
	"github.com/five82/jester/internal/mcpsrv"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Config file (default ~/.config/jester/config.toml)")
	prefsPath := flag.String("prefs", "", "Preferences file (default ~/.config/jester/prefs.toml)")
	category := flag.String("category", "", "Initial joke category")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdout carries the protocol, so logs go to stderr.
	session, err := app.Open(app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Category:   *category,
		Verbose:    *verbose,
		LogWriter:  os.Stderr,
	})
	if err != nil {
		log.Fatalf("jester-mcp: %v", err)
	}
	defer session.Close()

	server := mcpsrv.NewServer(session.Controller, version)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		session.Logger.Error(err, "stdio mcp server failed")
		_ = session.Close()
		os.Exit(1)
	}
}
