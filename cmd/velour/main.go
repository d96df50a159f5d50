package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/velourhq/velour/internal/auth"
	"github.com/velourhq/velour/internal/config"
	"github.com/velourhq/velour/internal/logging"
	"github.com/velourhq/velour/internal/session"
	"github.com/velourhq/velour/internal/tui"
	"github.com/velourhq/velour/pkg/client"
	"github.com/velourhq/velour/pkg/domain"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	forceLogin := false
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("velour " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "status":
			return runStatus(cfg)
		case "logout":
			return runLogout(cfg)
		case "login":
			forceLogin = true
		}
	}

	// The TUI owns the terminal; logs go to a file in the data dir. A log
	// file that can't be opened shouldn't keep the app from starting.
	var logOut io.Writer = io.Discard
	if err := os.MkdirAll(cfg.DataDir, 0o700); err == nil {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
			defer f.Close() //nolint:errcheck
			logOut = f
		}
	}
	log := logging.Init(logging.Options{Level: cfg.LogLevel, Output: logOut})

	store, err := session.NewStore(cfg.DataDir)
	if err != nil {
		return err
	}
	sess, err := store.Load()
	if err != nil {
		// An unreadable session file means starting logged out, not crashing.
		log.Warn().Err(err).Msg("session load failed")
	}
	if forceLogin {
		// `velour login` opens straight on the login screen; a successful
		// login overwrites whatever session was stored.
		sess = domain.Session{}
	}

	api := client.New(cfg.APIURL, sess.Token)
	gw := auth.New(api, store, log)

	app := tui.NewApp(gw, api, sess)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func runStatus(cfg *config.Config) error {
	store, err := session.NewStore(cfg.DataDir)
	if err != nil {
		return err
	}
	sess, err := store.Load()
	if err != nil {
		return err
	}
	if !sess.Authenticated() {
		printVelourGreeting()
		return nil
	}
	fmt.Printf("signed in as a %s account\n", sess.Role)
	return nil
}

func runLogout(cfg *config.Config) error {
	store, err := session.NewStore(cfg.DataDir)
	if err != nil {
		return err
	}
	sess, err := store.Load()
	if err == nil && !sess.Authenticated() {
		fmt.Println("Already logged out.")
		return nil
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
