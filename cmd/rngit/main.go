// Package main is the entry point for the rngit dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/henri123lemoine/rngit/internal/app"
	"github.com/henri123lemoine/rngit/internal/config"
	"github.com/henri123lemoine/rngit/internal/debug"
	"github.com/henri123lemoine/rngit/internal/git"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var errNoTerminal = errors.New("rngit must be run in an interactive terminal")

func main() {
	cliApp := &urfavecli.App{
		Name:      "rngit",
		Usage:     "A live dashboard of a git repository's head, branches and status",
		Version:   fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		ArgsUsage: "[path]",
		Flags:     globalFlags(),
		Action:    run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cliApp.RunContext(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, opens the repository and drives the dashboard
// until the user quits.
func run(c *urfavecli.Context) error {
	if c.NArg() > 1 {
		return fmt.Errorf("expected at most one repository path, got %d", c.NArg())
	}

	cfg, err := loadConfig(c.String("config-file"))
	if err != nil {
		return err
	}
	for _, w := range cfg.Validate() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	debugLog := c.String("debug-log")
	if debugLog == "" {
		debugLog = cfg.General.DebugLog
	}
	if debugLog != "" {
		if err := debug.Enable(debugLog); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", debugLog, err)
		}
	}
	defer debug.Close()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	// A repository that cannot be opened is shown on screen rather than
	// treated as fatal.
	var src git.Source
	repo, openErr := git.Open(c.Args().First())
	if openErr != nil {
		debug.Log("open failed: %v", openErr)
	} else {
		src = repo
	}

	return runProgram(c.Context, app.New(cfg, src, openErr), tea.WithAltScreen())
}

// runProgram runs the dashboard until it quits or ctx is cancelled. A
// cancelled context is a normal shutdown.
func runProgram(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) error {
	opts = append(opts, tea.WithContext(ctx))
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			debug.Log("shutting down: %v", ctx.Err())
			return nil
		}
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
