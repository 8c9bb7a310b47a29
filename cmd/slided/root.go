package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	stlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/EdgarSahakyann/Power-point--project/internal/config"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
	"github.com/EdgarSahakyann/Power-point--project/internal/session"
	"github.com/EdgarSahakyann/Power-point--project/internal/theme"
)

var version = "dev"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	flags   config.Flags
	cfg     *config.Config
	logFile *os.File
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "slided [deck]",
		Short:         "Edit slide decks from the command line",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Name() == "preview")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runREPL(cmd.Context(), args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	a.flags.DefineFlags(root.PersistentFlags())

	root.AddCommand(newExportCmd(a), newPreviewCmd(a), newVersionCmd())
	return root
}

// setup loads the configuration and starts the logger. Full-screen commands
// never log to stderr since it shares the terminal.
func (a *app) setup(fullScreen bool) error {
	cfg, err := config.LoadConfig(a.flags.ConfigFilePath, &a.flags)
	if err != nil {
		stlog.Printf("Warning: %v (using defaults)", err)
	}
	a.cfg = cfg

	var out io.Writer = os.Stderr
	switch path := cfg.Logger.LogFilePath; {
	case path != "" && path != "-":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file '%s': %w", path, err)
		}
		a.logFile = f
		out = f
	case fullScreen:
		out = io.Discard
	}
	logger.Init(cfg.Logger, out)

	if cfg.Path != "" {
		logger.Debugf("Loaded config from %s", cfg.Path)
	}
	return nil
}

func (a *app) teardown() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// themes loads the built-in themes plus any found in the config directory.
func (a *app) themes() *theme.Manager {
	dir, err := config.Dir()
	if err != nil {
		logger.Warnf("No config directory, only built-in themes: %v", err)
		return theme.NewManager("")
	}
	return theme.NewManager(filepath.Join(dir, config.ThemesDirName))
}

func (a *app) runREPL(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := session.New(session.Options{
		Config: a.cfg,
		Out:    out,
		Themes: a.themes(),
	})
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		if err := s.Open(args[0]); err != nil {
			return err
		}
	}

	logger.Infof("Starting session (deck: %s)", s.DeckName())
	err = s.Run(ctx, in)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
