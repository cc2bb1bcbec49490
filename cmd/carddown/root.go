package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phrazzld/carddown/internal/config"
	"github.com/phrazzld/carddown/internal/platform/lockfile"
	"github.com/phrazzld/carddown/internal/platform/logger"
)

// app carries the configuration shared by all subcommands. It is built once
// in the root command's PersistentPreRunE and passed down explicitly.
type app struct {
	cfg *config.Config

	cfgFile string
	force   bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "carddown",
		Short:         "Spaced-repetition flashcards from your markdown notes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			if _, err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return fmt.Errorf("failed to create data directory %s: %w", cfg.DataDir, err)
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/carddown/config.yaml)")
	root.PersistentFlags().BoolVar(&a.force, "force", false, "remove a stale instance lock before running")

	root.AddCommand(newScanCmd(a))
	root.AddCommand(newReviseCmd(a))
	root.AddCommand(newAuditCmd(a))
	root.AddCommand(newDeleteCmd(a))
	return root
}

// withLock runs fn under the cross-process instance lock, releasing the
// marker on every exit path. Bypassing this voids all consistency
// guarantees: store saves are whole-file overwrites, not merges.
func (a *app) withLock(fn func() error) (err error) {
	lock, err := lockfile.Acquire(a.cfg.LockPath(), a.force)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := lock.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return fn()
}
