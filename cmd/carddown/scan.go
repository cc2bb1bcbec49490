package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phrazzld/carddown/internal/scanner"
	"github.com/phrazzld/carddown/internal/store"
)

func newScanCmd(a *app) *cobra.Command {
	var (
		file   string
		folder string
		full   bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Discover cards and reconcile them into the store",
		Long: `Scan parses flashcards out of a file or folder and reconciles them
against the card store. An incremental scan only re-parses files whose
modification time changed since the last run; --full re-parses everything
and marks cards that no longer appear anywhere as orphans.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (file == "") == (folder == "") {
				return errors.New("exactly one of --file or --folder is required")
			}
			root := file
			if folder != "" {
				root = folder
			}

			return a.withLock(func() error {
				files, err := scanner.CollectFiles(root, a.cfg.Extensions)
				if err != nil {
					return err
				}

				indexStore := store.NewScanIndexStore(a.cfg.ScanIndexPath())
				idx, err := indexStore.Load()
				if err != nil {
					return err
				}

				cards, err := scanner.Scan(files, idx, full)
				if err != nil {
					return err
				}
				slog.Info("scan finished", "files", len(files), "cards", len(cards), "full", full)

				if err := store.NewCardStore(a.cfg.CardStorePath()).Reconcile(cards, full); err != nil {
					return err
				}
				return indexStore.Save(idx)
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "scan a single file")
	cmd.Flags().StringVar(&folder, "folder", "", "scan a folder recursively")
	cmd.Flags().BoolVar(&full, "full", false, "re-parse everything and mark vanished cards as orphans")
	return cmd
}
