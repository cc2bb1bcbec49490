package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/phrazzld/carddown/internal/domain"
	"github.com/phrazzld/carddown/internal/domain/srs"
	"github.com/phrazzld/carddown/internal/review"
	"github.com/phrazzld/carddown/internal/scheduler"
	"github.com/phrazzld/carddown/internal/store"
)

func newReviseCmd(a *app) *cobra.Command {
	var (
		algorithmName  string
		tags           []string
		includeOrphans bool
		leechMethod    string
		cram           bool
		cramHours      int
		maxCards       int
		maxDuration    int
	)

	cmd := &cobra.Command{
		Use:   "revise",
		Short: "Review the cards that are due",
		Long: `Revise selects the due cards, shuffles them, and walks through them in
the terminal: reveal the response, then grade your recall from 0 (forgotten)
to 5 (perfect). Results are persisted when the session ends, however it
ends. In cram mode due dates are ignored and nothing is persisted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("algorithm") {
				algorithmName = a.cfg.Algorithm
			}
			if !cmd.Flags().Changed("leech-method") {
				leechMethod = a.cfg.LeechPolicy
			}
			if !cmd.Flags().Changed("cram-hours") {
				cramHours = a.cfg.CramHours
			}
			if !cmd.Flags().Changed("max-cards") {
				maxCards = a.cfg.MaxCards
			}
			if !cmd.Flags().Changed("max-duration") {
				maxDuration = a.cfg.MaxDurationMinutes
			}

			algorithm, err := srs.New(algorithmName)
			if err != nil {
				return err
			}
			leechPolicy, err := scheduler.ParseLeechPolicy(leechMethod)
			if err != nil {
				return err
			}

			return a.withLock(func() error {
				cardStore := store.NewCardStore(a.cfg.CardStorePath())
				globalStore := store.NewGlobalStateStore(a.cfg.GlobalStatePath())

				db, err := cardStore.Load()
				if err != nil {
					return err
				}
				global, err := globalStore.Load()
				if err != nil {
					return err
				}
				global.Refresh(time.Now().UTC())

				entries := make([]domain.CardEntry, 0, len(db))
				for _, entry := range db {
					entries = append(entries, entry)
				}

				opts := scheduler.Options{
					Tags:           tags,
					IncludeOrphans: includeOrphans,
					LeechPolicy:    leechPolicy,
					Cram:           cram,
					CramHours:      cramHours,
					MaxCards:       maxCards,
				}
				batch, leeches := scheduler.Select(entries, opts, time.Now().UTC(), nil)
				if len(batch) == 0 {
					fmt.Println("No cards due. Well done.")
					return nil
				}
				if leeches > 0 {
					fmt.Printf("Warning: %d leech card(s) in this session.\n", leeches)
				}

				commit := func(graded []domain.CardEntry, g *domain.GlobalState) error {
					// Cram sessions never touch persisted statistics.
					if cram {
						slog.Info("cram session, results discarded", "cards", len(graded))
						return nil
					}
					if err := cardStore.UpsertMany(graded); err != nil {
						return err
					}
					return globalStore.Save(g)
				}

				session := review.NewSession(batch, algorithm, global, a.cfg.LeechThreshold, commit)
				return review.Run(session, os.Stdin, os.Stdout, time.Duration(maxDuration)*time.Minute)
			})
		},
	}

	cmd.Flags().StringVar(&algorithmName, "algorithm", "sm2", "spaced-repetition algorithm (sm2, sm5, simple8)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "only review cards with at least one of these tags")
	cmd.Flags().BoolVar(&includeOrphans, "include-orphans", false, "include cards whose source file no longer yields them")
	cmd.Flags().StringVar(&leechMethod, "leech-method", "skip", "leech handling (skip, warn)")
	cmd.Flags().BoolVar(&cram, "cram", false, "ignore due dates and do not persist results")
	cmd.Flags().IntVar(&cramHours, "cram-hours", 12, "hours since last review for a card to be due in cram mode")
	cmd.Flags().IntVar(&maxCards, "max-cards", 30, "maximum number of cards per session")
	cmd.Flags().IntVar(&maxDuration, "max-duration", 20, "maximum session length in minutes")
	return cmd
}
