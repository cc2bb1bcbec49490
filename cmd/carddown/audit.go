package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/phrazzld/carddown/internal/domain"
	"github.com/phrazzld/carddown/internal/scheduler"
	"github.com/phrazzld/carddown/internal/store"
)

func newAuditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "List every stored card with its scheduling state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLock(func() error {
				db, err := store.NewCardStore(a.cfg.CardStorePath()).Load()
				if err != nil {
					return err
				}

				entries := make([]domain.CardEntry, 0, len(db))
				for _, entry := range db {
					entries = append(entries, entry)
				}
				sort.Slice(entries, func(i, j int) bool {
					return entries[i].Added.Before(entries[j].Added)
				})

				now := time.Now().UTC()
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tPROMPT\tDUE\tINTERVAL\tFAILS\tFLAGS\tLAST REVISED\tSOURCE")
				for _, entry := range entries {
					flags := ""
					if entry.Leech {
						flags += "leech "
					}
					if entry.Orphan {
						flags += "orphan"
					}

					lastRevised := "never"
					if entry.LastRevised != nil {
						lastRevised = entry.LastRevised.Format(time.DateOnly)
					}

					due := "-"
					if scheduler.Due(entry, now, false, 0) {
						due = "due"
					}

					fmt.Fprintf(w, "%s\t%.40s\t%s\t%dd\t%d\t%s\t%s\t%s:%d\n",
						entry.Card.ID.String(), entry.Card.Prompt, due,
						entry.State.Interval, entry.State.FailedCount, flags,
						lastRevised, entry.Card.File, entry.Card.Line)
				}
				return w.Flush()
			})
		},
	}
}
