package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phrazzld/carddown/internal/domain"
	"github.com/phrazzld/carddown/internal/store"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a card from the store by its id",
		Long: `Delete removes one card entry by its full hex id (as shown by audit).
This is the only way to get rid of a leech or orphan entry; scans never
delete anything automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseCardID(args[0])
			if err != nil {
				return err
			}
			return a.withLock(func() error {
				if err := store.NewCardStore(a.cfg.CardStorePath()).Delete(id); err != nil {
					return err
				}
				fmt.Println("Deleted", id)
				return nil
			})
		},
	}
}
