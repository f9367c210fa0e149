package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the message override store",
	}

	var locale string
	sync := &cobra.Command{
		Use:   "sync",
		Short: "Store the catalog messages for a locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()
			if rt.Pool == nil {
				return errors.New("DATABASE_URL is not set")
			}

			if locale == "" {
				locale = rt.Config.Locale
			}
			n, err := rt.Messages().Sync(cmd.Context(), rt.Catalog, locale)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d messages stored for %s\n", n, locale)
			return nil
		},
	}
	sync.Flags().StringVarP(&locale, "locale", "l", "", "Locale to store the messages under (default from SCERR_LOCALE)")

	cmd.AddCommand(sync)
	return cmd
}
