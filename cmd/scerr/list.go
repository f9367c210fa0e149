package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tHEX\tNAME\tSEVERITY\tFACILITY\tMESSAGE")
			for _, e := range rt.Catalog.Entries() {
				code := e.CodeWithFacility()
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", uint32(code), code, e.Name, e.Severity, e.Facility.Name, e.Description)
			}
			return w.Flush()
		},
	}
}
