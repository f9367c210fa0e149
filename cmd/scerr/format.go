package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scerr/internal/domain"
)

const formatExamples = `  # Message for a code in the configured locale
  scerr format 1004

  # Same code in hex, French, 24-character buffer
  scerr format 0x3EC --locale fr --capacity 24`

func newFormatCmd() *cobra.Command {
	var (
		locale   string
		capacity int
	)
	cmd := &cobra.Command{
		Use:     "format <code>...",
		Short:   "Print the message of one or more error codes",
		Example: formatExamples,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := make([]domain.ErrorCode, 0, len(args))
			for _, a := range args {
				code, err := domain.ParseErrorCode(a)
				if err != nil {
					return err
				}
				codes = append(codes, code)
			}

			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			if capacity == 0 {
				capacity = rt.Config.Capacity
			}
			f := rt.Formatter(locale)
			for _, code := range codes {
				fmt.Fprintln(cmd.OutOrStdout(), f.Message(code, capacity))
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&locale, "locale", "l", "", "Message locale (default from SCERR_LOCALE)")
	flags.IntVarP(&capacity, "capacity", "c", 0, "Buffer capacity including the terminator (default from SCERR_CAPACITY)")
	return cmd
}
