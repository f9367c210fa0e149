package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"scerr/internal/infrastructure/codegen"
	"scerr/internal/infrastructure/i18n"
)

func newGenCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate files from the catalog",
	}
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "-", "Output file, - for stdout")

	messages := &cobra.Command{
		Use:   "messages",
		Short: "Write a go-i18n TOML message file (active.<lang>.toml) to translate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()
			return withOutput(cmd, output, func(w io.Writer) error {
				return i18n.WriteMessageFile(w, rt.Catalog)
			})
		},
	}

	var pkg string
	goCmd := &cobra.Command{
		Use:   "go",
		Short: "Write Go constants for every catalog entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()
			return withOutput(cmd, output, func(w io.Writer) error {
				return codegen.WriteGo(w, pkg, rt.Catalog)
			})
		},
	}
	goCmd.Flags().StringVarP(&pkg, "package", "p", "scerrors", "Package name of the generated file")

	cmd.AddCommand(messages, goCmd)
	return cmd
}

func withOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
