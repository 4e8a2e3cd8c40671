package cmd

import (
	"os"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt"
	"github.com/spf13/cobra"
)

var checknullCmd = &cobra.Command{
	Use:   "checknull [file]",
	Short: "Report NULL compared with = or !=",
	Long: `Scans the input and reports, to stderr with line and column, every
place an equals or not-equals sign sits next to a NULL literal on
either side. Such a comparison is never true in PL/SQL; NULL must be
tested with IS [NOT] NULL instead.

Exits non-zero if any were found, after still scanning the whole
input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheckNull,
}

func init() {
	rootCmd.AddCommand(checknullCmd)
}

func runCheckNull(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		log.WithError(err).Error("failed to open input")
		return err
	}
	defer in.Close()

	found, err := plsqlfmt.CheckNulls(in, os.Stderr)
	if err != nil {
		log.WithError(err).Error("checknull failed")
		return err
	}
	if found {
		os.Exit(1)
	}
	return nil
}
