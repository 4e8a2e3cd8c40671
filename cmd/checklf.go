package cmd

import (
	"os"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt"
	"github.com/spf13/cobra"
)

var checklfCmd = &cobra.Command{
	Use:   "checklf [file]",
	Short: "Report string or character literals containing a line feed",
	Long: `Scans the input and reports, to stderr with line and column, every
string or character literal that contains a line feed. This is almost
always a missing closing quote rather than an intentional embedded
newline.

Exits non-zero if any were found, after still scanning the whole
input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheckLF,
}

func init() {
	rootCmd.AddCommand(checklfCmd)
}

func runCheckLF(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		log.WithError(err).Error("failed to open input")
		return err
	}
	defer in.Close()

	found, err := plsqlfmt.CheckLiterals(in, os.Stderr)
	if err != nil {
		log.WithError(err).Error("checklf failed")
		return err
	}
	if found {
		os.Exit(1)
	}
	return nil
}
