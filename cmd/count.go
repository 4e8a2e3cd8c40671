package cmd

import (
	"fmt"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count [file]",
	Short: "Count the tokens a file scans to",
	Long: `Scans the input in non-preserving mode (whitespace and comments
discarded) and prints the number of tokens produced.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		log.WithError(err).Error("failed to open input")
		return err
	}
	defer in.Close()

	n, err := plsqlfmt.Count(in)
	if err != nil {
		log.WithError(err).Error("count failed")
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}
