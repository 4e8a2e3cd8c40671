package cmd

import (
	"os"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt"
	"github.com/spf13/cobra"
)

var capitalizeCmd = &cobra.Command{
	Use:     "capitalize [file]",
	Aliases: []string{"cap"},
	Short:   "Normalize keyword and identifier case",
	Long: `Re-emits the input with every reserved word upper-cased and every
plain identifier lower-cased. Whitespace and comments pass through
unchanged, so running capitalize twice produces the same output as
running it once.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCapitalize,
}

func init() {
	rootCmd.AddCommand(capitalizeCmd)
}

func runCapitalize(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		log.WithError(err).Error("failed to open input")
		return err
	}
	defer in.Close()

	if err := plsqlfmt.Capitalize(in, os.Stdout); err != nil {
		log.WithError(err).Error("capitalize failed")
		return err
	}
	return nil
}
