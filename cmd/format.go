package cmd

import (
	"os"

	"github.com/plsqlfmt/plsqlfmt/pkg/plsqlfmt"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Beautify PL/SQL source",
	Long: `Reads PL/SQL from the named file, or from stdin if none is given
or "-" is passed, and writes the beautified result to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		log.WithError(err).Error("failed to open input")
		return err
	}
	defer in.Close()

	if err := plsqlfmt.Format(in, os.Stdout); err != nil {
		log.WithError(err).Error("formatting failed")
		return err
	}
	return nil
}
