package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "plsqlfmt",
	Short: "A beautifier for PL/SQL source",
	Long: `plsqlfmt reformats PL/SQL source into a single consistent house
style: every statement's SELECT, INSERT, UPDATE, CURSOR, and FETCH
clauses laid out and indented by their own state machine rather than a
generic SQL grammar.

It also bundles four smaller tools: capitalize (normalize
keyword/identifier case), count (report how many tokens a file scans
to), checknull (flag comparisons against NULL with = or != instead of
IS [NOT] NULL), and checklf (flag string/character literals that
contain a line feed, almost always a missing closing quote).`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}
