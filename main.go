package main

import (
	"os"

	"github.com/plsqlfmt/plsqlfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
