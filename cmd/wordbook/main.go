package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joestump/wordbook/internal/build"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "wordbook",
		Short:   "A REST service for languages and their words",
		Long:    "wordbook — create, list, update and delete languages and the words that belong to them.",
		Version: build.String(),
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
