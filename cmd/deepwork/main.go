package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pravsels/deepwork/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "deepwork",
	Short: "Temporarily block distracting websites via the hosts file",
	Long: "Deepwork rewrites the system hosts file so a set of domains resolve to\n" +
		"the loopback address for a fixed duration, then restores the file. The\n" +
		"block is also restored on Ctrl-C or SIGTERM.",
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(
		app.NewBlockCommand(),
		app.NewUnblockCommand(),
		app.NewStatusCommand(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
