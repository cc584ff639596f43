// Command api runs the Nexus Editorial admin back office.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// envFile is set by the --env-file flag.
var envFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "api",
		Short:         "Nexus Editorial admin API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")

	root.AddCommand(newServeCmd())
	root.AddCommand(newHashPasswordCmd())
	return root
}
