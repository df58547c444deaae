// Package main implements the keyprofiles CLI for inspecting, validating and
// evolving key profiles.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "keyprofiles",
		Short:         "Key profiles for key-finding algorithms",
		Long:          "keyprofiles lists the published major and minor key profiles, exports the active (major, minor) pair as JSON, validates profile documents and evolves mixed profile pairs.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(), newShowCmd(), newValidateCmd(), newEvolveCmd())
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
