package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/passvault/internal/config"
	"github.com/spf13/cobra"
)

// Set by the linker.
var (
	version   = "dev"
	gitCommit = "none"
	buildDate = "unknown"
)

// NewRootCmd builds the passvault command tree. Running it without a
// subcommand starts the interactive menu.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passvault",
		Short: "Local password vault",
		Long: `passvault keeps account credentials for several clients in a single
SQLite file. Each client sees only the entries it created.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, gitCommit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runShell,
	}

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newShellCmd(),
		newClientCmd(),
		newGenerateCmd(),
		newMigrateCmd(),
	)
	return cmd
}

func main() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
