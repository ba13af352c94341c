package main

import (
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/passgen"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [length]",
		Short: "Print a random password",
		Long:  fmt.Sprintf("Print a random password of the given length (at most %d). Without an argument the configured default length is used.", passgen.MaxLength),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			n := cfg.DefaultPasswordLength
			if len(args) == 1 {
				if n, err = passgen.ParseLength(args[0]); err != nil {
					return err
				}
			}

			pw, err := passgen.Generate(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pw)
			return nil
		},
	}
}
