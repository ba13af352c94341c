package main

import (
	"github.com/dmitrijs2005/passvault/internal/cli"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/services"
	"github.com/dmitrijs2005/passvault/internal/validation"
	"github.com/spf13/cobra"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE:  runShell,
	}
}

func runShell(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	sealer, err := cryptox.NewSealer(rt.cfg.SealKey)
	if err != nil {
		return err
	}
	if rt.cfg.SealKey == "" {
		rt.log.Warn(cmd.Context(), "no seal key configured, account passwords are stored as plain text")
	}

	v := validation.New()
	app := cli.NewApp(cli.Options{
		Auth:          services.NewAuthService(rt.store.Clients(), rt.log),
		Accounts:      services.NewAccountService(rt.store.Accounts(), sealer, v, rt.log),
		Logger:        rt.log,
		In:            cmd.InOrStdin(),
		Out:           cmd.OutOrStdout(),
		DefaultLength: rt.cfg.DefaultPasswordLength,
	})
	return app.Run(cmd.Context())
}
