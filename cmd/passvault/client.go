package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/cli"
	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/services"
	"github.com/dmitrijs2005/passvault/internal/validation"
	"github.com/spf13/cobra"
)

var errPasswordMismatch = errors.New("passwords do not match")

func newClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage vault clients",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <username>",
		Short: "Register a client",
		Long:  "Register a client. The master password is read from the terminal without echo, or from stdin when piped.",
		Args:  cobra.ExactArgs(1),
		RunE:  runClientAdd,
	})
	return cmd
}

func runClientAdd(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	in := cmd.InOrStdin()
	reader := bufio.NewReader(in)
	fd := cli.TerminalFd(in)
	out := cmd.OutOrStdout()

	pw, err := cli.GetPassword(reader, fd, "Enter password", out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	again, err := cli.GetPassword(reader, fd, "Repeat password", out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(again)

	if !bytes.Equal(pw, again) {
		return errPasswordMismatch
	}

	clients := services.NewClientService(rt.store.DB(), validation.New(), rt.log)
	id, err := clients.Register(cmd.Context(), args[0], string(pw))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Client %q registered with id %d\n", args[0], id)
	return nil
}
