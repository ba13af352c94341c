package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/models"
	"github.com/dmitrijs2005/passvault/internal/passgen"
)

var errNotLoggedIn = errors.New("not logged in")

func (a *App) owner() (models.ClientID, error) {
	id, ok := a.session.Current()
	if !ok {
		return 0, errNotLoggedIn
	}
	return id, nil
}

// AddAccount asks for a new entry and stores it for the logged-in client.
func (a *App) AddAccount(ctx context.Context) error {
	owner, err := a.owner()
	if err != nil {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	var d models.AccountDraft
	if d.Name, err = GetRequiredText(a.reader, "Account name", a.out); err != nil {
		return err
	}
	if d.Username, err = GetRequiredText(a.reader, "Account username", a.out); err != nil {
		return err
	}

	generate, err := askYesNo(a.reader, "Generate a password?", a.out)
	if err != nil {
		return err
	}
	if generate {
		if d.Password, err = a.generatePassword(); err != nil {
			return err
		}
	} else {
		if d.Password, err = a.askAccountPassword(); err != nil {
			return err
		}
	}

	id, err := a.accounts.AddAccount(ctx, d, owner)
	if err != nil {
		a.reportError(ctx, "add account", err)
		return nil
	}
	fmt.Fprintf(a.out, "Entry %d saved.\n", id)
	return nil
}

func (a *App) askAccountPassword() (string, error) {
	for {
		pw, err := GetPassword(a.reader, a.fd, "Account password", a.out)
		if err != nil {
			return "", err
		}
		if len(pw) > 0 {
			s := string(pw)
			common.WipeByteArray(pw)
			return s, nil
		}
		fmt.Fprintln(a.out, "Value cannot be empty.")
	}
}

// generatePassword asks for a length until it is valid. An empty answer
// selects the default length.
func (a *App) generatePassword() (string, error) {
	for {
		s, err := GetSimpleText(a.reader, fmt.Sprintf("Password length (default %d)", a.defaultLength), a.out)
		if err != nil {
			return "", err
		}

		n := a.defaultLength
		if s != "" {
			if n, err = passgen.ParseLength(s); err != nil || n == 0 {
				fmt.Fprintf(a.out, "Invalid length: enter a number from 1 to %d.\n", passgen.MaxLength)
				continue
			}
		}

		pw, err := a.generator.Generate(n)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(a.out, "Generated password: %s\n", pw)
		return pw, nil
	}
}

// ViewAccounts prints the logged-in client's entries as a table.
func (a *App) ViewAccounts(ctx context.Context) error {
	owner, err := a.owner()
	if err != nil {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	list, err := a.accounts.GetAccounts(ctx, owner)
	if err != nil {
		a.reportError(ctx, "view accounts", err)
		return nil
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No entries.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tUSERNAME\tPASSWORD")
	for _, acc := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", acc.ID, acc.Name, acc.Username, acc.Password)
	}
	return tw.Flush()
}

// EditAccount asks for an entry id and a replacement entry.
func (a *App) EditAccount(ctx context.Context) error {
	owner, id, ok, err := a.askEntryID()
	if err != nil || !ok {
		return err
	}
	if err := a.accounts.EditAccount(ctx, owner, id, models.AccountDraft{}); err != nil {
		a.reportError(ctx, "edit account", err)
	}
	return nil
}

// DeleteAccount asks for an entry id and removes it.
func (a *App) DeleteAccount(ctx context.Context) error {
	owner, id, ok, err := a.askEntryID()
	if err != nil || !ok {
		return err
	}
	if err := a.accounts.DeleteAccount(ctx, owner, id); err != nil {
		a.reportError(ctx, "delete account", err)
	}
	return nil
}

func (a *App) askEntryID() (models.ClientID, models.AccountID, bool, error) {
	owner, err := a.owner()
	if err != nil {
		fmt.Fprintln(a.out, "Please log in first.")
		return 0, 0, false, nil
	}

	s, err := GetSimpleText(a.reader, "Entry ID", a.out)
	if err != nil {
		return 0, 0, false, err
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		fmt.Fprintln(a.out, "Invalid entry ID.")
		return 0, 0, false, nil
	}
	return owner, models.AccountID(id), true, nil
}

func (a *App) reportError(ctx context.Context, op string, err error) {
	switch {
	case errors.Is(err, common.ErrUnsupported):
		fmt.Fprintln(a.out, "This operation is not supported yet.")
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintf(a.out, "Invalid entry: %v\n", err)
	default:
		a.logger().Error(ctx, op+" failed", "error", err)
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}
