package cli

import (
	"context"
	"fmt"
)

const menuText = `1. Add New Entry
2. View All Entries
3. Edit an Entry
4. Delete an Entry
5. Log out
6. Exit`

// menu shows the main menu once and runs the chosen action. It reports
// whether the user asked to exit. Action failures are printed; only input
// errors are returned.
func (a *App) menu(ctx context.Context) (bool, error) {
	choice, err := GetSimpleText(a.reader, menuText, a.out)
	if err != nil {
		return false, err
	}

	switch choice {
	case "1":
		err = a.AddAccount(ctx)
	case "2":
		err = a.ViewAccounts(ctx)
	case "3":
		err = a.EditAccount(ctx)
	case "4":
		err = a.DeleteAccount(ctx)
	case "5":
		a.Logout(ctx)
	case "6", "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return true, nil
	case "":
	default:
		fmt.Fprintf(a.out, "Unknown option: %s\n", choice)
	}
	return false, err
}
