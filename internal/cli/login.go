package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
)

// Login asks for credentials once. A successful login fills the session;
// bad credentials are reported and leave it empty.
func (a *App) Login(ctx context.Context) error {
	username, err := GetRequiredText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, a.fd, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.auth.Authenticate(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrAuthenticationFailed) {
			fmt.Fprintln(a.out, "Invalid username or password.")
			return nil
		}
		a.log.Error(ctx, "login failed", "error", err)
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return nil
	}

	a.session.Set(id)
	a.logger().Info(ctx, "session started", "client_id", id)
	fmt.Fprintf(a.out, "Logged in as %s.\n", username)
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) {
	a.logger().Info(ctx, "session ended")
	a.session.Clear()
	fmt.Fprintln(a.out, "Logged out.")
}
