package cli

import (
	"context"
	"fmt"
)

// loginLoop prompts for credentials until a login succeeds. A rejected
// attempt shows the server's message inline and prompts again.
func (a *App) loginLoop(ctx context.Context) error {
	for {
		username, err := GetSimpleText(a.reader, "Username", a.out)
		if err != nil {
			return err
		}

		password, err := GetPassword(a.out)
		if err != nil {
			return err
		}

		token, user, err := a.svc.Auth.Login(ctx, username, string(password))
		if err != nil {
			a.alert(err)
			continue
		}

		if err := a.session.Set(token, user); err != nil {
			a.log.Warn(ctx, "could not persist credential", "error", err)
		}
		a.applyIdentity(user)
		fmt.Fprintf(a.out, "Logged in as %s (%s)\n", sanitize(user.Username), user.RoleLabel())
		return nil
	}
}

// logout clears the session and returns to the login prompt.
func (a *App) logout(ctx context.Context) error {
	if err := a.session.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")

	if err := a.loginLoop(ctx); err != nil {
		return err
	}
	return a.router.NavigateTo(ctx, PageDashboard)
}
