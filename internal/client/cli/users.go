package cli

import (
	"context"
	"fmt"
	"strconv"

	"playcenter-console/internal/client/models"
)

func (a *App) loadUsers(ctx context.Context) error {
	users, err := a.svc.Users.List(ctx)
	if err != nil {
		return err
	}
	a.userRows = users

	fmt.Fprintln(a.out, boldText("Users"))
	rows := make([][]string, 0, len(users))
	for i, u := range users {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), sanitize(u.Username), orDash(sanitize(u.FullName)), orDash(sanitize(u.Email)),
			u.RoleLabel(), orDash(sanitize(u.CreatedAt)),
		})
	}
	renderTable(a.out, []string{"#", "Username", "Full name", "Email", "Role", "Created"}, rows)
	return nil
}

func (a *App) userCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "new":
		return a.userCreate(ctx)

	case "edit":
		i, err := rowIndex(args, len(a.userRows))
		if err != nil {
			return err
		}
		return a.userEdit(ctx, a.userRows[i])

	case "del":
		i, err := rowIndex(args, len(a.userRows))
		if err != nil {
			return err
		}
		return a.userDelete(ctx, a.userRows[i])

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}

// userForm walks the account fields. On edit an empty password keeps the
// existing one; the field is write-only and never echoed back.
func (a *App) userForm(u models.User, edit bool) (models.User, error) {
	var err error
	if u.Username, err = GetTextDefault(a.reader, "Username", u.Username, a.out); err != nil {
		return u, err
	}

	prompt := "set a password"
	if edit {
		prompt = "empty keeps the current password"
	}
	fmt.Fprintf(a.out, "Password (%s)\n", prompt)
	pw, err := GetPassword(a.out)
	if err != nil {
		return u, err
	}
	u.Password = string(pw)

	if u.FullName, err = GetTextDefault(a.reader, "Full name", u.FullName, a.out); err != nil {
		return u, err
	}
	if u.Email, err = GetTextDefault(a.reader, "Email", u.Email, a.out); err != nil {
		return u, err
	}
	if u.Role, err = GetChoice(a.reader, "Role",
		[]string{models.RoleAdmin, models.RoleStoreManager}, u.Role, a.out); err != nil {
		return u, err
	}
	return u, nil
}

func (a *App) userCreate(ctx context.Context) error {
	u, err := a.userForm(models.User{Role: models.RoleStoreManager}, false)
	if err != nil {
		return err
	}
	if u.Password == "" {
		return fmt.Errorf("a new account needs a password")
	}

	saved, err := a.submitWithRetry(func() error { return a.svc.Users.Create(ctx, u) })
	if err != nil || !saved {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PageUsers)
}

func (a *App) userEdit(ctx context.Context, row models.User) error {
	u, err := a.userForm(row, true)
	if err != nil {
		return err
	}

	saved, err := a.submitWithRetry(func() error { return a.svc.Users.Update(ctx, u.ID, u) })
	if err != nil || !saved {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PageUsers)
}

func (a *App) userDelete(ctx context.Context, u models.User) error {
	if me, ok := a.session.Identity(); ok && me.ID == u.ID {
		return fmt.Errorf("you cannot delete your own account")
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete the account %s?", sanitize(u.Username)), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Users.Delete(ctx, u.ID); err != nil {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PageUsers)
}
