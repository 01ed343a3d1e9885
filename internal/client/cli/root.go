package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (a *App) status() string {
	user, ok := a.session.Identity()
	if !ok {
		return ""
	}
	page := a.router.Current()
	if page == "" {
		return user.Username
	}
	return user.Username + "@" + page
}

// repl reads commands until EOF or exit. Page names navigate; everything
// else is dispatched to the current page. Handler errors are reported and
// the loop continues.
func (a *App) repl(ctx context.Context) {
	for {
		fmt.Fprintf(a.out, "pc %s> ", a.status())

		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "dashboard", "d":
			a.navigate(ctx, PageDashboard)
		case "walkins", "w":
			a.navigate(ctx, PageWalkins)
		case "parties", "p":
			a.navigate(ctx, PageParties)
		case "packages", "k":
			a.navigate(ctx, PagePackages)
		case "reports", "r":
			a.navigate(ctx, PageReports)

		case "users", "u":
			if !a.perms.CanManageUsers {
				fmt.Fprintln(a.out, "Unknown command:", cmd)
				continue
			}
			a.navigate(ctx, PageUsers)
		case "backup", "b":
			if !a.perms.CanManageBackups {
				fmt.Fprintln(a.out, "Unknown command:", cmd)
				continue
			}
			a.navigate(ctx, PageBackup)

		case "refresh":
			a.navigate(ctx, a.router.Current())

		case "logout":
			if err := a.logout(ctx); err != nil {
				a.alert(err)
			}

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			if err := a.pageCommand(ctx, cmd, args); err != nil {
				a.alert(err)
			}
		}
	}
}

func (a *App) navigate(ctx context.Context, page string) {
	if page == "" {
		page = PageDashboard
	}
	if err := a.router.NavigateTo(ctx, page); err != nil {
		a.alert(err)
	}
}

// pageCommand dispatches commands scoped to the current page.
func (a *App) pageCommand(ctx context.Context, cmd string, args []string) error {
	switch a.router.Current() {
	case PageWalkins:
		return a.walkinCommand(ctx, cmd, args)
	case PageParties:
		return a.partyCommand(ctx, cmd, args)
	case PagePackages:
		return a.packageCommand(ctx, cmd, args)
	case PageUsers:
		return a.userCommand(ctx, cmd, args)
	case PageBackup:
		return a.backupCommand(ctx, cmd, args)
	case PageReports:
		return a.reportCommand(ctx, cmd, args)
	case PageDashboard:
		return a.dashboardCommand(ctx, cmd, args)
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Pages: (d)ashboard, (w)alkins, (p)arties, pac(k)ages, (r)eports")
	if a.perms.CanManageUsers {
		fmt.Fprintln(a.out, "Admin: (u)sers, (b)ackup")
	}
	fmt.Fprintln(a.out, "Global: refresh, logout, exit")

	switch a.router.Current() {
	case PageDashboard:
		fmt.Fprintln(a.out, "Dashboard: next, prev")
	case PageWalkins:
		fmt.Fprintln(a.out, "Walk-ins: new, edit <n>, del <n>, checkout <n>, history <n>, filter <name>, range <from> <to>, apply")
	case PageParties:
		fmt.Fprintln(a.out, "Parties: new, edit <n>, del <n>, history <n>, filter <name>")
	case PagePackages:
		fmt.Fprintln(a.out, "Packages: new, edit <n>, del <n>, use <n>, history <n>, filter <name>")
	case PageUsers:
		fmt.Fprintln(a.out, "Users: new, edit <n>, del <n>")
	case PageBackup:
		fmt.Fprintln(a.out, "Backup: create, download <n>, restore <n>, upload <path>, del <n>")
	case PageReports:
		fmt.Fprintln(a.out, "Reports: next, prev")
	}
}

// rowIndex parses a 1-based row argument against the rows on screen.
func rowIndex(args []string, max int) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("row number required")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > max {
		return 0, fmt.Errorf("no row %q on screen", args[0])
	}
	return n - 1, nil
}
