package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"playcenter-console/internal/client/api"
	"playcenter-console/internal/client/config"
	"playcenter-console/internal/client/dateutil"
	"playcenter-console/internal/client/models"
	"playcenter-console/internal/client/permissions"
	"playcenter-console/internal/client/services"
	"playcenter-console/internal/client/session"
	"playcenter-console/internal/logging"
)

// Services bundles the API-facing services the console consumes.
type Services struct {
	Auth     services.AuthService
	Walkins  services.WalkinService
	Parties  services.PartyService
	Packages services.PackageService
	Users    services.UserService
	Backups  services.BackupService
}

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Store
	svc     Services

	reader *bufio.Reader
	out    io.Writer
	now    services.Clock

	router *Router
	perms  permissions.Permissions

	// Current list selections. Row slices hold what is on screen so row
	// commands can address records by index.
	walkinFilter string
	walkinFrom   string
	walkinTo     string
	walkinRows   []models.Walkin

	partyFilter string
	partyRows   []models.Party

	packageFilter string
	packageRows   []models.Package

	userRows   []models.User
	backupRows []models.Backup

	// Independent month cursors for the dashboard summary widget and the
	// reports page.
	dashCursor   dateutil.MonthCursor
	reportCursor dateutil.MonthCursor
}

func NewApp(cfg *config.Config, log logging.Logger, sess *session.Store, svc Services) *App {
	a := &App{
		config:  cfg,
		log:     log,
		session: sess,
		svc:     svc,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		now:     time.Now,
	}

	a.router = NewRouter(log)
	a.router.nav = a.renderNav
	a.router.Register(PageDashboard, a.loadDashboard)
	a.router.Register(PageWalkins, a.loadWalkins)
	a.router.Register(PageParties, a.loadParties)
	a.router.Register(PagePackages, a.loadPackages)
	a.router.Register(PageUsers, a.loadUsers)
	a.router.Register(PageReports, a.loadReports)
	a.router.Register(PageBackup, a.loadBackups)

	return a
}

// applyIdentity resolves capabilities for the authenticated role and resets
// per-role view state to its defaults.
func (a *App) applyIdentity(u models.User) {
	a.session.SetIdentity(u)
	a.perms = permissions.Resolve(u.Role)

	a.walkinFilter = a.perms.WalkinFilters[0]
	a.walkinFrom, a.walkinTo = "", ""
	a.partyFilter = a.perms.PartyFilters[0]
	a.packageFilter = a.perms.PackageFilters[0]
	a.dashCursor = dateutil.CursorFor(a.now())
	a.reportCursor = dateutil.CursorFor(a.now())
}

// renderNav prints the page bar with the active page marked. Admin-only
// pages are hidden from other roles.
func (a *App) renderNav(current string) {
	pages := []string{PageDashboard, PageWalkins, PageParties, PagePackages, PageReports}
	if a.perms.CanManageUsers {
		pages = append(pages, PageUsers)
	}
	if a.perms.CanManageBackups {
		pages = append(pages, PageBackup)
	}

	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		if p == current {
			parts = append(parts, boldText("["+p+"]"))
		} else {
			parts = append(parts, p)
		}
	}
	fmt.Fprintln(a.out, strings.Join(parts, "  "))
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Identity()
	return ok
}

// alert reports a failed operation to the user. View state is left exactly
// as it was, so the user can correct and retry.
func (a *App) alert(err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		fmt.Fprintln(a.out, redBadge("Error: "+apiErr.Message))
		return
	}
	fmt.Fprintln(a.out, redBadge("Error: "+err.Error()))
}

// Run restores or establishes a session, then hands control to the REPL.
// It blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, boldText("Play Center Console"))

	if err := a.restoreSession(ctx); err != nil {
		return err
	}
	if !a.isLoggedIn() {
		if err := a.loginLoop(ctx); err != nil {
			return err
		}
	}

	if err := a.router.NavigateTo(ctx, PageDashboard); err != nil {
		a.alert(err)
	}
	a.repl(ctx)
	return nil
}

// restoreSession tries the persisted credential: an expired token is
// discarded locally, a live one is verified against the server. Verification
// failure clears the session silently and falls through to the login prompt.
func (a *App) restoreSession(ctx context.Context) error {
	token, err := a.session.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	if a.session.Expired(a.now()) {
		a.log.Debug(ctx, "stored token expired, discarding")
		return a.session.Clear()
	}

	user, err := a.svc.Auth.Verify(ctx)
	if err != nil {
		a.log.Debug(ctx, "stored token rejected", "error", err)
		return a.session.Clear()
	}

	a.applyIdentity(user)
	fmt.Fprintf(a.out, "Welcome back, %s (%s)\n", sanitize(user.Username), user.RoleLabel())
	return nil
}
