package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"playcenter-console/internal/client/dateutil"
	"playcenter-console/internal/client/models"
	"playcenter-console/internal/client/permissions"
	"playcenter-console/internal/client/services"
)

// loadWalkins renders the walk-ins list under the current filter. A
// date-range selection without applied bounds renders an empty list with a
// hint instead of fetching.
func (a *App) loadWalkins(ctx context.Context) error {
	walkins, err := a.svc.Walkins.List(ctx, a.walkinFilter, a.walkinFrom, a.walkinTo)
	if errors.Is(err, services.ErrDateRangeRequired) {
		a.walkinRows = nil
		fmt.Fprintln(a.out, "Set a range with 'range <from> <to>' and then 'apply'.")
		return nil
	}
	if err != nil {
		return err
	}
	a.walkinRows = walkins

	fmt.Fprintf(a.out, "%s  filter: %s  (available: %s)\n",
		boldText("Walk-ins"), a.walkinFilter, strings.Join(a.walkinFilters(), ", "))
	if a.walkinFilter == permissions.FilterDateRange {
		fmt.Fprintf(a.out, "Range: %s .. %s\n", a.walkinFrom, a.walkinTo)
	}

	rows := make([][]string, 0, len(walkins))
	for i, w := range walkins {
		status := greenBadge("active")
		if w.Completed() {
			status = "completed"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1), orDash(sanitize(w.TagNo)), sanitize(w.ChildName), orDash(sanitize(w.ChildAge)),
			sanitize(w.ParentName), orDash(sanitize(w.ParentPhone)), formatAmountStr(w.Amount),
			orDash(sanitize(w.CheckInTime)), orDash(sanitize(w.CheckOutTime)), status,
		})
	}
	renderTable(a.out, []string{"#", "Tag", "Child", "Age", "Parent", "Phone", "Amount", "In", "Out", "Status"}, rows)
	return nil
}

// walkinFilters is the offered filter set, with the date-range option gated
// separately.
func (a *App) walkinFilters() []string {
	return a.perms.WalkinFilters
}

func (a *App) walkinCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "new":
		return a.walkinCreate(ctx)

	case "edit":
		i, err := rowIndex(args, len(a.walkinRows))
		if err != nil {
			return err
		}
		return a.walkinEdit(ctx, a.walkinRows[i])

	case "del":
		i, err := rowIndex(args, len(a.walkinRows))
		if err != nil {
			return err
		}
		return a.walkinDelete(ctx, a.walkinRows[i])

	case "checkout":
		i, err := rowIndex(args, len(a.walkinRows))
		if err != nil {
			return err
		}
		return a.walkinCheckout(ctx, a.walkinRows[i])

	case "history":
		i, err := rowIndex(args, len(a.walkinRows))
		if err != nil {
			return err
		}
		a.printHistory(a.walkinRows[i].UpdateHistory)
		return nil

	case "filter":
		return a.walkinSetFilter(ctx, args)

	case "range":
		return a.walkinSetRange(args)

	case "apply":
		if a.walkinFilter != permissions.FilterDateRange {
			return fmt.Errorf("apply only works with the daterange filter")
		}
		return a.router.NavigateTo(ctx, PageWalkins)

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}

// walkinSetFilter switches the list filter. Selecting daterange defers the
// fetch: the bounds default to the current month and nothing loads until the
// user applies.
func (a *App) walkinSetFilter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("filter name required, one of: %s", strings.Join(a.walkinFilters(), ", "))
	}
	filter := args[0]

	if filter == permissions.FilterDateRange {
		if !a.perms.CanSeeDateRange {
			return fmt.Errorf("filter %q is not available", filter)
		}
		a.walkinFilter = filter
		if a.walkinFrom == "" || a.walkinTo == "" {
			first, last := dateutil.MonthBounds(a.now())
			a.walkinFrom = first.Format(dateutil.ISODate)
			a.walkinTo = last.Format(dateutil.ISODate)
		}
		fmt.Fprintf(a.out, "Range set to %s .. %s; adjust with 'range <from> <to>', then 'apply'.\n",
			a.walkinFrom, a.walkinTo)
		return nil
	}

	if !permissions.AllowsFilter(a.walkinFilters(), filter) {
		return fmt.Errorf("filter %q is not available", filter)
	}
	a.walkinFilter = filter
	return a.router.NavigateTo(ctx, PageWalkins)
}

func (a *App) walkinSetRange(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: range <from> <to> (dates as %s)", dateutil.ISODate)
	}
	for _, d := range args {
		if _, err := time.Parse(dateutil.ISODate, d); err != nil {
			return fmt.Errorf("invalid date %q", d)
		}
	}
	a.walkinFrom, a.walkinTo = args[0], args[1]
	fmt.Fprintln(a.out, "Range stored; 'apply' to load.")
	return nil
}

func (a *App) walkinCheckout(ctx context.Context, w models.Walkin) error {
	if w.Completed() {
		return fmt.Errorf("%s is already checked out", w.ChildName)
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Check out %s?", sanitize(w.ChildName)), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Walkins.Checkout(ctx, w.ID); err != nil {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PageWalkins)
}

func (a *App) walkinDelete(ctx context.Context, w models.Walkin) error {
	if !a.perms.CanDeleteWalkin(w) {
		return fmt.Errorf("completed visits can only be deleted by an administrator")
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete walk-in for %s?", sanitize(w.ChildName)), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Walkins.Delete(ctx, w.ID); err != nil {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PageWalkins)
}

// printHistory renders a record's update log, newest first.
func (a *App) printHistory(raw string) {
	entries := models.ParseHistory(raw)
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No updates recorded.")
		return
	}
	for _, e := range entries {
		ts := "-"
		if !e.Time.IsZero() {
			ts = e.Time.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(a.out, "  %s  %s  by %s\n", ts, e.Label(), sanitize(e.Username))
	}
}
