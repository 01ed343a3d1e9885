package cli

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"playcenter-console/internal/client/dateutil"
	"playcenter-console/internal/client/models"
	"playcenter-console/internal/client/permissions"
)

// loadDashboard fetches the widgets concurrently and renders them. One
// failing widget fails the whole load; the router retries on the next
// navigation.
func (a *App) loadDashboard(ctx context.Context) error {
	// The widget month is steered by its own cursor; live counters always
	// reflect the real today.
	cursorMonth := time.Date(a.dashCursor.Year, time.Month(a.dashCursor.Month), 1, 0, 0, 0, 0, time.UTC)
	first, last := dateutil.MonthBounds(cursorMonth)

	var (
		active    []models.Walkin
		today     []models.Walkin
		upcoming  []models.Party
		completed []models.Party

		walkinSummary models.WalkinSummary
		partySummary  models.PartySummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		active, err = a.svc.Walkins.List(gctx, permissions.FilterActive, "", "")
		return err
	})
	g.Go(func() error {
		var err error
		today, err = a.svc.Walkins.List(gctx, permissions.FilterToday, "", "")
		return err
	})
	g.Go(func() error {
		var err error
		upcoming, err = a.svc.Parties.Upcoming(gctx,
			first.Format(dateutil.ISODate), last.Format(dateutil.ISODate))
		return err
	})
	g.Go(func() error {
		var err error
		completed, err = a.svc.Parties.List(gctx, permissions.FilterCompleted)
		return err
	})
	if a.perms.Admin {
		g.Go(func() error {
			var err error
			walkinSummary, err = a.svc.Walkins.MonthlySummary(gctx, a.dashCursor.Year, a.dashCursor.Month)
			return err
		})
		g.Go(func() error {
			var err error
			partySummary, err = a.svc.Parties.MonthlySummary(gctx, a.dashCursor.Year, a.dashCursor.Month)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, boldText("Dashboard"))
	fmt.Fprintf(a.out, "Checked in now: %d   Today's visits: %d   Upcoming parties this month: %d   Completed parties: %d\n",
		len(active), len(today), len(upcoming), len(completed))

	if len(active) > 0 {
		rows := make([][]string, 0, len(active))
		for _, w := range active {
			rows = append(rows, []string{
				sanitize(w.TagNo), sanitize(w.ChildName), sanitize(w.ParentPhone), sanitize(w.CheckInTime),
			})
		}
		fmt.Fprintln(a.out, "Currently checked in:")
		renderTable(a.out, []string{"Tag", "Child", "Phone", "Check-in"}, rows)
	}

	if len(upcoming) > 0 {
		rows := make([][]string, 0, len(upcoming))
		for _, p := range upcoming {
			rows = append(rows, []string{sanitize(p.PartyDate), sanitize(dateutil.FormatTime12(p.PartyTime)),
				sanitize(p.ChildName), statusBadge(p.Status)})
		}
		fmt.Fprintln(a.out, "Upcoming parties:")
		renderTable(a.out, []string{"Date", "Time", "Child", "Status"}, rows)
	}

	if a.perms.Admin {
		fmt.Fprintf(a.out, "%s: %d walk-ins, %s revenue; %d parties, %s booked ('prev'/'next' to change month)\n",
			a.dashCursor.Label(), walkinSummary.Count, formatAmount(walkinSummary.Total()),
			partySummary.Count, formatAmount(partySummary.TotalAmount))
	}
	return nil
}

func (a *App) dashboardCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "next":
		a.dashCursor.Step(1)
		return a.router.NavigateTo(ctx, PageDashboard)
	case "prev":
		a.dashCursor.Step(-1)
		return a.router.NavigateTo(ctx, PageDashboard)
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}
