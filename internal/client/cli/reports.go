package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"playcenter-console/internal/client/dateutil"
	"playcenter-console/internal/client/models"
)

// loadReports renders the monthly report for the cursor month: walk-in and
// party details with their summaries and a combined total.
func (a *App) loadReports(ctx context.Context) error {
	year, month := a.reportCursor.Year, a.reportCursor.Month

	var (
		walkins []models.Walkin
		parties []models.Party

		walkinSummary models.WalkinSummary
		partySummary  models.PartySummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		walkins, err = a.svc.Walkins.Monthly(gctx, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		parties, err = a.svc.Parties.Monthly(gctx, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		walkinSummary, err = a.svc.Walkins.MonthlySummary(gctx, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		partySummary, err = a.svc.Parties.MonthlySummary(gctx, year, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s %s  ('prev'/'next' to change month)\n",
		boldText("Monthly report:"), a.reportCursor.Label())

	fmt.Fprintf(a.out, "Walk-ins: %d visits, %s entry, %s food, %s total\n",
		walkinSummary.Count, formatAmount(walkinSummary.Amount),
		formatAmount(walkinSummary.Food), formatAmount(walkinSummary.Total()))
	if len(walkins) > 0 {
		rows := make([][]string, 0, len(walkins))
		for _, w := range walkins {
			rows = append(rows, []string{
				sanitize(w.CheckInTime), sanitize(w.ChildName), orDash(sanitize(w.ParentPhone)),
				formatAmountStr(w.Amount), formatAmountStr(w.Food),
			})
		}
		renderTable(a.out, []string{"Check-in", "Child", "Phone", "Amount", "Food"}, rows)
	}

	fmt.Fprintf(a.out, "Parties: %d bookings, %s booked, %s advance, %s balance due\n",
		partySummary.Count, formatAmount(partySummary.TotalAmount),
		formatAmount(partySummary.Advance), formatAmount(partySummary.Balance()))
	if len(parties) > 0 {
		rows := make([][]string, 0, len(parties))
		for _, p := range parties {
			rows = append(rows, []string{
				sanitize(p.PartyDate), sanitize(dateutil.FormatTime12(p.PartyTime)), sanitize(p.ChildName),
				formatAmountStr(p.TotalAmount), formatAmountStr(p.Advance), statusBadge(p.Status),
			})
		}
		renderTable(a.out, []string{"Date", "Time", "Child", "Total", "Advance", "Status"}, rows)
	}

	fmt.Fprintf(a.out, "Grand total: %s\n",
		boldText(formatAmount(walkinSummary.Total()+partySummary.TotalAmount)))
	return nil
}

func (a *App) reportCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "next":
		a.reportCursor.Step(1)
		return a.router.NavigateTo(ctx, PageReports)
	case "prev":
		a.reportCursor.Step(-1)
		return a.router.NavigateTo(ctx, PageReports)
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}
