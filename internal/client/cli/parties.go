package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"playcenter-console/internal/client/dateutil"
	"playcenter-console/internal/client/models"
	"playcenter-console/internal/client/permissions"
)

func (a *App) loadParties(ctx context.Context) error {
	parties, err := a.svc.Parties.List(ctx, a.partyFilter)
	if err != nil {
		return err
	}
	a.partyRows = parties

	fmt.Fprintf(a.out, "%s  filter: %s  (available: %s)\n",
		boldText("Parties"), a.partyFilter, strings.Join(a.perms.PartyFilters, ", "))

	rows := make([][]string, 0, len(parties))
	for i, p := range parties {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), sanitize(p.PartyDate), sanitize(dateutil.FormatTime12(p.PartyTime)),
			sanitize(p.ChildName), sanitize(p.ParentName), orDash(sanitize(p.ParentPhone)), orDash(sanitize(p.GuestCount)),
			formatAmountStr(p.Advance), formatAmountStr(p.TotalAmount), statusBadge(p.Status),
		})
	}
	renderTable(a.out, []string{"#", "Date", "Time", "Child", "Parent", "Phone", "Guests", "Advance", "Total", "Status"}, rows)
	return nil
}

func (a *App) partyCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "new":
		return a.partyCreate(ctx)

	case "edit":
		i, err := rowIndex(args, len(a.partyRows))
		if err != nil {
			return err
		}
		return a.partyEdit(ctx, a.partyRows[i])

	case "del":
		i, err := rowIndex(args, len(a.partyRows))
		if err != nil {
			return err
		}
		return a.partyDelete(ctx, a.partyRows[i])

	case "history":
		i, err := rowIndex(args, len(a.partyRows))
		if err != nil {
			return err
		}
		a.printHistory(a.partyRows[i].UpdateHistory)
		return nil

	case "filter":
		if len(args) == 0 || !permissions.AllowsFilter(a.perms.PartyFilters, args[0]) {
			return fmt.Errorf("filter must be one of: %s", strings.Join(a.perms.PartyFilters, ", "))
		}
		a.partyFilter = args[0]
		return a.router.NavigateTo(ctx, PageParties)

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}

func (a *App) partyDelete(ctx context.Context, p models.Party) error {
	if !a.perms.CanDeleteParty(p) {
		return fmt.Errorf("completed bookings can only be deleted by an administrator")
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete booking for %s on %s?", sanitize(p.ChildName), p.PartyDate), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Parties.Delete(ctx, p.ID); err != nil {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PageParties)
}
