package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"playcenter-console/internal/client/models"
	"playcenter-console/internal/client/permissions"
)

// remainingLabel shows visits left, with the monthly type unbounded.
func remainingLabel(p models.Package) string {
	if p.Monthly() {
		return "∞"
	}
	return fmt.Sprintf("%d of %s", p.Remaining(), orDash(p.TotalVisits))
}

func (a *App) loadPackages(ctx context.Context) error {
	packages, err := a.svc.Packages.List(ctx, a.packageFilter)
	if err != nil {
		return err
	}
	a.packageRows = packages

	fmt.Fprintf(a.out, "%s  filter: %s  (available: %s)\n",
		boldText("Packages"), a.packageFilter, strings.Join(a.perms.PackageFilters, ", "))

	rows := make([][]string, 0, len(packages))
	for i, p := range packages {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), sanitize(p.ChildName), sanitize(p.ParentName), orDash(sanitize(p.ParentPhone)),
			sanitize(p.TypeLabel()), sanitize(remainingLabel(p)), sanitize(p.StartDate), sanitize(p.EndDate),
			formatAmountStr(p.Amount), statusBadge(p.Status),
		})
	}
	renderTable(a.out, []string{"#", "Child", "Parent", "Phone", "Type", "Visits left", "Start", "End", "Amount", "Status"}, rows)
	return nil
}

func (a *App) packageCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "new":
		return a.packageCreate(ctx)

	case "edit":
		i, err := rowIndex(args, len(a.packageRows))
		if err != nil {
			return err
		}
		return a.packageEdit(ctx, a.packageRows[i])

	case "del":
		i, err := rowIndex(args, len(a.packageRows))
		if err != nil {
			return err
		}
		return a.packageDelete(ctx, a.packageRows[i])

	case "use":
		i, err := rowIndex(args, len(a.packageRows))
		if err != nil {
			return err
		}
		return a.packageUseVisit(ctx, a.packageRows[i])

	case "history":
		i, err := rowIndex(args, len(a.packageRows))
		if err != nil {
			return err
		}
		a.printHistory(a.packageRows[i].UpdateHistory)
		return nil

	case "filter":
		if len(args) == 0 || !permissions.AllowsFilter(a.perms.PackageFilters, args[0]) {
			return fmt.Errorf("filter must be one of: %s", strings.Join(a.perms.PackageFilters, ", "))
		}
		a.packageFilter = args[0]
		return a.router.NavigateTo(ctx, PagePackages)

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}

// packageUseVisit redeems one visit. Monthly passes have no counter to
// decrement but still record the visit in the update history.
func (a *App) packageUseVisit(ctx context.Context, p models.Package) error {
	if !p.Active() {
		return fmt.Errorf("package for %s is not active", p.ChildName)
	}
	if !p.Monthly() && p.Remaining() <= 0 {
		return fmt.Errorf("no visits left on the package for %s", p.ChildName)
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Use one visit for %s (%s left)?",
		sanitize(p.ChildName), remainingLabel(p)), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Packages.UseVisit(ctx, p.ID); err != nil {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PagePackages)
}

func (a *App) packageDelete(ctx context.Context, p models.Package) error {
	if !a.perms.CanDeletePackage(p) {
		return fmt.Errorf("completed packages can only be deleted by an administrator")
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete the package for %s?", sanitize(p.ChildName)), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Packages.Delete(ctx, p.ID); err != nil {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PagePackages)
}
