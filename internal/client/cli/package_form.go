package cli

import (
	"context"
	"strconv"

	"playcenter-console/internal/client/models"
)

var packageTypes = []string{
	models.Package10Visits, models.Package20Visits,
	models.Package30Visits, models.PackageMonthly,
}

// totalVisitsFor maps a package type to its visit allowance. Monthly passes
// carry no counter.
func totalVisitsFor(packageType string) string {
	switch packageType {
	case models.Package10Visits:
		return "10"
	case models.Package20Visits:
		return "20"
	case models.Package30Visits:
		return "30"
	default:
		return ""
	}
}

// packageForm walks the package fields. The visit allowance is derived from
// the chosen type rather than asked.
func (a *App) packageForm(p models.Package, edit bool) (models.Package, error) {
	var err error
	if p.ChildName, err = GetTextDefault(a.reader, "Child name", p.ChildName, a.out); err != nil {
		return p, err
	}
	if p.ChildAge, err = GetTextDefault(a.reader, "Child age", p.ChildAge, a.out); err != nil {
		return p, err
	}
	if p.ParentName, err = GetTextDefault(a.reader, "Parent name", p.ParentName, a.out); err != nil {
		return p, err
	}
	if p.ParentPhone, err = GetTextDefault(a.reader, "Parent phone", p.ParentPhone, a.out); err != nil {
		return p, err
	}
	if p.ParentEmail, err = GetTextDefault(a.reader, "Parent email", p.ParentEmail, a.out); err != nil {
		return p, err
	}
	if p.PackageType, err = GetChoice(a.reader, "Package type", packageTypes, p.PackageType, a.out); err != nil {
		return p, err
	}
	p.TotalVisits = totalVisitsFor(p.PackageType)
	if p.StartDate, err = GetTextDefault(a.reader, "Start date (YYYY-MM-DD)", p.StartDate, a.out); err != nil {
		return p, err
	}
	if p.EndDate, err = GetTextDefault(a.reader, "End date (YYYY-MM-DD)", p.EndDate, a.out); err != nil {
		return p, err
	}
	if p.Amount, err = GetTextDefault(a.reader, "Amount", p.Amount, a.out); err != nil {
		return p, err
	}
	if p.PaymentMode, err = GetChoice(a.reader, "Payment mode", []string{"cash", "card", "upi"}, p.PaymentMode, a.out); err != nil {
		return p, err
	}
	if edit {
		if p.Status, err = GetChoice(a.reader, "Status",
			[]string{models.PackageActive, models.PackageCompleted}, p.Status, a.out); err != nil {
			return p, err
		}
		if p.UsedVisits, err = GetTextDefault(a.reader, "Used visits", p.UsedVisits, a.out); err != nil {
			return p, err
		}
		if n, convErr := strconv.Atoi(p.UsedVisits); convErr != nil || n < 0 {
			p.UsedVisits = "0"
		}
	} else {
		p.Status = models.PackageActive
		p.UsedVisits = "0"
	}
	if p.Notes, err = GetTextDefault(a.reader, "Notes", p.Notes, a.out); err != nil {
		return p, err
	}
	return p, nil
}

func (a *App) packageCreate(ctx context.Context) error {
	p, err := a.packageForm(models.Package{}, false)
	if err != nil {
		return err
	}

	saved, err := a.submitWithRetry(func() error { return a.svc.Packages.Create(ctx, p) })
	if err != nil || !saved {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PagePackages)
}

func (a *App) packageEdit(ctx context.Context, row models.Package) error {
	p, err := a.svc.Packages.Get(ctx, row.ID)
	if err != nil {
		return err
	}

	p, err = a.packageForm(p, true)
	if err != nil {
		return err
	}

	saved, err := a.submitWithRetry(func() error { return a.svc.Packages.Update(ctx, p.ID, p) })
	if err != nil || !saved {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PagePackages)
}
