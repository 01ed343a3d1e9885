package cli

import (
	"context"
	"fmt"
	"strconv"

	"playcenter-console/internal/client/dateutil"
	"playcenter-console/internal/client/models"
)

var partyStatuses = []string{
	models.PartyBooked, models.PartyConfirmed, models.PartyInProgress,
	models.PartyCompleted, models.PartyCancelled,
}

// timePicker runs the three-control party time prompt: hour 1-12, minute,
// AM/PM. An existing HH:MM value is decomposed to seed the defaults.
func (a *App) timePicker(current string) (string, error) {
	hour, minute, ampm := 4, "00", "PM"
	if h, m, ap, err := dateutil.DecomposeTime(current); err == nil {
		hour, minute, ampm = h, m, ap
	}

	for {
		text, err := GetTextDefault(a.reader, "Hour (1-12)", strconv.Itoa(hour), a.out)
		if err != nil {
			return "", err
		}
		h, err := strconv.Atoi(text)
		if err == nil && h >= 1 && h <= 12 {
			hour = h
			break
		}
		fmt.Fprintln(a.out, "Hour must be 1-12.")
	}

	for {
		text, err := GetTextDefault(a.reader, "Minute (00/15/30/45)", minute, a.out)
		if err != nil {
			return "", err
		}
		if text == "00" || text == "15" || text == "30" || text == "45" {
			minute = text
			break
		}
		fmt.Fprintln(a.out, "Minute must be 00, 15, 30 or 45.")
	}

	ampm, err := GetChoice(a.reader, "AM or PM", []string{"AM", "PM"}, ampm, a.out)
	if err != nil {
		return "", err
	}

	return dateutil.ComposeTime(hour, minute, ampm), nil
}

// partyForm walks the booking fields. Status is only offered on edits; new
// bookings always start out booked. Non-administrators get the identifying
// and scheduling fields locked on edit.
func (a *App) partyForm(p models.Party, edit bool) (models.Party, error) {
	readonly := a.perms.ReadOnlyPartyFields(edit)

	var err error
	if p.ChildName, err = a.formField("Child name", p.ChildName, readonly, "childName"); err != nil {
		return p, err
	}
	if p.ChildAge, err = a.formField("Child age", p.ChildAge, readonly, "childAge"); err != nil {
		return p, err
	}
	if p.ParentName, err = a.formField("Parent name", p.ParentName, readonly, "parentName"); err != nil {
		return p, err
	}
	if p.ParentPhone, err = a.formField("Parent phone", p.ParentPhone, readonly, "parentPhone"); err != nil {
		return p, err
	}
	if p.PartyDate, err = a.formField("Party date (YYYY-MM-DD)", p.PartyDate, readonly, "partyDate"); err != nil {
		return p, err
	}

	if locked(readonly, "partyTime") {
		fmt.Fprintf(a.out, "Party time: %s (locked)\n", dateutil.FormatTime12(p.PartyTime))
	} else {
		if p.PartyTime, err = a.timePicker(p.PartyTime); err != nil {
			return p, err
		}
	}

	if p.GuestCount, err = a.formField("Guest count", p.GuestCount, readonly, "guestCount"); err != nil {
		return p, err
	}
	if p.PackageType, err = a.formField("Package type", p.PackageType, readonly, "packageType"); err != nil {
		return p, err
	}

	if edit {
		if locked(readonly, "status") {
			fmt.Fprintf(a.out, "Status: %s (locked)\n", orDash(p.Status))
		} else {
			if p.Status, err = GetChoice(a.reader, "Status", partyStatuses, p.Status, a.out); err != nil {
				return p, err
			}
		}
	} else {
		p.Status = models.PartyBooked
	}

	if p.Advance, err = a.formField("Advance", p.Advance, readonly, "advance"); err != nil {
		return p, err
	}
	if p.TotalAmount, err = a.formField("Total amount", p.TotalAmount, readonly, "totalAmount"); err != nil {
		return p, err
	}
	if p.Notes, err = a.formField("Notes", p.Notes, readonly, "notes"); err != nil {
		return p, err
	}
	return p, nil
}

func (a *App) partyCreate(ctx context.Context) error {
	p, err := a.partyForm(models.Party{}, false)
	if err != nil {
		return err
	}

	saved, err := a.submitWithRetry(func() error { return a.svc.Parties.Create(ctx, p) })
	if err != nil || !saved {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PageParties)
}

func (a *App) partyEdit(ctx context.Context, row models.Party) error {
	p, err := a.svc.Parties.Get(ctx, row.ID)
	if err != nil {
		return err
	}

	p, err = a.partyForm(p, true)
	if err != nil {
		return err
	}

	saved, err := a.submitWithRetry(func() error { return a.svc.Parties.Update(ctx, p.ID, p) })
	if err != nil || !saved {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PageParties)
}
