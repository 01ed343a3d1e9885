package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"playcenter-console/internal/client/dateutil"
	"playcenter-console/internal/client/models"
)

// locked reports whether a field name is in the read-only set.
func locked(readonly []string, field string) bool {
	for _, f := range readonly {
		if f == field {
			return true
		}
	}
	return false
}

// formField prompts for one field, keeping the current value on an empty
// line. Locked fields are shown but not editable.
func (a *App) formField(prompt, current string, readonly []string, field string) (string, error) {
	if locked(readonly, field) {
		fmt.Fprintf(a.out, "%s: %s (locked)\n", prompt, orDash(sanitize(current)))
		return current, nil
	}
	return GetTextDefault(a.reader, prompt, current, a.out)
}

// deriveAge recomputes the whole-year age whenever a valid birth date is
// present; otherwise the entered age stands.
func (a *App) deriveAge(dob, age string) string {
	d, err := time.Parse(dateutil.ISODate, dob)
	if err != nil {
		return age
	}
	derived := dateutil.Age(d, a.now())
	if derived < 0 {
		return age
	}
	return strconv.Itoa(derived)
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// searchAutofill runs the live visitor lookup for the check-in form. Each
// entered line retriggers the debounced search; entering a match number
// picks it, an empty line skips. Queries of digits search by phone,
// anything else by name.
func (a *App) searchAutofill(ctx context.Context) *models.WalkinMatch {
	fmt.Fprintln(a.out, "Search returning visitors by name or phone (empty line to skip):")

	var mu sync.Mutex
	var matches []models.WalkinMatch

	deb := NewDebouncer(a.config.SearchDebounce, func(query string) {
		searchType := "name"
		if allDigits(query) {
			searchType = "phone"
		}
		res, err := a.svc.Walkins.Search(ctx, query, searchType)
		if err != nil {
			a.log.Debug(ctx, "search failed", "error", err)
			return
		}
		mu.Lock()
		matches = res
		mu.Unlock()

		for i, m := range res {
			fmt.Fprintf(a.out, "  [%d] %s (%s) parent %s, %s\n", i+1,
				sanitize(m.ChildName), orDash(m.ChildAge), sanitize(m.ParentName), orDash(m.ParentPhone))
		}
		if len(res) == 0 {
			fmt.Fprintln(a.out, "  no matches")
		}
	})
	defer deb.Cancel()

	for {
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}

		if n, err := strconv.Atoi(line); err == nil {
			mu.Lock()
			var picked *models.WalkinMatch
			if n >= 1 && n <= len(matches) {
				m := matches[n-1]
				picked = &m
			}
			mu.Unlock()
			if picked != nil {
				return picked
			}
		}
		deb.Trigger(line)
	}
}

// walkinForm walks the walk-in fields. For edits by non-administrators some
// fields are locked; creation never locks anything.
func (a *App) walkinForm(w models.Walkin, edit bool) (models.Walkin, error) {
	readonly := a.perms.ReadOnlyWalkinFields(edit)

	var err error
	if w.ChildName, err = a.formField("Child name", w.ChildName, readonly, "childName"); err != nil {
		return w, err
	}
	if w.DOB, err = a.formField("Date of birth (YYYY-MM-DD)", w.DOB, readonly, "dob"); err != nil {
		return w, err
	}
	w.ChildAge = a.deriveAge(w.DOB, w.ChildAge)
	if w.DOB == "" {
		if w.ChildAge, err = a.formField("Age", w.ChildAge, readonly, "childAge"); err != nil {
			return w, err
		}
	} else {
		fmt.Fprintf(a.out, "Age: %s (from date of birth)\n", w.ChildAge)
	}
	if locked(readonly, "gender") {
		fmt.Fprintf(a.out, "Gender: %s (locked)\n", orDash(w.Gender))
	} else {
		if w.Gender, err = GetChoice(a.reader, "Gender", []string{"male", "female", "other"}, w.Gender, a.out); err != nil {
			return w, err
		}
	}
	if w.ParentName, err = a.formField("Parent name", w.ParentName, readonly, "parentName"); err != nil {
		return w, err
	}
	if w.ParentPhone, err = a.formField("Parent phone", w.ParentPhone, readonly, "parentPhone"); err != nil {
		return w, err
	}
	if w.ParentEmail, err = a.formField("Parent email", w.ParentEmail, readonly, "parentEmail"); err != nil {
		return w, err
	}
	if w.TagNo, err = a.formField("Tag number", w.TagNo, readonly, "tagNo"); err != nil {
		return w, err
	}
	if w.Amount, err = a.formField("Amount", w.Amount, readonly, "amount"); err != nil {
		return w, err
	}
	if locked(readonly, "paymentMode") {
		fmt.Fprintf(a.out, "Payment mode: %s (locked)\n", orDash(w.PaymentMode))
	} else {
		if w.PaymentMode, err = GetChoice(a.reader, "Payment mode", []string{"cash", "card", "upi"}, w.PaymentMode, a.out); err != nil {
			return w, err
		}
	}
	if w.Food, err = a.formField("Food", w.Food, readonly, "food"); err != nil {
		return w, err
	}
	if w.Notes, err = a.formField("Notes", w.Notes, readonly, "notes"); err != nil {
		return w, err
	}
	return w, nil
}

// submitWithRetry runs a mutation and, on failure, offers to retry with the
// same data. Reports whether the mutation eventually succeeded.
func (a *App) submitWithRetry(do func() error) (bool, error) {
	for {
		err := do()
		if err == nil {
			return true, nil
		}
		a.alert(err)

		retry, cerr := Confirm(a.reader, "Retry submit?", a.out)
		if cerr != nil {
			return false, cerr
		}
		if !retry {
			return false, nil
		}
	}
}

func (a *App) walkinCreate(ctx context.Context) error {
	w := models.Walkin{}
	if match := a.searchAutofill(ctx); match != nil {
		w.ChildName = match.ChildName
		w.ChildAge = match.ChildAge
		w.Gender = match.Gender
		w.DOB = match.DOB
		w.ParentName = match.ParentName
		w.ParentPhone = match.ParentPhone
		w.ParentEmail = match.ParentEmail
	}

	w, err := a.walkinForm(w, false)
	if err != nil {
		return err
	}

	saved, err := a.submitWithRetry(func() error { return a.svc.Walkins.Create(ctx, w) })
	if err != nil || !saved {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PageWalkins)
}

func (a *App) walkinEdit(ctx context.Context, row models.Walkin) error {
	w, err := a.svc.Walkins.Get(ctx, row.ID)
	if err != nil {
		return err
	}

	w, err = a.walkinForm(w, true)
	if err != nil {
		return err
	}

	saved, err := a.submitWithRetry(func() error { return a.svc.Walkins.Update(ctx, w.ID, w) })
	if err != nil || !saved {
		return err
	}
	return a.router.RefreshAfterMutation(ctx, PageWalkins)
}
