// Package permissions resolves a role into the capability set the view layer
// consumes. Each page load resolves once; no view checks roles directly.
package permissions

import "playcenter-console/internal/client/models"

// List filter identifiers shared by the services and view layers.
const (
	FilterToday     = "today"
	FilterActive    = "active"
	FilterCompleted = "completed"
	FilterLast7Days = "last7days"
	FilterDateRange = "daterange"
	FilterAll       = "all"
	FilterUpcoming  = "upcoming"
	FilterThisMonth = "thismonth"
	FilterExpiring  = "expiring"
)

// Permissions is the capability set for one authenticated role.
type Permissions struct {
	Admin bool

	// Filter options offered per list, in display order.
	WalkinFilters  []string
	PartyFilters   []string
	PackageFilters []string

	// CanSeeDateRange controls the walk-ins date-range control outright.
	CanSeeDateRange bool

	// Fields rendered read-only when a non-administrator edits an existing
	// record. Creation is never restricted.
	WalkinReadOnly []string
	PartyReadOnly  []string

	CanManageUsers   bool
	CanManageBackups bool
}

// Resolve maps a role to its capabilities.
func Resolve(role string) Permissions {
	if role == models.RoleAdmin {
		return Permissions{
			Admin:            true,
			WalkinFilters:    []string{FilterToday, FilterActive, FilterCompleted, FilterDateRange, FilterAll},
			PartyFilters:     []string{FilterUpcoming, FilterToday, FilterThisMonth, FilterCompleted, FilterAll},
			PackageFilters:   []string{FilterActive, FilterExpiring, FilterCompleted, FilterAll},
			CanSeeDateRange:  true,
			CanManageUsers:   true,
			CanManageBackups: true,
		}
	}

	return Permissions{
		WalkinFilters:  []string{FilterToday, FilterActive, FilterLast7Days},
		PartyFilters:   []string{FilterUpcoming, FilterToday, FilterLast7Days},
		PackageFilters: []string{FilterActive, FilterExpiring},
		WalkinReadOnly: []string{"tagNo", "amount", "paymentMode", "gender", "dob"},
		PartyReadOnly:  []string{"childName", "parentName", "parentPhone", "partyDate", "partyTime", "packageType", "status"},
	}
}

// AllowsFilter reports whether the filter is in the offered set.
func AllowsFilter(offered []string, filter string) bool {
	for _, f := range offered {
		if f == filter {
			return true
		}
	}
	return false
}

// CanDeleteWalkin permits delete unconditionally for administrators and only
// while the visit is still active for everyone else.
func (p Permissions) CanDeleteWalkin(w models.Walkin) bool {
	return p.Admin || !w.Completed()
}

// CanDeleteParty permits delete unconditionally for administrators and only
// for non-completed bookings for everyone else.
func (p Permissions) CanDeleteParty(party models.Party) bool {
	return p.Admin || !party.Completed()
}

// CanDeletePackage permits delete for administrators or while the package is
// still active.
func (p Permissions) CanDeletePackage(pkg models.Package) bool {
	return p.Admin || pkg.Active()
}

// ReadOnlyWalkinFields returns the locked walk-in fields for an edit session.
func (p Permissions) ReadOnlyWalkinFields(edit bool) []string {
	if !edit {
		return nil
	}
	return p.WalkinReadOnly
}

// ReadOnlyPartyFields returns the locked party fields for an edit session.
func (p Permissions) ReadOnlyPartyFields(edit bool) []string {
	if !edit {
		return nil
	}
	return p.PartyReadOnly
}
