package models

import "strconv"

// Multi-visit package types. The monthly type grants unbounded visits for its
// date range regardless of the visit counters.
const (
	Package10Visits = "10visits"
	Package20Visits = "20visits"
	Package30Visits = "30visits"
	PackageMonthly  = "monthly"
)

const (
	PackageActive    = "active"
	PackageCompleted = "completed"
)

// Package is a prepaid multi-visit pass.
type Package struct {
	ID            string `json:"id,omitempty"`
	ChildName     string `json:"childName"`
	ChildAge      string `json:"childAge,omitempty"`
	ParentName    string `json:"parentName"`
	ParentPhone   string `json:"parentPhone"`
	ParentEmail   string `json:"parentEmail,omitempty"`
	PackageType   string `json:"packageType"`
	TotalVisits   string `json:"totalVisits,omitempty"`
	UsedVisits    string `json:"usedVisits,omitempty"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Amount        string `json:"amount,omitempty"`
	PaymentMode   string `json:"paymentMode,omitempty"`
	Status        string `json:"status,omitempty"`
	Notes         string `json:"notes,omitempty"`
	UpdateHistory string `json:"updateHistory,omitempty"`
}

func (p Package) Monthly() bool {
	return p.PackageType == PackageMonthly
}

func (p Package) Active() bool {
	return p.Status == PackageActive
}

// Remaining returns total minus used visits. Display code must show the
// monthly type as unbounded instead of this value.
func (p Package) Remaining() int {
	total, _ := strconv.Atoi(p.TotalVisits)
	used, _ := strconv.Atoi(p.UsedVisits)
	return total - used
}

// TypeLabel maps the package type to its display name.
func (p Package) TypeLabel() string {
	switch p.PackageType {
	case PackageMonthly:
		return "Monthly"
	case Package10Visits:
		return "10 Visits"
	case Package20Visits:
		return "20 Visits"
	case Package30Visits:
		return "30 Visits"
	default:
		return p.PackageType
	}
}
