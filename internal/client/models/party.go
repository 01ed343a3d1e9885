package models

// Party booking statuses.
const (
	PartyBooked     = "booked"
	PartyConfirmed  = "confirmed"
	PartyInProgress = "in-progress"
	PartyCompleted  = "completed"
	PartyCancelled  = "cancelled"
)

// Party is a party booking. PartyTime is stored in 24-hour HH:MM form;
// the edit form decomposes it into hour/minute/AM-PM controls.
type Party struct {
	ID            string `json:"id,omitempty"`
	ChildName     string `json:"childName"`
	ChildAge      string `json:"childAge,omitempty"`
	ParentName    string `json:"parentName"`
	ParentPhone   string `json:"parentPhone,omitempty"`
	PartyDate     string `json:"partyDate"`
	PartyTime     string `json:"partyTime,omitempty"`
	GuestCount    string `json:"guestCount,omitempty"`
	PackageType   string `json:"packageType,omitempty"`
	Status        string `json:"status,omitempty"`
	Advance       string `json:"advance,omitempty"`
	TotalAmount   string `json:"totalAmount,omitempty"`
	Notes         string `json:"notes,omitempty"`
	UpdateHistory string `json:"updateHistory,omitempty"`
}

// Completed reports whether the booking reached its terminal "completed"
// state. Cancelled bookings are not completed.
func (p Party) Completed() bool {
	return p.Status == PartyCompleted
}
