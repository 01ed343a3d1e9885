package models

// Walkin is a single walk-in visit. A record is active while CheckOutTime is
// empty; checkout stamps it and the record becomes terminal.
type Walkin struct {
	ID            string `json:"id,omitempty"`
	TagNo         string `json:"tagNo,omitempty"`
	ChildName     string `json:"childName"`
	ChildAge      string `json:"childAge,omitempty"`
	Gender        string `json:"gender,omitempty"`
	DOB           string `json:"dob,omitempty"`
	ParentName    string `json:"parentName"`
	ParentPhone   string `json:"parentPhone,omitempty"`
	ParentEmail   string `json:"parentEmail,omitempty"`
	Amount        string `json:"amount,omitempty"`
	PaymentMode   string `json:"paymentMode,omitempty"`
	Food          string `json:"food,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CheckInTime   string `json:"checkInTime,omitempty"`
	CheckOutTime  string `json:"checkOutTime,omitempty"`
	UpdateHistory string `json:"updateHistory,omitempty"`
}

// Completed reports whether the child has been checked out.
func (w Walkin) Completed() bool {
	return w.CheckOutTime != ""
}

// WalkinMatch is one row of the name-or-phone lookup used to autofill the
// check-in form.
type WalkinMatch struct {
	ChildName   string `json:"childName"`
	ChildAge    string `json:"childAge"`
	Gender      string `json:"gender"`
	DOB         string `json:"dob"`
	ParentName  string `json:"parentName"`
	ParentPhone string `json:"parentPhone"`
	ParentEmail string `json:"parentEmail"`
}
