package models

// Backup describes a server-side backup artifact. Immutable once created.
type Backup struct {
	Filename  string `json:"filename"`
	Size      int64  `json:"size"`
	CreatedAt string `json:"createdAt"`
}
