package entity

import "time"

// Update is a dated progress post attached to a project.
type Update struct {
	ID         string
	ProjectID  string
	Title      string
	Content    string
	MediaURL   string // public object-storage URL, optional
	PostedBy   string // user id of the author
	PostedName string // author display name, joined in for public reads
	Published  bool
	PostedAt   time.Time
}
