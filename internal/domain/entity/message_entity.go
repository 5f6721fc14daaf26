package entity

import "time"

// MessageStatus is the triage state of a contact message.
type MessageStatus string

const (
	MessageNew      MessageStatus = "new"
	MessageSeen     MessageStatus = "seen"
	MessageArchived MessageStatus = "archived"
)

// Message is a contact-form submission from a site visitor.
type Message struct {
	ID         string
	Name       string
	Email      string
	Body       string
	ProjectRef string // optional project id the message refers to
	Status     MessageStatus
	CreatedAt  time.Time
}
