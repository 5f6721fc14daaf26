package mailer

// ContactJob is the JSON payload put on the RabbitMQ queue when a visitor
// submits the contact form. The email worker turns it into a notification
// email for the site admin.
type ContactJob struct {
	MessageID  string `json:"message_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
	ProjectRef string `json:"project_ref,omitempty"`
	ReceivedAt string `json:"received_at"`
}
