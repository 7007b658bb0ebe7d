package port

import "context"

type Email struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers transactional emails.
type Mailer interface {
	Send(ctx context.Context, e Email) error
}
