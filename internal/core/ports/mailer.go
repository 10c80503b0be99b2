package ports

import "context"

// Mailer is the outgoing notification collaborator. Delivery mechanics live
// behind this contract; the core only knows to/subject/body.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
