// Package messaging defines the outbound transport contracts and the error
// taxonomy shared by the dispatcher and the transport adapters.
package messaging

import "context"

// EmailSender delivers a single rendered HTML message to one address.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// ChatSender delivers a single rendered text message to one phone number in
// international +<countrycode><number> form.
type ChatSender interface {
	SendText(ctx context.Context, phone, text string) error
}
