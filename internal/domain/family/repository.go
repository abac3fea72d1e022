package family

import "context"

// Repository defines the read contract for the family record store. Records
// are read fresh at the start of each run and owned by that run.
type Repository interface {
	ListMembers(ctx context.Context) ([]Member, error)
	ListRecipients(ctx context.Context) ([]Recipient, error)
}
