package services

import "context"

// Recipient is an addressee of a notification.
type Recipient struct {
	Email string
	Name  string
}

// MembershipNotifier delivers membership workflow notifications. Delivery
// failures are reported to the caller but never undo the membership change.
type MembershipNotifier interface {
	JoinRequested(ctx context.Context, admins []Recipient, requesterName, clubName string) error
	JoinAccepted(ctx context.Context, member Recipient, clubName string) error
}
