// Package mail is the narrative sink: it turns the report's narrative
// body into an email draft for the user to review and send.
package mail

import "context"

// DraftSender creates a draft message. Failures here are survivable:
// the service reports them without discarding the tabular output.
type DraftSender interface {
	CreateDraft(ctx context.Context, subject, body string) error
}
