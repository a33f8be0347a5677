package mail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"strings"

	ggmail "google.golang.org/api/gmail/v1"
	goption "google.golang.org/api/option"
)

// GmailClient creates report drafts under the authenticated account.
type GmailClient struct {
	svc *ggmail.Service
	to  string
}

var _ DraftSender = (*GmailClient)(nil)

// NewGmailClient builds a Gmail client with service-account credentials
// from the environment, mirroring the sheets client's auth setup. The
// optional recipient is prefilled on the draft.
func NewGmailClient(ctx context.Context, recipient string) (*GmailClient, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	svc, err := ggmail.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(ggmail.GmailComposeScope))
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}

	return &GmailClient{svc: svc, to: recipient}, nil
}

// CreateDraft assembles an RFC 2822 message and stores it as a draft
// for the authenticated user.
func (c *GmailClient) CreateDraft(ctx context.Context, subject, body string) error {
	raw := buildMessage(c.to, subject, body)
	draft := &ggmail.Draft{
		Message: &ggmail.Message{
			Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
		},
	}

	created, err := c.svc.Users.Drafts.Create("me", draft).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("create gmail draft: %w", err)
	}

	slog.InfoContext(ctx, "Report draft created", "draft_id", created.Id, "subject", subject)
	return nil
}

// buildMessage renders a minimal plain-text RFC 2822 message.
func buildMessage(to, subject, body string) string {
	var b strings.Builder
	if to != "" {
		fmt.Fprintf(&b, "To: %s\r\n", to)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}
