package mail

import (
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("me@example.com", "August 2025 Budget Comparison", "Monthly Budget Deviation Report\n")

	if !strings.HasPrefix(msg, "To: me@example.com\r\n") {
		t.Fatalf("missing To header:\n%s", msg)
	}
	if !strings.Contains(msg, "Subject: August 2025 Budget Comparison\r\n") {
		t.Fatalf("missing Subject header:\n%s", msg)
	}
	headers, body, ok := strings.Cut(msg, "\r\n\r\n")
	if !ok {
		t.Fatalf("no header/body separator:\n%s", msg)
	}
	if !strings.Contains(headers, "Content-Type: text/plain") {
		t.Fatalf("missing content type:\n%s", headers)
	}
	if body != "Monthly Budget Deviation Report\n" {
		t.Fatalf("body = %q", body)
	}
}

func TestBuildMessageWithoutRecipient(t *testing.T) {
	msg := buildMessage("", "Subject", "body")
	if strings.Contains(msg, "To:") {
		t.Fatalf("empty recipient must omit To header:\n%s", msg)
	}
}
