package amqp

import (
	"testing"
	"time"
)

func TestNewReportGeneratedMessage(t *testing.T) {
	msg := NewReportGeneratedMessage(2025, 8, 3)

	if msg.Year != 2025 || msg.Month != 8 || msg.FlaggedCategories != 3 {
		t.Fatalf("message fields wrong: %+v", msg)
	}
	if msg.Timestamp.IsZero() {
		t.Fatal("timestamp should be set")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Fatal("timestamp should be recent")
	}
}

func TestReportGeneratedMessageJSON(t *testing.T) {
	msg := &ReportGeneratedMessage{
		Year:              2025,
		Month:             8,
		FlaggedCategories: 2,
		Timestamp:         time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC),
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	parsed, err := ReportGeneratedMessageFromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if *parsed != *msg {
		t.Fatalf("round trip diverged: %+v vs %+v", parsed, msg)
	}

	if _, err := ReportGeneratedMessageFromJSON([]byte(`{"year": "nope"}`)); err == nil {
		t.Fatal("invalid JSON should fail")
	}
}
