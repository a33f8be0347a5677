package amqp

import (
	"encoding/json"
	"time"
)

// ReportGeneratedMessage announces a finished report run to downstream
// consumers (archival, chat notifications). It carries only the report
// coordinates, not the report content.
type ReportGeneratedMessage struct {
	Year              int       `json:"year"`
	Month             int       `json:"month"`
	FlaggedCategories int       `json:"flagged_categories"`
	Timestamp         time.Time `json:"timestamp"`
}

// NewReportGeneratedMessage builds a message stamped with the current time.
func NewReportGeneratedMessage(year, month, flagged int) *ReportGeneratedMessage {
	return &ReportGeneratedMessage{
		Year:              year,
		Month:             month,
		FlaggedCategories: flagged,
		Timestamp:         time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ReportGeneratedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportGeneratedMessageFromJSON creates a message from JSON bytes.
func ReportGeneratedMessageFromJSON(data []byte) (*ReportGeneratedMessage, error) {
	var msg ReportGeneratedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
