package entities

import "time"

// ReportStatus tracks admin handling of a report ticket.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusResolved ReportStatus = "resolved"
)

// Report is a user-filed incident ticket about a freight request. New
// tickets trigger an out-of-band admin email; send failures are logged
// and never affect the ticket itself.
//
// Storage model (DynamoDB, table reports): PK id.
type Report struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	RequestID string       `json:"request_id,omitempty"`
	Reason    string       `json:"reason"`
	Message   string       `json:"message"`
	Status    ReportStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}
