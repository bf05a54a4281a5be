package response

import (
	"time"

	"freightmarket/internal/domain/entities"
)

type ReportResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RequestID string    `json:"request_id,omitempty"`
	Reason    string    `json:"reason"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReport(r entities.Report) ReportResponse {
	return ReportResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		RequestID: r.RequestID,
		Reason:    r.Reason,
		Message:   r.Message,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}
