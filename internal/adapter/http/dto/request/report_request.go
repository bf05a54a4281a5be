package request

import "freightmarket/internal/usecase"

// ReportCreateRequest files a support ticket, optionally tied to a
// freight request.
type ReportCreateRequest struct {
	RequestID string `json:"request_id"`
	Reason    string `json:"reason" binding:"required"`
	Message   string `json:"message"`
}

func (r ReportCreateRequest) ToInput() usecase.CreateReportInput {
	return usecase.CreateReportInput{
		RequestID: r.RequestID,
		Reason:    r.Reason,
		Message:   r.Message,
	}
}
