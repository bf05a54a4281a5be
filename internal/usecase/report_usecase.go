package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"freightmarket/internal/domain/entities"
	"freightmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidReportInput = errors.New("invalid report payload")

// CreateReportInput is a user-filed incident ticket.
type CreateReportInput struct {
	RequestID string
	Reason    string
	Message   string
}

// IReportUseCase persists report tickets and alerts the admin address by
// mail. The mail is strictly out-of-band: a failed send is logged and
// the ticket stands.
type IReportUseCase interface {
	Create(ctx context.Context, authUID string, in CreateReportInput) (entities.Report, error)
}

type ReportUseCase struct {
	reports    interfaces.IReportRepository
	users      interfaces.IUserRepository
	mailer     interfaces.IMailer
	adminEmail string
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(reports interfaces.IReportRepository, users interfaces.IUserRepository, mailer interfaces.IMailer, adminEmail string) *ReportUseCase {
	return &ReportUseCase{reports: reports, users: users, mailer: mailer, adminEmail: adminEmail}
}

func (u *ReportUseCase) Create(ctx context.Context, authUID string, in CreateReportInput) (entities.Report, error) {
	user, err := u.users.GetByAuthUID(ctx, strings.TrimSpace(authUID))
	if err != nil {
		return entities.Report{}, err
	}
	if user.ID == "" {
		return entities.Report{}, ErrUserNotFound
	}

	in.Reason = strings.TrimSpace(in.Reason)
	in.Message = strings.TrimSpace(in.Message)
	if in.Reason == "" || in.Message == "" {
		return entities.Report{}, ErrInvalidReportInput
	}

	r := entities.Report{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		RequestID: strings.TrimSpace(in.RequestID),
		Reason:    in.Reason,
		Message:   in.Message,
		Status:    entities.ReportStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.reports.Create(ctx, r)
	if err != nil {
		return entities.Report{}, err
	}

	if u.adminEmail != "" {
		subject := fmt.Sprintf("FreightMarket - New report ticket #%s", created.ID)
		body := fmt.Sprintf(
			"Reporter: %s (%s)\nRequest: %s\nReason: %s\n\n%s\n",
			user.FullName(), user.Email, orDefault(created.RequestID, "n/a"), created.Reason, created.Message)
		go func() {
			if err := u.mailer.Send(u.adminEmail, subject, body); err != nil {
				log.Printf("[report][usecase] admin mail for report_id=%s failed: %v", created.ID, err)
			}
		}()
	}
	return created, nil
}
