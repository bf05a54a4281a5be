package interfaces

import (
	"context"
	"freightmarket/internal/domain/entities"
)

// IReportRepository abstracts DynamoDB persistence for Report tickets.
type IReportRepository interface {
	Create(ctx context.Context, r entities.Report) (entities.Report, error)
	GetByID(ctx context.Context, id string) (entities.Report, error)
}
