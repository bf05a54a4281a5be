package repository

import (
	"context"
	"time"

	"freightmarket/internal/domain/entities"
	"freightmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReportsTableName = "reports"

type reportItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	RequestID string `dynamodbav:"request_id,omitempty"`
	Reason    string `dynamodbav:"reason"`
	Message   string `dynamodbav:"message,omitempty"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ReportDynamoRepository persists support report tickets in DynamoDB.
// Table PK: id (string).
type ReportDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReportRepository = (*ReportDynamoRepository)(nil)

func NewReportDynamoRepository(ddb *dynamodb.Client) *ReportDynamoRepository {
	return &ReportDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REPORTS_TABLE", defaultReportsTableName),
	}
}

func (r *ReportDynamoRepository) Create(ctx context.Context, rep entities.Report) (entities.Report, error) {
	av, err := attributevalue.MarshalMap(reportItem{
		ID:        rep.ID,
		UserID:    rep.UserID,
		RequestID: rep.RequestID,
		Reason:    rep.Reason,
		Message:   rep.Message,
		Status:    string(rep.Status),
		CreatedAt: rep.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Report{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Report{}, err
	}
	return rep, nil
}

func (r *ReportDynamoRepository) GetByID(ctx context.Context, id string) (entities.Report, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Report{}, err
	}
	if len(out.Item) == 0 {
		return entities.Report{}, nil
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Report{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Report{
		ID:        it.ID,
		UserID:    it.UserID,
		RequestID: it.RequestID,
		Reason:    it.Reason,
		Message:   it.Message,
		Status:    entities.ReportStatus(it.Status),
		CreatedAt: createdAt,
	}, nil
}
