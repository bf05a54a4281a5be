package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"freightmarket/internal/domain/entities"
	"freightmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"

	quoteRequestIndex = "request_id-index"
	quoteCarrierIndex = "carrier_id-index"
)

type quoteItem struct {
	ID             string `dynamodbav:"id"`
	RequestID      string `dynamodbav:"request_id"`
	CarrierID      string `dynamodbav:"carrier_id"`
	EstimatedPrice string `dynamodbav:"estimated_price"`
	Comment        string `dynamodbav:"comment,omitempty"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI request_id-index: request_id (string)
//   - GSI carrier_id-index: carrier_id (string)
//
// Quote creation is not exposed here: new quotes are written through
// LifecycleDynamoRepository.SubmitQuote so the put is conditioned on the
// parent request still being open.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error) {
	return r.queryIndex(ctx, quoteRequestIndex, "request_id", requestID)
}

func (r *QuoteDynamoRepository) ListByCarrierID(ctx context.Context, carrierID string) ([]entities.Quote, error) {
	return r.queryIndex(ctx, quoteCarrierIndex, "carrier_id", carrierID)
}

func (r *QuoteDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Quote, error) {
	var (
		out      []entities.Quote
		startKey map[string]types.AttributeValue
	)
	for {
		res, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                aws.String(r.tableName),
			IndexName:                aws.String(index),
			KeyConditionExpression:   aws.String("#k = :v"),
			ExpressionAttributeNames: map[string]string{"#k": key},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: value},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(res.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromQuoteItem(it))
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) DeletePending(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPending)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrConditionFailed
		}
		return err
	}
	return nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:             q.ID,
		RequestID:      q.RequestID,
		CarrierID:      q.CarrierID,
		EstimatedPrice: strconv.FormatFloat(q.EstimatedPrice, 'f', -1, 64),
		Comment:        q.Comment,
		Status:         string(q.Status),
		CreatedAt:      q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	price, _ := strconv.ParseFloat(it.EstimatedPrice, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Quote{
		ID:             it.ID,
		RequestID:      it.RequestID,
		CarrierID:      it.CarrierID,
		EstimatedPrice: price,
		Comment:        it.Comment,
		Status:         entities.QuoteStatus(it.Status),
		CreatedAt:      createdAt,
	}
}
