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

const (
	defaultRatingsTableName = "ratings"

	ratingCarrierIndex = "carrier_id-index"
)

type ratingItem struct {
	RequestID string `dynamodbav:"request_id"`
	ID        string `dynamodbav:"id"`
	ClientID  string `dynamodbav:"client_id"`
	CarrierID string `dynamodbav:"carrier_id"`
	Score     int    `dynamodbav:"score"`
	Comment   string `dynamodbav:"comment,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	Deleted   bool   `dynamodbav:"deleted"`
}

// RatingDynamoRepository reads Rating entities from DynamoDB.
//
// Table requirements:
//   - PK: request_id (string) — one rating per freight request by key design
//   - GSI carrier_id-index: carrier_id (string)
//
// Writes go through LifecycleDynamoRepository.CreateRating so the rating
// row and the carrier aggregate land in one transaction.
type RatingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRatingRepository = (*RatingDynamoRepository)(nil)

func NewRatingDynamoRepository(ddb *dynamodb.Client) *RatingDynamoRepository {
	return &RatingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATINGS_TABLE", defaultRatingsTableName),
	}
}

func (r *RatingDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Rating, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Rating{}, err
	}
	if len(out.Item) == 0 {
		return entities.Rating{}, nil
	}

	var it ratingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Rating{}, err
	}
	return fromRatingItem(it), nil
}

func (r *RatingDynamoRepository) ListByCarrierID(ctx context.Context, carrierID string) ([]entities.Rating, error) {
	var (
		out      []entities.Rating
		startKey map[string]types.AttributeValue
	)
	for {
		res, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                aws.String(r.tableName),
			IndexName:                aws.String(ratingCarrierIndex),
			KeyConditionExpression:   aws.String("#carrier_id = :carrier_id"),
			ExpressionAttributeNames: map[string]string{"#carrier_id": "carrier_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":carrier_id": &types.AttributeValueMemberS{Value: carrierID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []ratingItem
		if err := attributevalue.UnmarshalListOfMaps(res.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromRatingItem(it))
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}

func toRatingItem(rt entities.Rating) ratingItem {
	return ratingItem{
		RequestID: rt.RequestID,
		ID:        rt.ID,
		ClientID:  rt.ClientID,
		CarrierID: rt.CarrierID,
		Score:     rt.Score,
		Comment:   rt.Comment,
		CreatedAt: rt.CreatedAt.UTC().Format(time.RFC3339Nano),
		Deleted:   rt.Deleted,
	}
}

func fromRatingItem(it ratingItem) entities.Rating {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Rating{
		RequestID: it.RequestID,
		ID:        it.ID,
		ClientID:  it.ClientID,
		CarrierID: it.CarrierID,
		Score:     it.Score,
		Comment:   it.Comment,
		CreatedAt: createdAt,
		Deleted:   it.Deleted,
	}
}
