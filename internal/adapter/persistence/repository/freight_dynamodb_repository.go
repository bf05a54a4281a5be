package repository

import (
	"context"
	"errors"
	"time"

	"freightmarket/internal/domain/entities"
	"freightmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFreightsTableName = "freight_requests"

	freightStatusIndex = "status-index"
	freightClientIndex = "client_id-index"
)

type freightItem struct {
	ID                    string `dynamodbav:"id"`
	ClientID              string `dynamodbav:"client_id"`
	AcceptedQuoteID       string `dynamodbav:"accepted_quote_id,omitempty"`
	OriginLocationID      string `dynamodbav:"origin_location_id"`
	DestinationLocationID string `dynamodbav:"destination_location_id"`
	OriginAddress         string `dynamodbav:"origin_address"`
	DestinationAddress    string `dynamodbav:"destination_address"`
	CargoDetails          string `dynamodbav:"cargo_details"`
	Measurements          string `dynamodbav:"measurements,omitempty"`
	WeightKg              int    `dynamodbav:"weight_kg,omitempty"`
	PhotoRef              string `dynamodbav:"photo_ref,omitempty"`
	PickupTime            string `dynamodbav:"pickup_time,omitempty"`
	Status                string `dynamodbav:"status"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
	Deleted               bool   `dynamodbav:"deleted"`
}

// FreightDynamoRepository persists FreightRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-index: status (string)
//   - GSI client_id-index: client_id (string)
//
// Status transitions go through UpdateStatus, a conditional write on the
// stored status, so single-row transitions cannot double-apply under
// races. Multi-row writes live in LifecycleDynamoRepository.
type FreightDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFreightRepository = (*FreightDynamoRepository)(nil)

func NewFreightDynamoRepository(ddb *dynamodb.Client) *FreightDynamoRepository {
	return &FreightDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FREIGHTS_TABLE", defaultFreightsTableName),
	}
}

func (r *FreightDynamoRepository) Create(ctx context.Context, f entities.FreightRequest) (entities.FreightRequest, error) {
	av, err := attributevalue.MarshalMap(toFreightItem(f))
	if err != nil {
		return entities.FreightRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.FreightRequest{}, err
	}
	return f, nil
}

func (r *FreightDynamoRepository) GetByID(ctx context.Context, id string) (entities.FreightRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FreightRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.FreightRequest{}, nil
	}

	var it freightItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FreightRequest{}, err
	}
	return fromFreightItem(it), nil
}

func (r *FreightDynamoRepository) ListByStatus(ctx context.Context, status entities.FreightStatus) ([]entities.FreightRequest, error) {
	return r.queryIndex(ctx, freightStatusIndex, "status", string(status))
}

func (r *FreightDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.FreightRequest, error) {
	return r.queryIndex(ctx, freightClientIndex, "client_id", clientID)
}

func (r *FreightDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.FreightRequest, error) {
	var (
		out      []entities.FreightRequest
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
		var items []freightItem
		if err := attributevalue.UnmarshalListOfMaps(res.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromFreightItem(it))
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}

func (r *FreightDynamoRepository) Update(ctx context.Context, f entities.FreightRequest) (entities.FreightRequest, error) {
	av, err := attributevalue.MarshalMap(toFreightItem(f))
	if err != nil {
		return entities.FreightRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FreightRequest{}, nil
		}
		return entities.FreightRequest{}, err
	}
	return f, nil
}

func (r *FreightDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.FreightStatus) (entities.FreightRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FreightRequest{}, nil
		}
		return entities.FreightRequest{}, err
	}

	var it freightItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FreightRequest{}, err
	}
	return fromFreightItem(it), nil
}

func (r *FreightDynamoRepository) SetPhotoRef(ctx context.Context, id, ref string) (entities.FreightRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #photo_ref = :ref, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#photo_ref":  "photo_ref",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref":        &types.AttributeValueMemberS{Value: ref},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FreightRequest{}, nil
		}
		return entities.FreightRequest{}, err
	}

	var it freightItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FreightRequest{}, err
	}
	return fromFreightItem(it), nil
}

func (r *FreightDynamoRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #deleted = :deleted, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#deleted":    "deleted",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":deleted":    &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
	})
	return err
}

func toFreightItem(f entities.FreightRequest) freightItem {
	it := freightItem{
		ID:                    f.ID,
		ClientID:              f.ClientID,
		AcceptedQuoteID:       f.AcceptedQuoteID,
		OriginLocationID:      f.OriginLocationID,
		DestinationLocationID: f.DestinationLocationID,
		OriginAddress:         f.OriginAddress,
		DestinationAddress:    f.DestinationAddress,
		CargoDetails:          f.CargoDetails,
		Measurements:          f.Measurements,
		WeightKg:              f.WeightKg,
		PhotoRef:              f.PhotoRef,
		Status:                string(f.Status),
		CreatedAt:             f.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             f.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Deleted:               f.Deleted,
	}
	if f.PickupTime != nil {
		it.PickupTime = f.PickupTime.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromFreightItem(it freightItem) entities.FreightRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	f := entities.FreightRequest{
		ID:                    it.ID,
		ClientID:              it.ClientID,
		AcceptedQuoteID:       it.AcceptedQuoteID,
		OriginLocationID:      it.OriginLocationID,
		DestinationLocationID: it.DestinationLocationID,
		OriginAddress:         it.OriginAddress,
		DestinationAddress:    it.DestinationAddress,
		CargoDetails:          it.CargoDetails,
		Measurements:          it.Measurements,
		WeightKg:              it.WeightKg,
		PhotoRef:              it.PhotoRef,
		Status:                entities.FreightStatus(it.Status),
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
		Deleted:               it.Deleted,
	}
	if it.PickupTime != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.PickupTime); err == nil {
			f.PickupTime = &t
		}
	}
	return f
}
