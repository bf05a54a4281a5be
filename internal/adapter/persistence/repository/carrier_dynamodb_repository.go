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
	defaultCarriersTableName = "carriers"

	carrierUserIndex = "user_id-index"
)

type carrierItem struct {
	ID           string   `dynamodbav:"id"`
	UserID       string   `dynamodbav:"user_id"`
	Description  string   `dynamodbav:"description,omitempty"`
	VehicleType  string   `dynamodbav:"vehicle_type"`
	VehiclePlate string   `dynamodbav:"vehicle_plate"`
	VehicleModel string   `dynamodbav:"vehicle_model,omitempty"`
	CapacityKg   int      `dynamodbav:"capacity_kg,omitempty"`
	RatingSum    float64  `dynamodbav:"rating_sum"`
	RatingCount  int      `dynamodbav:"rating_count"`
	ZoneIDs      []string `dynamodbav:"zone_ids,omitempty"`
	CreatedAt    string   `dynamodbav:"created_at"`
}

// CarrierDynamoRepository persists Carrier profiles in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-index: user_id (string)
//
// rating_sum and rating_count are only ever mutated by
// LifecycleDynamoRepository.CreateRating via an atomic ADD, never through
// this repository.
type CarrierDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICarrierRepository = (*CarrierDynamoRepository)(nil)

func NewCarrierDynamoRepository(ddb *dynamodb.Client) *CarrierDynamoRepository {
	return &CarrierDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARRIERS_TABLE", defaultCarriersTableName),
	}
}

func (r *CarrierDynamoRepository) Create(ctx context.Context, c entities.Carrier) (entities.Carrier, error) {
	av, err := attributevalue.MarshalMap(toCarrierItem(c))
	if err != nil {
		return entities.Carrier{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Carrier{}, err
	}
	return c, nil
}

func (r *CarrierDynamoRepository) GetByID(ctx context.Context, id string) (entities.Carrier, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Carrier{}, err
	}
	if len(out.Item) == 0 {
		return entities.Carrier{}, nil
	}

	var it carrierItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Carrier{}, err
	}
	return fromCarrierItem(it), nil
}

func (r *CarrierDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Carrier, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(carrierUserIndex),
		KeyConditionExpression:   aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{"#user_id": "user_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Carrier{}, err
	}
	if len(out.Items) == 0 {
		return entities.Carrier{}, nil
	}

	var it carrierItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Carrier{}, err
	}
	return fromCarrierItem(it), nil
}

func (r *CarrierDynamoRepository) List(ctx context.Context) ([]entities.Carrier, error) {
	var (
		out      []entities.Carrier
		startKey map[string]types.AttributeValue
	)
	for {
		res, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []carrierItem
		if err := attributevalue.UnmarshalListOfMaps(res.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromCarrierItem(it))
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}

func (r *CarrierDynamoRepository) UpdateZones(ctx context.Context, id string, zoneIDs []string) (entities.Carrier, error) {
	zones, err := attributevalue.Marshal(zoneIDs)
	if err != nil {
		return entities.Carrier{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		UpdateExpression:         aws.String("SET #zone_ids = :zone_ids"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#zone_ids": "zone_ids"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zone_ids": zones,
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Carrier{}, err
	}

	var it carrierItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Carrier{}, err
	}
	return fromCarrierItem(it), nil
}

func toCarrierItem(c entities.Carrier) carrierItem {
	return carrierItem{
		ID:           c.ID,
		UserID:       c.UserID,
		Description:  c.Description,
		VehicleType:  c.VehicleType,
		VehiclePlate: c.VehiclePlate,
		VehicleModel: c.VehicleModel,
		CapacityKg:   c.CapacityKg,
		RatingSum:    c.RatingSum,
		RatingCount:  c.RatingCount,
		ZoneIDs:      c.ZoneIDs,
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCarrierItem(it carrierItem) entities.Carrier {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Carrier{
		ID:           it.ID,
		UserID:       it.UserID,
		Description:  it.Description,
		VehicleType:  it.VehicleType,
		VehiclePlate: it.VehiclePlate,
		VehicleModel: it.VehicleModel,
		CapacityKg:   it.CapacityKg,
		RatingSum:    it.RatingSum,
		RatingCount:  it.RatingCount,
		ZoneIDs:      it.ZoneIDs,
		CreatedAt:    createdAt,
	}
}
