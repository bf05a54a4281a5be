package repository

import (
	"context"

	"freightmarket/internal/domain/entities"
	"freightmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLocationsTableName = "locations"

type locationItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Province   string `dynamodbav:"province,omitempty"`
	PostalCode string `dynamodbav:"postal_code,omitempty"`
}

// LocationDynamoRepository persists coverage zones in DynamoDB.
// Table PK: id (string). The zone catalog is small and read-mostly, so
// List is a plain scan.
type LocationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILocationRepository = (*LocationDynamoRepository)(nil)

func NewLocationDynamoRepository(ddb *dynamodb.Client) *LocationDynamoRepository {
	return &LocationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LOCATIONS_TABLE", defaultLocationsTableName),
	}
}

func (r *LocationDynamoRepository) Create(ctx context.Context, l entities.Location) (entities.Location, error) {
	av, err := attributevalue.MarshalMap(locationItem{
		ID:         l.ID,
		Name:       l.Name,
		Province:   l.Province,
		PostalCode: l.PostalCode,
	})
	if err != nil {
		return entities.Location{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Location{}, err
	}
	return l, nil
}

func (r *LocationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Location, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Location{}, err
	}
	if len(out.Item) == 0 {
		return entities.Location{}, nil
	}

	var it locationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Location{}, err
	}
	return entities.Location(it), nil
}

func (r *LocationDynamoRepository) List(ctx context.Context) ([]entities.Location, error) {
	var (
		out      []entities.Location
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
		var items []locationItem
		if err := attributevalue.UnmarshalListOfMaps(res.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, entities.Location(it))
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}
