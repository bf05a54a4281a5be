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
	defaultUsersTableName = "users"

	userAuthIndex = "auth_uid-index"
)

type userItem struct {
	ID           string `dynamodbav:"id"`
	AuthUID      string `dynamodbav:"auth_uid"`
	FirstName    string `dynamodbav:"first_name"`
	LastName     string `dynamodbav:"last_name"`
	Email        string `dynamodbav:"email"`
	Phone        string `dynamodbav:"phone,omitempty"`
	BirthDate    string `dynamodbav:"birth_date,omitempty"`
	RegisteredAt string `dynamodbav:"registered_at"`
}

// UserDynamoRepository persists User profiles in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI auth_uid-index: auth_uid (string)
type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByAuthUID(ctx context.Context, authUID string) (entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(userAuthIndex),
		KeyConditionExpression:   aws.String("#auth_uid = :auth_uid"),
		ExpressionAttributeNames: map[string]string{"#auth_uid": "auth_uid"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":auth_uid": &types.AttributeValueMemberS{Value: authUID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.User) userItem {
	it := userItem{
		ID:           u.ID,
		AuthUID:      u.AuthUID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		RegisteredAt: u.RegisteredAt.UTC().Format(time.RFC3339Nano),
	}
	if u.BirthDate != nil {
		it.BirthDate = u.BirthDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromUserItem(it userItem) entities.User {
	registeredAt, _ := time.Parse(time.RFC3339Nano, it.RegisteredAt)
	u := entities.User{
		ID:           it.ID,
		AuthUID:      it.AuthUID,
		FirstName:    it.FirstName,
		LastName:     it.LastName,
		Email:        it.Email,
		Phone:        it.Phone,
		RegisteredAt: registeredAt,
	}
	if it.BirthDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.BirthDate); err == nil {
			u.BirthDate = &t
		}
	}
	return u
}
