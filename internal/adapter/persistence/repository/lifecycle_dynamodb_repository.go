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

// LifecycleDynamoRepository holds every write that must change more than one
// row atomically. Each method is a single TransactWriteItems call whose
// condition expressions re-check the state the caller observed, so two
// racing callers on the same freight request cannot both commit: DynamoDB
// serializes the transactions and cancels the loser with
// ConditionalCheckFailed, surfaced here as interfaces.ErrConditionFailed.
type LifecycleDynamoRepository struct {
	ddb           *dynamodb.Client
	freightsTable string
	quotesTable   string
	carriersTable string
	ratingsTable  string
}

var _ interfaces.ILifecycleRepository = (*LifecycleDynamoRepository)(nil)

func NewLifecycleDynamoRepository(ddb *dynamodb.Client) *LifecycleDynamoRepository {
	return &LifecycleDynamoRepository{
		ddb:           ddb,
		freightsTable: getenvDefault("FREIGHTS_TABLE", defaultFreightsTableName),
		quotesTable:   getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		carriersTable: getenvDefault("CARRIERS_TABLE", defaultCarriersTableName),
		ratingsTable:  getenvDefault("RATINGS_TABLE", defaultRatingsTableName),
	}
}

// SubmitQuote writes the quote only if the parent request is still open for
// bidding. The condition check on the freight row closes the race between a
// carrier submitting and the client accepting another quote.
func (r *LifecycleDynamoRepository) SubmitQuote(ctx context.Context, q entities.Quote) error {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.quotesTable),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				ConditionCheck: &types.ConditionCheck{
					TableName: aws.String(r.freightsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: q.RequestID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :open AND #deleted = :false"),
					ExpressionAttributeNames: map[string]string{
						"#id":      "id",
						"#status":  "status",
						"#deleted": "deleted",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":open":  &types.AttributeValueMemberS{Value: string(entities.FreightStatusWithoutCarrier)},
						":false": &types.AttributeValueMemberBOOL{Value: false},
					},
				},
			},
		},
	})
	return mapTransactionError(err)
}

// AcceptQuote assigns a carrier to a freight request. In one transaction it
// moves the request without_carrier -> pending and records the winning
// quote, flips the winning quote pending -> accepted, and rejects every
// pending sibling. If any row moved since the caller read it the whole
// transaction cancels and nothing is written, which is what makes N
// concurrent accepts on the same request resolve to exactly one winner.
func (r *LifecycleDynamoRepository) AcceptQuote(ctx context.Context, requestID, quoteID string, siblingQuoteIDs []string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.freightsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: requestID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :open AND #deleted = :false"),
				UpdateExpression:    aws.String("SET #status = :pending, #accepted_quote_id = :quote_id, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":                "id",
					"#status":            "status",
					"#deleted":           "deleted",
					"#accepted_quote_id": "accepted_quote_id",
					"#updated_at":        "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":open":       &types.AttributeValueMemberS{Value: string(entities.FreightStatusWithoutCarrier)},
					":pending":    &types.AttributeValueMemberS{Value: string(entities.FreightStatusPending)},
					":false":      &types.AttributeValueMemberBOOL{Value: false},
					":quote_id":   &types.AttributeValueMemberS{Value: quoteID},
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.quotesTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: quoteID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
				UpdateExpression:    aws.String("SET #status = :accepted"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":from":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPending)},
					":accepted": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusAccepted)},
				},
			},
		},
	}

	for _, siblingID := range siblingQuoteIDs {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.quotesTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: siblingID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
				UpdateExpression:    aws.String("SET #status = :rejected"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":from":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPending)},
					":rejected": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusRejected)},
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	return mapTransactionError(err)
}

// CancelWithQuotes moves the request to cancelled and rejects every still
// open quote on it, all or nothing. from is the status the caller observed;
// a concurrent transition cancels the whole transaction. The accepted quote
// binding is dropped with the status: a cancelled request never keeps one.
func (r *LifecycleDynamoRepository) CancelWithQuotes(ctx context.Context, requestID string, from entities.FreightStatus, openQuoteIDs []string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.freightsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: requestID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
				UpdateExpression:    aws.String("SET #status = :cancelled, #updated_at = :updated_at REMOVE #accepted_quote_id"),
				ExpressionAttributeNames: map[string]string{
					"#id":                "id",
					"#status":            "status",
					"#updated_at":        "updated_at",
					"#accepted_quote_id": "accepted_quote_id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":from":       &types.AttributeValueMemberS{Value: string(from)},
					":cancelled":  &types.AttributeValueMemberS{Value: string(entities.FreightStatusCancelled)},
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
			},
		},
	}

	for _, quoteID := range openQuoteIDs {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.quotesTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: quoteID},
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("SET #status = :rejected"),
				ExpressionAttributeNames: map[string]string{
					"#id":     "id",
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":rejected": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusRejected)},
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	return mapTransactionError(err)
}

// CreateRating writes the rating row and folds the score into the carrier
// aggregate in one transaction. The rating table is keyed by request_id, so
// the attribute_not_exists condition is the one-rating-per-request
// guarantee; the carrier update is an atomic ADD, safe under concurrent
// ratings of the same carrier for different trips.
func (r *LifecycleDynamoRepository) CreateRating(ctx context.Context, rt entities.Rating) error {
	av, err := attributevalue.MarshalMap(toRatingItem(rt))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.ratingsTable),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#request_id)"),
					ExpressionAttributeNames: map[string]string{"#request_id": "request_id"},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.carriersTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: rt.CarrierID},
					},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					UpdateExpression:    aws.String("ADD #rating_sum :score, #rating_count :one"),
					ExpressionAttributeNames: map[string]string{
						"#id":           "id",
						"#rating_sum":   "rating_sum",
						"#rating_count": "rating_count",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":score": &types.AttributeValueMemberN{Value: strconv.Itoa(rt.Score)},
						":one":   &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	})
	return mapTransactionError(err)
}

// mapTransactionError collapses a cancelled transaction whose cause was a
// failed condition into interfaces.ErrConditionFailed. Other cancellation
// reasons (capacity, conflicts with another in-flight transaction) pass
// through unchanged so callers can distinguish contention they should
// reject from faults they may retry.
func mapTransactionError(err error) error {
	if err == nil {
		return nil
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
				return interfaces.ErrConditionFailed
			}
		}
	}
	return err
}
