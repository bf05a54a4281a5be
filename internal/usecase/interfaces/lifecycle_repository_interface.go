package interfaces

import (
	"context"
	"errors"
	"freightmarket/internal/domain/entities"
)

// ErrConditionFailed is returned by conditional and transactional writes
// when a guarding condition did not hold at commit time (the caller's
// view of the world went stale). Use cases surface it as a conflict; it
// is never retried automatically.
var ErrConditionFailed = errors.New("conditional write failed")

// ILifecycleRepository owns every write that must be atomic across more
// than one row. Each method is a single DynamoDB TransactWriteItems
// call; a cancelled transaction whose reason is a conditional check
// surfaces as ErrConditionFailed.
//
//   - SubmitQuote: put the quote iff the parent request is still
//     without_carrier.
//   - AcceptQuote: flip the request to pending and bind the quote,
//     accept the target, reject every sibling; all conditioned on the
//     request still being without_carrier and the target still pending.
//     This is the request_id-scoped serialization point that keeps two
//     concurrent accepts from both committing.
//   - CancelWithQuotes: terminal cancel conditioned on from, rejecting
//     the given open quotes in the same commit.
//   - CreateRating: insert the rating iff none exists for the request,
//     and fold the score into the carrier's cached aggregate.
type ILifecycleRepository interface {
	SubmitQuote(ctx context.Context, q entities.Quote) error
	AcceptQuote(ctx context.Context, requestID, quoteID string, siblingQuoteIDs []string) error
	CancelWithQuotes(ctx context.Context, requestID string, from entities.FreightStatus, openQuoteIDs []string) error
	CreateRating(ctx context.Context, r entities.Rating) error
}
