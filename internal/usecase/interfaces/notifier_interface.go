package interfaces

// Event names published on the broadcast channel, one per committed
// state transition. Delivery is at-most-once and purely advisory:
// subscribers treat events as cache-invalidation hints and reconstruct
// truth through the query endpoints.
const (
	EventRequestCreated   = "request_created"
	EventQuoteSubmitted   = "quote_submitted"
	EventQuoteAccepted    = "quote_accepted"
	EventQuoteRejected    = "quote_rejected"
	EventTripStarted      = "trip_started"
	EventTripCompleted    = "trip_completed"
	EventRequestCancelled = "request_cancelled"
	EventRatingCreated    = "rating_created"
)

// INotifier is the broadcast channel every connected client and carrier
// subscribes to. Publish must never block and never fail the caller:
// use cases invoke it after commit, fire-and-forget.
type INotifier interface {
	Publish(event string, payload map[string]any)
}
