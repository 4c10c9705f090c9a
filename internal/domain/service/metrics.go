package service

// Contact outcomes recorded by MarketplaceMetrics.ContactAttempt.
const (
	ContactOutcomeLoginRequired = "login_required"
	ContactOutcomeCreated       = "created"
	ContactOutcomeDegraded      = "degraded"
)

// MarketplaceMetrics records marketplace activity counters.
type MarketplaceMetrics interface {
	// SearchPerformed records one feed search and the size of its result.
	SearchPerformed(resultCount int)

	// ContactAttempt records the outcome of a contact action.
	ContactAttempt(outcome string)

	// MessageSent records one persisted message.
	MessageSent()

	// SubscriberDelta adjusts the number of live realtime subscribers.
	SubscriberDelta(delta int)
}
