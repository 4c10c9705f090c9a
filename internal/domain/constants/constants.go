// Package constants contains values shared between configuration and runtime wiring.
package constants

const (
	// EnvDevelop marks a local development deployment.
	EnvDevelop = "develop"
	// EnvProduction marks a production deployment.
	EnvProduction = "production"
)

// Pub/Sub providers accepted by the event publisher.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types carried in the "event_type" attribute of published messages.
const (
	EventTypeMessageCreated            = "message.created"
	EventTypePasswordRecoveryRequested = "password_recovery.requested"
)

// Site paths returned to clients as navigation targets.
const (
	PathLogin    = "/login"
	PathMessages = "/messages"
	PathListing  = "/listing/"
	PathProfile  = "/profile/"
)
