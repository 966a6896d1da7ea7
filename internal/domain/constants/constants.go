// Package constants holds string identifiers shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Basket KV providers
const (
	KVProviderMemory   = "memory"
	KVProviderPostgres = "postgres"
	KVProviderDynamoDB = "dynamodb"
)

// Event types published on the order topic
const (
	EventTypeOrderCompleted = "order.completed"
)

// KV key prefixes for per-customer baskets
const (
	CartKeyPrefix     = "cart:"
	WishlistKeyPrefix = "wishlist:"
)
