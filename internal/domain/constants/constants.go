// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP event publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Pub/Sub event publisher.
	PubSubProviderGoogle = "google"

	// ProductImagesBucket is the blob bucket that stores product images.
	ProductImagesBucket = "productimages"

	// EnvDevelop marks the local development environment. Pub/Sub push
	// authentication is skipped there.
	EnvDevelop = "develop"
)
