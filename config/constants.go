package config

import "time"

// Source Constants
const (
	// SourceBundled serves every request type from the embedded fixtures
	SourceBundled = "bundled"

	// SourceRemote serves request types from an HTTP base URL
	SourceRemote = "remote"

	// SourceS3 serves request types from objects in an S3 bucket
	SourceS3 = "s3"

	// DefaultRemoteBaseURL hosts recipes.json, recipes-empty.json and recipes-malformed.json
	DefaultRemoteBaseURL = "https://d3jbb8n5wk0qxi.cloudfront.net"

	// DefaultHTTPTimeout bounds one remote fetch
	DefaultHTTPTimeout = 15 * time.Second
)

// Server Constants
const (
	// DefaultHTTPAddr is where the API listens
	DefaultHTTPAddr = ":8080"

	// DefaultShutdownTimeout bounds graceful shutdown
	DefaultShutdownTimeout = 10 * time.Second
)

// Cache Constants
const (
	// DefaultCacheTTL is how long a fetched payload stays in Redis
	DefaultCacheTTL = 5 * time.Minute

	// DefaultCachePrefix namespaces payload keys
	DefaultCachePrefix = "fetchrecipes:"
)

// Kafka Constants
const (
	// DefaultStateTopic receives state change events
	DefaultStateTopic = "recipes.state"

	// DefaultReloadTopic carries remote reload requests
	DefaultReloadTopic = "recipes.reload"

	// DefaultConsumerGroup is the consumer group for reload requests
	DefaultConsumerGroup = "fetchrecipes"
)

// Logging Constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)
