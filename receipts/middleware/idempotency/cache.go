package idempotency

import (
	"encoding/json"
	"time"

	"encore.dev/storage/cache"
)

// Key identifies one idempotent request: the resource path plus the
// client-supplied key.
type Key struct {
	Resource string
	Key      string
}

// Entry is what we store per idempotent request while it runs and after it
// completes.
type Entry struct {
	Status          string          `json:"status"`
	RequestBodyHash string          `json:"request_body_hash"`
	Response        json.RawMessage `json:"response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

// Cluster is the cache cluster backing idempotency tracking.
var Cluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Keyspace stores idempotency entries for 24 hours; replays outside that
// window are treated as new requests.
var Keyspace = cache.NewStructKeyspace[Key, Entry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
