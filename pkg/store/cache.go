package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/amvalores/petserve/pkg/catalog"
)

const (
	// CacheKey is the fixed key the dataset snapshot lives under. Kept
	// identical to the published web tool so both read the same cache.
	CacheKey = "adoptmevalores:pets-cache"

	cacheBucket = "cache"

	// cacheOpenTimeout bounds how long we wait on the bolt file lock.
	cacheOpenTimeout = time.Second
)

// cacheEntry is the persisted snapshot shape: epoch millis plus the payload
// exactly as it would arrive over the wire.
type cacheEntry struct {
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// Cache persists one dataset snapshot in a bolt key-value file. All failures
// are reported as errors and never escalated; the store logs and moves on.
type Cache struct {
	db *bolt.DB
}

// OpenCache opens (or creates) the bolt file at path.
func OpenCache(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: cacheOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening cache %s: %w", path, err)
	}
	return &Cache{db: db}, nil
}

// Close releases the bolt file.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Read returns the cached dataset when a snapshot exists and its age is
// strictly below window. A snapshot exactly at the window boundary is stale.
func (c *Cache) Read(now time.Time, window time.Duration) (catalog.Dataset, bool, error) {
	var raw []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(cacheBucket))
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(CacheKey)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return catalog.Dataset{}, false, fmt.Errorf("reading cache: %w", err)
	}
	if raw == nil {
		return catalog.Dataset{}, false, nil
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return catalog.Dataset{}, false, fmt.Errorf("decoding cache entry: %w", err)
	}
	age := now.UnixMilli() - entry.Timestamp
	if age < 0 || age >= window.Milliseconds() {
		return catalog.Dataset{}, false, nil
	}
	return catalog.DecodePayload(entry.Data), true, nil
}

// Write overwrites the snapshot with a fresh timestamp.
func (c *Cache) Write(ds catalog.Dataset, now time.Time) error {
	data, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	entry, err := json.Marshal(cacheEntry{Timestamp: now.UnixMilli(), Data: data})
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	err = c.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(cacheBucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(CacheKey), entry)
	})
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}
