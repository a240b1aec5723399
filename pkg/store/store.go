/*
Package store acquires the pet catalog and holds it for the rest of the
session.

Load resolves through a fixed priority chain: the in-memory dataset, then a
time-boxed snapshot in a bolt cache file, then an ordered list of HTTP
candidate URLs, and finally the embedded fallback catalog. Every rung
degrades instead of failing, so Load always hands back a usable dataset.
Cache problems are logged and ignored; they never block acquisition.
*/
package store

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/amvalores/petserve/internal/logger"
	"github.com/amvalores/petserve/pkg/catalog"
)

// CacheWindow is how long a persisted snapshot stays trusted. A snapshot
// whose age reaches the window is revalidated on the next session.
const CacheWindow = time.Hour

// Options configures a Store. Zero values get sensible defaults.
type Options struct {
	// Candidates are the dataset URLs, tried in order.
	Candidates []string
	// Cache is the persistent snapshot store; nil disables caching.
	Cache *Cache
	// Window overrides CacheWindow, mainly for tests.
	Window time.Duration
	// Client overrides the HTTP client, mainly for tests.
	Client *http.Client
	// Now overrides the clock, mainly for tests.
	Now func() time.Time
}

// Store memoizes one dataset per process. The dataset is written exactly
// once and never mutated afterwards.
type Store struct {
	mu      sync.Mutex
	dataset *catalog.Dataset

	candidates []string
	cache      *Cache
	window     time.Duration
	client     *http.Client
	now        func() time.Time
	log        *log.Logger
}

// New builds a Store from opts.
func New(opts Options) *Store {
	s := &Store{
		candidates: opts.Candidates,
		cache:      opts.Cache,
		window:     opts.Window,
		client:     opts.Client,
		now:        opts.Now,
		log:        logger.Default("store"),
	}
	if s.window <= 0 {
		s.window = CacheWindow
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: defaultFetchTimeout}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Load returns the session dataset. The first call resolves the priority
// chain; later calls return the memoized value without any I/O. Load never
// fails: when everything else is exhausted it falls back to the embedded
// catalog.
func (s *Store) Load(ctx context.Context) catalog.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dataset != nil {
		return *s.dataset
	}

	if ds, ok := s.readCache(); ok {
		s.log.Debugf("Using cached dataset (%d pets)", len(ds.Pets))
		s.dataset = &ds
		return ds
	}

	ds, err := s.fetch(ctx)
	if err == nil {
		s.dataset = &ds
		s.writeCache(ds)
		return ds
	}

	s.log.Errorf("All acquisition paths failed, using embedded catalog: %v", err)
	fb := catalog.Fallback()
	s.dataset = &fb
	return fb
}

func (s *Store) readCache() (catalog.Dataset, bool) {
	if s.cache == nil {
		return catalog.Dataset{}, false
	}
	ds, ok, err := s.cache.Read(s.now(), s.window)
	if err != nil {
		s.log.Warnf("Could not read local cache: %v", err)
		return catalog.Dataset{}, false
	}
	return ds, ok
}

func (s *Store) writeCache(ds catalog.Dataset) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Write(ds, s.now()); err != nil {
		s.log.Warnf("Could not save to local cache: %v", err)
	}
}
