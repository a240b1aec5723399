package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/amvalores/petserve/pkg/catalog"
)

// ErrDataUnavailable reports that every candidate path failed. The store
// recovers from it with the embedded fallback; callers never see it.
var ErrDataUnavailable = errors.New("pet data unavailable from all candidates")

const (
	// defaultFetchTimeout bounds each candidate request.
	defaultFetchTimeout = 10 * time.Second

	// maxPayloadBytes caps a response body; the real catalog is a few KB.
	maxPayloadBytes = 4 << 20
)

// fetch tries each candidate URL in order and returns the first payload that
// arrives with a 2xx status. Candidates are attempted sequentially, once
// each; there is no backoff and no retry over time.
func (s *Store) fetch(ctx context.Context) (catalog.Dataset, error) {
	for _, candidate := range s.candidates {
		ds, err := s.fetchOne(ctx, candidate)
		if err != nil {
			s.log.Warnf("Failed to fetch %s: %v", candidate, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		s.log.Debugf("Fetched dataset from %s (%d pets)", candidate, len(ds.Pets))
		return ds, nil
	}
	return catalog.Dataset{}, ErrDataUnavailable
}

func (s *Store) fetchOne(ctx context.Context, url string) (catalog.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return catalog.Dataset{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		return catalog.Dataset{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return catalog.Dataset{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return catalog.Dataset{}, fmt.Errorf("reading body: %w", err)
	}
	// An unparseable body fails this candidate so the chain moves on;
	// shape-level problems inside valid JSON still coerce to defaults.
	return catalog.ParsePayload(body)
}
