package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/coocood/freecache"
)

const minMemoryStoreSize = 512 * 1024

// MemoryStore keeps contributions in an in-process freecache, for running
// without redis.
type MemoryStore struct {
	mu        sync.RWMutex
	cache     *freecache.Cache
	sizeBytes int
}

var _ ContributionStore = (*MemoryStore)(nil)

func NewMemoryStore(sizeBytes int) *MemoryStore {
	if sizeBytes < minMemoryStoreSize {
		sizeBytes = minMemoryStoreSize
	}
	return &MemoryStore{
		cache:     freecache.NewCache(sizeBytes),
		sizeBytes: sizeBytes,
	}
}

// Publish fills a fresh cache and swaps it in only once every day is stored,
// so a failed publish keeps the previous set readable.
func (s *MemoryStore) Publish(_ context.Context, contributions map[string]*Contribution) error {
	next := freecache.NewCache(s.sizeBytes)
	for dateKey, contribution := range contributions {
		contributionJson, err := json.Marshal(contribution)
		if err != nil {
			return fmt.Errorf("marshal contribution [%s]: %w", dateKey, err)
		}
		// no expiry, entries live until the next publish
		if err := next.Set([]byte(dateKey), contributionJson, 0); err != nil {
			return fmt.Errorf("cache contribution [%s]: %w", dateKey, err)
		}
	}

	s.mu.Lock()
	s.cache = next
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, dateKey string) (*Contribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contributionJson, err := s.cache.Get([]byte(dateKey))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrContributionNotFound
		}
		return nil, fmt.Errorf("get contribution [%s]: %w", dateKey, err)
	}

	var contribution Contribution
	if err := json.Unmarshal(contributionJson, &contribution); err != nil {
		return nil, fmt.Errorf("unmarshal contribution [%s]: %w", dateKey, err)
	}
	return &contribution, nil
}

func (s *MemoryStore) All(_ context.Context) (map[string]*Contribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contributions := make(map[string]*Contribution, s.cache.EntryCount())
	iterator := s.cache.NewIterator()
	for entry := iterator.Next(); entry != nil; entry = iterator.Next() {
		var contribution Contribution
		if err := json.Unmarshal(entry.Value, &contribution); err != nil {
			return nil, fmt.Errorf("unmarshal contribution [%s]: %w", entry.Key, err)
		}
		contributions[string(entry.Key)] = &contribution
	}
	return contributions, nil
}
