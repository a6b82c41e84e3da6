package likes

import (
	"context"
	"encoding/json"

	"github.com/swapspot/swapspot/internal/client/clientstorage"
)

// StorageKey is the local storage key holding the liked listing IDs as a
// JSON array, in like order.
const StorageKey = "swapspot_liked"

// LocalStore keeps the liked set in local storage only. It never fails:
// unavailable storage reads as empty and writes are dropped, and a corrupt
// stored value is treated as empty.
type LocalStore struct {
	storage clientstorage.Storage
}

func NewLocalStore(storage clientstorage.Storage) *LocalStore {
	return &LocalStore{storage: storage}
}

// List reconciles the stored set against candidateIDs. When anything was
// pruned the filtered set is written back immediately, so reconciling an
// already-reconciled set is a no-op with no storage write.
func (s *LocalStore) List(_ context.Context, candidateIDs []string) ([]string, error) {
	stored := s.read()
	kept := filterToCandidates(stored, candidateIDs)
	if len(kept) != len(stored) {
		s.write(kept)
	}
	return kept, nil
}

func (s *LocalStore) Add(_ context.Context, listingID string) error {
	ids := s.read()
	for _, id := range ids {
		if id == listingID {
			return nil
		}
	}
	s.write(append(ids, listingID))
	return nil
}

func (s *LocalStore) Remove(_ context.Context, listingID string) error {
	ids := s.read()
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != listingID {
			kept = append(kept, id)
		}
	}
	if len(kept) != len(ids) {
		s.write(kept)
	}
	return nil
}

func (s *LocalStore) Clear(_ context.Context) error {
	s.storage.Remove(StorageKey)
	return nil
}

func (s *LocalStore) read() []string {
	raw, ok := s.storage.Get(StorageKey)
	if !ok || raw == "" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}

func (s *LocalStore) write(ids []string) {
	data, err := json.Marshal(ids)
	if err != nil {
		return
	}
	s.storage.Set(StorageKey, string(data))
}
