// Package likes tracks which listings a client has liked, against either the
// server API or local storage, behind one capability set.
package likes

import "context"

// Store is the liked-set capability set shared by both backends. The
// server-backed variant is authoritative when a client identity exists; the
// local variant is the fallback for identity-less contexts.
type Store interface {
	// List returns the liked listing IDs reconciled against candidateIDs:
	// members referencing listings outside the candidate list are pruned.
	// Order is backend-defined but stable.
	List(ctx context.Context, candidateIDs []string) ([]string, error)
	// Add likes a listing. Liking an already-liked listing succeeds.
	Add(ctx context.Context, listingID string) error
	// Remove unlikes a listing. Removing an absent like succeeds.
	Remove(ctx context.Context, listingID string) error
	// Clear removes every like for this client.
	Clear(ctx context.Context) error
}

func filterToCandidates(ids, candidateIDs []string) []string {
	allowed := make(map[string]struct{}, len(candidateIDs))
	for _, id := range candidateIDs {
		allowed[id] = struct{}{}
	}
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := allowed[id]; ok {
			kept = append(kept, id)
		}
	}
	return kept
}
