package storefront

import (
	"context"
	"sync"
)

// WishlistStore tracks favorited template ids, kept in sync with the server
// via optimistic toggles.
type WishlistStore struct {
	api API

	mu  sync.Mutex
	ids map[string]struct{}
}

func NewWishlistStore(api API) *WishlistStore {
	return &WishlistStore{
		api: api,
		ids: make(map[string]struct{}),
	}
}

// Toggle flips membership locally before the server call resolves, then
// adopts the server's verdict. On failure the exact pre-toggle state is
// restored, so the store never diverges from server truth for longer than
// the in-flight window.
func (s *WishlistStore) Toggle(ctx context.Context, templateID string) (ToggleResult, error) {
	s.mu.Lock()
	_, wasWishlisted := s.ids[templateID]
	s.setLocked(templateID, !wasWishlisted)
	s.mu.Unlock()

	res, err := s.api.ToggleWishlist(ctx, templateID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.setLocked(templateID, wasWishlisted)
		return ToggleResult{}, err
	}

	// The server is authoritative even if it disagrees with the flip.
	s.setLocked(templateID, res.IsWishlisted)
	return res, nil
}

func (s *WishlistStore) setLocked(templateID string, member bool) {
	if member {
		s.ids[templateID] = struct{}{}
	} else {
		delete(s.ids, templateID)
	}
}

// IsWishlisted is a local read used for render decisions; it never touches
// the network.
func (s *WishlistStore) IsWishlisted(templateID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.ids[templateID]
	return ok
}

// FetchIDs bulk-loads the server's set and replaces local state wholesale.
// A toggle still in flight when this resolves is not merged; whichever
// response lands last wins.
func (s *WishlistStore) FetchIDs(ctx context.Context) error {
	ids, err := s.api.FetchWishlistIDs(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return nil
}

// IDs returns the current membership as a slice.
func (s *WishlistStore) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

func (s *WishlistStore) replace(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}
