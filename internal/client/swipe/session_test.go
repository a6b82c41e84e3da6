package swipe

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapspot/swapspot/internal/client/clientstorage"
	"github.com/swapspot/swapspot/internal/client/likes"
	"github.com/swapspot/swapspot/internal/marketplace/domain"
)

// flakyStore wraps a real local store and fails Add on demand.
type flakyStore struct {
	likes.Store
	addErr error
}

func (f *flakyStore) Add(ctx context.Context, listingID string) error {
	if f.addErr != nil {
		return f.addErr
	}
	return f.Store.Add(ctx, listingID)
}

func newLocalStore() likes.Store {
	return likes.NewLocalStore(clientstorage.NewMemory())
}

func listings(ids ...string) []*domain.Listing {
	out := make([]*domain.Listing, len(ids))
	for i, id := range ids {
		out[i] = &domain.Listing{ID: id, Title: "Listing " + id}
	}
	return out
}

func TestSessionLikeThenPassScenario(t *testing.T) {
	ctx := context.Background()
	sess := NewSession(newLocalStore(), listings("A", "B", "C"))
	require.Equal(t, StateLoading, sess.State())

	require.NoError(t, sess.Initialize(ctx))
	require.Equal(t, StateActive, sess.State())
	require.Equal(t, "A", sess.Current().ID)

	// Liking A removes it from the stack; B slides into place at the same
	// cursor position.
	require.NoError(t, sess.Like(ctx))
	assert.Equal(t, StateActive, sess.State())
	assert.Equal(t, "B", sess.Current().ID)
	assert.Equal(t, 1, sess.LikedCount())

	require.NoError(t, sess.Pass())
	assert.Equal(t, "C", sess.Current().ID)

	require.NoError(t, sess.Pass())
	assert.Equal(t, StateExhausted, sess.State())
	assert.Nil(t, sess.Current())
}

func TestSessionExactlyNPassesExhaust(t *testing.T) {
	ctx := context.Background()
	const n = 5
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("item-%d", i)
	}
	sess := NewSession(newLocalStore(), listings(ids...))
	require.NoError(t, sess.Initialize(ctx))

	for i := 0; i < n-1; i++ {
		require.NoError(t, sess.Pass())
		assert.Equal(t, StateActive, sess.State())
	}
	require.NoError(t, sess.Pass())
	assert.Equal(t, StateExhausted, sess.State())
	assert.ErrorIs(t, sess.Pass(), ErrNotActive)
}

func TestSessionInitializeExcludesPreexistingLikes(t *testing.T) {
	ctx := context.Background()
	store := newLocalStore()
	require.NoError(t, store.Add(ctx, "B"))

	sess := NewSession(store, listings("A", "B", "C"))
	require.NoError(t, sess.Initialize(ctx))

	assert.Equal(t, 2, sess.RemainingCount())
	assert.Equal(t, "A", sess.Current().ID)
	require.NoError(t, sess.Pass())
	assert.Equal(t, "C", sess.Current().ID)
}

func TestSessionRestartNeverResurfacesLiked(t *testing.T) {
	ctx := context.Background()
	sess := NewSession(newLocalStore(), listings("A", "B"))
	require.NoError(t, sess.Initialize(ctx))

	require.NoError(t, sess.Like(ctx)) // likes A
	require.NoError(t, sess.Pass())    // passes B
	require.Equal(t, StateExhausted, sess.State())

	require.NoError(t, sess.Restart())
	require.Equal(t, StateActive, sess.State())
	assert.Equal(t, "B", sess.Current().ID)
	assert.Equal(t, 1, sess.RemainingCount())
}

func TestSessionEmptyCandidates(t *testing.T) {
	ctx := context.Background()
	sess := NewSession(newLocalStore(), nil)
	require.NoError(t, sess.Initialize(ctx))
	assert.Equal(t, StateEmpty, sess.State())
	assert.Nil(t, sess.Current())

	// Restart of an empty session stays empty.
	require.NoError(t, sess.Restart())
	assert.Equal(t, StateEmpty, sess.State())
}

func TestSessionLikeFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{Store: newLocalStore(), addErr: errors.New("network down")}
	sess := NewSession(store, listings("A", "B"))
	require.NoError(t, sess.Initialize(ctx))

	err := sess.Like(ctx)
	require.Error(t, err)
	assert.Equal(t, StateActive, sess.State())
	assert.Equal(t, "A", sess.Current().ID)
	assert.Equal(t, 0, sess.LikedCount())

	// Same action retried after the store recovers.
	store.addErr = nil
	require.NoError(t, sess.Like(ctx))
	assert.Equal(t, "B", sess.Current().ID)
	assert.Equal(t, 1, sess.LikedCount())
}

func TestSessionRestartOnlyFromExhausted(t *testing.T) {
	ctx := context.Background()
	sess := NewSession(newLocalStore(), listings("A"))
	require.NoError(t, sess.Initialize(ctx))
	assert.ErrorIs(t, sess.Restart(), ErrNotExhausted)
}

func TestSessionDoubleInitialize(t *testing.T) {
	ctx := context.Background()
	sess := NewSession(newLocalStore(), listings("A"))
	require.NoError(t, sess.Initialize(ctx))
	assert.ErrorIs(t, sess.Initialize(ctx), ErrNotLoading)
}

func TestSessionClosedRejectsActions(t *testing.T) {
	ctx := context.Background()
	sess := NewSession(newLocalStore(), listings("A", "B"))
	require.NoError(t, sess.Initialize(ctx))
	sess.Close()

	assert.ErrorIs(t, sess.Pass(), ErrSessionClosed)
	assert.ErrorIs(t, sess.Like(ctx), ErrSessionClosed)
	assert.ErrorIs(t, sess.Restart(), ErrSessionClosed)
}

// passingStore tries to pass while its own add is still resolving, modelling
// a user mashing both controls.
type passingStore struct {
	likes.Store
	sess    **Session
	passErr error
}

func (p *passingStore) Add(ctx context.Context, listingID string) error {
	p.passErr = (*p.sess).Pass()
	return p.Store.Add(ctx, listingID)
}

func TestSessionPassRejectedWhileLikeResolving(t *testing.T) {
	ctx := context.Background()
	var sess *Session
	store := &passingStore{Store: newLocalStore(), sess: &sess}
	sess = NewSession(store, listings("A", "B"))
	require.NoError(t, sess.Initialize(ctx))

	require.NoError(t, sess.Like(ctx))

	assert.ErrorIs(t, store.passErr, ErrLikePending)
	assert.Equal(t, StateActive, sess.State())
	assert.Equal(t, "B", sess.Current().ID)
	assert.Equal(t, 1, sess.LikedCount())
	assert.Equal(t, 1, sess.RemainingCount())
}

func TestSessionPassRejectedWhileLikingLastItem(t *testing.T) {
	ctx := context.Background()
	var sess *Session
	store := &passingStore{Store: newLocalStore(), sess: &sess}
	sess = NewSession(store, listings("A"))
	require.NoError(t, sess.Initialize(ctx))

	// The single item must end up liked, not liked and passed at once.
	require.NoError(t, sess.Like(ctx))

	assert.ErrorIs(t, store.passErr, ErrLikePending)
	assert.Equal(t, StateExhausted, sess.State())
	assert.Equal(t, 1, sess.LikedCount())
}

// closingStore closes the session while an add is in flight, modelling
// navigation away before the response lands.
type closingStore struct {
	likes.Store
	sess **Session
}

func (c *closingStore) Add(ctx context.Context, listingID string) error {
	(*c.sess).Close()
	return c.Store.Add(ctx, listingID)
}

func TestSessionLateLikeResponseDiscardedAfterClose(t *testing.T) {
	ctx := context.Background()
	var sess *Session
	store := &closingStore{Store: newLocalStore(), sess: &sess}
	sess = NewSession(store, listings("A", "B"))
	require.NoError(t, sess.Initialize(ctx))

	err := sess.Like(ctx)
	assert.ErrorIs(t, err, ErrSessionClosed)
	// The liked set was not mutated by the late response.
	assert.Equal(t, 0, sess.LikedCount())
}

func TestSessionLikeLastItemExhausts(t *testing.T) {
	ctx := context.Background()
	sess := NewSession(newLocalStore(), listings("A"))
	require.NoError(t, sess.Initialize(ctx))
	require.NoError(t, sess.Like(ctx))
	assert.Equal(t, StateExhausted, sess.State())
}
