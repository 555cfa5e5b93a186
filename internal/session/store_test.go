package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)

	sess := store.Create(7, "alice")
	require.NotEmpty(t, sess.ID)
	assert.True(t, sess.Authenticated)
	assert.Equal(t, 7, sess.UserID)
	assert.Equal(t, "alice", sess.Username)
	assert.True(t, sess.ExpiresAt.After(time.Now().UTC()))

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, sess, got)

	// Two logins never share a session id.
	other := store.Create(7, "alice")
	assert.NotEqual(t, sess.ID, other.ID)
}

func TestStore_GetUnknownID(t *testing.T) {
	store := NewStore(time.Hour)

	_, ok := store.Get("no-such-session")
	assert.False(t, ok)
}

func TestStore_DeleteInvalidates(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(1, "bob")

	store.Delete(sess.ID)
	_, ok := store.Get(sess.ID)
	assert.False(t, ok)

	// Deleting again is a no-op.
	store.Delete(sess.ID)
}

func TestStore_ExpiredSessionDroppedOnAccess(t *testing.T) {
	store := NewStore(time.Nanosecond)
	sess := store.Create(1, "bob")

	time.Sleep(5 * time.Millisecond)

	_, ok := store.Get(sess.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStore_PurgeExpired(t *testing.T) {
	store := NewStore(time.Nanosecond)
	store.Create(1, "a")
	store.Create(2, "b")

	time.Sleep(5 * time.Millisecond)
	require.Equal(t, 2, store.Len())

	dropped := store.PurgeExpired()
	assert.Equal(t, 2, dropped)
	assert.Equal(t, 0, store.Len())
}
