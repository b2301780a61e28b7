package chat

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMessages() []Message {
	base := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)
	return []Message{
		{ID: "1700000000000", Sender: SenderSeller, Text: "Welcome! I'm happy to answer any questions about this Plastic Bottle.", Timestamp: base},
		{ID: "1700000000001", Sender: SenderUser, Text: "how much?", Timestamp: base.Add(3 * time.Second)},
		{ID: "1700000000002", Sender: SenderSeller, Text: "The Plastic Bottle is available for $5. We offer discounts for bulk purchases.", Timestamp: base.Add(4 * time.Second)},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	key := ConversationKey("42")
	want := sampleMessages()
	require.NoError(t, store.Save(key, want))

	got, ok := store.Load(key)
	require.True(t, ok)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Sender, got[i].Sender)
		assert.Equal(t, want[i].Text, got[i].Text)
		// Timestamps survive to millisecond precision.
		assert.Equal(t, want[i].Timestamp.UnixMilli(), got[i].Timestamp.UnixMilli())
	}
}

func TestFileStoreLoadMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	messages, ok := store.Load(ConversationKey("nope"))
	assert.False(t, ok)
	assert.Nil(t, messages)
}

func TestFileStoreLoadMalformedEntry(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	key := ConversationKey("7")
	require.NoError(t, os.WriteFile(filepath.Join(dir, key+".json"), []byte("{not json"), 0o644))

	_, ok := store.Load(key)
	assert.False(t, ok, "malformed entry must read as absent")
}

func TestFileStoreClear(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	key := ConversationKey("42")
	require.NoError(t, store.Save(key, sampleMessages()))
	require.NoError(t, store.Clear(key))

	_, ok := store.Load(key)
	assert.False(t, ok)

	// Clearing an absent key is not an error.
	assert.NoError(t, store.Clear(key))
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	key := ConversationKey("42")
	all := sampleMessages()
	require.NoError(t, store.Save(key, all[:1]))
	require.NoError(t, store.Save(key, all))

	got, ok := store.Load(key)
	require.True(t, ok)
	assert.Len(t, got, len(all))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	key := ConversationKey("1")
	want := sampleMessages()
	require.NoError(t, store.Save(key, want))

	got, ok := store.Load(key)
	require.True(t, ok)
	require.Len(t, got, len(want))
	assert.Equal(t, want[2].Text, got[2].Text)
	assert.Equal(t, want[2].Timestamp.UnixMilli(), got[2].Timestamp.UnixMilli())

	require.NoError(t, store.Clear(key))
	_, ok = store.Load(key)
	assert.False(t, ok)
}

func TestStoreKeysAreIndependent(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Save(ConversationKey("1"), sampleMessages()))
	require.NoError(t, store.Save(ConversationKey("2"), sampleMessages()[:1]))

	one, ok := store.Load(ConversationKey("1"))
	require.True(t, ok)
	two, ok := store.Load(ConversationKey("2"))
	require.True(t, ok)
	assert.Len(t, one, 3)
	assert.Len(t, two, 1)

	require.NoError(t, store.Clear(ConversationKey("1")))
	_, ok = store.Load(ConversationKey("2"))
	assert.True(t, ok, "clearing one conversation must not touch another")
}
