package chat

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ConversationStore persists the ordered message log of a conversation.
// Load reports absent (false) for missing or malformed entries rather than
// failing; callers treat absent as "no prior conversation".
type ConversationStore interface {
	Load(key string) ([]Message, bool)
	Save(key string, messages []Message) error
	Clear(key string) error
}

// storedMessage is the serialized form. Timestamps are kept as unix
// milliseconds, so round-trips preserve them to millisecond precision.
type storedMessage struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

func encodeMessages(messages []Message) ([]byte, error) {
	stored := make([]storedMessage, 0, len(messages))
	for _, m := range messages {
		stored = append(stored, storedMessage{
			ID:        m.ID,
			Sender:    string(m.Sender),
			Text:      m.Text,
			Timestamp: m.Timestamp.UnixMilli(),
		})
	}
	return json.Marshal(stored)
}

func decodeMessages(data []byte) ([]Message, bool) {
	var stored []storedMessage
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, false
	}
	messages := make([]Message, 0, len(stored))
	for _, m := range stored {
		messages = append(messages, Message{
			ID:        m.ID,
			Sender:    Sender(m.Sender),
			Text:      m.Text,
			Timestamp: time.UnixMilli(m.Timestamp),
		})
	}
	return messages, true
}

// FileStore keeps one JSON file per conversation key under a data
// directory, surviving process restarts.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string) ([]Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return decodeMessages(data)
}

func (s *FileStore) Save(key string, messages []Message) error {
	data, err := encodeMessages(messages)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *FileStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryStore is an in-memory ConversationStore for tests and ephemeral
// deployments. It serializes through the same codec as FileStore so the
// round-trip semantics match.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string) ([]Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return decodeMessages(data)
}

func (s *MemoryStore) Save(key string, messages []Message) error {
	data, err := encodeMessages(messages)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = data
	return nil
}

func (s *MemoryStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}
