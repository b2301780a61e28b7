package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/greencycle/recyclemart/config"
	"github.com/greencycle/recyclemart/db"
	"github.com/greencycle/recyclemart/models"
	"github.com/greencycle/recyclemart/services/chat"
)

// ChatService hands out one conversation session per user and item.
type ChatService interface {
	Session(userID uint, itemID string) *chat.Session
	Send(userID uint, itemID, text string) (chat.Message, bool)
	Messages(userID uint, itemID string) ([]chat.Message, chat.Item, bool)
	EndConversation(userID uint, itemID string)
	Close()
}

type chatService struct {
	Config *config.Config
	store  chat.ConversationStore
	lookup *chat.Lookup

	mu       sync.Mutex
	sessions map[string]*chat.Session
}

func NewChatService(store chat.ConversationStore, uploadRepo db.UploadRepository, conf *config.Config) ChatService {
	return &chatService{
		Config:   conf,
		store:    store,
		lookup:   chat.NewLookup(&uploadItemSource{repo: uploadRepo}),
		sessions: make(map[string]*chat.Session),
	}
}

// Session returns the live session for (user, item), starting one on first
// touch. Conversations are namespaced per user: the stored key becomes
// u<userID>/chat_<itemID>, so two users chatting about the same item never
// share history.
func (s *chatService) Session(userID uint, itemID string) *chat.Session {
	mapKey := fmt.Sprintf("%d/%s", userID, itemID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[mapKey]; ok {
		return session
	}

	store := &userScopedStore{inner: s.store, prefix: fmt.Sprintf("u%d_", userID)}
	session := chat.NewSession(store, s.lookup, itemID, time.Duration(s.Config.ChatReplyDelayMS)*time.Millisecond)
	session.Start()
	s.sessions[mapKey] = session
	return session
}

func (s *chatService) Send(userID uint, itemID, text string) (chat.Message, bool) {
	return s.Session(userID, itemID).Send(text)
}

func (s *chatService) Messages(userID uint, itemID string) ([]chat.Message, chat.Item, bool) {
	session := s.Session(userID, itemID)
	item, ok := session.Item()
	return session.Messages(), item, ok
}

func (s *chatService) EndConversation(userID uint, itemID string) {
	s.Session(userID, itemID).EndConversation()
}

func (s *chatService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, session := range s.sessions {
		session.Close()
	}
	s.sessions = make(map[string]*chat.Session)
}

// userScopedStore namespaces conversation keys per user on top of a shared
// backing store.
type userScopedStore struct {
	inner  chat.ConversationStore
	prefix string
}

func (s *userScopedStore) Load(key string) ([]chat.Message, bool) {
	return s.inner.Load(s.prefix + key)
}

func (s *userScopedStore) Save(key string, messages []chat.Message) error {
	return s.inner.Save(s.prefix+key, messages)
}

func (s *userScopedStore) Clear(key string) error {
	return s.inner.Clear(s.prefix + key)
}

// uploadItemSource adapts the uploads table to the chat item lookup,
// normalizing the row shape into the canonical chat item. Repository
// errors are absorbed as misses.
type uploadItemSource struct {
	repo db.UploadRepository
}

func (s *uploadItemSource) ItemByID(id string) (chat.Item, bool) {
	if s.repo == nil {
		return chat.Item{}, false
	}
	upload, err := s.repo.GetUploadByID(id)
	if err != nil || upload == nil {
		return chat.Item{}, false
	}
	return uploadToItem(upload), true
}

func uploadToItem(upload *models.Upload) chat.Item {
	image := upload.ImageURL
	if image == "" {
		image = upload.ThumbnailURL
	}
	return chat.Item{
		ID:          upload.ID,
		Title:       upload.Title,
		Description: upload.Description,
		ImageURL:    image,
	}
}
