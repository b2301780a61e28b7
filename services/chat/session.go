package chat

import (
	"log"
	"strconv"
	"strings"
	"sync"
	"time"
)

// State is the lifecycle phase of a Session.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

const genericItemName = "item"

// Session drives one conversation about one item: it restores or seeds the
// message log, appends user messages, schedules the delayed seller reply,
// and write-throughs every change to the store.
//
// Scheduled replies carry the generation current at send time. Ending or
// closing the conversation bumps the generation, so a timer firing late is
// a no-op instead of appending into a reset log. Replies are never
// cancelled by further sends; they interleave in arrival order.
type Session struct {
	mu          sync.Mutex
	state       State
	itemID      string
	key         string
	item        Item
	itemOK      bool
	messages    []Message
	store       ConversationStore
	lookup      *Lookup
	replyDelay  time.Duration
	generation  int
	closed      bool
	lastID      int64
	subscribers []chan Message

	now      func() time.Time
	schedule func(d time.Duration, f func())
}

func NewSession(store ConversationStore, lookup *Lookup, itemID string, replyDelay time.Duration) *Session {
	return &Session{
		state:      StateUninitialized,
		itemID:     itemID,
		key:        ConversationKey(itemID),
		store:      store,
		lookup:     lookup,
		replyDelay: replyDelay,
		now:        time.Now,
		schedule: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// Start resolves the item and restores the stored conversation, seeding a
// welcome message when none exists. Lookup misses and store failures
// degrade to placeholders; Start always reaches Ready.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUninitialized {
		return
	}
	s.state = StateLoading

	s.item, s.itemOK = s.lookup.Resolve(s.itemID)

	if messages, ok := s.store.Load(s.key); ok && len(messages) > 0 {
		s.messages = messages
		s.syncLastIDLocked(messages)
	} else {
		s.seedWelcomeLocked()
	}
	s.state = StateReady
}

// Send appends a user message and schedules exactly one seller reply after
// the configured delay. Blank input is rejected with no side effects.
func (s *Session) Send(text string) (Message, bool) {
	trimmed := strings.TrimSpace(text)

	s.mu.Lock()
	if s.state != StateReady || s.closed || trimmed == "" {
		s.mu.Unlock()
		return Message{}, false
	}

	message := Message{
		ID:        s.nextIDLocked(),
		Sender:    SenderUser,
		Text:      trimmed,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, message)
	s.persistLocked()
	s.notifyLocked(message)
	generation := s.generation
	s.mu.Unlock()

	s.schedule(s.replyDelay, func() {
		s.appendReply(generation, trimmed)
	})
	return message, true
}

func (s *Session) appendReply(generation int, userText string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Stale timer: the conversation was reset or closed after scheduling.
	if s.closed || s.state != StateReady || generation != s.generation {
		return
	}

	reply := Message{
		ID:        s.nextIDLocked(),
		Sender:    SenderSeller,
		Text:      Respond(userText, s.itemNameLocked()),
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, reply)
	s.persistLocked()
	s.notifyLocked(reply)
}

// EndConversation discards the stored log and reseeds the welcome message.
// Pending replies scheduled before the reset will not fire.
func (s *Session) EndConversation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady || s.closed {
		return
	}
	s.generation++
	if err := s.store.Clear(s.key); err != nil {
		log.Printf("chat: clear %s: %v", s.key, err)
	}
	s.messages = nil
	s.seedWelcomeLocked()
}

// Close tears the session down. Pending replies become no-ops and
// subscriber channels are closed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.generation++
	for _, ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
}

// Subscribe returns a channel receiving every message appended after the
// call, plus a cancel function. Slow consumers drop messages rather than
// blocking the session.
func (s *Session) Subscribe() (<-chan Message, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Message, 16)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	s.subscribers = append(s.subscribers, ch)

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, c := range s.subscribers {
			if c == ch {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				close(ch)
				break
			}
		}
	}
	return ch, cancel
}

// Messages returns a copy of the conversation in insertion order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Item returns the resolved item, if the lookup found one.
func (s *Session) Item() (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.item, s.itemOK
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) seedWelcomeLocked() {
	welcome := Message{
		ID:        s.nextIDLocked(),
		Sender:    SenderSeller,
		Text:      "Welcome! I'm happy to answer any questions about this " + s.itemNameLocked() + ".",
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, welcome)
	s.persistLocked()
	s.notifyLocked(welcome)
}

func (s *Session) itemNameLocked() string {
	if s.itemOK && s.item.Title != "" {
		return s.item.Title
	}
	return genericItemName
}

// persistLocked write-throughs the full sequence. Failures are logged and
// swallowed; the in-memory conversation stays usable.
func (s *Session) persistLocked() {
	if err := s.store.Save(s.key, s.messages); err != nil {
		log.Printf("chat: save %s: %v", s.key, err)
	}
}

func (s *Session) notifyLocked(message Message) {
	for _, ch := range s.subscribers {
		select {
		case ch <- message:
		default:
		}
	}
}

// nextIDLocked returns a unique, time-ordered id derived from the clock,
// bumped past the last issued id when the clock has not advanced.
func (s *Session) nextIDLocked() string {
	ms := s.now().UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return strconv.FormatInt(ms, 10)
}

func (s *Session) syncLastIDLocked(messages []Message) {
	for _, m := range messages {
		if id, err := strconv.ParseInt(m.ID, 10, 64); err == nil && id > s.lastID {
			s.lastID = id
		}
	}
}
