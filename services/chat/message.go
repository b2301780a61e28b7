package chat

import "time"

// Sender identifies a chat participant. A conversation has exactly two:
// the user and the synthetic seller.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderSeller Sender = "seller"
)

// Message is one entry in a conversation. Insertion order is authoritative;
// the timestamp is display-only and never used for sorting.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationKey derives the storage key for an item's conversation.
func ConversationKey(itemID string) string {
	return "chat_" + itemID
}
