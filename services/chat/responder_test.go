package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondKeywordGroups(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		contains string
	}{
		{"price", "What is the price?", "available for $5"},
		{"cost", "how much does it COST", "available for $5"},
		{"condition", "what condition is it in", "good condition"},
		{"quality", "Is the quality okay?", "good condition"},
		{"delivery", "can you deliver it", "local pickup or delivery"},
		{"shipping", "do you do shipping", "local pickup or delivery"},
		{"availability", "is this still available", "still available"},
		{"stock", "got any in stock?", "still available"},
		{"fallback", "hello there", "Thank you for your interest"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Respond(tc.text, "Plastic Bottle")
			assert.Contains(t, got, tc.contains)
		})
	}
}

// A message matching several groups gets the reply of the first group in
// priority order: price beats condition, delivery and availability.
func TestRespondPriorityOrder(t *testing.T) {
	got := Respond("What is the price and condition, and can you deliver if it's available?", "Cardboard Box")
	assert.Contains(t, got, "available for $5")
	assert.NotContains(t, got, "good condition")
}

func TestRespondDeterministic(t *testing.T) {
	first := Respond("is it available?", "Glass Jar")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Respond("is it available?", "Glass Jar"))
	}
}

func TestRespondCaseInsensitive(t *testing.T) {
	assert.Equal(t, Respond("PRICE?", "item"), Respond("price?", "item"))
}

func TestRespondUsesItemName(t *testing.T) {
	got := Respond("how much?", "Wooden Pallet")
	assert.True(t, strings.Contains(got, "Wooden Pallet"), "reply should mention the item name: %q", got)
}

func TestRespondNeverEmpty(t *testing.T) {
	for _, text := range []string{"", "???", "random words", "deliver"} {
		assert.NotEmpty(t, Respond(text, "item"))
	}
}
