package chat

import (
	"fmt"
	"strings"
)

// keywordGroup pairs trigger keywords with a reply template. Groups are
// checked in order; the first match wins.
type keywordGroup struct {
	keywords []string
	reply    func(itemName string) string
}

var keywordGroups = []keywordGroup{
	{
		keywords: []string{"price", "cost", "how much"},
		reply: func(itemName string) string {
			return fmt.Sprintf("The %s is available for $5. We offer discounts for bulk purchases.", itemName)
		},
	},
	{
		keywords: []string{"condition", "quality"},
		reply: func(itemName string) string {
			return fmt.Sprintf("This %s is in good condition and ready to be reused.", itemName)
		},
	},
	{
		keywords: []string{"deliver", "shipping"},
		reply: func(itemName string) string {
			return "We offer local pickup or delivery for a small fee depending on your location."
		},
	},
	{
		keywords: []string{"available", "in stock", "stock"},
		reply: func(itemName string) string {
			return fmt.Sprintf("Yes, the %s is still available!", itemName)
		},
	},
}

// Respond maps an incoming message to the seller's canned reply. It is pure
// and total: identical inputs always produce the same non-empty output.
func Respond(userText, itemName string) string {
	msg := strings.ToLower(userText)
	for _, group := range keywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(msg, keyword) {
				return group.reply(itemName)
			}
		}
	}
	return fmt.Sprintf("Thank you for your interest in the %s. Is there anything specific you'd like to know about it?", itemName)
}
