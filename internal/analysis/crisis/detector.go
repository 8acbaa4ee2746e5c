// Package crisis flags messages that need an immediate crisis reply.
package crisis

import "strings"

var phrases = []string{
	"suicide",
	"kill myself",
	"end my life",
	"hurt myself",
	"want to die",
	"better off dead",
	"self harm",
}

// Response is returned instead of a model reply when Detect matches.
const Response = `I'm very concerned about what you've shared. Your life has value, and there are people who want to help you through this difficult time.

Please reach out for immediate support:
• National Suicide Prevention Lifeline: 988 (available 24/7)
• Crisis Text Line: Text HOME to 741741
• Emergency Services: 911

You don't have to go through this alone. Professional counselors are available right now to talk with you. Would you like me to help you find local mental health resources?`

// Detect reports whether message contains any crisis phrase.
func Detect(message string) bool {
	normalized := strings.ToLower(message)
	for _, p := range phrases {
		if strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}
