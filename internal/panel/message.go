package panel

import (
	"context"
	"time"
)

// Greeting is the bot message every conversation starts with.
const Greeting = "Hello! I'm psychMASTER, your AI companion for mental health support. How are you feeling today?"

// SendFailureText replaces a reply that could not be fetched.
const SendFailureText = "I'm sorry, I'm having trouble connecting right now. Please try again in a moment.\n\n" +
	"If you need immediate support:\n" +
	"• Call or text 988 (Suicide & Crisis Lifeline)\n" +
	"• Text HOME to 741741 (Crisis Text Line)\n" +
	"• Call 911 for emergencies"

// Message is one entry of the conversation. Messages are never changed once
// appended.
type Message struct {
	ID        int64
	Text      string
	IsBot     bool
	Timestamp time.Time
	IsCrisis  bool
	IsError   bool
}

// Reply is what a ResponseSource returns for a sent message. An empty
// SessionID leaves the held id untouched.
type Reply struct {
	Text      string
	IsCrisis  bool
	SessionID string
}

// ResponseSource answers the panel's messages.
type ResponseSource interface {
	CreateSession(ctx context.Context) (string, error)
	SendMessage(ctx context.Context, text, sessionID string) (Reply, error)
}
