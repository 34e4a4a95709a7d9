package models

import "time"

// Attachment references a binary payload stored alongside a message.
type Attachment struct {
	Key         string `json:"key"`
	ContentType string `json:"contentType,omitempty"`
	Size        int64  `json:"size,omitempty"`
}

// Message is a single message exchanged between two participants.
type Message struct {
	ID             string      `json:"id"`
	ConversationID string      `json:"conversationId,omitempty"`
	From           string      `json:"from,omitempty"`
	To             string      `json:"to,omitempty"`
	Type           string      `json:"type,omitempty"`
	Content        string      `json:"content,omitempty"`
	Attachment     *Attachment `json:"attachment,omitempty"`
	Version        string      `json:"version,omitempty"`
	CreatedAt      time.Time   `json:"createdAt,omitzero"`
}
