package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is one direct message between two users. ThreadID is the
// sorted pair of participant ids so both directions share a thread.
type Message struct {
	ID            primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	ThreadID      string                 `json:"threadId" bson:"thread_id"`
	SenderID      primitive.ObjectID     `json:"senderId" bson:"sender_id"`
	RecipientID   primitive.ObjectID     `json:"recipientId" bson:"recipient_id"`
	SenderRole    Role                   `json:"senderRole" bson:"sender_role"`
	RecipientRole Role                   `json:"recipientRole" bson:"recipient_role"`
	Subject       string                 `json:"subject,omitempty" bson:"subject,omitempty"`
	Body          string                 `json:"body" bson:"body"`
	Meta          map[string]interface{} `json:"meta,omitempty" bson:"meta,omitempty"`
	ReadAt        *time.Time             `json:"readAt,omitempty" bson:"read_at,omitempty"`
	CreatedAt     time.Time              `json:"createdAt" bson:"created_at"`
}

// CreateMessageRequest is the payload for POST /messages
type CreateMessageRequest struct {
	RecipientID   string                 `json:"recipientId" validate:"required,len=24,hexadecimal"`
	RecipientRole Role                   `json:"recipientRole,omitempty" validate:"omitempty,oneof=farmer supplier admin"`
	Subject       string                 `json:"subject,omitempty" validate:"omitempty,max=200"`
	Body          string                 `json:"body" validate:"required,max=5000"`
	Meta          map[string]interface{} `json:"meta,omitempty"`
}

// Thread is one row of the thread-listing aggregation
type Thread struct {
	ThreadID    string  `json:"threadId" bson:"_id"`
	LastMessage Message `json:"lastMessage" bson:"last_message"`
	Count       int     `json:"count" bson:"count"`
}
