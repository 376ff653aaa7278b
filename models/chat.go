package models

import "time"

type Conversation struct {
	ID       int `json:"id"`
	FarmerID int `json:"farmer_id"`
	BuyerID  int `json:"buyer_id"`
}

// Message is immutable once created. Timestamp ascending is the display order;
// the backend does not guarantee it on the wire.
type Message struct {
	ID             int       `json:"id"`
	ConversationID int       `json:"conversation_id"`
	SenderID       int       `json:"sender_id"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
}

type StartConversationRequest struct {
	FarmerID int `json:"farmer_id" binding:"required"`
	BuyerID  int `json:"buyer_id" binding:"required"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
