package client

import (
	"context"
	"fmt"

	"farm-market/models"
)

func (c *Client) Conversations(ctx context.Context) ([]models.Conversation, error) {
	var out []models.Conversation
	if err := c.get(ctx, "/chat/conversations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StartConversation opens (or re-opens) the thread between a buyer and a
// farmer and returns its id.
func (c *Client) StartConversation(ctx context.Context, farmerID, buyerID int) (int, error) {
	var out models.Conversation
	req := models.StartConversationRequest{FarmerID: farmerID, BuyerID: buyerID}
	if err := c.post(ctx, "/chat/conversations", req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) Messages(ctx context.Context, conversationID int) ([]models.Message, error) {
	var out []models.Message
	path := fmt.Sprintf("/chat/conversations/%d/messages", conversationID)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage posts a message and returns the canonical server copy with its
// assigned id and timestamp. Callers re-fetch rather than append this locally.
func (c *Client) SendMessage(ctx context.Context, conversationID int, content string) (*models.Message, error) {
	var out models.Message
	path := fmt.Sprintf("/chat/conversations/%d/messages", conversationID)
	if err := c.post(ctx, path, models.SendMessageRequest{Content: content}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
