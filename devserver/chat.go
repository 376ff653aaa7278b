package devserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"farm-market/models"
)

// conversations lists the threads the logged-in user takes part in, on either
// side of the marketplace.
func (s *Server) conversations(c *gin.Context) {
	userID := currentUserID(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	out := []models.Conversation{}
	for _, conv := range s.store.conversations {
		if conv.FarmerID == userID || conv.BuyerID == userID {
			out = append(out, *conv)
		}
	}
	c.JSON(http.StatusOK, out)
}

// startConversation opens the thread for a buyer-farmer pair, reusing an
// existing one so both sides always land in the same conversation.
func (s *Server) startConversation(c *gin.Context) {
	var req models.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if conv := s.store.conversationBetween(req.FarmerID, req.BuyerID); conv != nil {
		c.JSON(http.StatusOK, conv)
		return
	}

	conv := &models.Conversation{
		ID:       s.store.nextConversationID,
		FarmerID: req.FarmerID,
		BuyerID:  req.BuyerID,
	}
	s.store.nextConversationID++
	s.store.conversations = append(s.store.conversations, conv)

	c.JSON(http.StatusCreated, conv)
}

func (s *Server) messages(c *gin.Context) {
	conversationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid conversation id"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if s.store.conversationByID(conversationID) == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Conversation not found"})
		return
	}

	out := []models.Message{}
	for _, m := range s.store.messages {
		if m.ConversationID == conversationID {
			out = append(out, *m)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) sendMessage(c *gin.Context) {
	conversationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid conversation id"})
		return
	}

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	conv := s.store.conversationByID(conversationID)
	if conv == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Conversation not found"})
		return
	}

	userID := currentUserID(c)
	if conv.FarmerID != userID && conv.BuyerID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Message: "Not a participant in this conversation"})
		return
	}

	msg := &models.Message{
		ID:             s.store.nextMessageID,
		ConversationID: conversationID,
		SenderID:       userID,
		Content:        req.Content,
		Timestamp:      time.Now().UTC(),
	}
	s.store.nextMessageID++
	s.store.messages = append(s.store.messages, msg)

	c.JSON(http.StatusCreated, msg)
}
