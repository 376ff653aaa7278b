package devserver

import (
	"sync"

	"farm-market/models"
)

// account is a registered user plus the profile fields its role collects.
type account struct {
	models.User
	PasswordHash  string
	Role          models.Role
	PhoneNumber   string
	FarmAddress   string
	FarmSize      float64
	Address       string
	PaymentMethod string
}

// store holds all stub state in memory. One mutex is plenty at dev scale.
type store struct {
	mu sync.Mutex

	nextUserID         int
	nextProductID      int
	nextConversationID int
	nextMessageID      int

	accounts      []*account
	products      []*models.Product
	conversations []*models.Conversation
	messages      []*models.Message
}

func newStore() *store {
	return &store{
		nextUserID:         1,
		nextProductID:      1,
		nextConversationID: 1,
		nextMessageID:      1,
	}
}

func (s *store) accountByEmail(role models.Role, email string) *account {
	for _, a := range s.accounts {
		if a.Role == role && a.Email == email {
			return a
		}
	}
	return nil
}

func (s *store) accountByID(id int) *account {
	for _, a := range s.accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *store) productByID(id int) (*models.Product, int) {
	for i, p := range s.products {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

func (s *store) conversationByID(id int) *models.Conversation {
	for _, c := range s.conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// conversationBetween returns the existing thread for a buyer-farmer pair so
// repeated "start chat" taps reuse it.
func (s *store) conversationBetween(farmerID, buyerID int) *models.Conversation {
	for _, c := range s.conversations {
		if c.FarmerID == farmerID && c.BuyerID == buyerID {
			return c
		}
	}
	return nil
}
