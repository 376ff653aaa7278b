package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farm-market/models"
)

func (s *Server) registerFarmer(c *gin.Context) {
	var req models.RegisterFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}

	acc := &account{
		Role:        models.RoleFarmer,
		PhoneNumber: req.PhoneNumber,
		FarmAddress: req.FarmAddress,
		FarmSize:    req.FarmSize,
	}
	acc.Name = req.Name
	acc.Email = req.Email

	s.register(c, acc, req.Password)
}

func (s *Server) registerBuyer(c *gin.Context) {
	var req models.RegisterBuyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}

	acc := &account{
		Role:          models.RoleBuyer,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	}
	acc.Name = req.Name
	acc.Email = req.Email

	s.register(c, acc, req.Password)
}

func (s *Server) register(c *gin.Context, acc *account, password string) {
	hash, err := hashPassword(password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to hash password", Error: err.Error()})
		return
	}
	acc.PasswordHash = hash

	s.store.mu.Lock()
	if s.store.accountByEmail(acc.Role, acc.Email) != nil {
		s.store.mu.Unlock()
		c.JSON(http.StatusConflict, models.ErrorResponse{Message: "Email already registered"})
		return
	}
	acc.ID = s.store.nextUserID
	s.store.nextUserID++
	acc.User.Role = string(acc.Role)
	s.store.accounts = append(s.store.accounts, acc)
	s.store.mu.Unlock()

	token, err := s.generateToken(acc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to generate token", Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.LoginResponse{AccessToken: token, User: acc.User})
}

func (s *Server) login(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body", Error: err.Error()})
			return
		}

		s.store.mu.Lock()
		acc := s.store.accountByEmail(role, req.Email)
		s.store.mu.Unlock()

		if acc == nil || !verifyPassword(acc.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid email or password"})
			return
		}

		token, err := s.generateToken(acc)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to generate token", Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, models.LoginResponse{AccessToken: token, User: acc.User})
	}
}

func (s *Server) currentUser(c *gin.Context) {
	s.store.mu.Lock()
	acc := s.store.accountByID(currentUserID(c))
	s.store.mu.Unlock()

	if acc == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "User not found"})
		return
	}
	c.JSON(http.StatusOK, models.UserResponse{User: acc.User})
}
