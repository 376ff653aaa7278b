package devserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farm-market/models"
)

// farmerProducts returns only the listings owned by the logged-in farmer.
func (s *Server) farmerProducts(c *gin.Context) {
	farmerID := currentUserID(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	products := []models.Product{}
	for _, p := range s.store.products {
		if p.FarmerID == farmerID {
			products = append(products, *p)
		}
	}
	c.JSON(http.StatusOK, products)
}

// buyerProducts returns the whole marketplace.
func (s *Server) buyerProducts(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	products := []models.Product{}
	for _, p := range s.store.products {
		products = append(products, *p)
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) createProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}
	if req.Price < 0 || req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Price and quantity must not be negative"})
		return
	}

	s.store.mu.Lock()
	product := &models.Product{
		ID:          s.store.nextProductID,
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
		FarmerID:    currentUserID(c),
	}
	s.store.nextProductID++
	s.store.products = append(s.store.products, product)
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, product)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid product id"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	product, _ := s.store.productByID(id)
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Product not found"})
		return
	}
	if product.FarmerID != currentUserID(c) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Message: "Product belongs to another farmer"})
		return
	}

	// PUT carries the full edit form, mirroring the edit screen.
	if req.Price < 0 || req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Price and quantity must not be negative"})
		return
	}
	product.Name = req.Name
	product.Description = req.Description
	product.CategoryID = req.CategoryID
	product.Price = req.Price
	product.Quantity = req.Quantity
	product.ImageURL = req.ImageURL

	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid product id"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	product, idx := s.store.productByID(id)
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Product not found"})
		return
	}
	if product.FarmerID != currentUserID(c) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Message: "Product belongs to another farmer"})
		return
	}

	s.store.products = append(s.store.products[:idx], s.store.products[idx+1:]...)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}
