package client

import (
	"context"
	"fmt"

	"farm-market/models"
)

// Products returns the role-scoped product list: a farmer sees only their own
// listings, a buyer sees everything on the marketplace.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.get(ctx, fmt.Sprintf("/%s/products", c.role), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddProduct(ctx context.Context, req models.CreateProductRequest) error {
	return c.post(ctx, "/farmer/products", req, nil)
}

func (c *Client) EditProduct(ctx context.Context, id int, req models.UpdateProductRequest) error {
	return c.put(ctx, fmt.Sprintf("/farmer/products/%d", id), req, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/farmer/products/%d", id))
}
