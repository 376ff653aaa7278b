package devserver_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farm-market/client"
	"farm-market/config"
	"farm-market/devserver"
	"farm-market/models"
)

type tokenMap map[models.Role]string

func (m tokenMap) Token(role models.Role) (string, error) { return m[role], nil }
func (m tokenMap) Save(role models.Role, token string) error {
	m[role] = token
	return nil
}
func (m tokenMap) Clear(role models.Role) error {
	delete(m, role)
	return nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     "1h",
		UploadDir:     t.TempDir(),
		MaxUploadSize: 1 << 20,
	}
	srv := httptest.NewServer(devserver.New(cfg).Router())
	t.Cleanup(srv.Close)
	return srv
}

func registerFarmer(t *testing.T, srv *httptest.Server, email string) *client.Client {
	t.Helper()
	c := client.New(srv.URL, models.RoleFarmer, tokenMap{})
	out, err := c.RegisterFarmer(context.Background(), models.RegisterFarmerRequest{
		Name:     "Farmer " + email,
		Email:    email,
		Password: "hunter22",
	})
	require.NoError(t, err)
	_, err = c.Login(context.Background(), email, "hunter22")
	require.NoError(t, err)
	require.NotZero(t, out.User.ID)
	return c
}

func registerBuyer(t *testing.T, srv *httptest.Server, email string) *client.Client {
	t.Helper()
	c := client.New(srv.URL, models.RoleBuyer, tokenMap{})
	_, err := c.RegisterBuyer(context.Background(), models.RegisterBuyerRequest{
		Name:     "Buyer " + email,
		Email:    email,
		Password: "hunter22",
	})
	require.NoError(t, err)
	_, err = c.Login(context.Background(), email, "hunter22")
	require.NoError(t, err)
	return c
}

func TestRegisterLoginCurrentUser(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	farmer := registerFarmer(t, srv, "ada@farm.example")

	user, err := farmer.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada@farm.example", user.Email)
	assert.Equal(t, "farmer", user.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	registerFarmer(t, srv, "dup@farm.example")

	c := client.New(srv.URL, models.RoleFarmer, tokenMap{})
	_, err := c.RegisterFarmer(ctx, models.RegisterFarmerRequest{
		Name:     "Other",
		Email:    "dup@farm.example",
		Password: "pw123456",
	})
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	registerFarmer(t, srv, "ada@farm.example")

	c := client.New(srv.URL, models.RoleFarmer, tokenMap{})
	_, err := c.Login(ctx, "ada@farm.example", "wrong")
	require.Error(t, err)
	assert.True(t, client.IsAuthError(err))
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	srv := newTestServer(t)

	c := client.New(srv.URL, models.RoleFarmer, tokenMap{})
	_, err := c.Products(context.Background())
	require.Error(t, err)
	assert.True(t, client.IsAuthError(err))
}

func TestProductLifecycle(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	farmer := registerFarmer(t, srv, "ada@farm.example")
	buyer := registerBuyer(t, srv, "bea@shop.example")

	require.NoError(t, farmer.AddProduct(ctx, models.CreateProductRequest{
		Name:        "Tomatoes",
		Description: "Fresh garden tomatoes",
		CategoryID:  2,
		Price:       2.50,
		Quantity:    40,
	}))

	// Farmer sees their own listing.
	mine, err := farmer.Products(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Tomatoes", mine[0].Name)
	productID := mine[0].ID

	// Buyer sees the whole marketplace.
	all, err := buyer.Products(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, productID, all[0].ID)

	// PUT replaces the listing with the full edit form.
	require.NoError(t, farmer.EditProduct(ctx, productID, models.UpdateProductRequest{
		Name:       "Cherry Tomatoes",
		CategoryID: 2,
		Price:      3.00,
		Quantity:   25,
	}))
	mine, err = farmer.Products(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Cherry Tomatoes", mine[0].Name)
	assert.Equal(t, 3.00, mine[0].Price)
	assert.Equal(t, 25, mine[0].Quantity)
	assert.Empty(t, mine[0].Description)

	require.NoError(t, farmer.DeleteProduct(ctx, productID))
	mine, err = farmer.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestEditMissingProduct(t *testing.T) {
	srv := newTestServer(t)
	farmer := registerFarmer(t, srv, "ada@farm.example")

	err := farmer.EditProduct(context.Background(), 999, models.UpdateProductRequest{
		Name: "Ghost", CategoryID: 5,
	})
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
}

func TestEditAnotherFarmersProduct(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	owner := registerFarmer(t, srv, "owner@farm.example")
	other := registerFarmer(t, srv, "other@farm.example")

	require.NoError(t, owner.AddProduct(ctx, models.CreateProductRequest{
		Name: "Eggs", CategoryID: 3, Price: 2, Quantity: 12,
	}))
	products, err := owner.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	err = other.EditProduct(ctx, products[0].ID, models.UpdateProductRequest{
		Name: "Stolen Eggs", CategoryID: 3,
	})
	require.Error(t, err)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)

	err = other.DeleteProduct(ctx, products[0].ID)
	require.Error(t, err)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
}

func TestBuyerCannotCreateProducts(t *testing.T) {
	srv := newTestServer(t)
	buyer := registerBuyer(t, srv, "bea@shop.example")

	err := buyer.AddProduct(context.Background(), models.CreateProductRequest{
		Name: "Nope", CategoryID: 1, Price: 1, Quantity: 1,
	})
	require.Error(t, err)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
}

func TestCreateProductRejectsNegativeValues(t *testing.T) {
	srv := newTestServer(t)
	farmer := registerFarmer(t, srv, "ada@farm.example")

	err := farmer.AddProduct(context.Background(), models.CreateProductRequest{
		Name: "Broken", CategoryID: 1, Price: -1, Quantity: 5,
	})
	require.Error(t, err)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestChatFlow(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	farmer := registerFarmer(t, srv, "ada@farm.example")
	buyer := registerBuyer(t, srv, "bea@shop.example")

	farmerUser, err := farmer.CurrentUser(ctx)
	require.NoError(t, err)
	buyerUser, err := buyer.CurrentUser(ctx)
	require.NoError(t, err)

	convID, err := buyer.StartConversation(ctx, farmerUser.ID, buyerUser.ID)
	require.NoError(t, err)
	require.NotZero(t, convID)

	// Starting the same pair again lands in the same conversation.
	again, err := farmer.StartConversation(ctx, farmerUser.ID, buyerUser.ID)
	require.NoError(t, err)
	assert.Equal(t, convID, again)

	_, err = buyer.SendMessage(ctx, convID, "Are the tomatoes still available?")
	require.NoError(t, err)
	_, err = farmer.SendMessage(ctx, convID, "Yes, picked this morning.")
	require.NoError(t, err)

	msgs, err := buyer.Messages(ctx, convID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, buyerUser.ID, msgs[0].SenderID)
	assert.Equal(t, "Are the tomatoes still available?", msgs[0].Content)
	assert.Equal(t, farmerUser.ID, msgs[1].SenderID)
	assert.False(t, msgs[1].Timestamp.IsZero())

	// Both participants list the thread.
	convs, err := farmer.Conversations(ctx)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, convID, convs[0].ID)
}

func TestSendMessageRequiresParticipation(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	farmer := registerFarmer(t, srv, "ada@farm.example")
	buyer := registerBuyer(t, srv, "bea@shop.example")
	outsider := registerBuyer(t, srv, "eve@shop.example")

	farmerUser, err := farmer.CurrentUser(ctx)
	require.NoError(t, err)
	buyerUser, err := buyer.CurrentUser(ctx)
	require.NoError(t, err)

	convID, err := buyer.StartConversation(ctx, farmerUser.ID, buyerUser.ID)
	require.NoError(t, err)

	_, err = outsider.SendMessage(ctx, convID, "let me in")
	require.Error(t, err)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
}

func TestMessagesUnknownConversation(t *testing.T) {
	srv := newTestServer(t)
	buyer := registerBuyer(t, srv, "bea@shop.example")

	_, err := buyer.Messages(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
}

func TestUploadImageLocalFallback(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	farmer := registerFarmer(t, srv, "ada@farm.example")

	imagePath := filepath.Join(t.TempDir(), "tomatoes.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("fake-jpeg-bytes"), 0o600))

	url, err := farmer.UploadImage(ctx, imagePath)
	require.NoError(t, err)
	assert.Contains(t, url, "/uploads/")
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestUploadRejectsBadExtension(t *testing.T) {
	srv := newTestServer(t)
	farmer := registerFarmer(t, srv, "ada@farm.example")

	badPath := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(badPath, []byte("#!/bin/sh"), 0o600))

	_, err := farmer.UploadImage(context.Background(), badPath)
	require.Error(t, err)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}
