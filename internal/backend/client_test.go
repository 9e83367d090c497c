package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkout "github.com/bloomshop/storefront/internal/checkout/domain"
)

func TestLoginDecodesUserAndToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user@example.com", req.Email)
		_ = json.NewEncoder(w).Encode(authResponse{ID: "u1", Username: "user", Email: req.Email, Token: "tok-1"})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	user, token, err := c.Login(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "tok-1", token)
}

func TestLoginFailureIsAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, _, err := c.Login(context.Background(), "user@example.com", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsAuth())
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestFetchProductsNormalizesImageVariants(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"Monstera","price":590,"img":"a.jpg"},
			{"id":2,"name":"Snake Plant","price":350,"imageUrl":"b.jpg"},
			{"id":3,"name":"Fig","price":890,"image":"c.jpg","img":"ignored.jpg"}
		]`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	products, err := c.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "a.jpg", products[0].Image)
	assert.Equal(t, "b.jpg", products[1].Image)
	assert.Equal(t, "c.jpg", products[2].Image)
}

func TestSubmitOrderSendsTokenAndLines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		var req createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "visa", req.PaymentMethod)
		require.Len(t, req.Items, 1)
		assert.Equal(t, int64(7), req.Items[0].ProductID)
		assert.Equal(t, 2, req.Items[0].Quantity)
		_, _ = w.Write([]byte(`{"_id":"ord-42"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	draft := checkout.OrderDraft{
		Method:   checkout.MethodVisa,
		Lines:    []checkout.DraftLine{{ProductID: 7, Name: "Fern", UnitPrice: 120, Quantity: 2}},
		Subtotal: 240,
	}
	id, err := c.SubmitOrder(context.Background(), "tok-1", draft)
	require.NoError(t, err)
	assert.Equal(t, "ord-42", id)
}

func TestOrderHistoryPassesPaging(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/my", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"page":2,"limit":5,"total":11,"pages":3,"items":[]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	page, err := c.OrderHistory(context.Background(), "tok-1", 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.Pages)
}

func TestErrorMessageFallsBackToBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream down`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.FetchProducts(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upstream down", apiErr.Message)
	assert.False(t, apiErr.IsAuth())
}
