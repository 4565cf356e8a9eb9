package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minshop/storefront/internal/rest"
)

const cartJSON = `{
	"id": 7,
	"token": "T1",
	"cartProducts": [
		{"product": {"id": "P1", "name": "Mug", "price": 10}, "quantity": 2}
	]
}`

type recordedRequest struct {
	method    string
	path      string
	requestID string
	body      map[string]any
}

func newCartClient(t *testing.T, status int, response string, rec *recordedRequest) *rest.CartClient {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.requestID = r.Header.Get("X-Request-ID")
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&rec.body)
		}

		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	client, err := rest.NewCart(rest.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	return client
}

func TestCartClientGetCart(t *testing.T) {
	var rec recordedRequest
	client := newCartClient(t, http.StatusOK, cartJSON, &rec)

	cart, err := client.GetCart(t.Context(), "T1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/cart/get", rec.path)
	assert.NotEmpty(t, rec.requestID)
	assert.Equal(t, map[string]any{"token": "T1"}, rec.body)

	require.NotNil(t, cart.ID)
	assert.EqualValues(t, 7, *cart.ID)
	assert.Equal(t, "T1", cart.Token)
	require.Len(t, cart.Products, 1)
	assert.Equal(t, "P1", cart.Products[0].Product.ID)
	assert.True(t, decimal.NewFromInt(10).Equal(cart.Products[0].Product.Price))
	assert.Equal(t, 2, cart.Products[0].Quantity)
}

func TestCartClientGetCartEmptyToken(t *testing.T) {
	var rec recordedRequest
	client := newCartClient(t, http.StatusOK, cartJSON, &rec)

	_, err := client.GetCart(t.Context(), "")
	require.ErrorContains(t, err, "token is empty")
	assert.Empty(t, rec.method, "no request should be sent")
}

func TestCartClientAddProduct(t *testing.T) {
	var rec recordedRequest
	client := newCartClient(t, http.StatusOK, cartJSON, &rec)

	// empty token is allowed: the service allocates a new cart
	cart, err := client.AddProduct(t.Context(), "", "P1", 2)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/cart/addProduct", rec.path)
	assert.Equal(t, map[string]any{
		"token":     "",
		"productId": "P1",
		"quantity":  float64(2),
	}, rec.body)
	assert.Equal(t, "T1", cart.Token)
}

func TestCartClientAddProductValidation(t *testing.T) {
	var rec recordedRequest
	client := newCartClient(t, http.StatusOK, cartJSON, &rec)

	_, err := client.AddProduct(t.Context(), "T1", "", 1)
	require.ErrorContains(t, err, "productID is empty")

	_, err = client.AddProduct(t.Context(), "T1", "P1", 0)
	require.ErrorContains(t, err, "not positive")

	assert.Empty(t, rec.method)
}

func TestCartClientUpdateProduct(t *testing.T) {
	var rec recordedRequest
	client := newCartClient(t, http.StatusOK, cartJSON, &rec)

	// quantity 0 is a valid input meaning "remove"
	_, err := client.UpdateProduct(t.Context(), "T1", "P1", 0)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/cart/updateQuantity", rec.path)
	assert.Equal(t, map[string]any{
		"token":     "T1",
		"productId": "P1",
		"quantity":  float64(0),
	}, rec.body)
}

func TestCartClientUpdateProductValidation(t *testing.T) {
	var rec recordedRequest
	client := newCartClient(t, http.StatusOK, cartJSON, &rec)

	_, err := client.UpdateProduct(t.Context(), "", "P1", 1)
	require.ErrorContains(t, err, "token is empty")

	_, err = client.UpdateProduct(t.Context(), "T1", "P1", -1)
	require.ErrorContains(t, err, "is negative")
}

func TestCartClientStatusError(t *testing.T) {
	var rec recordedRequest
	client := newCartClient(t, http.StatusInternalServerError, "boom", &rec)

	_, err := client.GetCart(t.Context(), "T1")
	require.Error(t, err)

	var statusErr *rest.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Equal(t, "boom", statusErr.Body)
}

func TestCartClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, err := rest.NewCart(rest.Config{BaseURL: url})
	require.NoError(t, err)

	_, err = client.GetCart(t.Context(), "T1")
	require.Error(t, err)

	var statusErr *rest.StatusError
	assert.False(t, errors.As(err, &statusErr), "transport failure is not a status error")
}
