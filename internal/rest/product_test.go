package rest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minshop/storefront/internal/rest"
)

func newProductClient(t *testing.T, response string, rec *recordedRequest) *rest.ProductClient {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	client, err := rest.NewProduct(rest.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	return client
}

func TestProductClientListProducts(t *testing.T) {
	var rec recordedRequest
	client := newProductClient(t, `[
		{"id": "P1", "name": "Mug", "route": "mug", "price": 10},
		{"id": "P2", "name": "Shirt", "route": "shirt", "price": 25}
	]`, &rec)

	products, err := client.ListProducts(t.Context())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/product", rec.path)
	require.Len(t, products, 2)
	assert.Equal(t, "mug", products[0].Route)
}

func TestProductClientGetProduct(t *testing.T) {
	var rec recordedRequest
	client := newProductClient(t, `{"id": "P1", "name": "Mug", "route": "mug", "price": 10}`, &rec)

	// products are keyed by route slug, not numeric id
	product, err := client.GetProduct(t.Context(), "mug")
	require.NoError(t, err)

	assert.Equal(t, "/product/mug", rec.path)
	assert.Equal(t, "P1", product.ID)

	_, err = client.GetProduct(t.Context(), "")
	require.ErrorContains(t, err, "route is empty")
}

func TestProductClientCategories(t *testing.T) {
	var rec recordedRequest
	client := newProductClient(t, `["mugs", "shirts"]`, &rec)

	categories, err := client.Categories(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "/product/categories", rec.path)
	assert.Equal(t, []string{"mugs", "shirts"}, categories)
}

func TestProductClientProductsByCategory(t *testing.T) {
	var rec recordedRequest
	client := newProductClient(t, `[{"id": "P1", "category": "mugs", "price": 10}]`, &rec)

	products, err := client.ProductsByCategory(t.Context(), "mugs")
	require.NoError(t, err)

	assert.Equal(t, "/products/category/mugs", rec.path)
	require.Len(t, products, 1)
	assert.Equal(t, "mugs", products[0].Category)

	_, err = client.ProductsByCategory(t.Context(), "")
	require.ErrorContains(t, err, "category is empty")
}

func TestPaymentClientPaymentPagePath(t *testing.T) {
	client, err := rest.NewPayment(rest.Config{BaseURL: "http://localhost:8080/"})
	require.NoError(t, err)

	// constructed client-side, never fetched
	path, err := client.PaymentPagePath("ORD-42")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/pay/toPaymentHtml/ORD-42", path)

	_, err = client.PaymentPagePath("")
	require.ErrorContains(t, err, "orderNumber is empty")
}

func TestLogisticsClientCVSMapPath(t *testing.T) {
	client, err := rest.NewLogistics(rest.Config{BaseURL: "http://localhost:8080"})
	require.NoError(t, err)

	path, err := client.CVSMapPath(3)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/log/ecpay/selectCvsMap/3", path)

	_, err = client.CVSMapPath(0)
	require.ErrorContains(t, err, "not positive")
}
