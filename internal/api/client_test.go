package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srinath-230/e-commerce-frontend-app/internal/api/apitest"
	"github.com/Srinath-230/e-commerce-frontend-app/internal/domain"
	apperrors "github.com/Srinath-230/e-commerce-frontend-app/pkg/errors"
	"github.com/Srinath-230/e-commerce-frontend-app/pkg/httpclient"
	"github.com/Srinath-230/e-commerce-frontend-app/pkg/logger"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(baseURL string) *Client {
	httpClient := httpclient.New(httpclient.Config{Timeout: 5 * time.Second, MaxConnsPerHost: 10})
	return NewClient(baseURL, httpClient, newTestLogger())
}

func TestListProducts_Success(t *testing.T) {
	backend := apitest.New()
	defer backend.Close()
	backend.Seed(
		domain.Product{ID: "1", Name: "Mug", Description: "A mug", Price: 9.99},
		domain.Product{ID: "2", Name: "Shirt", Description: "A shirt", Price: 19.5},
	)

	client := newTestClient(backend.URL())

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Mug", products[0].Name)
	assert.InDelta(t, 9.99, products[0].Price, 0.0001)
}

func TestListProducts_ServerError(t *testing.T) {
	backend := apitest.New()
	defer backend.Close()
	backend.FailNext(http.StatusInternalServerError, "boom")

	client := newTestClient(backend.URL())

	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrServer)
	assert.Equal(t, "listProducts", apperrors.OpOf(err))

	var reqErr *apperrors.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
}

func TestListProducts_TransportFailure(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")

	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransport)
	assert.Equal(t, "listProducts", apperrors.OpOf(err))
}

func TestListProducts_MalformedBody(t *testing.T) {
	// A wrong-shaped body is a protocol violation, never an empty result.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDecode)
}

func TestCreateProduct_Success(t *testing.T) {
	backend := apitest.New()
	defer backend.Close()

	client := newTestClient(backend.URL())

	product, err := client.CreateProduct(context.Background(), domain.Draft{
		Name:        "Mug",
		Description: "A mug",
		Price:       9.99,
	})
	require.NoError(t, err)
	assert.Equal(t, "1", product.ID)
	assert.Equal(t, "Mug", product.Name)

	assert.Len(t, backend.Products(), 1)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	backend := apitest.New()
	defer backend.Close()

	client := newTestClient(backend.URL())

	_, err := client.UpdateProduct(context.Background(), "missing", domain.Draft{
		Name: "Mug", Description: "A mug", Price: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "updateProduct", apperrors.OpOf(err))
}

func TestDeleteProduct_Success(t *testing.T) {
	backend := apitest.New()
	defer backend.Close()
	backend.Seed(domain.Product{ID: "1", Name: "Mug", Description: "A mug", Price: 9.99})

	client := newTestClient(backend.URL())

	require.NoError(t, client.DeleteProduct(context.Background(), "1"))
	assert.Empty(t, backend.Products())
}

func TestUpsertCartItem_SendsAbsoluteQuantity(t *testing.T) {
	backend := apitest.New()
	defer backend.Close()

	client := newTestClient(backend.URL())

	item, err := client.UpsertCartItem(context.Background(), "1", 3)
	require.NoError(t, err)
	assert.Equal(t, "c1", item.ID)
	assert.Equal(t, "1", item.ProductID)
	assert.Equal(t, 3, item.Quantity)

	// A second upsert updates the same line rather than appending.
	item, err = client.UpsertCartItem(context.Background(), "1", 4)
	require.NoError(t, err)
	assert.Equal(t, "c1", item.ID)
	assert.Equal(t, 4, item.Quantity)
	assert.Len(t, backend.Cart(), 1)
}

func TestDeleteCartItem_Success(t *testing.T) {
	backend := apitest.New()
	defer backend.Close()
	backend.SeedCart(domain.CartItem{ID: "c1", ProductID: "1", Quantity: 2})

	client := newTestClient(backend.URL())

	require.NoError(t, client.DeleteCartItem(context.Background(), "c1"))
	assert.Empty(t, backend.Cart())
}

func TestSubmitContactMessage_SentAsIs(t *testing.T) {
	backend := apitest.New()
	defer backend.Close()

	client := newTestClient(backend.URL())

	// The contact form intentionally has no client-side validation: an
	// empty message is submitted unchanged.
	err := client.SubmitContactMessage(context.Background(), domain.ContactMessage{
		Name:  "Ada",
		Email: "ada@example.com",
	})
	require.NoError(t, err)

	msgs := backend.ContactMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "Ada", msgs[0].Name)
	assert.Empty(t, msgs[0].Message)
}

func TestDo_SetsCorrelationIDHeader(t *testing.T) {
	var sawHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawHeader = r.Header.Get("X-Correlation-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, sawHeader)
}

func TestDo_PropagatesScopedCorrelationID(t *testing.T) {
	var sawHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawHeader = r.Header.Get("X-Correlation-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ctx := logger.WithCorrelationID(context.Background(), "session-7")
	_, err := client.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "session-7", sawHeader)
}
