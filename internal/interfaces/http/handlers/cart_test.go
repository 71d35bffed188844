package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goldenbarrel/storefront-backend/internal/config"
	"github.com/goldenbarrel/storefront-backend/internal/domain/cart"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store := cart.NewStore(cart.NewMemoryRepository(), log)
	h := NewCartHandler(store, testCatalog(t), &config.Config{})

	r := gin.New()
	r.GET("/cart", h.GetCart)
	r.GET("/cart/count", h.GetCartCount)
	r.DELETE("/cart", h.ClearCart)
	r.POST("/cart/items", h.AddToCart)
	r.PUT("/cart/items/:id", h.UpdateCartItem)
	r.DELETE("/cart/items/:id", h.RemoveCartItem)
	return r
}

// cartClient keeps the session cookie across requests like a browser would
type cartClient struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func (c *cartClient) do(method, path string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	c.t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(c.t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == "session_id" {
			c.cookie = ck
		}
	}

	var parsed map[string]interface{}
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func cartItems(body map[string]interface{}) []interface{} {
	return body["data"].(map[string]interface{})["items"].([]interface{})
}

func cartTotals(body map[string]interface{}) map[string]interface{} {
	return body["data"].(map[string]interface{})["totals"].(map[string]interface{})
}

func TestCartLifecycle(t *testing.T) {
	client := &cartClient{t: t, router: cartRouter(t)}

	// Fresh session starts empty and receives a session cookie
	w, body := client.do(http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartItems(body))
	require.NotNil(t, client.cookie)

	// Add a bottle with engraving
	w, body = client.do(http.MethodPost, "/cart/items", gin.H{
		"product_id": "angel-hill",
		"quantity":   2,
		"options":    gin.H{"engraving": true},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	items := cartItems(body)
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0].(map[string]interface{})["quantity"])

	totals := cartTotals(body)
	assert.Equal(t, float64(2), totals["total_quantity"])
	assert.Equal(t, float64((2999+1599)*2), totals["total_price_cents"])

	// Update quantity
	w, body = client.do(http.MethodPut, "/cart/items/angel-hill", gin.H{"quantity": 1})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), cartTotals(body)["total_quantity"])

	// Quantity zero removes the line item
	w, body = client.do(http.MethodPut, "/cart/items/angel-hill", gin.H{"quantity": 0})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartItems(body))
}

func TestGetCartCount(t *testing.T) {
	client := &cartClient{t: t, router: cartRouter(t)}

	_, body := client.do(http.MethodGet, "/cart/count", nil)
	assert.Equal(t, float64(0), body["data"].(map[string]interface{})["count"])

	_, _ = client.do(http.MethodPost, "/cart/items", gin.H{"product_id": "angel-hill", "quantity": 2})
	_, _ = client.do(http.MethodPost, "/cart/items", gin.H{"product_id": "drumlin-12", "quantity": 1})

	_, body = client.do(http.MethodGet, "/cart/count", nil)
	assert.Equal(t, float64(3), body["data"].(map[string]interface{})["count"])
}

func TestAddToCartUnknownProduct(t *testing.T) {
	client := &cartClient{t: t, router: cartRouter(t)}

	w, body := client.do(http.MethodPost, "/cart/items", gin.H{
		"product_id": "nonexistent",
		"quantity":   1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", body["error"])
}

func TestAddToCartMissingProductID(t *testing.T) {
	client := &cartClient{t: t, router: cartRouter(t)}

	w, body := client.do(http.MethodPost, "/cart/items", gin.H{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request data", body["error"])
}

func TestClearCart(t *testing.T) {
	client := &cartClient{t: t, router: cartRouter(t)}

	_, _ = client.do(http.MethodPost, "/cart/items", gin.H{"product_id": "angel-hill", "quantity": 1})
	_, _ = client.do(http.MethodPost, "/cart/items", gin.H{"product_id": "drumlin-12", "quantity": 1})

	w, body := client.do(http.MethodDelete, "/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartItems(body))

	_, body = client.do(http.MethodGet, "/cart", nil)
	assert.Empty(t, cartItems(body))
}

func TestCartPersistsAcrossRequests(t *testing.T) {
	client := &cartClient{t: t, router: cartRouter(t)}

	_, _ = client.do(http.MethodPost, "/cart/items", gin.H{"product_id": "drumlin-12", "quantity": 3})

	_, body := client.do(http.MethodGet, "/cart", nil)
	items := cartItems(body)
	require.Len(t, items, 1)
	assert.Equal(t, float64(3), items[0].(map[string]interface{})["quantity"])
}
