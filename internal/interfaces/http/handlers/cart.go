// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goldenbarrel/storefront-backend/internal/config"
	"github.com/goldenbarrel/storefront-backend/internal/domain/cart"
	"github.com/goldenbarrel/storefront-backend/internal/domain/catalog"
	"github.com/goldenbarrel/storefront-backend/internal/domain/pricing"
	"github.com/google/uuid"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartStore *cart.Store
	catalog   *catalog.Catalog
	config    *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartStore *cart.Store, cat *catalog.Catalog, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartStore: cartStore,
		catalog:   cat,
		config:    cfg,
	}
}

// AddToCartRequest is the body for POST /cart/items
type AddToCartRequest struct {
	ProductID string           `json:"product_id" binding:"required"`
	Quantity  int              `json:"quantity"`
	Options   *pricing.Options `json:"options"`
}

// UpdateCartItemRequest is the body for PUT /cart/items/:id
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	items := h.cartStore.Get(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartResponse(items),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, ok := h.catalog.ByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	items, err := h.cartStore.Add(c.Request.Context(), sessionID, product, req.Quantity, req.Options)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    cartResponse(items),
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)
	productID := c.Param("id")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	items, err := h.cartStore.UpdateQuantity(c.Request.Context(), sessionID, productID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    cartResponse(items),
	})
}

// RemoveCartItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)
	productID := c.Param("id")

	items, err := h.cartStore.Remove(c.Request.Context(), sessionID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    cartResponse(items),
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": h.cartStore.TotalItems(c.Request.Context(), sessionID),
		},
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	if err := h.cartStore.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    cartResponse(nil),
	})
}

func cartResponse(items []cart.LineItem) gin.H {
	if items == nil {
		items = []cart.LineItem{}
	}
	return gin.H{
		"items":  items,
		"totals": cart.CalculateTotals(items),
	}
}

// getOrCreateSessionID gets session ID from cookie or creates a new one
func (h *CartHandler) getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()

		// Session cookie lives 30 days, matching cart retention
		c.SetCookie("session_id", sessionID, 30*86400, "/", "", false, true)
	}

	return sessionID
}
