// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goldenbarrel/storefront-backend/internal/config"
	"github.com/goldenbarrel/storefront-backend/internal/domain/catalog"
	"github.com/goldenbarrel/storefront-backend/internal/domain/search"
)

// Price filter bounds in dollars when the client omits them.
const defaultMaxPriceDollars = 1000

// CatalogHandler handles product catalog endpoints
type CatalogHandler struct {
	catalog *catalog.Catalog
	config  *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		config:  cfg,
	}
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	state := catalog.FilterState{
		Types:         splitParam(c.Query("types")),
		Brands:        splitParam(c.Query("brands")),
		MinPriceCents: parsePriceParam(c.Query("min_price"), 0),
		MaxPriceCents: parsePriceParam(c.Query("max_price"), defaultMaxPriceDollars*100),
		InStockOnly:   c.Query("in_stock") == "true",
		Sort:          catalog.ParseSortKey(c.Query("sort")),
		Page:          1,
	}

	if pageParam := c.Query("page"); pageParam != "" {
		if page, err := strconv.Atoi(pageParam); err == nil && page > 0 {
			state.Page = page
		}
	}

	result := h.catalog.Paginate(state)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products":    result.Products,
			"total":       result.Total,
			"total_pages": result.TotalPages,
			"page":        result.Page,
			"page_size":   result.PageSize,
			"has_next":    result.HasNext(),
			"has_prev":    result.HasPrev(),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, ok := h.catalog.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetFacets handles GET /products/facets
func (h *CatalogHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Facets retrieved successfully",
		"data": gin.H{
			"types":      h.catalog.TypeCounts(),
			"brands":     h.catalog.BrandCounts(),
			"brand_list": h.catalog.Brands(),
		},
	})
}

// Suggest handles GET /products/suggest
func (h *CatalogHandler) Suggest(c *gin.Context) {
	query := c.Query("q")

	results := search.Rank(h.catalog.Products(), query)
	if results == nil {
		results = []catalog.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Suggestions retrieved successfully",
		"data": gin.H{
			"query":   query,
			"results": results,
		},
	})
}

// splitParam parses a comma separated query parameter into values
func splitParam(param string) []string {
	if param == "" {
		return nil
	}

	var values []string
	for _, v := range strings.Split(param, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// parsePriceParam converts a dollar amount query parameter to cents
func parsePriceParam(param string, fallback int64) int64 {
	if param == "" {
		return fallback
	}

	dollars, err := strconv.ParseFloat(param, 64)
	if err != nil || dollars < 0 {
		return fallback
	}

	return int64(math.Round(dollars * 100))
}
