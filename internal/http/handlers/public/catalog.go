package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mebel-next/internal/http/response"
	"github.com/mebel-next/internal/service"

	"github.com/gin-gonic/gin"
)

func parseCatalogListInput(c *gin.Context) service.CatalogListInput {
	input := service.CatalogListInput{
		Kind:   strings.TrimSpace(c.Query("kind")),
		Search: strings.TrimSpace(c.Query("search")),
		Sort:   strings.TrimSpace(c.Query("sort")),
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		input.Page = page
	}
	if pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "0")); err == nil {
		input.PageSize = pageSize
	}
	if raw := c.Query("price_min"); raw != "" {
		if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
			input.PriceMin = &value
		}
	}
	if raw := c.Query("price_max"); raw != "" {
		if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
			input.PriceMax = &value
		}
	}
	return input
}

// ListProducts returns one catalog page with filters and sorting.
func (h *Handler) ListProducts(c *gin.Context) {
	page, err := h.CatalogService.List(parseCatalogListInput(c))
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	totalPage := int64(0)
	if page.PageSize > 0 {
		totalPage = (page.Total + int64(page.PageSize) - 1) / int64(page.PageSize)
	}
	response.SuccessWithPage(c, page.Items, response.Pagination{
		Page:      page.Page,
		PageSize:  page.PageSize,
		Total:     page.Total,
		TotalPage: totalPage,
	})
}

// CountProducts returns the number of products matching the filters.
func (h *Handler) CountProducts(c *gin.Context) {
	total, err := h.CatalogService.Count(c.Request.Context(), parseCatalogListInput(c))
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"total": total})
}

// GetProduct returns one product by slug with its size variants.
func (h *Handler) GetProduct(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	product, err := h.CatalogService.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, product)
}

// GetPriceRange returns the catalog price span for the filter slider.
func (h *Handler) GetPriceRange(c *gin.Context) {
	priceRange, err := h.CatalogService.PriceRange(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, priceRange)
}
