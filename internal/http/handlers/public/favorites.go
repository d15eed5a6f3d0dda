package public

import (
	"strconv"
	"strings"

	"github.com/mebel-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

func parseFavoriteProductID(c *gin.Context) (uint, bool) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(productID), true
}

// ListFavorites returns the session wishlist with optional sorting.
func (h *Handler) ListFavorites(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}

	items, err := h.FavoritesService.List(sessionID, strings.TrimSpace(c.Query("sort")))
	if err != nil {
		respondWithMappedError(c, err, favoritesErrorRules, response.CodeInternal, "error.favorites_fetch_failed")
		return
	}
	response.Success(c, gin.H{"items": items, "total": len(items)})
}

// AddFavorite adds a product to the wishlist. Adding twice is a no-op.
func (h *Handler) AddFavorite(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID, ok := parseFavoriteProductID(c)
	if !ok {
		return
	}
	if err := h.FavoritesService.Add(sessionID, productID); err != nil {
		respondFavoritesError(c, err)
		return
	}
	response.Success(c, gin.H{"favorited": true})
}

// ToggleFavorite flips the wishlist state of a product and returns the
// new state.
func (h *Handler) ToggleFavorite(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID, ok := parseFavoriteProductID(c)
	if !ok {
		return
	}
	favorited, err := h.FavoritesService.Toggle(sessionID, productID)
	if err != nil {
		respondFavoritesError(c, err)
		return
	}
	response.Success(c, gin.H{"favorited": favorited})
}

// RemoveFavorite removes a product from the wishlist.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID, ok := parseFavoriteProductID(c)
	if !ok {
		return
	}
	if err := h.FavoritesService.Remove(sessionID, productID); err != nil {
		respondFavoritesError(c, err)
		return
	}
	response.Success(c, gin.H{"favorited": false})
}

// ClearFavorites empties the wishlist.
func (h *Handler) ClearFavorites(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	if err := h.FavoritesService.Clear(sessionID); err != nil {
		respondFavoritesError(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

// CountFavorites returns the wishlist size for the header badge.
func (h *Handler) CountFavorites(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	total, err := h.FavoritesService.Count(sessionID)
	if err != nil {
		respondWithMappedError(c, err, favoritesErrorRules, response.CodeInternal, "error.favorites_fetch_failed")
		return
	}
	response.Success(c, gin.H{"total": total})
}
