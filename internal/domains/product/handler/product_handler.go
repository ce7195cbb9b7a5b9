package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"freedaiy-backend/internal/domains/product"
	"freedaiy-backend/internal/shared/response"
)

const defaultLimit = 12

// ProductHandler handles HTTP requests for the product domain
type ProductHandler struct {
	service product.Service
}

// NewProductHandler creates a new product handler instance
func NewProductHandler(service product.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

// ListProducts handles GET /api/products
//
// Same fail-soft contract as blog listing: store failures become 200 with an
// empty items list and a note. A category with zero matches is an empty list
// with no note.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	limit := int64(defaultLimit)
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.ParseInt(limitStr, 10, 64); err == nil && l > 0 {
			limit = l
		}
	}

	category := c.Query("category")

	items, err := h.service.List(c.Request.Context(), limit, category)
	if err != nil {
		log.Warn().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("Product listing degraded to empty result")
		response.ItemsWithNote(c, nil, err.Error())
		return
	}

	response.Items(c, items)
}
