package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"freedaiy-backend/internal/domains/blog"
	"freedaiy-backend/internal/shared/response"
)

const defaultLimit = 10

// BlogHandler handles HTTP requests for the blog domain
type BlogHandler struct {
	service blog.Service
}

// NewBlogHandler creates a new blog handler instance
func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// ListBlogs handles GET /api/blogs
//
// Reads fail quietly: a store failure degrades to 200 with an empty items
// list and a diagnostic note, never a 5xx.
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	limit := int64(defaultLimit)
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.ParseInt(limitStr, 10, 64); err == nil && l > 0 {
			limit = l
		}
	}

	items, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		log.Warn().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("Blog listing degraded to empty result")
		response.ItemsWithNote(c, nil, err.Error())
		return
	}

	response.Items(c, items)
}
