package api

import (
	"strconv"

	"marketplace-moderation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

func parseCursor(c *gin.Context) *queries.Cursor {
	raw := c.Query("cursor")
	if raw == "" {
		return nil
	}
	return &queries.Cursor{After: raw}
}

func parseLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}
